// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the registry.
//
// Metrics are exposed via the /metrics endpoint. All operations are
// thread-safe via Prometheus's internal locking. Handlers report
// through the package-level helpers, which no-op when metrics were
// never initialized, so unit tests don't need a registry.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "stringvault"

// RegistryMetrics holds the Prometheus metrics for registry operations.
type RegistryMetrics struct {
	// RequestsTotal counts API requests.
	// Labels: endpoint (create, get, list, nl_filter, delete), status
	// (created, ok, conflict, not_found, bad_request, unauthorized).
	RequestsTotal *prometheus.CounterVec

	// StoreSize tracks the number of records currently stored.
	StoreSize prometheus.Gauge

	// TranslationFailuresTotal counts rejected natural-language
	// queries. Labels: reason (unparseable, conflicting).
	TranslationFailuresTotal *prometheus.CounterVec
}

// DefaultMetrics is the singleton initialized by InitMetrics. Nil until
// then; the helper functions below tolerate that.
var DefaultMetrics *RegistryMetrics

// InitMetrics registers the registry metrics with the default
// Prometheus registry and installs them as DefaultMetrics. Call once
// at startup; a second call panics on duplicate registration.
func InitMetrics() *RegistryMetrics {
	DefaultMetrics = NewRegistryMetrics(prometheus.DefaultRegisterer)
	return DefaultMetrics
}

// NewRegistryMetrics creates the metric set against an explicit
// registerer. Tests use this with their own registry.
func NewRegistryMetrics(reg prometheus.Registerer) *RegistryMetrics {
	factory := promauto.With(reg)
	return &RegistryMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Total number of registry API requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		StoreSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "store_size",
				Help:      "Number of string records currently stored",
			},
		),
		TranslationFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "translation_failures_total",
				Help:      "Natural-language queries rejected by the translator, by reason",
			},
			[]string{"reason"},
		),
	}
}

// RecordRequest increments the request counter for one endpoint/status
// pair. Safe to call before InitMetrics.
func RecordRequest(endpoint, status string) {
	if DefaultMetrics != nil {
		DefaultMetrics.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	}
}

// SetStoreSize updates the store-size gauge. Safe to call before
// InitMetrics.
func SetStoreSize(n int) {
	if DefaultMetrics != nil {
		DefaultMetrics.StoreSize.Set(float64(n))
	}
}

// RecordTranslationFailure counts a rejected natural-language query.
// Safe to call before InitMetrics.
func RecordTranslationFailure(reason string) {
	if DefaultMetrics != nil {
		DefaultMetrics.TranslationFailuresTotal.WithLabelValues(reason).Inc()
	}
}
