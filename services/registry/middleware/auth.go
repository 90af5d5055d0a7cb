// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package middleware provides HTTP middleware for the registry service.
//
// Authentication follows the provider pattern: the middleware extracts
// the API key from the request and delegates validation to a
// KeyProvider. The default NopProvider accepts everything, so a locally
// run registry needs no auth infrastructure; deployments set
// REGISTRY_API_KEY to switch to StaticKeyProvider.
package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/stringvault/services/registry/observability"
)

// ErrInvalidKey is returned by providers when the presented key does
// not authorize the request.
var ErrInvalidKey = errors.New("invalid API key")

// KeyProvider validates API keys for incoming requests.
type KeyProvider interface {
	// Validate returns nil when the key authorizes the request.
	Validate(key string) error
}

// NopProvider authorizes every request, keyed or not. This is the
// default for local use.
type NopProvider struct{}

// Validate always succeeds.
func (NopProvider) Validate(string) error { return nil }

// StaticKeyProvider authorizes requests presenting one fixed key.
type StaticKeyProvider struct {
	key string
}

// NewStaticKeyProvider creates a provider around the configured key.
func NewStaticKeyProvider(key string) *StaticKeyProvider {
	return &StaticKeyProvider{key: key}
}

// Validate compares the presented key in constant time.
func (p *StaticKeyProvider) Validate(key string) error {
	if subtle.ConstantTimeCompare([]byte(key), []byte(p.key)) != 1 {
		return ErrInvalidKey
	}
	return nil
}

// APIKeyAuth extracts the API key from "Authorization: Bearer <key>"
// or the X-API-Key header and validates it via the provider. Rejected
// requests get 401 and are not passed down the chain.
func APIKeyAuth(provider KeyProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if err := provider.Validate(key); err != nil {
			observability.RecordRequest(c.FullPath(), "unauthorized")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
