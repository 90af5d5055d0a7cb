// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/AleutianAI/stringvault/services/registry/datatypes"
)

// ListResult mirrors the body of GET /v1/strings.
type ListResult struct {
	Data           []datatypes.StringRecord `json:"data"`
	Count          int                      `json:"count"`
	FiltersApplied map[string]any           `json:"filters_applied"`
}

// NLResult mirrors the body of the natural-language filter endpoint.
type NLResult struct {
	Data             []datatypes.StringRecord `json:"data"`
	Count            int                      `json:"count"`
	InterpretedQuery struct {
		Original      string         `json:"original"`
		ParsedFilters map[string]any `json:"parsed_filters"`
	} `json:"interpreted_query"`
}

// Client is a thin HTTP client for the registry API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the registry at baseURL. apiKey may
// be empty when the registry runs without authentication.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("registry returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// CreateString registers a new value and returns its record.
func (c *Client) CreateString(value string) (*datatypes.StringRecord, error) {
	var rec datatypes.StringRecord
	if err := c.do(http.MethodPost, "/v1/strings",
		map[string]string{"value": value}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetString fetches the record whose content equals value.
func (c *Client) GetString(value string) (*datatypes.StringRecord, error) {
	var rec datatypes.StringRecord
	if err := c.do(http.MethodGet, "/v1/strings/"+url.PathEscape(value), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteString removes the record whose content equals value.
func (c *Client) DeleteString(value string) error {
	return c.do(http.MethodDelete, "/v1/strings/"+url.PathEscape(value), nil, nil)
}

// ListStrings runs a structured filter query. filters maps query
// parameter names to values, e.g. {"is_palindrome": "true"}.
func (c *Client) ListStrings(filters map[string]string) (*ListResult, error) {
	params := url.Values{}
	for k, v := range filters {
		params.Set(k, v)
	}
	path := "/v1/strings"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result ListResult
	if err := c.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FilterByNaturalLanguage runs a free-text filter query.
func (c *Client) FilterByNaturalLanguage(queryText string) (*NLResult, error) {
	path := "/v1/strings/filter-by-natural-language?query=" + url.QueryEscape(queryText)

	var result NLResult
	if err := c.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks the registry liveness probe.
func (c *Client) Health() error {
	return c.do(http.MethodGet, "/health", nil, nil)
}
