// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the HTTP surface of the string registry.
//
// Handlers translate between transport concerns (binding, status
// codes) and the core packages (validation, store, query, nlq). Every
// failed operation maps to one status code and leaves the store
// untouched:
//
//	empty value        -> 400
//	duplicate content  -> 409
//	unknown value      -> 404
//	unparseable query  -> 400
//	conflicting filter -> 400
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/stringvault/pkg/validation"
	"github.com/AleutianAI/stringvault/services/registry/datatypes"
	"github.com/AleutianAI/stringvault/services/registry/observability"
	"github.com/AleutianAI/stringvault/services/registry/query"
	"github.com/AleutianAI/stringvault/services/registry/store"
)

// CreateString handles POST /v1/strings. Returns 201 with the new
// record, 400 for an empty or oversized value, 409 for duplicate
// content.
func CreateString(s *store.RecordStore, maxValueBytes int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.CreateStringRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			observability.RecordRequest("create", "bad_request")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := validation.ValidateValue(req.Value, maxValueBytes); err != nil {
			observability.RecordRequest("create", "bad_request")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rec, err := s.Create(req.Value)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateContent) {
				observability.RecordRequest("create", "conflict")
				c.JSON(http.StatusConflict, gin.H{"error": "string already exists"})
				return
			}
			slog.Error("failed to create string record", "error", err)
			observability.RecordRequest("create", "error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create record"})
			return
		}

		slog.Info("created string record", "id", rec.ID, "length", rec.Properties.Length)
		observability.RecordRequest("create", "created")
		observability.SetStoreSize(s.Len())
		c.JSON(http.StatusCreated, rec)
	}
}

// GetString handles GET /v1/strings/:value. The path parameter is the
// raw string value; lookup is by its content hash.
func GetString(s *store.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := s.FindByValue(c.Param("value"))
		if err != nil {
			observability.RecordRequest("get", "not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": "string not found"})
			return
		}
		observability.RecordRequest("get", "ok")
		c.JSON(http.StatusOK, rec)
	}
}

// ListStrings handles GET /v1/strings with optional structured filters
// in the query string. An empty result set is a valid outcome; only
// malformed filter parameters fail, with 400.
func ListStrings(s *store.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.ListStringsRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			observability.RecordRequest("list", "bad_request")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
			return
		}
		if req.ContainsCharacter != nil {
			if err := validation.ValidateFilterCharacter(*req.ContainsCharacter); err != nil {
				observability.RecordRequest("list", "bad_request")
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		pred := query.FilterPredicate{
			IsPalindrome:      req.IsPalindrome,
			MinLength:         req.MinLength,
			MaxLength:         req.MaxLength,
			WordCount:         req.WordCount,
			ContainsCharacter: req.ContainsCharacter,
		}
		result := query.Run(s.All(), pred)

		observability.RecordRequest("list", "ok")
		c.JSON(http.StatusOK, gin.H{
			"data":            result.Matches,
			"count":           result.Count,
			"filters_applied": result.FiltersApplied,
		})
	}
}

// DeleteString handles DELETE /v1/strings/:value. Returns 204 on
// success, 404 when no record with that content exists.
func DeleteString(s *store.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.Delete(c.Param("value")); err != nil {
			observability.RecordRequest("delete", "not_found")
			c.JSON(http.StatusNotFound, gin.H{"error": "string not found"})
			return
		}

		slog.Info("deleted string record", "remaining", s.Len())
		observability.RecordRequest("delete", "ok")
		observability.SetStoreSize(s.Len())
		c.Status(http.StatusNoContent)
	}
}
