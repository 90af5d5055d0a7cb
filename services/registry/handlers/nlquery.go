// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/stringvault/services/registry/nlq"
	"github.com/AleutianAI/stringvault/services/registry/observability"
	"github.com/AleutianAI/stringvault/services/registry/query"
	"github.com/AleutianAI/stringvault/services/registry/store"
)

// FilterByNaturalLanguage handles
// GET /v1/strings/filter-by-natural-language?query=...
//
// The free-text query is translated into the same FilterPredicate the
// structured list endpoint uses, then evaluated through the same
// engine, so the two routes can never disagree on matching semantics.
// Translation failures return 400 without scanning the store.
func FilterByNaturalLanguage(s *store.RecordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		freeText := c.Query("query")

		pred, err := nlq.Translate(freeText)
		if err != nil {
			switch {
			case errors.Is(err, nlq.ErrConflictingFilters):
				observability.RecordTranslationFailure("conflicting")
			default:
				observability.RecordTranslationFailure("unparseable")
			}
			observability.RecordRequest("nl_filter", "bad_request")
			slog.Info("rejected natural language query", "query", freeText, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := query.Run(s.All(), pred)

		observability.RecordRequest("nl_filter", "ok")
		c.JSON(http.StatusOK, gin.H{
			"data":  result.Matches,
			"count": result.Count,
			"interpreted_query": gin.H{
				"original":       freeText,
				"parsed_filters": pred,
			},
		})
	}
}
