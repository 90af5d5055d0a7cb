// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/stringvault/services/registry/handlers"
	"github.com/AleutianAI/stringvault/services/registry/middleware"
	"github.com/AleutianAI/stringvault/services/registry/store"
)

// SetupRoutes registers every endpoint of the registry service.
//
// Health and metrics stay outside the authenticated group so probes
// and scrapers work without credentials. The static
// filter-by-natural-language route coexists with the :value parameter
// route; gin resolves static segments before wildcards.
func SetupRoutes(router *gin.Engine, s *store.RecordStore,
	auth middleware.KeyProvider, maxValueBytes int) {

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	v1.Use(middleware.APIKeyAuth(auth))
	{
		strings := v1.Group("/strings")
		{
			strings.POST("", handlers.CreateString(s, maxValueBytes))
			strings.GET("", handlers.ListStrings(s))
			strings.GET("/filter-by-natural-language", handlers.FilterByNaturalLanguage(s))
			strings.GET("/:value", handlers.GetString(s))
			strings.DELETE("/:value", handlers.DeleteString(s))
		}
	}
}
