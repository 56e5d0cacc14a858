// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
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
	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	"github.com/nyaya-ai/nyaya/services/orchestrator/cache"
	"github.com/nyaya-ai/nyaya/services/orchestrator/handlers"
	"github.com/nyaya-ai/nyaya/services/orchestrator/middleware"
	"github.com/nyaya-ai/nyaya/services/orchestrator/services"
)

// SetupRoutes wires the HTTP surface.
//
// /health and /metrics stay unauthenticated so probes and Prometheus can
// reach them. The /v1 group is rate limited per client IP. Admin routes
// additionally require the API key; an empty apiKey leaves them open,
// which is only sensible for local development.
func SetupRoutes(router *gin.Engine, svc *services.LegalRAGService,
	answers *cache.AnswerCache, client *weaviate.Client, apiKey string) {

	router.Use(middleware.RequestIDMiddleware())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewClientLimiter(
		middleware.DefaultRequestsPerSecond, middleware.DefaultBurst)

	// API version 1 group
	v1 := router.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(limiter))
	{
		v1.POST("/query", handlers.HandleLegalQuery(svc))

		// Corpus and cache administration routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(apiKey))
		{
			admin.POST("/documents", handlers.IndexLegalDocuments(client))
			admin.POST("/schema", handlers.EnsureDocumentSchema(client))
			admin.GET("/cache/stats", handlers.GetCacheStats(answers))
			admin.POST("/cache/flush", handlers.FlushCache(answers))
		}
	}
}
