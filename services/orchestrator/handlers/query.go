// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
	"github.com/nyaya-ai/nyaya/services/orchestrator/services"
)

var queryTracer = otel.Tracer("nyaya.orchestrator.handlers")

// HandleLegalQuery answers a legal question through the full pipeline:
// intent filtering, retrieval, generation, and the hallucination audit.
//
// Blocked queries are not errors. They return 200 with is_safe=false and
// risk_level="blocked" so the client can render the refusal message.
func HandleLegalQuery(svc *services.LegalRAGService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := queryTracer.Start(c.Request.Context(), "HandleLegalQuery")
		defer span.End()

		var request datatypes.QueryRequest
		if err := c.BindJSON(&request); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			slog.Error("Failed to bind legal query JSON", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		span.SetAttributes(
			attribute.Int("top_k", request.TopK),
			attribute.Bool("use_cache", request.UseCache),
			attribute.Bool("detect_hallucinations", request.DetectHallucinations),
		)

		resp, err := svc.Process(ctx, &request)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if services.IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			slog.Error("Legal query pipeline failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		span.SetAttributes(
			attribute.String("risk_level", resp.RiskLevel),
			attribute.Bool("cache_hit", resp.CacheHit),
		)
		c.JSON(http.StatusOK, resp)
	}
}
