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
	"github.com/weaviate/weaviate-go-client/v5/weaviate"

	"github.com/nyaya-ai/nyaya/services/orchestrator/cache"
	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
	"github.com/nyaya-ai/nyaya/services/orchestrator/retrieval"
)

type IndexDocumentsRequest struct {
	Documents []datatypes.LegalDocumentProperties `json:"documents"`
}

// IndexLegalDocuments batch-imports legal documents into the BM25 corpus.
// The schema is created on first use, so a fresh Weaviate instance needs
// no manual setup before the first import.
func IndexLegalDocuments(client *weaviate.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := queryTracer.Start(c.Request.Context(), "IndexLegalDocuments")
		defer span.End()

		var req IndexDocumentsRequest
		if err := c.BindJSON(&req); err != nil {
			slog.Error("Failed to parse the document index request", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if len(req.Documents) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No documents provided"})
			return
		}

		if err := retrieval.EnsureSchema(ctx, client); err != nil {
			slog.Error("Failed to ensure the document schema", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		indexed, err := retrieval.IndexDocuments(ctx, client, req.Documents)
		if err != nil {
			slog.Error("Document indexing failed", "error", err, "indexed", indexed)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		slog.Info("Indexed legal documents", "received", len(req.Documents), "indexed", indexed)
		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"indexed": indexed,
		})
	}
}

// EnsureDocumentSchema creates the document class if it does not exist.
// Idempotent, safe to call on every deploy.
func EnsureDocumentSchema(client *weaviate.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := retrieval.EnsureSchema(c.Request.Context(), client); err != nil {
			slog.Error("Failed to ensure the document schema", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"class":  retrieval.LegalDocumentClassName,
		})
	}
}

// GetCacheStats reports the number of cached answers.
func GetCacheStats(answers *cache.AnswerCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"entries": answers.Len(),
		})
	}
}

// FlushCache empties the answer cache, forcing fresh pipeline runs.
// Use after re-indexing documents so stale answers do not linger.
func FlushCache(answers *cache.AnswerCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		evicted := answers.Len()
		answers.Flush()
		slog.Info("Flushed the answer cache", "evicted", evicted)
		c.JSON(http.StatusOK, gin.H{
			"status":  "flushed",
			"evicted": evicted,
		})
	}
}
