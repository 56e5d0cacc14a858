// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package retrieval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
)

// LegalDocumentClassName is the Weaviate class name for the legal corpus.
const LegalDocumentClassName = "LegalDocument"

// batchSize is the number of documents to batch import at once.
const batchSize = 100

// GetLegalDocumentSchema returns the Weaviate schema for the LegalDocument
// class. Vectorizer is "none": retrieval runs on BM25 keyword search.
func GetLegalDocumentSchema() *models.Class {
	indexFilterable := new(bool)
	*indexFilterable = true

	return &models.Class{
		Class:       LegalDocumentClassName,
		Description: "Indian legal corpus: statutes, judgments, and commentary",
		Vectorizer:  "none",
		InvertedIndexConfig: &models.InvertedIndexConfig{
			IndexTimestamps: true,
		},
		Properties: []*models.Property{
			{
				Name:            "doc_id",
				DataType:        []string{"text"},
				Description:     "Stable document identifier (e.g., ipc_302, air_1980_sc_898)",
				IndexFilterable: indexFilterable,
				Tokenization:    "field",
			},
			{
				Name:         "source",
				DataType:     []string{"text"},
				Description:  "Source collection or citation (e.g., Indian Penal Code, AIR 1980 SC 898)",
				Tokenization: "word",
			},
			{
				Name:         "title",
				DataType:     []string{"text"},
				Description:  "Human-readable title (e.g., Section 302 - Punishment for murder)",
				Tokenization: "word",
			},
			{
				Name:         "content",
				DataType:     []string{"text"},
				Description:  "Full text of the provision or judgment excerpt",
				Tokenization: "word",
			},
			{
				Name:            "doc_type",
				DataType:        []string{"text"},
				Description:     "Document type: statute, judgment, commentary",
				IndexFilterable: indexFilterable,
				Tokenization:    "field",
			},
			{
				Name:        "year",
				DataType:    []string{"int"},
				Description: "Year of enactment or judgment (0 when unknown)",
			},
		},
	}
}

// EnsureSchema creates the LegalDocument class if it doesn't exist.
// This operation is idempotent.
func EnsureSchema(ctx context.Context, client *weaviate.Client) error {
	_, err := client.Schema().ClassGetter().WithClassName(LegalDocumentClassName).Do(ctx)
	if err == nil {
		slog.Info("LegalDocument schema already exists")
		return nil
	}

	slog.Info("Creating LegalDocument schema")
	if err := client.Schema().ClassCreator().WithClass(GetLegalDocumentSchema()).Do(ctx); err != nil {
		return fmt.Errorf("creating LegalDocument schema: %w", err)
	}

	slog.Info("LegalDocument schema created successfully")
	return nil
}

// IndexDocuments batch imports legal documents into Weaviate.
//
// Returns the number of documents successfully indexed.
func IndexDocuments(ctx context.Context, client *weaviate.Client, docs []datatypes.LegalDocumentProperties) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	indexed := 0
	for i := 0; i < len(docs); i += batchSize {
		if err := ctx.Err(); err != nil {
			return indexed, err
		}

		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[i:end]

		objects := make([]*models.Object, len(batch))
		for j := range batch {
			objects[j] = &models.Object{
				Class:      LegalDocumentClassName,
				Properties: batch[j].ToMap(),
			}
		}

		result, err := client.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
		if err != nil {
			return indexed, fmt.Errorf("batch import failed: %w", err)
		}

		for _, obj := range result {
			if obj.Result != nil && obj.Result.Errors == nil {
				indexed++
			}
		}

		slog.Info("Indexed batch", "count", len(batch), "total_indexed", indexed)
	}

	return indexed, nil
}
