// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package retrieval provides document retrieval from the Weaviate-backed
// legal corpus.
package retrieval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/nyaya-ai/nyaya/services/orchestrator/datatypes"
)

var tracer = otel.Tracer("nyaya.orchestrator.retrieval")

// Compile-time interface implementation check.
var _ Retriever = (*WeaviateRetriever)(nil)

// Retriever defines the contract for fetching legal documents relevant
// to a query.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use.
type Retriever interface {
	// Retrieve returns up to topK documents ranked by relevance to the
	// query. An empty slice with a nil error means the corpus has no
	// relevant documents; callers should degrade gracefully rather than
	// treat that as a failure.
	Retrieve(ctx context.Context, query string, topK int) ([]datatypes.LegalDocument, error)
}

// WeaviateRetriever retrieves legal documents from Weaviate using BM25
// keyword search over the LegalDocument class.
//
// Statute and case-law queries are dominated by exact terms (section
// numbers, article numbers, act names), which keyword ranking handles
// well without an embedding model in the loop.
type WeaviateRetriever struct {
	client  *weaviate.Client
	docType string
}

// RetrieverOption configures a WeaviateRetriever.
type RetrieverOption func(*WeaviateRetriever)

// WithDocType restricts retrieval to a single document type
// (e.g. "statute", "judgment"). Empty means all types.
func WithDocType(docType string) RetrieverOption {
	return func(r *WeaviateRetriever) {
		r.docType = docType
	}
}

// NewWeaviateRetriever creates a retriever backed by the given client.
// A nil client is tolerated; every Retrieve call then fails and the
// pipeline degrades to curated answers.
func NewWeaviateRetriever(client *weaviate.Client, opts ...RetrieverOption) *WeaviateRetriever {
	r := &WeaviateRetriever{client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve runs a BM25 search over the LegalDocument class.
func (r *WeaviateRetriever) Retrieve(ctx context.Context, query string, topK int) ([]datatypes.LegalDocument, error) {
	ctx, span := tracer.Start(ctx, "WeaviateRetriever.Retrieve")
	defer span.End()

	if r.client == nil {
		err := fmt.Errorf("weaviate client not configured")
		span.RecordError(err)
		span.SetStatus(codes.Error, "no client")
		return nil, err
	}
	if query == "" {
		err := fmt.Errorf("query is required")
		span.RecordError(err)
		span.SetStatus(codes.Error, "empty query")
		return nil, err
	}
	if topK <= 0 {
		topK = datatypes.DefaultTopK
	}
	span.SetAttributes(
		attribute.String("retrieval.query", query),
		attribute.Int("retrieval.top_k", topK),
	)

	fields := []graphql.Field{
		{Name: "doc_id"},
		{Name: "source"},
		{Name: "title"},
		{Name: "content"},
		{Name: "doc_type"},
		{Name: "year"},
		{Name: "_additional", Fields: []graphql.Field{
			{Name: "id"},
			{Name: "score"},
		}},
	}

	getBuilder := r.client.GraphQL().Get().
		WithClassName(LegalDocumentClassName).
		WithFields(fields...).
		WithBM25(r.client.GraphQL().Bm25ArgBuilder().WithQuery(query)).
		WithLimit(topK)

	if r.docType != "" {
		getBuilder = getBuilder.WithWhere(filters.Where().
			WithPath([]string{"doc_type"}).
			WithOperator(filters.Equal).
			WithValueString(r.docType))
		span.SetAttributes(attribute.String("retrieval.doc_type", r.docType))
	}

	result, err := getBuilder.Do(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "weaviate search failed")
		return nil, fmt.Errorf("weaviate search failed: %w", err)
	}
	if len(result.Errors) > 0 {
		err := fmt.Errorf("weaviate search error: %s", result.Errors[0].Message)
		span.RecordError(err)
		span.SetStatus(codes.Error, "graphql error")
		return nil, err
	}

	parsed, err := datatypes.ParseGraphQLResponse[datatypes.LegalDocumentQueryResponse](result)
	if err != nil {
		slog.Error("Failed to parse retrieval results", "error", err)
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	docs := make([]datatypes.LegalDocument, 0, len(parsed.Get.LegalDocument))
	for i := range parsed.Get.LegalDocument {
		docs = append(docs, parsed.Get.LegalDocument[i].ToDocument())
	}

	span.SetAttributes(attribute.Int("retrieval.results", len(docs)))
	return docs, nil
}
