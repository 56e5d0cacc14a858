// Copyright (C) 2026 Nyaya AI (legal@nyaya.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/weaviate/weaviate/entities/models"
)

// =============================================================================
// Generic GraphQL Response Parser
// =============================================================================

// ParseGraphQLResponse parses a Weaviate GraphQL response into the target type.
//
// # Description
//
// This generic function encapsulates the marshal/unmarshal pattern required to
// convert Weaviate's dynamic response (map[string]models.JSONObject) into a
// strongly-typed Go struct. The target type T must have json tags matching
// the expected response shape.
//
// # Example
//
//	resp, err := client.GraphQL().Get().WithClassName("LegalDocument").Do(ctx)
//	if err != nil { ... }
//
//	parsed, err := ParseGraphQLResponse[LegalDocumentQueryResponse](resp)
//	if err != nil { ... }
//
//	for _, d := range parsed.Get.LegalDocument {
//	    fmt.Println(d.Title)
//	}
//
// # Limitations
//
//   - Requires the target type to exactly match the expected response structure.
//   - Type mismatches will result in zero values, not errors.
func ParseGraphQLResponse[T any](resp *models.GraphQLResponse) (*T, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil GraphQL response")
	}

	respBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL response data: %w", err)
	}

	var result T
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal into target type: %w", err)
	}

	return &result, nil
}

// =============================================================================
// LegalDocument Query Types
// =============================================================================

// LegalDocumentQueryResponse represents the response from querying the
// LegalDocument class.
type LegalDocumentQueryResponse struct {
	Get struct {
		LegalDocument []LegalDocumentResult `json:"LegalDocument"`
	} `json:"Get"`
}

// LegalDocumentResult represents a single legal document from a query.
//
// The BM25 score arrives as a string in Weaviate's _additional block;
// use ScoreValue to get it as a float.
type LegalDocumentResult struct {
	DocID      string `json:"doc_id"`
	Source     string `json:"source"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	DocType    string `json:"doc_type"`
	Year       *int   `json:"year"`
	Additional struct {
		ID    string `json:"id"`
		Score string `json:"score"`
	} `json:"_additional"`
}

// ScoreValue parses the BM25 score string. Returns 0 when absent or malformed.
func (r *LegalDocumentResult) ScoreValue() float64 {
	if r.Additional.Score == "" {
		return 0
	}
	v, err := strconv.ParseFloat(r.Additional.Score, 64)
	if err != nil {
		return 0
	}
	return v
}

// ToDocument converts a query result into the retrieval unit used by the
// rest of the pipeline.
func (r *LegalDocumentResult) ToDocument() LegalDocument {
	year := 0
	if r.Year != nil {
		year = *r.Year
	}
	return LegalDocument{
		DocID:   r.DocID,
		Source:  r.Source,
		Title:   r.Title,
		Content: r.Content,
		DocType: r.DocType,
		Year:    year,
		Score:   r.ScoreValue(),
	}
}

// =============================================================================
// LegalDocument Property Types
// =============================================================================

// LegalDocumentProperties represents the properties for creating a
// LegalDocument object.
type LegalDocumentProperties struct {
	DocID   string `json:"doc_id"`
	Source  string `json:"source"`
	Title   string `json:"title"`
	Content string `json:"content"`
	DocType string `json:"doc_type"`
	Year    int    `json:"year"`
}

// ToMap converts LegalDocumentProperties to the map format required by
// Weaviate's WithProperties() method.
func (p *LegalDocumentProperties) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"doc_id":   p.DocID,
		"source":   p.Source,
		"title":    p.Title,
		"content":  p.Content,
		"doc_type": p.DocType,
		"year":     p.Year,
	}
}
