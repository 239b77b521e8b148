package jira

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/yaklabco/jirascope/pkg/adf"
	"github.com/yaklabco/jirascope/pkg/convert"
)

// Common gjson paths into Jira REST payloads.
const (
	PathDescription = "fields.description"
	PathCommentBody = "body"
	PathComments    = "comments.#.body"
)

// Sentinel errors for payload extraction.
var (
	// ErrInvalidPayload indicates input that is not valid JSON.
	ErrInvalidPayload = errors.New("invalid json payload")

	// ErrFieldNotFound indicates that the gjson path matched nothing.
	ErrFieldNotFound = errors.New("field not found")
)

// ExtractDocument pulls the document stored at path (gjson syntax) out of a
// raw Jira payload. An empty path selects the whole payload.
//
// A null field yields an empty document. A string field, as returned by
// the v2 REST API, yields a plain-text document unless it holds ADF JSON.
func ExtractDocument(payload []byte, path string) (*adf.Document, error) {
	if !gjson.ValidBytes(payload) {
		return nil, ErrInvalidPayload
	}

	if path == "" {
		return convert.DecodeJSON(payload)
	}

	result := gjson.GetBytes(payload, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, path)
	}
	return documentFrom(result, path)
}

// ExtractDocuments returns every document matched by a multi-value gjson
// path such as PathComments.
func ExtractDocuments(payload []byte, path string) ([]*adf.Document, error) {
	if !gjson.ValidBytes(payload) {
		return nil, ErrInvalidPayload
	}

	result := gjson.GetBytes(payload, path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, path)
	}

	values := result.Array()
	docs := make([]*adf.Document, 0, len(values))
	for i, value := range values {
		doc, err := documentFrom(value, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func documentFrom(result gjson.Result, path string) (*adf.Document, error) {
	switch result.Type {
	case gjson.Null:
		return adf.NewDocument(), nil

	case gjson.String:
		s := result.String()
		if trimmed := strings.TrimSpace(s); strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
			return decodeAt(trimmed, path)
		}
		if s == "" {
			return adf.NewDocument(), nil
		}
		return adf.TextDocument(s), nil

	case gjson.JSON:
		if !result.IsObject() {
			return nil, fmt.Errorf("%s: %w: expected object", path, adf.ErrInvalidDocument)
		}
		return decodeAt(result.Raw, path)

	default:
		return nil, fmt.Errorf("%s: %w: unexpected %s", path, adf.ErrInvalidDocument, result.Type)
	}
}

func decodeAt(raw, path string) (*adf.Document, error) {
	doc, err := convert.DecodeJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
