// Package jira connects document trees to Jira payloads: the go-atlassian
// SDK models and raw REST responses. It performs no network I/O.
package jira

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ctreminiom/go-atlassian/pkg/infra/models"

	"github.com/yaklabco/jirascope/pkg/adf"
)

// ErrNilNode is returned when a nil SDK node is converted.
var ErrNilNode = errors.New("nil comment node")

// ToCommentNode converts doc into the go-atlassian ADF model used by issue
// descriptions and comment bodies.
func ToCommentNode(doc *adf.Document) (*models.CommentNodeScheme, error) {
	if doc == nil {
		doc = adf.NewDocument()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	node := &models.CommentNodeScheme{}
	if err := json.Unmarshal(data, node); err != nil {
		return nil, fmt.Errorf("decode comment node: %w", err)
	}
	return node, nil
}

// FromCommentNode converts a go-atlassian ADF model into a document. A
// root without a version is treated as version 1, and a non-doc root is
// wrapped in a document.
func FromCommentNode(node *models.CommentNodeScheme) (*adf.Document, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	root := *node
	if root.Type == string(adf.TypeDoc) && root.Version == 0 {
		root.Version = adf.Version
	}

	data, err := json.Marshal(&root)
	if err != nil {
		return nil, fmt.Errorf("encode comment node: %w", err)
	}

	if root.Type != string(adf.TypeDoc) {
		n, err := adf.DecodeNode(data)
		if err != nil {
			return nil, err
		}
		return adf.NewDocument(n), nil
	}

	var doc adf.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// IssueDescription returns the description of a Jira Cloud (API v3) issue.
// An issue without a description yields an empty document.
func IssueDescription(issue *models.IssueScheme) (*adf.Document, error) {
	if issue == nil || issue.Fields == nil || issue.Fields.Description == nil {
		return adf.NewDocument(), nil
	}
	return FromCommentNode(issue.Fields.Description)
}

// SetIssueDescription stores doc as the description of issue, creating the
// fields object when needed.
func SetIssueDescription(issue *models.IssueScheme, doc *adf.Document) error {
	if issue == nil {
		return errors.New("nil issue")
	}

	node, err := ToCommentNode(doc)
	if err != nil {
		return err
	}
	if issue.Fields == nil {
		issue.Fields = &models.IssueFieldsScheme{}
	}
	issue.Fields.Description = node
	return nil
}
