// Package mcp exposes the query service over the Model Context Protocol.
// It registers the search and fetch tools plus a fetch resource template,
// and serves them over stdio or streamable HTTP.
package mcp

import (
	"encoding/json"
	"errors"

	"github.com/vinodesignbuild/jobtread-mcp/internal/core/domain"
)

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")

// ToolError is the error a tool call reports to the client. Its text is
// a JSON object carrying a stable kind and a human-readable message.
type ToolError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`

	err error
}

func (e *ToolError) Error() string {
	data, err := json.Marshal(e)
	if err != nil {
		return e.Message
	}
	return string(data)
}

func (e *ToolError) Unwrap() error {
	return e.err
}

// toolError maps err onto a ToolError. Nil stays nil.
func toolError(err error) error {
	if err == nil {
		return nil
	}
	return &ToolError{
		Kind:    domain.KindOf(err),
		Message: err.Error(),
		err:     err,
	}
}
