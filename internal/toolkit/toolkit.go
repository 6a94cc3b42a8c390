// Package toolkit provides the tool contract, registry, and dispatch pipeline
// for the MCP server: describe a tool with a JSON Schema, validate and default
// incoming arguments against that same schema, execute the handler, and
// normalize every outcome into a single text result.
package toolkit

import (
	"context"
)

// Tool is the contract for one callable instrument exposed over MCP.
type Tool interface {
	Name() string
	Description() string
	// InputSchema returns a valid JSON Schema map describing the argument object.
	InputSchema() map[string]any
	// Call runs the tool with a raw JSON argument object and returns exactly
	// one human-readable text payload.
	Call(ctx context.Context, argsJSON []byte) (string, error)
}

// Result is the normalized outcome of a dispatch: one text content item.
// IsError is set only for faults the dispatcher itself converted (unknown
// tool, argument validation, panic); handlers report downstream failures as
// ordinary text.
type Result struct {
	Text    string
	IsError bool
}
