// Package toolkittest provides test helpers for toolkit (e.g. MockTool).
package toolkittest

import (
	"context"

	"cytoscape-mcp/internal/toolkit"
)

// MockTool is a configurable Tool implementation for tests.
type MockTool struct {
	NameVal   string
	DescVal   string
	SchemaVal map[string]any
	CallFn    func(ctx context.Context, argsJSON []byte) (string, error)
}

// Name returns the tool name.
func (m *MockTool) Name() string {
	if m.NameVal != "" {
		return m.NameVal
	}
	return "mock"
}

// Description returns the tool description.
func (m *MockTool) Description() string {
	return m.DescVal
}

// InputSchema returns the schema (or an empty object schema).
func (m *MockTool) InputSchema() map[string]any {
	if m.SchemaVal != nil {
		return m.SchemaVal
	}
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

// Call runs CallFn if set, otherwise returns "ok".
func (m *MockTool) Call(ctx context.Context, argsJSON []byte) (string, error) {
	if m.CallFn != nil {
		return m.CallFn(ctx, argsJSON)
	}
	return "ok", nil
}

// Ensure MockTool implements Tool.
var _ toolkit.Tool = (*MockTool)(nil)

// NewTestRegistry returns a Registry with panic recovery enabled and the given
// tools registered.
func NewTestRegistry(tools ...toolkit.Tool) *toolkit.Registry {
	reg := toolkit.NewRegistry(toolkit.WithRecoverPanics(true))
	for _, t := range tools {
		reg.Register(t)
	}
	return reg
}
