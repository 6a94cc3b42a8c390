package tools

import (
	"context"

	"cytoscape-mcp/internal/cyrest"
	"cytoscape-mcp/internal/toolkit"
)

func newRunAppCommandTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"command": map[string]any{
				"type":        "string",
				"description": "Command string",
			},
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network context",
			},
		},
		"required": []any{"command"},
	}
	type args struct {
		Command string         `json:"command"`
		Network *networkTarget `json:"network"`
	}
	return toolkit.New("run_app_command", "Execute a Cytoscape app command", schema,
		func(ctx context.Context, a args) (string, error) {
			// The command string names its own network argument when one is needed;
			// the network field is accepted for catalog symmetry but not forwarded.
			raw, err := c.RunCommand(ctx, a.Command)
			if err != nil {
				return "Failed to run command: " + err.Error(), nil
			}
			return "Command result: " + indentJSON(raw), nil
		})
}

func newLoadStringNetworkTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"protein_query": map[string]any{
				"type":        "string",
				"description": "Protein names/IDs (comma-separated)",
			},
			"species": map[string]any{
				"type":        "integer",
				"description": "NCBI taxonomy ID (e.g., 9606 for human)",
				"default":     9606,
			},
			"confidence_score": map[string]any{
				"type":        "number",
				"description": "Confidence threshold (0.0-1.0)",
				"default":     0.4,
			},
			"network_type": map[string]any{
				"type":        "string",
				"description": "STRING network type",
				"enum":        []any{"functional", "physical"},
				"default":     "functional",
			},
		},
		"required": []any{"protein_query"},
	}
	type args struct {
		ProteinQuery    string  `json:"protein_query"`
		Species         int64   `json:"species"`
		ConfidenceScore float64 `json:"confidence_score"`
		NetworkType     string  `json:"network_type"`
	}
	return toolkit.New("load_string_network", "Load protein interaction network from STRING database", schema,
		func(ctx context.Context, a args) (string, error) {
			raw, err := c.StringProteinQuery(ctx, a.ProteinQuery, a.Species, a.ConfidenceScore, a.NetworkType)
			if err != nil {
				return "Failed to load STRING network: " + err.Error(), nil
			}
			return "Loaded STRING network: " + indentJSON(raw), nil
		})
}
