package tools

import (
	"context"
	"fmt"

	"cytoscape-mcp/internal/cyrest"
	"cytoscape-mcp/internal/toolkit"
)

func newApplyLayoutTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"layout_name": map[string]any{
				"type":        "string",
				"description": "Layout algorithm name (e.g., 'force-directed', 'circular', 'hierarchical')",
				"default":     "force-directed",
			},
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name or SUID",
			},
		},
		"required": []any{},
	}
	type args struct {
		LayoutName string         `json:"layout_name"`
		Network    *networkTarget `json:"network"`
	}
	return toolkit.New("apply_layout", "Apply a layout algorithm to the network", schema,
		func(ctx context.Context, a args) (string, error) {
			raw, err := c.ApplyLayout(ctx, a.LayoutName, a.Network.Network())
			if err != nil {
				return "Failed to apply layout: " + err.Error(), nil
			}
			return fmt.Sprintf("Applied layout '%s': %s", a.LayoutName, raw), nil
		})
}

func newSetVisualStyleTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"style_name": map[string]any{
				"type":        "string",
				"description": "Visual style name",
			},
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name or SUID",
			},
		},
		"required": []any{"style_name"},
	}
	type args struct {
		StyleName string         `json:"style_name"`
		Network   *networkTarget `json:"network"`
	}
	return toolkit.New("set_visual_style", "Apply a visual style to the network", schema,
		func(ctx context.Context, a args) (string, error) {
			raw, err := c.ApplyStyle(ctx, a.StyleName, a.Network.Network())
			if err != nil {
				return "Failed to set visual style: " + err.Error(), nil
			}
			return fmt.Sprintf("Applied visual style '%s': %s", a.StyleName, raw), nil
		})
}

func newExportImageTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"filename": map[string]any{
				"type":        "string",
				"description": "Output filename with extension (PNG, JPG, PDF, SVG)",
			},
			"type": map[string]any{
				"type":        "string",
				"description": "Image format",
				"enum":        []any{"PNG", "JPG", "PDF", "SVG"},
				"default":     "PNG",
			},
			"resolution": map[string]any{
				"type":        "integer",
				"description": "Image resolution (DPI)",
				"default":     300,
			},
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name or SUID",
			},
		},
		"required": []any{"filename"},
	}
	type args struct {
		Filename   string         `json:"filename"`
		Type       string         `json:"type"`
		Resolution int64          `json:"resolution"`
		Network    *networkTarget `json:"network"`
	}
	return toolkit.New("export_image", "Export network view as image", schema,
		func(ctx context.Context, a args) (string, error) {
			raw, err := c.ExportImage(ctx, a.Filename, a.Type, a.Resolution, a.Network.Network())
			if err != nil {
				return "Failed to export image: " + err.Error(), nil
			}
			return fmt.Sprintf("Exported image to %s: %s", a.Filename, raw), nil
		})
}
