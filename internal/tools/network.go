package tools

import (
	"context"
	"fmt"

	"cytoscape-mcp/internal/cyrest"
	"cytoscape-mcp/internal/toolkit"
)

// defaultInteraction labels edge pairs that arrive without an interaction type.
const defaultInteraction = "interacts"

func newCreateNetworkTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nodes": map[string]any{
				"type":        "array",
				"description": "List of node names",
				"items":       map[string]any{"type": "string"},
			},
			"edges": map[string]any{
				"type":        "array",
				"description": "List of edge tuples [source, target] or [source, target, interaction]",
				"items": map[string]any{
					"type":     "array",
					"minItems": 2,
					"maxItems": 3,
				},
			},
			"title": map[string]any{
				"type":        "string",
				"description": "Network title",
				"default":     "New Network",
			},
			"collection": map[string]any{
				"type":        "string",
				"description": "Collection name",
				"default":     "My Collection",
			},
		},
		"required": []any{"nodes", "edges"},
	}
	type args struct {
		Nodes      []string   `json:"nodes"`
		Edges      [][]string `json:"edges"`
		Title      string     `json:"title"`
		Collection string     `json:"collection"`
	}
	return toolkit.New("create_network", "Create a new network from nodes and edges", schema,
		func(ctx context.Context, a args) (string, error) {
			nodeRows := make([]cyrest.NodeRow, 0, len(a.Nodes))
			for _, node := range a.Nodes {
				nodeRows = append(nodeRows, cyrest.NodeRow{ID: node})
			}
			// The schema's minItems/maxItems pins every edge to 2 or 3 elements.
			edgeRows := make([]cyrest.EdgeRow, 0, len(a.Edges))
			for _, edge := range a.Edges {
				interaction := defaultInteraction
				if len(edge) == 3 {
					interaction = edge[2]
				}
				edgeRows = append(edgeRows, cyrest.EdgeRow{Source: edge[0], Target: edge[1], Interaction: interaction})
			}
			suid, err := c.CreateNetwork(ctx, nodeRows, edgeRows, a.Title, a.Collection)
			if err != nil {
				return "Failed to create network: " + err.Error(), nil
			}
			return fmt.Sprintf("Created network '%s' with SUID: %d", a.Title, suid), nil
		})
}

func newLoadNetworkFileTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"file_path": map[string]any{
				"type":        "string",
				"description": "Path to network file",
			},
			"first_row_as_column_names": map[string]any{
				"type":        "boolean",
				"description": "Treat first row as column names",
				"default":     true,
			},
		},
		"required": []any{"file_path"},
	}
	type args struct {
		FilePath              string `json:"file_path"`
		FirstRowAsColumnNames bool   `json:"first_row_as_column_names"`
	}
	return toolkit.New("load_network_file", "Load a network from file (SIF, GraphML, XGMML, etc.)", schema,
		func(ctx context.Context, a args) (string, error) {
			suid, err := c.ImportNetworkFromFile(ctx, a.FilePath, a.FirstRowAsColumnNames)
			if err != nil {
				return "Failed to load network file: " + err.Error(), nil
			}
			return fmt.Sprintf("Loaded network from %s with SUID: %d", a.FilePath, suid), nil
		})
}

func newGetNetworkListTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []any{},
	}
	return toolkit.New("get_network_list", "Get list of all networks in current session", schema,
		func(ctx context.Context, _ struct{}) (string, error) {
			list, err := c.NetworkList(ctx)
			if err != nil {
				return "Failed to get network list: " + err.Error(), nil
			}
			names := make([]string, 0, len(list))
			for _, item := range list {
				names = append(names, item.Name)
			}
			return "Networks: " + marshalIndentText(names), nil
		})
}

func newGetNetworkInfoTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name, SUID, or current network if not specified",
			},
		},
		"required": []any{},
	}
	type args struct {
		Network *networkTarget `json:"network"`
	}
	return toolkit.New("get_network_info", "Get detailed information about a network", schema,
		func(ctx context.Context, a args) (string, error) {
			suid, err := c.NetworkSUID(ctx, a.Network.Network())
			if err != nil {
				return "Failed to get network info: " + err.Error(), nil
			}
			name, err := c.NetworkName(ctx, suid)
			if err != nil {
				return "Failed to get network info: " + err.Error(), nil
			}
			nodeCount, err := c.NodeCount(ctx, suid)
			if err != nil {
				return "Failed to get network info: " + err.Error(), nil
			}
			edgeCount, err := c.EdgeCount(ctx, suid)
			if err != nil {
				return "Failed to get network info: " + err.Error(), nil
			}
			viewSUID, err := c.NetworkViewSUID(ctx, suid)
			if err != nil {
				return "Failed to get network info: " + err.Error(), nil
			}
			info := map[string]any{
				"suid":       suid,
				"name":       name,
				"node_count": nodeCount,
				"edge_count": edgeCount,
				"view_suid":  viewSUID,
			}
			return "Network info: " + marshalIndentText(info), nil
		})
}

func newSelectNodesTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nodes": map[string]any{
				"type":        "array",
				"description": "List of node names or SUIDs to select",
				"items":       map[string]any{"type": []any{"string", "integer"}},
			},
			"by_col": map[string]any{
				"type":        "string",
				"description": "Column name to select by",
				"default":     "name",
			},
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name or SUID",
			},
		},
		"required": []any{"nodes"},
	}
	type args struct {
		Nodes   []nodeRef      `json:"nodes"`
		ByCol   string         `json:"by_col"`
		Network *networkTarget `json:"network"`
	}
	return toolkit.New("select_nodes", "Select nodes in the network", schema,
		func(ctx context.Context, a args) (string, error) {
			selected, err := c.SelectNodes(ctx, a.Network.Network(), nodeRefStrings(a.Nodes), a.ByCol)
			if err != nil {
				return "Failed to select nodes: " + err.Error(), nil
			}
			return fmt.Sprintf("Selected %d nodes: %s", len(selected), marshalText(selected)), nil
		})
}
