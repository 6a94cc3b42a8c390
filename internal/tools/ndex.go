package tools

import (
	"context"
	"fmt"

	"cytoscape-mcp/internal/cyrest"
	"cytoscape-mcp/internal/toolkit"
)

func ndexURLProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "NDEx website URL",
		"default":     "http://ndexbio.org",
	}
}

func newImportNetworkFromNDExTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ndex_id": map[string]any{
				"type":        "string",
				"description": "Network external ID provided by NDEx (not Cytoscape SUID)",
			},
			"username": map[string]any{
				"type":        "string",
				"description": "NDEx account username (required for private content)",
			},
			"password": map[string]any{
				"type":        "string",
				"description": "NDEx account password (required for private content)",
			},
			"access_key": map[string]any{
				"type":        "string",
				"description": "NDEx access key (alternative to username/password)",
			},
			"ndex_url": ndexURLProperty(),
		},
		"required": []any{"ndex_id"},
	}
	type args struct {
		NdexID    string `json:"ndex_id"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		AccessKey string `json:"access_key"`
		NdexURL   string `json:"ndex_url"`
	}
	return toolkit.New("import_network_from_ndex", "Import a network from the NDEx database into Cytoscape", schema,
		func(ctx context.Context, a args) (string, error) {
			suid, err := c.ImportFromNDEx(ctx, a.NdexID, ndexAuth(a.Username, a.Password, a.AccessKey), a.NdexURL)
			if err != nil {
				return "Failed to import from NDEx: " + err.Error(), nil
			}
			return fmt.Sprintf("Imported network from NDEx ID '%s' with SUID: %d", a.NdexID, suid), nil
		})
}

// ndexSaveArgs is shared by the export and update tools, which take the same
// arguments.
type ndexSaveArgs struct {
	Username string         `json:"username"`
	Password string         `json:"password"`
	IsPublic bool           `json:"is_public"`
	Network  *networkTarget `json:"network"`
	Metadata map[string]any `json:"metadata"`
	NdexURL  string         `json:"ndex_url"`
}

func newExportNetworkToNDExTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := ndexSaveSchema("Network metadata (name, description, version, etc.)")
	return toolkit.New("export_network_to_ndex", "Export current network to NDEx database", schema,
		func(ctx context.Context, a ndexSaveArgs) (string, error) {
			auth := cyrest.NDExAuth{Username: a.Username, Password: a.Password}
			uuid, err := c.ExportToNDEx(ctx, a.Network.Network(), auth, a.IsPublic, a.Metadata, a.NdexURL)
			if err != nil {
				return "Failed to export to NDEx: " + err.Error(), nil
			}
			return "Exported network to NDEx with ID: " + uuid, nil
		})
}

func newGetNetworkNDExIDTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name or SUID (current network if not specified)",
			},
		},
		"required": []any{},
	}
	type args struct {
		Network *networkTarget `json:"network"`
	}
	return toolkit.New("get_network_ndex_id", "Get the NDEx external ID for a Cytoscape network", schema,
		func(ctx context.Context, a args) (string, error) {
			id, err := c.NDExID(ctx, a.Network.Network())
			if err != nil {
				return "Failed to get NDEx ID: " + err.Error(), nil
			}
			if id == "" {
				return "Network is not associated with any NDEx entry", nil
			}
			return "Network NDEx ID: " + id, nil
		})
}

func newUpdateNetworkInNDExTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := ndexSaveSchema("Updated network metadata")
	return toolkit.New("update_network_in_ndex", "Update an existing network in NDEx", schema,
		func(ctx context.Context, a ndexSaveArgs) (string, error) {
			auth := cyrest.NDExAuth{Username: a.Username, Password: a.Password}
			raw, err := c.UpdateInNDEx(ctx, a.Network.Network(), auth, a.IsPublic, a.Metadata, a.NdexURL)
			if err != nil {
				return "Failed to update network in NDEx: " + err.Error(), nil
			}
			return "Updated network in NDEx: " + indentJSON(raw), nil
		})
}

func ndexSaveSchema(metadataDescription string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"username": map[string]any{
				"type":        "string",
				"description": "NDEx account username",
			},
			"password": map[string]any{
				"type":        "string",
				"description": "NDEx account password",
			},
			"is_public": map[string]any{
				"type":        "boolean",
				"description": "Whether to make the network publicly accessible",
				"default":     false,
			},
			"network": map[string]any{
				"type":        []any{"string", "integer"},
				"description": "Network name or SUID (current network if not specified)",
			},
			"metadata": map[string]any{
				"type":        "object",
				"description": metadataDescription,
				"properties": map[string]any{
					"name":        map[string]any{"type": "string", "description": "Network name"},
					"description": map[string]any{"type": "string", "description": "Network description"},
					"version":     map[string]any{"type": "string", "description": "Network version"},
					"author":      map[string]any{"type": "string", "description": "Author name"},
				},
			},
			"ndex_url": ndexURLProperty(),
		},
		"required": []any{"username", "password"},
	}
}

// ndexAuth prefers the username/password pair; the access key is only used
// when no pair is given.
func ndexAuth(username, password, accessKey string) cyrest.NDExAuth {
	if username != "" && password != "" {
		return cyrest.NDExAuth{Username: username, Password: password}
	}
	return cyrest.NDExAuth{AccessKey: accessKey}
}
