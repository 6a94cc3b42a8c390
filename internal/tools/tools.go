// Package tools defines the Cytoscape tool catalog: fifteen adapters that
// translate tool arguments into CyREST client calls and format each outcome as
// one text message. Adapters hold no state and never retry; a downstream
// failure is reported in the message text, never propagated.
package tools

import (
	"bytes"
	"context"
	"encoding/json"

	"cytoscape-mcp/internal/cyrest"
	"cytoscape-mcp/internal/toolkit"
)

// NewRegistry builds the registry with every Cytoscape tool registered.
func NewRegistry(c *cyrest.Client) (*toolkit.Registry, error) {
	builders := []func(*cyrest.Client) (toolkit.Tool, error){
		newPingTool,
		newCreateNetworkTool,
		newLoadNetworkFileTool,
		newGetNetworkListTool,
		newGetNetworkInfoTool,
		newSelectNodesTool,
		newApplyLayoutTool,
		newSetVisualStyleTool,
		newExportImageTool,
		newRunAppCommandTool,
		newLoadStringNetworkTool,
		newImportNetworkFromNDExTool,
		newExportNetworkToNDExTool,
		newGetNetworkNDExIDTool,
		newUpdateNetworkInNDExTool,
	}
	reg := toolkit.NewRegistry()
	for _, build := range builders {
		t, err := build(c)
		if err != nil {
			return nil, err
		}
		reg.Register(t)
	}
	return reg, nil
}

func newPingTool(c *cyrest.Client) (toolkit.Tool, error) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []any{},
	}
	return toolkit.New("cytoscape_ping", "Check if Cytoscape is running and accessible", schema,
		func(ctx context.Context, _ struct{}) (string, error) {
			info, err := c.Version(ctx)
			if err != nil {
				return "Cytoscape not accessible: " + err.Error(), nil
			}
			return "Cytoscape is running. Version info: " + indentJSON(info), nil
		})
}

// networkTarget accepts a network title or SUID from the wire, mirroring the
// catalog's ["string", "integer"] union type.
type networkTarget struct {
	net cyrest.Network
}

func (n *networkTarget) UnmarshalJSON(b []byte) error {
	var suid int64
	if err := json.Unmarshal(b, &suid); err == nil {
		n.net = cyrest.NetworkBySUID(suid)
		return nil
	}
	var title string
	if err := json.Unmarshal(b, &title); err != nil {
		return err
	}
	n.net = cyrest.NetworkByTitle(title)
	return nil
}

// Network returns the target, or the zero target (current network) for a nil
// receiver; the callers' pointer fields stay nil when the argument is omitted.
func (n *networkTarget) Network() cyrest.Network {
	if n == nil {
		return cyrest.Network{}
	}
	return n.net
}

// nodeRef accepts a node name or SUID and carries it as a string.
type nodeRef string

func (n *nodeRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = nodeRef(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = nodeRef(num.String())
	return nil
}

func nodeRefStrings(refs []nodeRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = string(r)
	}
	return out
}

// indentJSON pretty-prints a raw JSON payload for inclusion in result text.
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// marshalText renders a Go value as JSON for inclusion in result text.
func marshalText(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

// marshalIndentText renders a Go value as indented JSON for result text.
func marshalIndentText(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(data)
}
