package cyrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ApplyLayout runs a layout algorithm on a network and returns the raw
// response. The zero target resolves to the current network.
func (c *Client) ApplyLayout(ctx context.Context, layoutName string, network Network) (json.RawMessage, error) {
	suid, err := c.NetworkSUID(ctx, network)
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/apply/layouts/%s/%d", url.PathEscape(layoutName), suid), nil, nil)
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(res.Raw), nil
}

// ApplyStyle applies a visual style to a network and returns the raw response.
func (c *Client) ApplyStyle(ctx context.Context, styleName string, network Network) (json.RawMessage, error) {
	suid, err := c.NetworkSUID(ctx, network)
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/apply/styles/%s/%d", url.PathEscape(styleName), suid), nil, nil)
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(res.Raw), nil
}

// ExportImage writes the network view to an image file on the Cytoscape host.
// The network key is omitted from the command when the target is zero.
func (c *Client) ExportImage(ctx context.Context, filename, imageType string, resolution int64, network Network) (json.RawMessage, error) {
	args := map[string]any{
		"outputFile": filename,
		"options":    imageType,
		"Resolution": resolution,
	}
	if err := c.networkArg(ctx, network, args); err != nil {
		return nil, err
	}
	data, err := c.command(ctx, "view", "export", args)
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(data.Raw), nil
}

func rawOrEmpty(raw string) json.RawMessage {
	if raw == "" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(raw)
}
