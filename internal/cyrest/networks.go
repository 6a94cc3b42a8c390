package cyrest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Network identifies a target network by SUID or by title. The zero value
// means "the current network"; Cytoscape resolves it server-side.
type Network struct {
	SUID  int64
	Title string
}

// IsZero reports whether the target is the current network.
func (n Network) IsZero() bool { return n.SUID == 0 && n.Title == "" }

// NetworkBySUID targets a network by its SUID.
func NetworkBySUID(suid int64) Network { return Network{SUID: suid} }

// NetworkByTitle targets a network by its title.
func NetworkByTitle(title string) Network { return Network{Title: title} }

// NodeRow is one row of the node table for network creation.
type NodeRow struct {
	ID string `json:"id"`
}

// EdgeRow is one row of the edge table for network creation.
type EdgeRow struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Interaction string `json:"interaction"`
}

// NetworkSummary is one entry of the session's network list.
type NetworkSummary struct {
	Name string `json:"name"`
	SUID int64  `json:"SUID"`
}

type cyjsNode struct {
	Data map[string]any `json:"data"`
}

type cyjsEdge struct {
	Data map[string]any `json:"data"`
}

type cyjsNetwork struct {
	Data     map[string]any `json:"data"`
	Elements struct {
		Nodes []cyjsNode `json:"nodes"`
		Edges []cyjsEdge `json:"edges"`
	} `json:"elements"`
}

// CreateNetwork creates a network from row-oriented node and edge tables and
// returns the new network's SUID.
func (c *Client) CreateNetwork(ctx context.Context, nodes []NodeRow, edges []EdgeRow, title, collection string) (int64, error) {
	payload := cyjsNetwork{Data: map[string]any{"name": title}}
	payload.Elements.Nodes = make([]cyjsNode, 0, len(nodes))
	for _, n := range nodes {
		payload.Elements.Nodes = append(payload.Elements.Nodes, cyjsNode{
			Data: map[string]any{"id": n.ID, "name": n.ID},
		})
	}
	payload.Elements.Edges = make([]cyjsEdge, 0, len(edges))
	for _, e := range edges {
		payload.Elements.Edges = append(payload.Elements.Edges, cyjsEdge{
			Data: map[string]any{"source": e.Source, "target": e.Target, "interaction": e.Interaction},
		})
	}
	q := url.Values{}
	q.Set("title", title)
	q.Set("collection", collection)
	res, err := c.do(ctx, http.MethodPost, "/v1/networks", q, payload)
	if err != nil {
		return 0, err
	}
	return res.Get("networkSUID").Int(), nil
}

// ImportNetworkFromFile loads a network file (SIF, GraphML, XGMML, ...) from
// a path visible to the Cytoscape process. Returns the SUID of the first
// imported network, or 0 when the command reported none.
func (c *Client) ImportNetworkFromFile(ctx context.Context, path string, firstRowAsColumnNames bool) (int64, error) {
	data, err := c.command(ctx, "network", "load file", map[string]any{
		"file":                  path,
		"firstRowAsColumnNames": firstRowAsColumnNames,
	})
	if err != nil {
		return 0, err
	}
	return data.Get("networks.0").Int(), nil
}

// NetworkList lists name and SUID of every network in the session.
func (c *Client) NetworkList(ctx context.Context) ([]NetworkSummary, error) {
	res, err := c.do(ctx, http.MethodGet, "/v1/networks.names", nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]NetworkSummary, 0)
	for _, item := range res.Array() {
		out = append(out, NetworkSummary{
			Name: item.Get("name").String(),
			SUID: item.Get("SUID").Int(),
		})
	}
	return out, nil
}

// NetworkSUID resolves a network target to its SUID. The zero target resolves
// to the current network.
func (c *Client) NetworkSUID(ctx context.Context, n Network) (int64, error) {
	if n.SUID != 0 {
		return n.SUID, nil
	}
	if n.Title != "" {
		list, err := c.NetworkList(ctx)
		if err != nil {
			return 0, err
		}
		for _, item := range list {
			if item.Name == n.Title {
				return item.SUID, nil
			}
		}
		return 0, fmt.Errorf("network not found: %s", n.Title)
	}
	res, err := c.do(ctx, http.MethodGet, "/v1/networks/currentNetwork", nil, nil)
	if err != nil {
		return 0, err
	}
	return res.Get("data.networkSUID").Int(), nil
}

// NetworkName returns the title of the network with the given SUID.
func (c *Client) NetworkName(ctx context.Context, suid int64) (string, error) {
	list, err := c.NetworkList(ctx)
	if err != nil {
		return "", err
	}
	for _, item := range list {
		if item.SUID == suid {
			return item.Name, nil
		}
	}
	return "", fmt.Errorf("network not found: SUID %d", suid)
}

// NodeCount returns the number of nodes in a network.
func (c *Client) NodeCount(ctx context.Context, suid int64) (int64, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/networks/%d/nodes/count", suid), nil, nil)
	if err != nil {
		return 0, err
	}
	return res.Get("count").Int(), nil
}

// EdgeCount returns the number of edges in a network.
func (c *Client) EdgeCount(ctx context.Context, suid int64) (int64, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/networks/%d/edges/count", suid), nil, nil)
	if err != nil {
		return 0, err
	}
	return res.Get("count").Int(), nil
}

// NetworkViewSUID returns the SUID of the first view of a network, or 0 when
// the network has no view.
func (c *Client) NetworkViewSUID(ctx context.Context, suid int64) (int64, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/networks/%d/views", suid), nil, nil)
	if err != nil {
		return 0, err
	}
	views := res.Array()
	if len(views) == 0 {
		return 0, nil
	}
	return views[0].Int(), nil
}

// SelectNodes selects nodes matched by column value and returns the SUIDs of
// the selected nodes. The network key is omitted from the command entirely
// when the target is zero; the command then acts on the current network.
func (c *Client) SelectNodes(ctx context.Context, network Network, nodes []string, byCol string) ([]int64, error) {
	refs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		refs = append(refs, byCol+":"+node)
	}
	args := map[string]any{"nodeList": strings.Join(refs, ",")}
	if err := c.networkArg(ctx, network, args); err != nil {
		return nil, err
	}
	data, err := c.command(ctx, "network", "select", args)
	if err != nil {
		return nil, err
	}
	selected := make([]int64, 0)
	for _, item := range data.Get("nodes").Array() {
		selected = append(selected, item.Int())
	}
	return selected, nil
}

// networkArg resolves the target and stores it under the "network" key, or
// leaves the map untouched for a zero target. Presence and absence are
// significant to Cytoscape, so a zero target must not become a null value.
func (c *Client) networkArg(ctx context.Context, n Network, args map[string]any) error {
	if n.IsZero() {
		return nil
	}
	suid, err := c.NetworkSUID(ctx, n)
	if err != nil {
		return err
	}
	args["network"] = suid
	return nil
}
