package cyrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// NDExAuth carries credentials for NDEx calls. Populate either the
// username/password pair or the access key; empty fields are left out of the
// request entirely.
type NDExAuth struct {
	Username  string
	Password  string
	AccessKey string
}

type ndexImportRequest struct {
	ServerURL string `json:"serverUrl"`
	UUID      string `json:"uuid"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	AccessKey string `json:"accessKey,omitempty"`
}

type ndexSaveRequest struct {
	ServerURL string         `json:"serverUrl"`
	Username  string         `json:"username"`
	Password  string         `json:"password"`
	IsPublic  bool           `json:"isPublic"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ImportFromNDEx imports a network from NDEx into the session via the cyndex2
// app and returns the new network's SUID.
func (c *Client) ImportFromNDEx(ctx context.Context, ndexID string, auth NDExAuth, serverURL string) (int64, error) {
	body := ndexImportRequest{
		ServerURL: ndexAPIURL(serverURL),
		UUID:      ndexID,
		Username:  auth.Username,
		Password:  auth.Password,
		AccessKey: auth.AccessKey,
	}
	res, err := c.do(ctx, http.MethodPost, "/cyndex2/v1/networks", nil, body)
	if err != nil {
		return 0, err
	}
	return res.Get("data.suid").Int(), nil
}

// ExportToNDEx saves a network to NDEx and returns the NDEx UUID assigned to
// it. The zero target resolves to the current network.
func (c *Client) ExportToNDEx(ctx context.Context, network Network, auth NDExAuth, isPublic bool, metadata map[string]any, serverURL string) (string, error) {
	suid, err := c.NetworkSUID(ctx, network)
	if err != nil {
		return "", err
	}
	body := ndexSaveRequest{
		ServerURL: ndexAPIURL(serverURL),
		Username:  auth.Username,
		Password:  auth.Password,
		IsPublic:  isPublic,
		Metadata:  metadata,
	}
	res, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/cyndex2/v1/networks/%d", suid), nil, body)
	if err != nil {
		return "", err
	}
	return res.Get("data.uuid").String(), nil
}

// UpdateInNDEx overwrites the NDEx entry already associated with a network and
// returns the raw result payload.
func (c *Client) UpdateInNDEx(ctx context.Context, network Network, auth NDExAuth, isPublic bool, metadata map[string]any, serverURL string) (json.RawMessage, error) {
	suid, err := c.NetworkSUID(ctx, network)
	if err != nil {
		return nil, err
	}
	body := ndexSaveRequest{
		ServerURL: ndexAPIURL(serverURL),
		Username:  auth.Username,
		Password:  auth.Password,
		IsPublic:  isPublic,
		Metadata:  metadata,
	}
	res, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cyndex2/v1/networks/%d", suid), nil, body)
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(res.Get("data").Raw), nil
}

// NDExID returns the NDEx UUID associated with a network, or "" when the
// network has never been saved to NDEx.
func (c *Client) NDExID(ctx context.Context, network Network) (string, error) {
	suid, err := c.NetworkSUID(ctx, network)
	if err != nil {
		return "", err
	}
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cyndex2/v1/networks/%d", suid), nil, nil)
	if err != nil {
		return "", err
	}
	return res.Get("data.uuid").String(), nil
}

// ndexAPIURL turns the NDEx site URL into its v2 API base.
func ndexAPIURL(serverURL string) string {
	if serverURL == "" {
		serverURL = "http://ndexbio.org"
	}
	return serverURL + "/v2"
}
