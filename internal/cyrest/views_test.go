package cyrest

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLayout_ResolvesCurrentNetwork(t *testing.T) {
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Get("/v1/networks/currentNetwork", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, map[string]any{"data": map[string]any{"networkSUID": 52}})
		})
		r.Get("/v1/apply/layouts/grid/52", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, map[string]any{"message": "Layout finished."})
		})
	})
	raw, err := c.ApplyLayout(context.Background(), "grid", Network{})
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Layout finished.")
}

func TestApplyStyle_ByTitle(t *testing.T) {
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Get("/v1/networks.names", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, []any{map[string]any{"name": "galFiltered", "SUID": 52}})
		})
		r.Get("/v1/apply/styles/Minimal/52", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, map[string]any{"message": "Visual Style applied."})
		})
	})
	raw, err := c.ApplyStyle(context.Background(), "Minimal", NetworkByTitle("galFiltered"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Visual Style applied.")
}

func TestExportImage_OmitsNetworkForCurrentTarget(t *testing.T) {
	var body map[string]any
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Post("/v1/commands/view/export", func(w http.ResponseWriter, req *http.Request) {
			body = decodeBody(t, req)
			writeJSON(t, w, map[string]any{"data": map[string]any{"file": "/out/net.png"}, "errors": []any{}})
		})
	})
	_, err := c.ExportImage(context.Background(), "/out/net.png", "PNG", 300, Network{})
	require.NoError(t, err)
	assert.Equal(t, "/out/net.png", body["outputFile"])
	assert.Equal(t, "PNG", body["options"])
	assert.Equal(t, float64(300), body["Resolution"])
	_, hasNetwork := body["network"]
	assert.False(t, hasNetwork)
}

func TestExportImage_SendsResolvedNetwork(t *testing.T) {
	var body map[string]any
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Post("/v1/commands/view/export", func(w http.ResponseWriter, req *http.Request) {
			body = decodeBody(t, req)
			writeJSON(t, w, map[string]any{"data": map[string]any{}, "errors": []any{}})
		})
	})
	_, err := c.ExportImage(context.Background(), "/out/net.pdf", "PDF", 600, NetworkBySUID(52))
	require.NoError(t, err)
	assert.Equal(t, float64(52), body["network"])
}
