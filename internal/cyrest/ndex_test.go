package cyrest

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFromNDEx_UsernamePassword(t *testing.T) {
	var gotBody map[string]any
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Post("/cyndex2/v1/networks", func(w http.ResponseWriter, req *http.Request) {
			gotBody = decodeBody(t, req)
			writeJSON(t, w, map[string]any{"data": map[string]any{"suid": 12347}})
		})
	})

	suid, err := c.ImportFromNDEx(context.Background(), "uuid-abc",
		NDExAuth{Username: "alice", Password: "secret"}, "http://ndexbio.org")
	require.NoError(t, err)
	assert.Equal(t, int64(12347), suid)
	assert.Equal(t, "uuid-abc", gotBody["uuid"])
	assert.Equal(t, "http://ndexbio.org/v2", gotBody["serverUrl"])
	assert.Equal(t, "alice", gotBody["username"])
	assert.Equal(t, "secret", gotBody["password"])
	_, hasKey := gotBody["accessKey"]
	assert.False(t, hasKey, "empty access key must be omitted")
}

func TestImportFromNDEx_AccessKey(t *testing.T) {
	var gotBody map[string]any
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Post("/cyndex2/v1/networks", func(w http.ResponseWriter, req *http.Request) {
			gotBody = decodeBody(t, req)
			writeJSON(t, w, map[string]any{"data": map[string]any{"suid": 1}})
		})
	})

	_, err := c.ImportFromNDEx(context.Background(), "uuid-abc",
		NDExAuth{AccessKey: "k-123"}, "")
	require.NoError(t, err)
	assert.Equal(t, "k-123", gotBody["accessKey"])
	_, hasUser := gotBody["username"]
	assert.False(t, hasUser, "empty username must be omitted")
}

func TestExportToNDEx(t *testing.T) {
	var gotBody map[string]any
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Post("/cyndex2/v1/networks/52", func(w http.ResponseWriter, req *http.Request) {
			gotBody = decodeBody(t, req)
			writeJSON(t, w, map[string]any{"data": map[string]any{"uuid": "ndex-uuid-123"}})
		})
	})

	uuid, err := c.ExportToNDEx(context.Background(), NetworkBySUID(52),
		NDExAuth{Username: "alice", Password: "secret"}, false,
		map[string]any{"name": "My Net", "version": "1.0"}, "http://ndexbio.org")
	require.NoError(t, err)
	assert.Equal(t, "ndex-uuid-123", uuid)
	assert.Equal(t, false, gotBody["isPublic"])
	meta := gotBody["metadata"].(map[string]any)
	assert.Equal(t, "My Net", meta["name"])
}

func TestExportToNDEx_NoMetadataKeyWhenNil(t *testing.T) {
	var gotBody map[string]any
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Post("/cyndex2/v1/networks/52", func(w http.ResponseWriter, req *http.Request) {
			gotBody = decodeBody(t, req)
			writeJSON(t, w, map[string]any{"data": map[string]any{"uuid": "u"}})
		})
	})

	_, err := c.ExportToNDEx(context.Background(), NetworkBySUID(52),
		NDExAuth{Username: "a", Password: "b"}, true, nil, "")
	require.NoError(t, err)
	_, hasMeta := gotBody["metadata"]
	assert.False(t, hasMeta)
	assert.Equal(t, true, gotBody["isPublic"])
}

func TestUpdateInNDEx(t *testing.T) {
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Put("/cyndex2/v1/networks/52", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, map[string]any{"data": map[string]any{"uuid": "ndex-uuid-123", "revision": 2}})
		})
	})

	out, err := c.UpdateInNDEx(context.Background(), NetworkBySUID(52),
		NDExAuth{Username: "a", Password: "b"}, false, nil, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "revision")
}

func TestNDExID(t *testing.T) {
	c := newFakeCyREST(t, func(r chi.Router) {
		r.Get("/cyndex2/v1/networks/{suid}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "suid") == "52" {
				writeJSON(t, w, map[string]any{"data": map[string]any{"uuid": "ndex-uuid-456"}})
				return
			}
			writeJSON(t, w, map[string]any{"data": map[string]any{}})
		})
	})

	id, err := c.NDExID(context.Background(), NetworkBySUID(52))
	require.NoError(t, err)
	assert.Equal(t, "ndex-uuid-456", id)

	id, err = c.NDExID(context.Background(), NetworkBySUID(53))
	require.NoError(t, err)
	assert.Empty(t, id)
}
