package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newIconRouter(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	f := newFixture(t)
	icons := NewIconProxy(srv.URL+"/img/wn/", srv.Client(), logging.Nop())
	h := NewHandler(f.users, f.profiles, f.trails, icons, logging.Nop())
	return NewRouter(h, RouterOptions{})
}

func TestIconProxy(t *testing.T) {
	var gotPath string
	router := newIconRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(pngBytes)
	})

	rec := do(t, router, http.MethodGet, "/api/proxy/icon/10d@2x.png", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/img/wn/10d@2x.png", gotPath)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "cross-origin", rec.Header().Get("Cross-Origin-Resource-Policy"))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestIconProxy_UpstreamFailure(t *testing.T) {
	router := newIconRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	rec := do(t, router, http.MethodGet, "/api/proxy/icon/missing.png", "", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Icon fetch failed", decode[errorResponse](t, rec).Error)
}

func TestIconProxy_RejectsTraversal(t *testing.T) {
	router := newIconRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("upstream must not be called, got %s", r.URL.Path)
	})

	rec := do(t, router, http.MethodGet, "/api/proxy/icon/..", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
