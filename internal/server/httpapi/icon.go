package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
)

// IconProxy relays weather icons so browsers can load them cross-origin.
type IconProxy struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

func NewIconProxy(baseURL string, client *http.Client, logger logging.Logger) *IconProxy {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &IconProxy{baseURL: strings.TrimRight(baseURL, "/"), client: client, logger: logger}
}

func (p *IconProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	if file == "" || strings.Contains(file, "/") || strings.Contains(file, "..") {
		writeError(w, http.StatusBadRequest, "Invalid icon name")
		return
	}

	upstream := fmt.Sprintf("%s/%s", p.baseURL, url.PathEscape(file))
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn(r.Context(), "icon fetch failed", "file", file, "error", err)
		writeError(w, http.StatusBadGateway, "Icon fetch failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn(r.Context(), "icon upstream status", "file", file, "status", resp.StatusCode)
		writeError(w, http.StatusBadGateway, "Icon fetch failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, resp.Body); err != nil {
		p.logger.Warn(r.Context(), "icon copy failed", "file", file, "error", err)
	}
}
