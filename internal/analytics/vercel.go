// Package analytics proxies visitor counts from Vercel Web Analytics.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nazmedical/portal/internal/client"
	"github.com/rs/zerolog/log"
)

// DefaultAPIURL is the Vercel REST API base URL.
const DefaultAPIURL = "https://api.vercel.com"

const defaultPeriod = "7d"

// Config holds the Vercel project the portal reports on.
type Config struct {
	APIURL    string
	Token     string
	ProjectID string
	TeamID    string
}

// Handler serves GET /api/vercel/analytics?period=7d as {"visitors": n}.
type Handler struct {
	cfg        Config
	httpClient *http.Client
}

// NewHandler creates the proxy. A handler without token or project id
// answers every request with a configuration error.
func NewHandler(ctx context.Context, cfg Config) *Handler {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &Handler{
		cfg:        cfg,
		httpClient: client.NewBearerClient(ctx, client.Config{BaseURL: cfg.APIURL, Token: cfg.Token}),
	}
}

type summary struct {
	TotalVisitors *int64 `json:"totalVisitors"`
	Visitors      *int64 `json:"visitors"`
	Pageviews     *int64 `json:"pageviews"`
}

func (s summary) count() int64 {
	for _, v := range []*int64{s.TotalVisitors, s.Visitors, s.Pageviews} {
		if v != nil {
			return *v
		}
	}
	return 0
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.cfg.Token == "" || h.cfg.ProjectID == "" {
		writeError(w, http.StatusInternalServerError, "Vercel analytics env vars are missing.")
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = defaultPeriod
	}

	q := url.Values{}
	q.Set("projectId", h.cfg.ProjectID)
	q.Set("period", period)
	if h.cfg.TeamID != "" {
		q.Set("teamId", h.cfg.TeamID)
	}
	endpoint := h.cfg.APIURL + "/v6/analytics/summary?" + q.Encode()

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch Vercel analytics")
		writeError(w, http.StatusInternalServerError, "Failed to fetch Vercel analytics")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().Int("status", resp.StatusCode).Str("body", string(text)).Msg("Vercel analytics API error")
		writeError(w, resp.StatusCode, fmt.Sprintf("Vercel analytics error: %d %s", resp.StatusCode, strings.TrimSpace(string(text))))
		return
	}

	var s summary
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("invalid analytics response: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"visitors": s.count()})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
