package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v6/analytics/summary", r.URL.Path)
		require.Equal(t, "Bearer vercel-token", r.Header.Get("Authorization"))
		require.Equal(t, "prj_1", r.URL.Query().Get("projectId"))
		require.Equal(t, "team_1", r.URL.Query().Get("teamId"))
		require.Equal(t, "30d", r.URL.Query().Get("period"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler(t *testing.T) {
	cfg := Config{Token: "vercel-token", ProjectID: "prj_1", TeamID: "team_1"}

	t.Run("visitors", func(t *testing.T) {
		upstream := newUpstream(t, http.StatusOK, `{"visitors": 42, "pageviews": 100}`)
		cfg := cfg
		cfg.APIURL = upstream.URL

		w := serve(NewHandler(context.Background(), cfg), "/api/vercel/analytics?period=30d")
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]int64
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		require.Equal(t, int64(42), got["visitors"])
	})

	t.Run("upstream error", func(t *testing.T) {
		upstream := newUpstream(t, http.StatusNotFound, `not found`)
		cfg := cfg
		cfg.APIURL = upstream.URL

		w := serve(NewHandler(context.Background(), cfg), "/api/vercel/analytics?period=30d")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Contains(t, w.Body.String(), "Vercel analytics error: 404")
	})

	t.Run("missing configuration", func(t *testing.T) {
		w := serve(NewHandler(context.Background(), Config{}), "/api/vercel/analytics")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "env vars are missing")
	})
}

func TestSummaryCount(t *testing.T) {
	n := func(v int64) *int64 { return &v }
	require.Equal(t, int64(7), summary{TotalVisitors: n(7), Visitors: n(3)}.count())
	require.Equal(t, int64(9), summary{Pageviews: n(9)}.count())
	require.Equal(t, int64(0), summary{}.count())
}
