package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBearerClient(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := NewBearerClient(context.Background(), Config{Token: "sk_test_123"})
	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "Bearer sk_test_123", got)
	require.Equal(t, DefaultTimeout, c.Timeout)
}

func TestCachingHTTPClient(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Cache-Control", "max-age=3600")
		_, _ = w.Write([]byte(`{"keys":[]}`))
	}))
	defer srv.Close()

	c := NewInMemoryCachingHTTPClient()
	for range 2 {
		resp, err := c.Get(srv.URL)
		require.NoError(t, err)
		_, err = io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Equal(t, 1, hits)
}
