package clerk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nazmedical/portal/internal/identity"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/user_1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"id": "user_1",
			"first_name": "Alice",
			"last_name": "Tan",
			"primary_email_address_id": "idn_2",
			"email_addresses": [
				{"id": "idn_1", "email_address": "old@x.com"},
				{"id": "idn_2", "email_address": "alice@x.com"}
			]
		}`))
	})
	mux.HandleFunc("GET /users/user_2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "user_2", "username": "bob"}`))
	})
	mux.HandleFunc("GET /organizations/org_1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "org_1", "name": "Acme Clinic", "slug": "acme"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Snapshot(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	c := NewClient(ctx, srv.URL, "sk_test")

	t.Run("user with organization", func(t *testing.T) {
		snap, err := c.Snapshot(ctx, "user_1", "org_1")
		require.NoError(t, err)
		require.Equal(t, identity.Snapshot{
			ExternalUserID:   "user_1",
			Email:            "alice@x.com",
			FullName:         "Alice Tan",
			ExternalOrgID:    "org_1",
			OrganizationName: "Acme Clinic",
			OrganizationSlug: "acme",
		}, snap)
	})

	t.Run("username fallback", func(t *testing.T) {
		snap, err := c.Snapshot(ctx, "user_2", "")
		require.NoError(t, err)
		require.Equal(t, "bob", snap.FullName)
		require.Empty(t, snap.Email)
		require.False(t, snap.HasOrganization())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.GetUser(ctx, "user_missing")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUser_FullName(t *testing.T) {
	require.Equal(t, identity.DefaultFullName, (&User{}).FullName())
}
