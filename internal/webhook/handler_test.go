package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/store/memory"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func testSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString(testKey)
}

func signedRequest(t *testing.T, body string, ts time.Time) *http.Request {
	t.Helper()
	id := "msg_2abc"
	stamp := strconv.FormatInt(ts.Unix(), 10)

	mac := hmac.New(sha256.New, testKey)
	mac.Write([]byte(id + "." + stamp + "." + body))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	r := httptest.NewRequest(http.MethodPost, "/api/webhooks/clerk", strings.NewReader(body))
	r.Header.Set(headerID, id)
	r.Header.Set(headerTimestamp, stamp)
	r.Header.Set(headerSignature, "v1,bm90LXRoaXMtb25l v1,"+sig)
	return r
}

func TestVerifier(t *testing.T) {
	v, err := NewVerifier(testSecret())
	require.NoError(t, err)

	body := `{"type":"user.created"}`

	t.Run("valid", func(t *testing.T) {
		r := signedRequest(t, body, time.Now())
		require.NoError(t, v.Verify(r.Header, []byte(body)))
	})

	t.Run("tampered body", func(t *testing.T) {
		r := signedRequest(t, body, time.Now())
		require.ErrorIs(t, v.Verify(r.Header, []byte(`{"type":"user.deleted"}`)), ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		r := signedRequest(t, body, time.Now().Add(-10*time.Minute))
		require.ErrorIs(t, v.Verify(r.Header, []byte(body)), ErrInvalidTimestamp)
	})

	t.Run("missing headers", func(t *testing.T) {
		require.ErrorIs(t, v.Verify(http.Header{}, []byte(body)), ErrMissingHeaders)
	})

	t.Run("bad secret", func(t *testing.T) {
		_, err := NewVerifier("whsec_***")
		require.Error(t, err)
	})
}

type fixture struct {
	handler *Handler
	stores  store.Stores
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	v, err := NewVerifier(testSecret())
	require.NoError(t, err)

	stores := memory.NewStores()
	tenants := tenant.NewProvisioner(stores.Organizations)
	reconciler := identity.NewReconciler(stores.Organizations, stores.Users, tenants)

	return &fixture{
		handler: NewHandler(v, reconciler, stores, identity.NewTracker(reconciler)),
		stores:  stores,
	}
}

func (f *fixture) deliver(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, signedRequest(t, body, time.Now()))
	return w
}

func TestHandlerOrganizationThenMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.deliver(t, `{"type":"organization.created","data":{"id":"org_1","name":"Acme Clinic","slug":"acme","created_by":"user_1"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	org, err := f.stores.Organizations.GetByExternalID(ctx, "org_1")
	require.NoError(t, err)
	require.Equal(t, "Acme Clinic", org.Name)
	require.Equal(t, "acme", org.Slug)

	w = f.deliver(t, `{"type":"organizationMembership.created","data":{
		"organization":{"id":"org_1","name":"Acme Clinic","slug":"acme"},
		"public_user_data":{"user_id":"user_1","first_name":"Alice","last_name":"Smith","identifier":"a@x.com"}}}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := f.stores.Users.GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, org.ID, *user.OrganizationID)
	require.Equal(t, "Alice Smith", *user.FullName)
	require.Equal(t, "a@x.com", *user.Email)

	// A later user event keeps the organization link.
	w = f.deliver(t, `{"type":"user.updated","data":{"id":"user_1","first_name":"Alicia","last_name":"Smith",
		"primary_email_address_id":"idn_1","email_addresses":[{"id":"idn_1","email_address":"alicia@x.com"}]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err = f.stores.Users.GetByExternalID(ctx, "user_1")
	require.NoError(t, err)
	require.Equal(t, org.ID, *user.OrganizationID)
	require.Equal(t, "Alicia Smith", *user.FullName)
	require.Equal(t, "alicia@x.com", *user.Email)
}

func TestHandlerUserWithoutOrganization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.deliver(t, `{"type":"user.created","data":{"id":"user_2","username":"bob"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	user, err := f.stores.Users.GetByExternalID(ctx, "user_2")
	require.NoError(t, err)
	require.Equal(t, "bob", *user.FullName)

	def, err := f.stores.Organizations.GetBySlug(ctx, tenant.DefaultOrganizationSlug)
	require.NoError(t, err)
	require.Equal(t, def.ID, *user.OrganizationID)
}

func TestHandlerRejectsAndIgnores(t *testing.T) {
	f := newFixture(t)

	r := signedRequest(t, `{"type":"user.created","data":{"id":"user_3"}}`, time.Now())
	r.Header.Set(headerSignature, "v1,AAAA")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.deliver(t, `{"type":"session.created","data":{"id":"sess_1"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.deliver(t, `{"type":"organization.created","data":{"id":"","name":"Nameless"}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "external organization id is required")

	w = httptest.NewRecorder()
	f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/webhooks/clerk", nil))
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandlerHidesInternalErrors(t *testing.T) {
	f := newFixture(t)
	_, err := tenant.NewProvisioner(f.stores.Organizations).EnsureDefaultOrganization(context.Background())
	require.NoError(t, err)

	// The slug collides with the default organization.
	w := f.deliver(t, `{"type":"organization.created","data":{"id":"org_dup","name":"Duplicate","slug":"naz-medical"}}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "failed to process event", strings.TrimSpace(w.Body.String()))
	require.NotContains(t, w.Body.String(), store.ErrOrganizationAlreadyExists.Error())
}
