package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://clerk.naz.example"

type testKeys struct {
	key     *rsa.PrivateKey
	kid     string
	fetches int
	server  *httptest.Server
}

func newTestKeys(t *testing.T) *testKeys {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	k := &testKeys{key: key, kid: "ins_test"}
	k.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		k.fetches++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": k.kid,
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		})
	}))
	t.Cleanup(k.server.Close)
	return k
}

func (k *testKeys) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = k.kid
	s, err := token.SignedString(k.key)
	require.NoError(t, err)
	return s
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": testIssuer,
		"sub": "user_1",
		"sid": "sess_1",
		"azp": "https://naz.example",
		"iat": now.Unix(),
		"exp": now.Add(time.Minute).Unix(),
	}
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	keys := newTestKeys(t)
	v := NewVerifier(testIssuer, NewJWKSCache(keys.server.URL, nil), "https://naz.example")

	t.Run("valid v1 token", func(t *testing.T) {
		claims := validClaims()
		claims["org_id"] = "org_1"
		claims["org_slug"] = "acme"
		claims["org_role"] = "org:admin"

		s, err := v.Verify(ctx, keys.sign(t, claims))
		require.NoError(t, err)
		require.Equal(t, "user_1", s.UserID)
		require.Equal(t, "sess_1", s.SessionID)
		require.Equal(t, "org_1", s.OrgID)
		require.Equal(t, "acme", s.OrgSlug)
		require.Equal(t, "org:admin", s.OrgRole)
	})

	t.Run("valid v2 token", func(t *testing.T) {
		claims := validClaims()
		claims["v"] = 2
		claims["o"] = map[string]string{"id": "org_2", "slg": "beta", "rol": "member"}

		s, err := v.Verify(ctx, keys.sign(t, claims))
		require.NoError(t, err)
		require.Equal(t, "org_2", s.OrgID)
		require.Equal(t, "beta", s.OrgSlug)
		require.True(t, s.HasOrganization())
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		_, err := v.Verify(ctx, keys.sign(t, claims))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "https://evil.example"
		_, err := v.Verify(ctx, keys.sign(t, claims))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("wrong authorized party", func(t *testing.T) {
		claims := validClaims()
		claims["azp"] = "https://evil.example"
		_, err := v.Verify(ctx, keys.sign(t, claims))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("unknown signing key", func(t *testing.T) {
		other := newTestKeys(t)
		_, err := v.Verify(ctx, other.sign(t, validClaims()))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("hmac rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
		token.Header["kid"] = keys.kid
		s, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = v.Verify(ctx, s)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestJWKSCache(t *testing.T) {
	ctx := context.Background()
	keys := newTestKeys(t)
	cache := NewJWKSCache(keys.server.URL, nil)

	for range 3 {
		key, err := cache.GetKey(ctx, keys.kid)
		require.NoError(t, err)
		require.Equal(t, keys.key.N, key.N)
	}
	require.Equal(t, 1, keys.fetches)

	_, err := cache.GetKey(ctx, "ins_missing")
	require.Error(t, err)
}

func TestJWKSCache_UnknownKidRefetchInterval(t *testing.T) {
	ctx := context.Background()
	keys := newTestKeys(t)
	cache := NewJWKSCache(keys.server.URL, nil)
	now := time.Now()
	cache.now = func() time.Time { return now }

	_, err := cache.GetKey(ctx, keys.kid)
	require.NoError(t, err)
	require.Equal(t, 1, keys.fetches)

	for range 5 {
		_, err := cache.GetKey(ctx, "ins_unknown")
		require.Error(t, err)
	}
	require.Equal(t, 1, keys.fetches)

	// After the interval a rotated key is picked up.
	now = now.Add(jwksMinRefetch)
	keys.kid = "ins_rotated"
	key, err := cache.GetKey(ctx, "ins_rotated")
	require.NoError(t, err)
	require.Equal(t, keys.key.N, key.N)
	require.Equal(t, 2, keys.fetches)
}

func TestVerifyRequest(t *testing.T) {
	keys := newTestKeys(t)
	v := NewVerifier(testIssuer, NewJWKSCache(keys.server.URL, nil))
	token := keys.sign(t, validClaims())

	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/portal", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		s, err := v.VerifyRequest(r)
		require.NoError(t, err)
		require.Equal(t, "user_1", s.UserID)
	})

	t.Run("session cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/portal", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		s, err := v.VerifyRequest(r)
		require.NoError(t, err)
		require.Equal(t, "user_1", s.UserID)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/portal", nil)
		_, err := v.VerifyRequest(r)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestIsPublicPath(t *testing.T) {
	public := []string{"/", "/about", "/products", "/services", "/certifications", "/career", "/contact",
		"/staff/sign-in", "/img/logo.png", "/robots.txt", "/api/webhooks/clerk", "/api/vercel/analytics", "/health"}
	for _, p := range public {
		require.True(t, IsPublicPath(p), p)
	}

	protected := []string{"/portal", "/portal/products", "/dashboard", "/about/team", "/imgs"}
	for _, p := range protected {
		require.False(t, IsPublicPath(p), p)
	}
}

func TestRequireSignIn(t *testing.T) {
	keys := newTestKeys(t)
	v := NewVerifier(testIssuer, NewJWKSCache(keys.server.URL, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := SessionMiddleware(v)(RequireSignIn("/")(ok))

	t.Run("anonymous portal visit redirects home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portal", nil))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("public page served", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("signed in portal visit served", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/portal", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: keys.sign(t, validClaims())})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid session treated as anonymous", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/portal", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusFound, rec.Code)
	})
}

func TestSignInHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	SignInHandler("https://accounts.naz.example/sign-in", "https://naz.example/portal").
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/staff/sign-in", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://accounts.naz.example/sign-in?redirect_url=https%3A%2F%2Fnaz.example%2Fportal", rec.Header().Get("Location"))
}

func TestSessionInterceptor(t *testing.T) {
	interceptor := NewSessionInterceptor(func(procedure string) bool {
		return procedure == "/naz.v1.ProductService/List"
	})
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	})
	call := interceptor.WrapUnary(next)

	newRequest := func(procedure string) connect.AnyRequest {
		return &procedureRequest{Request: connect.NewRequest(&struct{}{}), procedure: procedure}
	}

	_, err := call(context.Background(), newRequest("/naz.v1.ProductService/List"))
	require.NoError(t, err)

	_, err = call(context.Background(), newRequest("/naz.v1.ProductService/Create"))
	require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	ctx := WithSession(context.Background(), &Session{UserID: "user_1"})
	_, err = call(ctx, newRequest("/naz.v1.ProductService/Create"))
	require.NoError(t, err)
}

type procedureRequest struct {
	*connect.Request[struct{}]
	procedure string
}

func (r *procedureRequest) Spec() connect.Spec {
	return connect.Spec{Procedure: r.procedure}
}
