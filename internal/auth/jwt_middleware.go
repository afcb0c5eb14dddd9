// Package auth verifies identity provider session tokens and guards routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie the identity provider's frontend SDK keeps
// the short-lived session token in.
const SessionCookieName = "__session"

// ErrUnauthenticated is returned when a request carries no valid session.
var ErrUnauthenticated = errors.New("unauthenticated")

// Session is a verified identity provider session.
type Session struct {
	UserID    string // external user id
	SessionID string
	OrgID     string // external organization id, empty without an active organization
	OrgSlug   string
	OrgRole   string
	ExpiresAt time.Time
}

// HasOrganization returns true when the session has an active organization.
func (s *Session) HasOrganization() bool {
	return s.OrgID != ""
}

type contextKey int

const (
	sessionContextKey contextKey = iota
)

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// SessionFromContext extracts the verified session from the context.
// Returns nil if the request is unauthenticated.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionContextKey).(*Session)
	return s
}

// sessionClaims covers both session token versions: v1 carries flat org_*
// claims, v2 nests them under "o".
type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID       string `json:"sid"`
	AuthorizedParty string `json:"azp,omitempty"`
	OrgID           string `json:"org_id,omitempty"`
	OrgSlug         string `json:"org_slug,omitempty"`
	OrgRole         string `json:"org_role,omitempty"`
	Org             *struct {
		ID   string `json:"id"`
		Slug string `json:"slg"`
		Role string `json:"rol"`
	} `json:"o,omitempty"`
}

// Verifier validates RS256 session tokens against the identity provider's JWKS.
type Verifier struct {
	issuer            string
	authorizedParties []string
	keys              PublicKeyCache
}

// NewVerifier creates a session verifier. When authorizedParties is non-empty
// the azp claim must match one of them.
func NewVerifier(issuer string, keys PublicKeyCache, authorizedParties ...string) *Verifier {
	return &Verifier{
		issuer:            issuer,
		authorizedParties: authorizedParties,
		keys:              keys,
	}
}

// Verify validates a raw session token.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("missing kid")
		}
		return v.keys.GetKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !token.Valid {
		return nil, ErrUnauthenticated
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrUnauthenticated)
	}
	if len(v.authorizedParties) > 0 && claims.AuthorizedParty != "" &&
		!slices.Contains(v.authorizedParties, claims.AuthorizedParty) {
		return nil, fmt.Errorf("%w: unexpected authorized party %q", ErrUnauthenticated, claims.AuthorizedParty)
	}

	s := &Session{
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
		OrgID:     claims.OrgID,
		OrgSlug:   claims.OrgSlug,
		OrgRole:   claims.OrgRole,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.Org != nil && s.OrgID == "" {
		s.OrgID = claims.Org.ID
		s.OrgSlug = claims.Org.Slug
		s.OrgRole = claims.Org.Role
	}

	return s, nil
}

// VerifyRequest validates the session token carried by a request in the
// Authorization header or, for browsers, the session cookie.
func (v *Verifier) VerifyRequest(r *http.Request) (*Session, error) {
	tokenString := extractToken(r)
	if tokenString == "" {
		return nil, ErrUnauthenticated
	}
	return v.Verify(r.Context(), tokenString)
}

// extractToken prefers the Authorization header over the session cookie.
func extractToken(r *http.Request) string {
	if token := extractBearerToken(r); token != "" {
		return token
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// extractBearerToken extracts the JWT from the Authorization header.
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}
