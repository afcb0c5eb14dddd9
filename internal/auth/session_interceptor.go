package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
)

// publicPages are the marketing pages reachable without signing in.
var publicPages = []string{
	"/",
	"/about",
	"/products",
	"/services",
	"/certifications",
	"/career",
	"/contact",
	"/staff/sign-in",
	"/robots.txt",
	"/health",
}

// publicPrefixes are path prefixes that bypass authentication entirely.
var publicPrefixes = []string{
	"/img/",
	"/api/webhooks/clerk",
	"/api/vercel/analytics",
	"/upload/",
}

// IsPublicPath reports whether a page or endpoint is reachable anonymously.
func IsPublicPath(path string) bool {
	for _, p := range publicPages {
		if path == p {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// SessionMiddleware attaches the verified session, when present, to the
// request context. It never rejects a request; enforcement is left to
// RequireSignIn and the RPC interceptor.
func SessionMiddleware(verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if extractToken(r) == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := verifier.VerifyRequest(r)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("Session auth: invalid session")
				next.ServeHTTP(w, r)
				return
			}

			log.Debug().
				Str("external_user_id", session.UserID).
				Str("external_org_id", session.OrgID).
				Msg("Session auth: authenticated")

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSignIn redirects anonymous visitors of non-public pages to the home
// page. It must run after SessionMiddleware.
func RequireSignIn(redirectTo string) func(http.Handler) http.Handler {
	if redirectTo == "" {
		redirectTo = "/"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicPath(r.URL.Path) || SessionFromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}

			log.Debug().Str("path", r.URL.Path).Msg("Redirecting anonymous visitor")
			http.Redirect(w, r, redirectTo, http.StatusFound)
		})
	}
}

// SignInHandler sends visitors to the identity provider's hosted sign-in page,
// returning them to the staff portal afterwards.
func SignInHandler(signInURL, afterSignInURL string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if signInURL == "" {
			http.Error(w, "sign-in is not configured", http.StatusServiceUnavailable)
			return
		}
		target := signInURL
		if afterSignInURL != "" {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + "redirect_url=" + url.QueryEscape(afterSignInURL)
		}
		http.Redirect(w, r, target, http.StatusFound)
	})
}

// NewSessionInterceptor rejects RPCs without a session unless isPublic
// reports the procedure as anonymously callable.
func NewSessionInterceptor(isPublic func(procedure string) bool) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			if SessionFromContext(ctx) == nil && !isPublic(procedure) {
				log.Debug().Str("procedure", procedure).Msg("Rejected anonymous call")
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("sign in required"))
			}
			return next(ctx, req)
		}
	}
}
