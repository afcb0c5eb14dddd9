package server

import (
	"net/http"

	"github.com/nazmedical/portal/internal/auth"
	"github.com/rs/zerolog"
)

// SyncOnPageLoad reconciles the signed-in user whenever a staff page is
// served. Unchanged identities are skipped by the tracker and failures never
// block the page. It must run after auth.SessionMiddleware.
func (s *Server) SyncOnPageLoad(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := auth.SessionFromContext(r.Context())
		if session != nil && s.snapshots != nil && r.Method == http.MethodGet && !auth.IsPublicPath(r.URL.Path) {
			s.observePageLoad(r, session)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) observePageLoad(r *http.Request, session *auth.Session) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snap, err := s.snapshots.Snapshot(ctx, session.UserID, session.OrgID)
	if err != nil {
		s.metrics.IdentitySyncErrorsTotal.Add(ctx, 1)
		logger.Warn().Err(err).Str("external_user_id", session.UserID).Msg("Failed to load identity snapshot")
		return
	}

	res, err := s.tracker.Observe(ctx, snap)
	switch {
	case err != nil:
		s.metrics.IdentitySyncErrorsTotal.Add(ctx, 1)
	case res == nil:
		s.metrics.IdentitySyncSkipped.Add(ctx, 1)
	default:
		s.metrics.IdentitySyncTotal.Add(ctx, 1)
	}
}
