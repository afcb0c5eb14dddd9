package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"github.com/go-playground/validator/v10"
	"github.com/nazmedical/portal/api/gen/proto/go/naz/v1/nazv1connect"
	"github.com/nazmedical/portal/internal/auth"
	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/logger"
	"github.com/nazmedical/portal/internal/store"
	"github.com/nazmedical/portal/internal/telemetry"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/rs/zerolog"
)

// SnapshotSource looks up the identity provider's view of a signed-in user.
type SnapshotSource interface {
	Snapshot(ctx context.Context, externalUserID, externalOrgID string) (identity.Snapshot, error)
}

// Config holds the collaborators of the RPC services.
type Config struct {
	Stores     store.Stores
	Tenants    *tenant.Provisioner
	Reconciler *identity.Reconciler
	Tracker    *identity.Tracker
	Snapshots  SnapshotSource // optional, IdentityService.Sync is unavailable without it
	Uploads    *blob.Uploads
	Tracing    bool
}

// Server implements the portal's RPC services.
type Server struct {
	stores     store.Stores
	tenants    *tenant.Provisioner
	reconciler *identity.Reconciler
	tracker    *identity.Tracker
	snapshots  SnapshotSource
	uploads    *blob.Uploads
	blobs      blob.Store
	validate   *validator.Validate
	metrics    *telemetry.Metrics
	tracing    bool
	now        func() time.Time
}

// NewServer creates the RPC services.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Tenants == nil || cfg.Reconciler == nil || cfg.Uploads == nil {
		return nil, errors.New("tenants, reconciler and uploads are required")
	}
	tracker := cfg.Tracker
	if tracker == nil {
		tracker = identity.NewTracker(cfg.Reconciler)
	}
	return &Server{
		stores:     cfg.Stores,
		tenants:    cfg.Tenants,
		reconciler: cfg.Reconciler,
		tracker:    tracker,
		snapshots:  cfg.Snapshots,
		uploads:    cfg.Uploads,
		blobs:      cfg.Uploads.Store(),
		validate:   newValidator(),
		metrics:    telemetry.GetMetrics(),
		tracing:    cfg.Tracing,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// publicProcedures are callable without a session.
var publicProcedures = map[string]bool{
	nazv1connect.ProductServiceListProcedure:       true,
	nazv1connect.ProductServiceGetProcedure:        true,
	nazv1connect.CareerServiceListProcedure:        true,
	nazv1connect.CareerServiceGetProcedure:         true,
	nazv1connect.CertificationServiceListProcedure: true,
	nazv1connect.CertificationServiceGetProcedure:  true,
	nazv1connect.HomeBannerServiceListProcedure:    true,
}

// ServiceNames lists every RPC service mounted by Server.Handler.
var ServiceNames = []string{
	nazv1connect.OrganizationServiceName,
	nazv1connect.UserServiceName,
	nazv1connect.ProductServiceName,
	nazv1connect.CareerServiceName,
	nazv1connect.CertificationServiceName,
	nazv1connect.HomeBannerServiceName,
	nazv1connect.ActivityLogServiceName,
	nazv1connect.IdentityServiceName,
}

// Handler returns the HTTP handler serving every RPC procedure. Requests
// must pass through auth.SessionMiddleware first so the session is in context.
func (s *Server) Handler(log zerolog.Logger) (http.Handler, error) {
	interceptors := []connect.Interceptor{}
	if s.tracing {
		otelInterceptor, err := otelconnect.NewInterceptor()
		if err != nil {
			return nil, err
		}
		interceptors = append(interceptors, otelInterceptor)
	}
	interceptors = append(interceptors,
		logger.NewConnectRequests(log),
		auth.NewSessionInterceptor(func(procedure string) bool { return publicProcedures[procedure] }),
	)
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(nazv1connect.NewOrganizationServiceHandler(&OrganizationServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewUserServiceHandler(&UserServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewProductServiceHandler(&ProductServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewCareerServiceHandler(&CareerServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewCertificationServiceHandler(&CertificationServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewHomeBannerServiceHandler(&HomeBannerServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewActivityLogServiceHandler(&ActivityLogServiceServer{s}, opts))
	mux.Handle(nazv1connect.NewIdentityServiceHandler(&IdentityServiceServer{s}, opts))

	return mux, nil
}

// generateUploadURL is shared by every service that accepts attachments.
func (s *Server) generateUploadURL(ctx context.Context) (string, error) {
	u, err := s.uploads.GenerateUploadURL(ctx)
	if err != nil {
		return "", toConnectError(err)
	}
	s.metrics.UploadsTotal.Add(ctx, 1)
	return u, nil
}

// deleteBlob removes an attachment. Content records are deleted or patched
// only after their blob is gone.
func (s *Server) deleteBlob(ctx context.Context, storageID *string) error {
	if storageID == nil || *storageID == "" {
		return nil
	}
	if err := s.blobs.Delete(ctx, *storageID); err != nil {
		s.metrics.BlobDeleteErrors.Add(ctx, 1)
		return err
	}
	s.metrics.BlobDeletesTotal.Add(ctx, 1)
	return nil
}

func (s *Server) attachmentURL(ctx context.Context, storageID *string) string {
	u, err := blob.URLOrEmpty(ctx, s.blobs, storageID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("storage_id", *storageID).Msg("Failed to resolve attachment URL")
		return ""
	}
	return u
}
