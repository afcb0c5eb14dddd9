package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	connectcors "connectrpc.com/cors"
	"filippo.io/csrf"
	"github.com/nazmedical/portal/internal/analytics"
	"github.com/nazmedical/portal/internal/auth"
	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/client"
	httpmiddleware "github.com/nazmedical/portal/internal/http"
	"github.com/nazmedical/portal/internal/identity"
	"github.com/nazmedical/portal/internal/identity/clerk"
	"github.com/nazmedical/portal/internal/logger"
	"github.com/nazmedical/portal/internal/server"
	"github.com/nazmedical/portal/internal/telemetry"
	"github.com/nazmedical/portal/internal/tenant"
	"github.com/nazmedical/portal/internal/webhook"
	"github.com/rs/cors"
)

type ServeCmd struct {
	// Server configuration
	Listen  string `help:"HTTP server listen address" default:"0.0.0.0:8080" env:"NAZ_LISTEN"`
	Cert    string `help:"path to TLS cert file, serves plain HTTP when empty" default:"" env:"NAZ_TLS_CERT"`
	Key     string `help:"path to TLS key file" default:"" env:"NAZ_TLS_KEY"`
	BaseURL string `help:"public base URL of the portal, used in upload URLs" default:"http://localhost:8080" env:"NAZ_BASE_URL"`
	SiteDir string `help:"directory with the built website" default:"public" env:"NAZ_SITE_DIR"`

	// CORS configuration
	CORSOrigins []string `help:"allowed CORS origins for API requests" default:"http://localhost:3000" env:"NAZ_CORS_ORIGINS"`

	// Uploads
	UploadSecret  string `help:"secret for signing upload URLs, at least 32 bytes" env:"NAZ_UPLOAD_SECRET"`
	MaxUploadSize int64  `help:"maximum attachment size in bytes" default:"20971520" env:"NAZ_MAX_UPLOAD_SIZE"`

	// Development and operational modes
	NoAuth      bool    `help:"treat every request as signed in (development only)" default:"false" env:"NAZ_NO_AUTH"`
	Tracing     bool    `help:"enable tracing and metrics export" default:"false" env:"NAZ_TRACING"`
	SampleRatio float64 `help:"trace sampling ratio" default:"1" env:"NAZ_TRACE_SAMPLE_RATIO"`
	Environment string  `help:"deployment environment reported with traces and metrics" default:"development" env:"NAZ_ENVIRONMENT"`

	Store     StoreFlags     `embed:""`
	Blob      BlobFlags      `embed:""`
	Clerk     ClerkFlags     `embed:"" prefix:"clerk-"`
	Analytics AnalyticsFlags `embed:"" prefix:"vercel-"`
}

// ClerkFlags configures the identity provider.
type ClerkFlags struct {
	SecretKey         string   `help:"Clerk secret key for the Backend API" env:"NAZ_CLERK_SECRET_KEY,CLERK_SECRET_KEY"`
	APIURL            string   `help:"Clerk Backend API URL" default:"https://api.clerk.com/v1" env:"NAZ_CLERK_API_URL"`
	Issuer            string   `help:"session token issuer (Clerk frontend API URL)" env:"NAZ_CLERK_ISSUER"`
	JWKSURL           string   `help:"JWKS URL, defaults to <issuer>/.well-known/jwks.json" env:"NAZ_CLERK_JWKS_URL"`
	JWKSCacheDir      string   `help:"directory for the on-disk JWKS HTTP cache" env:"NAZ_CLERK_JWKS_CACHE_DIR"`
	AuthorizedParties []string `help:"accepted azp claims (site origins)" env:"NAZ_CLERK_AUTHORIZED_PARTIES"`
	SignInURL         string   `help:"hosted sign-in page" env:"NAZ_CLERK_SIGN_IN_URL"`
	AfterSignInURL    string   `help:"where the hosted sign-in returns to" default:"/portal" env:"NAZ_CLERK_AFTER_SIGN_IN_URL"`
	WebhookSecret     string   `help:"webhook signing secret (whsec_...)" env:"NAZ_CLERK_WEBHOOK_SECRET,CLERK_WEBHOOK_SECRET"`
}

// AnalyticsFlags configures the visitor analytics proxy.
type AnalyticsFlags struct {
	Token     string `help:"Vercel access token" env:"NAZ_VERCEL_TOKEN,VERCEL_ACCESS_TOKEN"`
	ProjectID string `help:"Vercel project id" env:"NAZ_VERCEL_PROJECT_ID,VERCEL_PROJECT_ID"`
	TeamID    string `help:"Vercel team id" env:"NAZ_VERCEL_TEAM_ID,VERCEL_TEAM_ID"`
}

const devSecret = "dev-mode-upload-secret-minimum-32-characters"

func (c *ServeCmd) Run(globals *Globals) error {
	log := logger.Setup(globals.Debug)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("Starting server")

	if c.Tracing {
		log.Info().Float64("sample_ratio", c.SampleRatio).Msg("Tracing is enabled")
		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName: telemetry.DefaultServiceName,
			Version:     globals.Version,
			Environment: c.Environment,
			SampleRatio: c.SampleRatio,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize telemetry, continuing without metrics")
			shutdown = func(ctx context.Context) error { return nil }
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown telemetry")
			}
		}()
	}

	stores, closeStores, err := c.Store.open(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	tenants := tenant.NewProvisioner(stores.Organizations)
	if _, err := tenants.EnsureDefaultOrganization(ctx); err != nil {
		return fmt.Errorf("failed to provision default organization: %w", err)
	}
	reconciler := identity.NewReconciler(stores.Organizations, stores.Users, tenants)
	tracker := identity.NewTracker(reconciler)

	blobs, err := c.Blob.open(ctx, c.BaseURL)
	if err != nil {
		return err
	}

	secret := c.UploadSecret
	if secret == "" && c.NoAuth {
		log.Warn().Msg("Using the development upload secret")
		secret = devSecret
	}
	uploads, err := blob.NewUploads(blobs, blob.UploadsConfig{
		BaseURL:       c.BaseURL,
		SigningSecret: []byte(secret),
		MaxUploadSize: c.MaxUploadSize,
	})
	if err != nil {
		return fmt.Errorf("failed to configure uploads (--upload-secret or NAZ_UPLOAD_SECRET): %w", err)
	}

	var snapshots server.SnapshotSource
	if c.Clerk.SecretKey != "" {
		snapshots = clerk.NewClient(ctx, c.Clerk.APIURL, c.Clerk.SecretKey)
	} else {
		log.Warn().Msg("Clerk secret key not set, identity sync is disabled")
	}

	srv, err := server.NewServer(server.Config{
		Stores:     stores,
		Tenants:    tenants,
		Reconciler: reconciler,
		Tracker:    tracker,
		Snapshots:  snapshots,
		Uploads:    uploads,
		Tracing:    c.Tracing,
	})
	if err != nil {
		return err
	}
	rpcHandler, err := srv.Handler(log)
	if err != nil {
		return fmt.Errorf("failed to create RPC handler: %w", err)
	}

	sessionMiddleware, err := c.sessionMiddleware()
	if err != nil {
		return err
	}
	if c.NoAuth {
		log.Warn().Msg("Authentication is disabled (--no-auth). This should only be used in development!")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler)

	for _, name := range server.ServiceNames {
		mux.Handle("/"+name+"/", rpcHandler)
	}
	log.Info().Int("services", len(server.ServiceNames)).Msg("RPC services registered")

	mux.Handle("/upload/{token}", uploads)
	if mem, ok := blobs.(*blob.MemoryStore); ok {
		mux.Handle("GET /blobs/{id}", mem)
	}

	if c.Clerk.WebhookSecret != "" {
		verifier, err := webhook.NewVerifier(c.Clerk.WebhookSecret)
		if err != nil {
			return err
		}
		mux.Handle("/api/webhooks/clerk", webhook.NewHandler(verifier, reconciler, stores, tracker))
	} else {
		log.Warn().Msg("Clerk webhook secret not set, webhook receiver is disabled")
	}

	mux.Handle("/api/vercel/analytics", analytics.NewHandler(ctx, analytics.Config{
		Token:     c.Analytics.Token,
		ProjectID: c.Analytics.ProjectID,
		TeamID:    c.Analytics.TeamID,
	}))

	mux.Handle("GET /staff/sign-in", auth.SignInHandler(c.Clerk.SignInURL, c.Clerk.AfterSignInURL))

	site := http.FileServer(http.Dir(c.SiteDir))
	mux.Handle("/", httpmiddleware.Chain(site, auth.RequireSignIn("/"), srv.SyncOnPageLoad))

	compress, err := httpmiddleware.Compress()
	if err != nil {
		return fmt.Errorf("failed to create compression middleware: %w", err)
	}

	// CSRF protection for pages (not applied to API routes)
	protection := csrf.New()
	apiHandler := withCORS(c.CORSOrigins, mux)
	pageHandler := protection.Handler(mux)

	routed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAPIRoute(r.URL.Path) {
			apiHandler.ServeHTTP(w, r)
			return
		}
		pageHandler.ServeHTTP(w, r)
	})

	handler := httpmiddleware.Chain(routed,
		httpmiddleware.RequestLogger(log),
		sessionMiddleware,
		compress,
	)

	httpServer := configureHTTPServer(c.Listen, handler)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", c.Listen).Bool("tls", c.Cert != "").Bool("auth", !c.NoAuth).Msg("Starting HTTP server")
		if c.Cert != "" && c.Key != "" {
			errCh <- httpServer.ListenAndServeTLS(c.Cert, c.Key)
			return
		}
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// sessionMiddleware verifies Clerk session tokens, or signs every request in
// as a development user when authentication is disabled.
func (c *ServeCmd) sessionMiddleware() (func(http.Handler) http.Handler, error) {
	if c.NoAuth {
		dev := &auth.Session{UserID: "user_dev", SessionID: "sess_dev"}
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), dev)))
			})
		}, nil
	}

	if c.Clerk.Issuer == "" {
		return nil, errors.New("session token issuer is required (--clerk-issuer or NAZ_CLERK_ISSUER)")
	}
	jwksURL := c.Clerk.JWKSURL
	if jwksURL == "" {
		jwksURL = strings.TrimRight(c.Clerk.Issuer, "/") + "/.well-known/jwks.json"
	}
	keys := auth.NewJWKSCache(jwksURL, client.NewCachingHTTPClient(c.Clerk.JWKSCacheDir))
	verifier := auth.NewVerifier(c.Clerk.Issuer, keys, c.Clerk.AuthorizedParties...)
	return auth.SessionMiddleware(verifier), nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// isAPIRoute returns true if the path is an API route that needs CORS instead of CSRF
func isAPIRoute(path string) bool {
	return strings.HasPrefix(path, "/naz.v1.") ||
		strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/upload/")
}

// withCORS adds CORS support to a Connect HTTP handler.
func withCORS(allowedOrigins []string, h http.Handler) http.Handler {
	middleware := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   connectcors.AllowedMethods(),
		AllowedHeaders:   append(connectcors.AllowedHeaders(), "Authorization"),
		ExposedHeaders:   connectcors.ExposedHeaders(),
		AllowCredentials: true, // session cookie
	})
	return middleware.Handler(h)
}
