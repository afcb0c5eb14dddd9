package client

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Config holds common upstream API client configuration.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// DefaultTimeout bounds calls to third-party APIs.
const DefaultTimeout = 10 * time.Second

// NewBearerClient creates an HTTP client that sends cfg.Token as a bearer
// token on every request.
func NewBearerClient(ctx context.Context, cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout

	return httpClient
}
