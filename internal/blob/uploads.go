package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nazmedical/portal/internal/telemetry"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultMaxUploadSize bounds a single upload.
	DefaultMaxUploadSize = 20 << 20
	// DefaultUploadTTL is how long a generated upload URL stays valid.
	DefaultUploadTTL = 15 * time.Minute

	uploadTokenIssuer = "naz-portal-upload"
)

// ErrInvalidUploadToken is returned for expired, tampered or reused tokens.
var ErrInvalidUploadToken = errors.New("invalid upload token")

// UploadsConfig configures upload URL generation.
type UploadsConfig struct {
	BaseURL       string // public base URL of this server
	SigningSecret []byte // HS256 secret, at least 32 bytes
	TTL           time.Duration
	MaxUploadSize int64
}

// Uploads mints signed, short-lived upload URLs and accepts the uploads.
// The storage id is fixed when the URL is generated and returned to the
// uploader once the blob is stored.
type Uploads struct {
	store   Store
	baseURL string
	secret  []byte
	ttl     time.Duration
	maxSize int64
	now     func() time.Time

	mu       sync.Mutex
	consumed map[string]time.Time // storage id -> token expiry
}

// NewUploads creates an upload endpoint backed by store.
func NewUploads(store Store, cfg UploadsConfig) (*Uploads, error) {
	if len(cfg.SigningSecret) < 32 {
		return nil, errors.New("upload signing secret must be at least 32 bytes")
	}
	u := &Uploads{
		store:   store,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		secret:  cfg.SigningSecret,
		ttl:     cfg.TTL,
		maxSize: cfg.MaxUploadSize,
		now:     time.Now,

		consumed: make(map[string]time.Time),
	}
	if u.ttl == 0 {
		u.ttl = DefaultUploadTTL
	}
	if u.maxSize == 0 {
		u.maxSize = DefaultMaxUploadSize
	}
	return u, nil
}

// Store returns the underlying object store.
func (u *Uploads) Store() Store {
	return u.store
}

// GenerateUploadURL returns a URL the caller can POST one file to.
func (u *Uploads) GenerateUploadURL(ctx context.Context) (string, error) {
	token, _, err := u.issueToken()
	if err != nil {
		return "", err
	}
	return u.baseURL + "/upload/" + token, nil
}

func (u *Uploads) issueToken() (string, string, error) {
	storageID, err := NewStorageID()
	if err != nil {
		return "", "", err
	}

	now := u.now()
	claims := &jwt.RegisteredClaims{
		Subject:   storageID,
		Issuer:    uploadTokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign upload token: %w", err)
	}
	return token, storageID, nil
}

// parseToken validates an upload token and returns its storage id and expiry.
func (u *Uploads) parseToken(token string) (string, time.Time, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(uploadTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", ErrInvalidUploadToken, err)
	}
	if !ValidStorageID(claims.Subject) {
		return "", time.Time{}, ErrInvalidUploadToken
	}
	return claims.Subject, claims.ExpiresAt.Time, nil
}

// claim marks the token for storageID as used until it expires. It reports
// false if the token was already used.
func (u *Uploads) claim(storageID string, expires time.Time) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	for id, exp := range u.consumed {
		if now.After(exp) {
			delete(u.consumed, id)
		}
	}

	if _, used := u.consumed[storageID]; used {
		return false
	}
	u.consumed[storageID] = expires
	return true
}

func (u *Uploads) release(storageID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.consumed, storageID)
}

type uploadResponse struct {
	StorageID string `json:"storageId"`
}

// ServeHTTP handles POST /upload/{token} with the raw file as the body.
func (u *Uploads) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	storageID, expires, err := u.parseToken(r.PathValue("token"))
	if err != nil {
		log.Debug().Err(err).Msg("Rejected upload")
		http.Error(w, "invalid or expired upload URL", http.StatusUnauthorized)
		return
	}

	if !u.claim(storageID, expires) {
		log.Warn().Str("storage_id", storageID).Msg("Rejected reused upload URL")
		http.Error(w, "upload URL already used", http.StatusConflict)
		return
	}

	if r.ContentLength > u.maxSize {
		u.release(storageID)
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// One byte past the limit lets MaxBytesReader report oversized chunked bodies.
	body := &countingReader{r: http.MaxBytesReader(w, r.Body, u.maxSize)}
	if err := u.store.Put(r.Context(), storageID, contentType, body, u.maxSize+1); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			log.Warn().Str("storage_id", storageID).Msg("Rejected reused upload URL")
			http.Error(w, "upload URL already used", http.StatusConflict)
			return
		}
		u.release(storageID)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Error().Err(err).Str("storage_id", storageID).Msg("Failed to store upload")
		http.Error(w, "failed to store upload", http.StatusBadGateway)
		return
	}

	telemetry.GetMetrics().UploadBytes.Record(r.Context(), body.n)
	log.Info().Str("storage_id", storageID).Str("content_type", contentType).Int64("size", body.n).Msg("Stored upload")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(uploadResponse{StorageID: storageID})
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
