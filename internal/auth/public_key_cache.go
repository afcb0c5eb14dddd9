package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// jwksTTL bounds how long fetched signing keys are trusted before refetching.
	jwksTTL = time.Hour
	// jwksMinRefetch limits how often an unknown kid can trigger a fetch.
	jwksMinRefetch = 30 * time.Second
)

// PublicKeyCache resolves identity provider signing keys by kid.
type PublicKeyCache interface {
	GetKey(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

// JWKSCache implements PublicKeyCache by fetching a JWKS document over HTTP.
// Pair it with a caching HTTP client so Cache-Control on the JWKS response is
// honoured as well.
type JWKSCache struct {
	jwksURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey // kid → public key
	fetchedAt time.Time
	expiresAt time.Time
	now       func() time.Time
}

// NewJWKSCache creates a cache for the JWKS document at jwksURL.
func NewJWKSCache(jwksURL string, httpClient *http.Client) *JWKSCache {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	return &JWKSCache{
		jwksURL:    jwksURL,
		httpClient: httpClient,
		keys:       make(map[string]*rsa.PublicKey),
		now:        time.Now,
	}
}

// GetKey returns the signing key for kid, fetching the JWKS on a miss or once
// the cached copy is older than an hour. Unknown kids trigger at most one
// fetch every 30 seconds.
func (c *JWKSCache) GetKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	now := c.now()

	c.mu.RLock()
	key, ok := c.keys[kid]
	fresh := now.Before(c.expiresAt)
	throttled := fresh && now.Sub(c.fetchedAt) < jwksMinRefetch
	c.mu.RUnlock()

	if ok && fresh {
		log.Debug().Str("kid", kid).Msg("JWKS cache hit")
		return key, nil
	}
	if throttled {
		return nil, fmt.Errorf("kid not found in JWKS: %s", kid)
	}

	keys, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.keys = keys
	c.fetchedAt = now
	c.expiresAt = now.Add(jwksTTL)
	c.mu.Unlock()

	key, ok = keys[kid]
	if !ok {
		return nil, fmt.Errorf("kid not found in JWKS: %s", kid)
	}

	log.Info().Str("kid", kid).Int("total_keys", len(keys)).Msg("Cached JWKS")
	return key, nil
}

func (c *JWKSCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	log.Debug().Str("jwks_url", c.jwksURL).Msg("Fetching JWKS")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.jwksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("JWKS request failed: %s", resp.Status)
	}

	var jwks struct {
		Keys []jwk `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, k := range jwks.Keys {
		if k.Kid == "" {
			log.Warn().Msg("JWK missing kid")
			continue
		}
		key, err := k.rsaPublicKey()
		if err != nil {
			log.Warn().Err(err).Str("kid", k.Kid).Msg("Failed to parse JWK")
			continue
		}
		keys[k.Kid] = key
	}

	return keys, nil
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// rsaPublicKey parses an RSA JWK.
func (k jwk) rsaPublicKey() (*rsa.PublicKey, error) {
	if k.Kty != "RSA" {
		return nil, fmt.Errorf("unsupported key type: %s", k.Kty)
	}

	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() || e.Int64() > 1<<31-1 {
		return nil, fmt.Errorf("exponent out of range")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(e.Int64()),
	}, nil
}
