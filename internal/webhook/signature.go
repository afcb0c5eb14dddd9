package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	headerID        = "svix-id"
	headerTimestamp = "svix-timestamp"
	headerSignature = "svix-signature"

	secretPrefix = "whsec_"

	// DefaultTolerance bounds the clock skew accepted between sender and receiver.
	DefaultTolerance = 5 * time.Minute
)

var (
	ErrMissingHeaders   = errors.New("webhook: missing signature headers")
	ErrInvalidTimestamp = errors.New("webhook: timestamp outside tolerance")
	ErrInvalidSignature = errors.New("webhook: no matching signature")
)

// Verifier checks Svix-style webhook signatures as sent by Clerk.
type Verifier struct {
	key       []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier parses a "whsec_" prefixed base64 signing secret.
func NewVerifier(secret string) (*Verifier, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return nil, fmt.Errorf("invalid webhook secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("webhook secret is empty")
	}
	return &Verifier{key: key, tolerance: DefaultTolerance, now: time.Now}, nil
}

// Verify checks the signature headers against the raw request body.
func (v *Verifier) Verify(header http.Header, body []byte) error {
	id := header.Get(headerID)
	ts := header.Get(headerTimestamp)
	sigs := header.Get(headerSignature)
	if id == "" || ts == "" || sigs == "" {
		return ErrMissingHeaders
	}

	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}
	sent := time.Unix(sec, 0)
	now := v.now()
	if sent.Before(now.Add(-v.tolerance)) || sent.After(now.Add(v.tolerance)) {
		return ErrInvalidTimestamp
	}

	expected := v.sign(id, ts, body)

	// The header is a space separated list of "<version>,<signature>" pairs.
	for _, versioned := range strings.Fields(sigs) {
		version, sig, ok := strings.Cut(versioned, ",")
		if !ok || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

func (v *Verifier) sign(id, ts string, body []byte) string {
	h := hmac.New(sha256.New, v.key)
	h.Write([]byte(id))
	h.Write([]byte{'.'})
	h.Write([]byte(ts))
	h.Write([]byte{'.'})
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
