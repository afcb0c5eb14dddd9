package blob

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-min-32-bytes-long")

func newTestUploads(t *testing.T, maxSize int64) (*Uploads, *MemoryStore, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	store := NewMemoryStore(srv.URL)
	uploads, err := NewUploads(store, UploadsConfig{BaseURL: srv.URL, SigningSecret: testSecret, MaxUploadSize: maxSize})
	require.NoError(t, err)

	mux.Handle("/upload/{token}", uploads)
	mux.Handle("GET /blobs/{id}", store)
	return uploads, store, srv
}

func upload(t *testing.T, url, contentType, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestUploads_RoundTrip(t *testing.T) {
	ctx := context.Background()
	uploads, store, _ := newTestUploads(t, 0)

	uploadURL, err := uploads.GenerateUploadURL(ctx)
	require.NoError(t, err)

	resp, body := upload(t, uploadURL, "application/pdf", "%PDF-1.7")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out uploadResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.True(t, ValidStorageID(out.StorageID))
	require.True(t, store.Exists(out.StorageID))

	downloadURL, err := store.URL(ctx, out.StorageID)
	require.NoError(t, err)

	get, err := http.Get(downloadURL)
	require.NoError(t, err)
	defer get.Body.Close()
	data, err := io.ReadAll(get.Body)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7", string(data))
	require.Equal(t, "application/pdf", get.Header.Get("Content-Type"))

	require.NoError(t, store.Delete(ctx, out.StorageID))
	_, err = store.URL(ctx, out.StorageID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUploads_Rejects(t *testing.T) {
	ctx := context.Background()
	uploads, _, srv := newTestUploads(t, 8)

	t.Run("tampered token", func(t *testing.T) {
		resp, _ := upload(t, srv.URL+"/upload/not-a-token", "text/plain", "x")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		uploads.now = func() time.Time { return time.Now().Add(-time.Hour) }
		uploadURL, err := uploads.GenerateUploadURL(ctx)
		uploads.now = time.Now
		require.NoError(t, err)

		resp, _ := upload(t, uploadURL, "text/plain", "x")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("too large", func(t *testing.T) {
		uploadURL, err := uploads.GenerateUploadURL(ctx)
		require.NoError(t, err)

		resp, _ := upload(t, uploadURL, "text/plain", "0123456789")
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})
}

func TestUploads_SingleUse(t *testing.T) {
	ctx := context.Background()
	uploads, store, _ := newTestUploads(t, 0)

	uploadURL, err := uploads.GenerateUploadURL(ctx)
	require.NoError(t, err)

	resp, body := upload(t, uploadURL, "application/pdf", "%PDF-1.7")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out uploadResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))

	resp, _ = upload(t, uploadURL, "application/pdf", "%PDF-replaced")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	require.NoError(t, store.Delete(ctx, out.StorageID))
	resp, _ = upload(t, uploadURL, "application/pdf", "%PDF-replaced")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.False(t, store.Exists(out.StorageID))
}

func TestUploads_RetryAfterRejectedBody(t *testing.T) {
	ctx := context.Background()
	uploads, store, _ := newTestUploads(t, 8)

	uploadURL, err := uploads.GenerateUploadURL(ctx)
	require.NoError(t, err)

	resp, _ := upload(t, uploadURL, "text/plain", "0123456789")
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, body := upload(t, uploadURL, "text/plain", "0123")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out uploadResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	require.True(t, store.Exists(out.StorageID))
}

func TestMemoryStore_PutIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("http://blobs.test")
	require.NoError(t, store.Put(ctx, "abc", "image/png", strings.NewReader("png"), 3))

	err := store.Put(ctx, "abc", "image/png", strings.NewReader("gif"), 3)
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestNewUploads_ShortSecret(t *testing.T) {
	_, err := NewUploads(NewMemoryStore(""), UploadsConfig{SigningSecret: []byte("short")})
	require.Error(t, err)
}

func TestURLOrEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore("http://blobs.test")
	require.NoError(t, store.Put(ctx, "abc", "image/png", strings.NewReader("png"), 3))

	u, err := URLOrEmpty(ctx, store, nil)
	require.NoError(t, err)
	require.Empty(t, u)

	missing := "missing"
	u, err = URLOrEmpty(ctx, store, &missing)
	require.NoError(t, err)
	require.Empty(t, u)

	id := "abc"
	u, err = URLOrEmpty(ctx, store, &id)
	require.NoError(t, err)
	require.Equal(t, "http://blobs.test/blobs/abc", u)
}

func TestChecksumCRC64NVME(t *testing.T) {
	// 8 bytes base64 encoded
	require.Len(t, checksumCRC64NVME([]byte("hello")), 12)
	require.Equal(t, checksumCRC64NVME([]byte("hello")), checksumCRC64NVME([]byte("hello")))
	require.NotEqual(t, checksumCRC64NVME([]byte("hello")), checksumCRC64NVME([]byte("hellp")))
}
