package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nazmedical/portal/internal/blob"
	"github.com/nazmedical/portal/internal/store"
	memorystore "github.com/nazmedical/portal/internal/store/memory"
	postgresstore "github.com/nazmedical/portal/internal/store/postgres"
	"github.com/rs/zerolog/log"
)

type Globals struct {
	Debug   bool
	Version string
}

func configureHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Minute, // uploads
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       5 * time.Minute,
		MaxHeaderBytes:    16 * 1024, // session cookies are large
	}
}

// StoreFlags selects and configures the content store.
type StoreFlags struct {
	Type     string        `name:"store-type" help:"store type (memory or postgres)" default:"memory" env:"NAZ_STORE_TYPE" enum:"memory,postgres"`
	Postgres PostgresFlags `embed:"" prefix:"postgres-"`
}

type PostgresFlags struct {
	// Connection Configuration
	ConnString string `help:"PostgreSQL connection string" env:"NAZ_POSTGRES_CONNECTION_STRING,POSTGRES_CONNECTION_STRING"`

	// Connection Pool Configuration
	MaxConns        int32 `help:"maximum number of connections in pool" default:"20" env:"NAZ_POSTGRES_MAX_CONNS"`
	MinConns        int32 `help:"minimum number of connections in pool" default:"2" env:"NAZ_POSTGRES_MIN_CONNS"`
	MaxConnLifetime int32 `help:"maximum connection lifetime in seconds" default:"3600"`
	MaxConnIdleTime int32 `help:"maximum connection idle time in seconds" default:"1800"`
	StartupTimeout  int32 `help:"seconds to keep retrying the initial connection" default:"30" env:"NAZ_POSTGRES_STARTUP_TIMEOUT"`

	// Migration Configuration
	AutoMigrate bool `help:"run database migrations on startup" default:"false" env:"NAZ_POSTGRES_AUTO_MIGRATE"`
}

func (p *PostgresFlags) Validate() error {
	if p.ConnString == "" {
		return errors.New("PostgreSQL connection string is required (--postgres-conn-string or NAZ_POSTGRES_CONNECTION_STRING)")
	}
	return nil
}

func (p *PostgresFlags) poolConfig() *postgresstore.PoolConfig {
	return &postgresstore.PoolConfig{
		ConnString:      p.ConnString,
		MaxConns:        p.MaxConns,
		MinConns:        p.MinConns,
		MaxConnLifetime: p.MaxConnLifetime,
		MaxConnIdleTime: p.MaxConnIdleTime,
		StartupTimeout:  p.StartupTimeout,
		AutoMigrate:     p.AutoMigrate,
	}
}

// open returns the configured stores and a function releasing them.
func (s *StoreFlags) open(ctx context.Context) (store.Stores, func(), error) {
	switch s.Type {
	case "postgres":
		if err := s.Postgres.Validate(); err != nil {
			return store.Stores{}, nil, fmt.Errorf("failed to validate postgres flags: %w", err)
		}
		pool, err := postgresstore.NewPool(ctx, s.Postgres.poolConfig())
		if err != nil {
			return store.Stores{}, nil, fmt.Errorf("failed to create store pool: %w", err)
		}
		log.Info().Msg("Using PostgreSQL stores")
		return postgresstore.NewStores(pool), pool.Close, nil
	default:
		log.Info().Msg("Using in-memory stores")
		return memorystore.NewStores(), func() {}, nil
	}
}

// BlobFlags selects and configures attachment storage.
type BlobFlags struct {
	Type string  `name:"blob-type" help:"blob store type (memory or s3)" default:"memory" env:"NAZ_BLOB_TYPE" enum:"memory,s3"`
	S3   S3Flags `embed:"" prefix:"s3-"`
}

type S3Flags struct {
	Bucket    string        `help:"S3 bucket for attachments" env:"NAZ_S3_BUCKET"`
	Region    string        `help:"S3 region" default:"ap-southeast-3" env:"NAZ_S3_REGION"`
	Prefix    string        `help:"key prefix inside the bucket" default:"uploads" env:"NAZ_S3_PREFIX"`
	Endpoint  string        `help:"S3 endpoint override (MinIO, LocalStack)" env:"NAZ_S3_ENDPOINT"`
	AccessKey string        `help:"static access key, defaults to the AWS credential chain" env:"NAZ_S3_ACCESS_KEY"`
	SecretKey string        `help:"static secret key" env:"NAZ_S3_SECRET_KEY"`
	PathStyle bool          `help:"use path-style addressing" env:"NAZ_S3_PATH_STYLE"`
	URLExpiry time.Duration `help:"lifetime of presigned download URLs" default:"1h" env:"NAZ_S3_URL_EXPIRY"`
}

func (s *S3Flags) Validate() error {
	if s.Bucket == "" {
		return errors.New("S3 bucket is required (--s3-bucket or NAZ_S3_BUCKET)")
	}
	return nil
}

// open returns the attachment store. The memory store's URLs are served by
// this process under /blobs/.
func (b *BlobFlags) open(ctx context.Context, baseURL string) (blob.Store, error) {
	switch b.Type {
	case "s3":
		if err := b.S3.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate s3 flags: %w", err)
		}
		log.Info().Str("bucket", b.S3.Bucket).Msg("Using S3 blob store")
		return blob.NewS3Store(ctx, blob.S3Config{
			Bucket:    b.S3.Bucket,
			Region:    b.S3.Region,
			Prefix:    b.S3.Prefix,
			Endpoint:  b.S3.Endpoint,
			AccessKey: b.S3.AccessKey,
			SecretKey: b.S3.SecretKey,
			PathStyle: b.S3.PathStyle,
			URLExpiry: b.S3.URLExpiry,
		})
	default:
		log.Info().Msg("Using in-memory blob store")
		return blob.NewMemoryStore(baseURL), nil
	}
}
