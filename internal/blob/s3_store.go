package blob

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/minio/crc64nvme"
	"github.com/rs/zerolog/log"
)

// S3Config configures the S3 object store.
type S3Config struct {
	Bucket    string
	Region    string
	Prefix    string // key prefix, e.g. "attachments"
	Endpoint  string // optional, for S3-compatible stores
	AccessKey string // optional, falls back to the default credential chain
	SecretKey string
	PathStyle bool
	URLExpiry time.Duration // presigned URL lifetime, default 15 minutes
}

// S3Store implements Store on an S3 bucket.
type S3Store struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	prefix        string
	urlExpiry     time.Duration
}

// NewS3Store loads AWS configuration and creates an S3-backed store.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	opts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return NewS3StoreFromClient(client, cfg), nil
}

// NewS3StoreFromClient creates a store using an existing client.
func NewS3StoreFromClient(client *s3.Client, cfg S3Config) *S3Store {
	expiry := cfg.URLExpiry
	if expiry == 0 {
		expiry = 15 * time.Minute
	}
	return &S3Store{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		prefix:        cfg.Prefix,
		urlExpiry:     expiry,
	}
}

func (s *S3Store) key(id string) string {
	return path.Join(s.prefix, id)
}

// Put uploads the blob with a CRC64-NVME checksum so S3 rejects corrupted
// bodies. The write is conditional on the key being absent.
func (s *S3Store) Put(ctx context.Context, id, contentType string, body io.Reader, size int64) error {
	data, err := io.ReadAll(io.LimitReader(body, size))
	if err != nil {
		return fmt.Errorf("failed to read blob body: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:            aws.String(s.bucket),
		Key:               aws.String(s.key(id)),
		Body:              bytes.NewReader(data),
		ContentLength:     aws.Int64(int64(len(data))),
		ContentType:       aws.String(contentType),
		ACL:               s3types.ObjectCannedACLPrivate,
		ChecksumAlgorithm: s3types.ChecksumAlgorithmCrc64nvme,
		ChecksumCRC64NVME: aws.String(checksumCRC64NVME(data)),
		IfNoneMatch:       aws.String("*"),
	})
	if err != nil {
		if isConditionalWriteConflict(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to upload blob to s3: %w", err)
	}

	log.Debug().Str("storage_id", id).Int("size", len(data)).Msg("Uploaded blob")
	return nil
}

// URL returns a presigned GET URL after confirming the object exists.
func (s *S3Store) URL(ctx context.Context, id string) (string, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to stat blob: %w", err)
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return req.URL, nil
}

func (s *S3Store) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(id)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob from s3: %w", err)
	}

	log.Debug().Str("storage_id", id).Msg("Deleted blob")
	return nil
}

// isConditionalWriteConflict reports whether S3 refused an If-None-Match write
// because the key exists (412) or a concurrent conditional write won (409).
func isConditionalWriteConflict(err error) bool {
	var respErr *awshttp.ResponseError
	if !errors.As(err, &respErr) {
		return false
	}
	code := respErr.HTTPStatusCode()
	return code == http.StatusPreconditionFailed || code == http.StatusConflict
}

// checksumCRC64NVME returns the base64 big-endian CRC64-NVME S3 expects.
func checksumCRC64NVME(data []byte) string {
	h := crc64nvme.New()
	h.Write(data)
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], h.Sum64())
	return base64.StdEncoding.EncodeToString(sum[:])
}
