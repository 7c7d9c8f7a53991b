package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vbonduro/lostfound/internal/photostore"
)

// presignTTL bounds how long a presigned GET URL stays valid when no public
// base URL is configured.
const presignTTL = time.Hour

type Config struct {
	Endpoint      string
	AccessKeyID   string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	PublicBaseURL string
}

// Store uploads photos to an S3-compatible bucket (R2, MinIO, AWS).
type Store struct {
	cfg    Config
	client *minio.Client
}

func New(cfg Config) (*Store, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return &Store{cfg: cfg, client: client}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Upload stores data under posts/<uuid>.<ext> and resolves a URL for it:
// the configured public base if one is set, else a presigned GET URL. Upload
// failures propagate to the caller; they are not handled here.
func (s *Store) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	key := photostore.NewKey(filename)
	contentType := photostore.ContentType(photostore.Ext(filename))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if base, ok := publicURL(s.cfg.PublicBaseURL, key); ok {
		return base, nil
	}

	signed, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, key, presignTTL, nil)
	if err != nil {
		// The object is stored but unreachable by URL. Surface that state
		// explicitly instead of handing back the bare key.
		return "", fmt.Errorf("presign %s: %w", key, photostore.ErrURLUnresolved)
	}
	return signed.String(), nil
}

// Open fetches a stored object's bytes and content type.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, "", fmt.Errorf("photo not found: %s", key)
	}
	return obj, stat.ContentType, nil
}

// publicURL joins a configured public base URL with the object key. It
// reports false when the base is empty or not an HTTP origin.
func publicURL(base, key string) (string, bool) {
	if base == "" || !strings.HasPrefix(base, "http") {
		return "", false
	}
	return strings.TrimRight(base, "/") + "/" + key, true
}
