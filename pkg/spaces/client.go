package spaces

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps the S3-compatible object storage API (DigitalOcean Spaces).
// Objects are addressed bucket + key; keys are referred to as file URIs by
// the domain layer.
type Client struct {
	mc       *minio.Client
	endpoint string
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

func New(cfg Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &Client{mc: mc, endpoint: cfg.Endpoint}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := c.mc.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"type": "Note"},
	})
	return err
}

// Exists checks the object head. An empty object counts as missing, matching
// the upload flow which never produces zero-byte files.
func (c *Client) Exists(ctx context.Context, bucket, key string) (bool, error) {
	info, err := c.mc.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NotFound" {
			return false, nil
		}
		return false, err
	}
	return info.Size > 0, nil
}

func (c *Client) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := c.mc.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

func (c *Client) Remove(ctx context.Context, bucket, key string) error {
	return c.mc.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

// EnsureBucket is used by the pre-run checks to verify connectivity and
// create missing buckets on first boot.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := c.mc.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return c.mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
