package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Remote keeps the document as the object "<record>.json" in the bucket
// named after the collection.
type S3Remote struct {
	client *minio.Client
	bucket string
	object string
}

// NewS3Remote creates a remote against any S3 compatible endpoint.
func NewS3Remote(cfg S3Config, addr Address) (*S3Remote, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("store: create s3 client: %w", err)
	}
	return &S3Remote{
		client: client,
		bucket: addr.Collection,
		object: addr.Record + ".json",
	}, nil
}

func (s *S3Remote) Get(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap("get", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.wrap("read", err)
	}
	return data, nil
}

func (s *S3Remote) Put(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return s.wrap("put", err)
	}
	return nil
}

func (s *S3Remote) Close() error {
	return nil
}

func (s *S3Remote) wrap(op string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrNotFound
	}
	return fmt.Errorf("store: s3 %s %s/%s: %w", op, s.bucket, s.object, err)
}
