package attachments

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/goto/discuss/pkg/opentelemetry/otelhttpclient"
)

type s3Writer struct {
	client *minio.Client
	bucket string
}

func newS3Writer(cfg S3Config, bucket string) (*s3Writer, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: otelhttpclient.NewHTTPTransport(http.DefaultTransport, "attachments.s3"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return &s3Writer{client: client, bucket: bucket}, nil
}

func (w *s3Writer) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error {
	if size <= 0 {
		size = -1
	}
	_, err := w.client.PutObject(ctx, w.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (w *s3Writer) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", w.client.EndpointURL().String(), w.bucket, key)
}
