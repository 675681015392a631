package attachments

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

type gcsWriter struct {
	client *storage.Client
	bucket string
}

func newGCSWriter(ctx context.Context, cfg GCSConfig, bucket string) (*gcsWriter, error) {
	var opts []option.ClientOption
	if cfg.ServiceAccountKey != "" {
		credentialsJSON, err := base64.StdEncoding.DecodeString(cfg.ServiceAccountKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode service account key: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, storage.ScopeReadWrite)
		if err != nil {
			return nil, fmt.Errorf("failed to obtain credentials: %w", err)
		}

		client := oauth2.NewClient(ctx, creds.TokenSource)
		client.Transport = otelhttp.NewTransport(client.Transport, otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("GCSClient %s", operation)
		}))
		opts = append(opts, option.WithHTTPClient(client))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &gcsWriter{client: client, bucket: bucket}, nil
}

func (w *gcsWriter) Put(ctx context.Context, key, contentType string, _ int64, body io.Reader) error {
	writer := w.client.Bucket(w.bucket).Object(key).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()
		return fmt.Errorf("Object(%q).NewWriter: %w", key, err)
	}
	return writer.Close()
}

func (w *gcsWriter) URL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", w.bucket, key)
}
