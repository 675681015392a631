package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goto/discuss/domain"
)

var (
	ErrEmptyFilename = errors.New("attachment filename is empty")
	ErrEmptyBody     = errors.New("attachment body is empty")

	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

var TimeNow = time.Now

//go:generate mockery --name=objectWriter --exported --with-expecter
type objectWriter interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	// URL returns the location of an object when no public base url is set
	URL(key string) string
}

// Store uploads attachment bytes to object storage and returns the reference
// kept on the comment.
type Store struct {
	writer        objectWriter
	prefix        string
	publicBaseURL string
}

func NewStore(writer objectWriter, cfg Config) *Store {
	return &Store{
		writer:        writer,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

func (s *Store) Upload(ctx context.Context, upload *domain.AttachmentUpload) (*domain.Attachment, error) {
	if upload == nil || upload.Body == nil {
		return nil, ErrEmptyBody
	}
	if strings.TrimSpace(upload.Filename) == "" {
		return nil, ErrEmptyFilename
	}

	key := s.objectKey(upload.Filename)
	contentType := detectContentType(upload)
	if err := s.writer.Put(ctx, key, contentType, upload.Size, upload.Body); err != nil {
		return nil, fmt.Errorf("uploading %q: %w", upload.Filename, err)
	}

	return &domain.Attachment{
		URL:      s.url(key),
		Type:     contentType,
		Filename: upload.Filename,
		Size:     upload.Size,
	}, nil
}

// objectKey lays objects out as <prefix>/yyyy/mm/<uuid>-<filename>
func (s *Store) objectKey(filename string) string {
	now := TimeNow().UTC()
	name := unsafeFilenameChars.ReplaceAllString(filepath.Base(filename), "_")
	return path.Join(
		s.prefix,
		now.Format("2006"),
		now.Format("01"),
		fmt.Sprintf("%s-%s", uuid.NewString(), name),
	)
}

func (s *Store) url(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return s.writer.URL(key)
}

func detectContentType(upload *domain.AttachmentUpload) string {
	if upload.ContentType != "" {
		return upload.ContentType
	}
	if t := mime.TypeByExtension(filepath.Ext(upload.Filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// New builds the store for the configured provider. It returns nil when
// uploads are disabled.
func New(ctx context.Context, cfg Config) (*Store, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case ProviderS3:
		writer, err := newS3Writer(cfg.S3, cfg.Bucket)
		if err != nil {
			return nil, err
		}
		return NewStore(writer, cfg), nil
	case ProviderGCS:
		writer, err := newGCSWriter(ctx, cfg.GCS, cfg.Bucket)
		if err != nil {
			return nil, err
		}
		return NewStore(writer, cfg), nil
	}
	return nil, fmt.Errorf("invalid attachment provider %q", cfg.Provider)
}
