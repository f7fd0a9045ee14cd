package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	// Registered bucket schemes: file://, mem://, gs://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"cakehaven/config"
	"cakehaven/internal/domain/service"
)

const defaultBucketURL = "mem://"

// Params defines the dependencies for opening the image bucket
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobImageStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ImageStore, error) {
	bucketURL, baseURL := defaultBucketURL, ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		baseURL = cfg.PublicBaseURL
	}

	store, err := Open(params.Ctx, bucketURL, baseURL)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	params.Logger.Info("Image bucket opened", slog.String("bucket", redact(bucketURL)))

	return store, nil
}

// Open opens a gocloud bucket URL. Object URLs are baseURL joined with the key.
// Only the in-memory bucket may run without a public base URL.
func Open(ctx context.Context, bucketURL, baseURL string) (*blobImageStore, error) {
	if strings.TrimSpace(baseURL) == "" && !strings.HasPrefix(bucketURL, "mem://") {
		return nil, errors.Errorf("storage.publicBaseUrl is required for bucket %s", redact(bucketURL))
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redact(bucketURL))
	}

	return &blobImageStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *blobImageStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("object key is required")
	}

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.baseURL + "/" + key, nil
}

// Close releases the bucket.
func (s *blobImageStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func redact(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "invalid"
	}
	parsed.RawQuery = ""

	return parsed.Redacted()
}
