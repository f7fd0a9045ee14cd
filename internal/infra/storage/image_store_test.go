package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"cakehaven/config"
)

func TestBlobImageStore_Put(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://", "https://cdn.cakehaven.test/images/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Put(ctx, "/cakes/abc/cover.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.cakehaven.test/images/cakes/abc/cover.png", url)

	data, err := store.bucket.ReadAll(ctx, "cakes/abc/cover.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := store.bucket.Attributes(ctx, "cakes/abc/cover.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobImageStore_FileBucket(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "file://"+t.TempDir(), "/static")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Put(ctx, "cakes/x.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.NoError(t, err)
	assert.Equal(t, "/static/cakes/x.jpg", url)
}

func TestBlobImageStore_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "unknown://bucket", "")
	assert.Error(t, err)

	store, err := Open(ctx, "mem://", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Put(ctx, "", "image/png", []byte("x"))
	assert.Error(t, err)
}

func TestOpen_RequiresPublicBaseURL(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "file://"+t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publicBaseUrl")

	_, err = Open(ctx, "gs://cakehaven-images", "  ")
	assert.Error(t, err)
}

func TestNew_FailsWithoutPublicBaseURL(t *testing.T) {
	_, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "file://" + t.TempDir()}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "gs://user:xxxxx@bucket", redact("gs://user:secret@bucket?access_id=1"))
	assert.Equal(t, "mem:", redact("mem:"))
}
