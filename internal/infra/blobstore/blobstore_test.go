package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reports/abc.pdf", strings.NewReader("%PDF data")))

	body, err := store.Get(ctx, "reports/abc.pdf")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF data", string(data))

	require.NoError(t, store.Delete(ctx, "reports/abc.pdf"))

	_, err = store.Get(ctx, "reports/abc.pdf")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestDiskStoreNotFound(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	ctx := context.Background()

	_, err := store.Get(ctx, "reports/missing.pdf")
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "reports/missing.pdf"), ErrArtifactNotFound)
}

func TestDiskStoreRefStaysInsideBaseDir(t *testing.T) {
	base := t.TempDir()
	store := NewDiskStore(base)
	ctx := context.Background()

	outside := filepath.Join(filepath.Dir(base), "escape.pdf")
	os.Remove(outside)

	require.NoError(t, store.Put(ctx, "../escape.pdf", strings.NewReader("x")))

	_, err := os.Stat(outside)
	assert.True(t, os.IsNotExist(err), "ref must not escape the base dir")

	_, err = os.Stat(filepath.Join(base, "escape.pdf"))
	assert.NoError(t, err)
}
