//go:build unit

package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/romainbeka/dashboardsteph/internal/infra"
	"github.com/romainbeka/dashboardsteph/internal/infra/assets"
	"github.com/romainbeka/dashboardsteph/internal/pkg/clock"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header, enough for content sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newImageStore(t *testing.T) (*assets.ImageStore, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.UnixMilli(1741996800000))
	store := assets.NewImageStore(filepath.Join(t.TempDir(), "uploads"), "/uploads", clk, nil)
	require.NoError(t, store.EnsureDir())
	return store, clk
}

func TestImageStore_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("reference is prefixed and keeps the filename", func(t *testing.T) {
		store, _ := newImageStore(t)

		ref, err := store.Store(ctx, "cover.png", pngBytes)
		require.NoError(t, err)

		assert.Equal(t, "/uploads/1741996800000_cover.png", ref)
		assert.True(t, strings.HasSuffix(ref, "_cover.png"))

		data, err := os.ReadFile(filepath.Join(store.Root(), "1741996800000_cover.png"))
		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
	})

	t.Run("directory components are stripped", func(t *testing.T) {
		store, _ := newImageStore(t)

		ref, err := store.Store(ctx, "../../etc/cover.png", pngBytes)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/1741996800000_cover.png", ref)
	})

	t.Run("same millisecond and name does not overwrite", func(t *testing.T) {
		store, _ := newImageStore(t)

		_, err := store.Store(ctx, "cover.png", pngBytes)
		require.NoError(t, err)

		_, err = store.Store(ctx, "cover.png", []byte("other"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindWriteFailure))
	})

	t.Run("distinct timestamps give distinct files", func(t *testing.T) {
		store, clk := newImageStore(t)

		first, err := store.Store(ctx, "cover.png", pngBytes)
		require.NoError(t, err)
		clk.Add(time.Millisecond)
		second, err := store.Store(ctx, "cover.png", pngBytes)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("empty filename is rejected", func(t *testing.T) {
		store, _ := newImageStore(t)

		_, err := store.Store(ctx, "  ", pngBytes)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})
}

func TestImageStore_Resolve(t *testing.T) {
	store, _ := newImageStore(t)
	ref, err := store.Store(context.Background(), "cover.png", pngBytes)
	require.NoError(t, err)
	name := strings.TrimPrefix(ref, "/uploads/")

	t.Run("existing file", func(t *testing.T) {
		full, err := store.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(store.Root(), name), full)
		assert.Equal(t, "image/png", store.ContentType(full))
	})

	t.Run("leading slash is ignored", func(t *testing.T) {
		_, err := store.Resolve("/" + name)
		require.NoError(t, err)
	})

	testCases := []struct {
		name  string
		rel   string
		errIs error
		kind  infra.RepositoryErrorKind
	}{
		{name: "empty path", rel: "", errIs: assets.ErrInvalidFilename},
		{name: "parent traversal", rel: "../secret.txt", errIs: assets.ErrOutsideRoot},
		{name: "nested traversal", rel: "a/../../secret.txt", errIs: assets.ErrOutsideRoot},
		{name: "root itself", rel: ".", errIs: assets.ErrOutsideRoot},
		{name: "missing file", rel: "nope.png", kind: infra.KindNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Resolve(tc.rel)
			require.Error(t, err)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
			}
			if tc.kind != "" {
				assert.True(t, infra.IsKind(err, tc.kind))
			}
		})
	}

	t.Run("directory is not served", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(store.Root(), "sub"), 0o755))
		_, err := store.Resolve("sub")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestImageStore_Remove(t *testing.T) {
	ctx := context.Background()
	store, _ := newImageStore(t)

	ref, err := store.Store(ctx, "cover.png", pngBytes)
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, ref))

	_, err = store.Resolve(strings.TrimPrefix(ref, "/uploads/"))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
