//go:build unit

package infra_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/romainbeka/dashboardsteph/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("message appears once", func(t *testing.T) {
		err := infra.WrapRepoErr(nil, infra.KindCorruptData, "failed to decode data file", errors.New("unexpected end of JSON input"))

		require.Error(t, err)
		assert.Equal(t, "CORRUPT_DATA: failed to decode data file: unexpected end of JSON input", err.Error())
		assert.Equal(t, 1, strings.Count(err.Error(), "failed to decode data file"))
	})

	t.Run("without cause", func(t *testing.T) {
		err := infra.WrapRepoErr(nil, infra.KindCorruptData, "data file is not a JSON array", nil)

		assert.Equal(t, "CORRUPT_DATA: data file is not a JSON array", err.Error())
		assert.True(t, infra.IsKind(err, infra.KindCorruptData))
	})

	t.Run("cause stays reachable", func(t *testing.T) {
		err := infra.WrapRepoErr(nil, infra.KindStorageUnavailable, "failed to read data file", fs.ErrNotExist)

		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.True(t, infra.IsKind(err, infra.KindStorageUnavailable))
		assert.False(t, infra.IsKind(err, infra.KindWriteFailure))
	})
}
