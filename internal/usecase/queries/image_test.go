//go:build unit

package queries_test

import (
	"testing"

	"github.com/romainbeka/dashboardsteph/internal/infra"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"
	sharedmock "github.com/romainbeka/dashboardsteph/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImageQueries_Open(t *testing.T) {
	t.Run("resolved file carries its sniffed type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := sharedmock.NewMockImageReader(ctrl)
		reader.EXPECT().Resolve("1_a.png").Return("/srv/uploads/1_a.png", nil)
		reader.EXPECT().ContentType("/srv/uploads/1_a.png").Return("image/png")

		img, err := queries.NewImageQueries(reader).Open("1_a.png")
		require.NoError(t, err)
		assert.Equal(t, &queries.StoredImage{Path: "/srv/uploads/1_a.png", ContentType: "image/png"}, img)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := sharedmock.NewMockImageReader(ctrl)
		reader.EXPECT().Resolve("nope.png").Return("", infra.WrapRepoErr(nil, infra.KindNotFound, "image not found", nil))

		_, err := queries.NewImageQueries(reader).Open("nope.png")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
