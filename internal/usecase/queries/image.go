package queries

//go:generate mockgen -source=image.go -destination=../../../tests/mock/queries/image_mock.go -package=queriesmock

import (
	"github.com/romainbeka/dashboardsteph/internal/usecase/shared"
)

type StoredImage struct {
	Path        string
	ContentType string
}

type ImageQueries interface {
	Open(rel string) (*StoredImage, error)
}

type imageQueriesImpl struct {
	reader shared.ImageReader
}

func NewImageQueries(reader shared.ImageReader) ImageQueries {
	return &imageQueriesImpl{reader: reader}
}

func (q *imageQueriesImpl) Open(rel string) (*StoredImage, error) {
	full, err := q.reader.Resolve(rel)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return &StoredImage{Path: full, ContentType: q.reader.ContentType(full)}, nil
}
