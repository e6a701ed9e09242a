package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"

	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/domain/reduction"
)

// JDRStore persists the whole catalog collection.
type JDRStore interface {
	Load(ctx context.Context) ([]jdr.JDR, error)
	Save(ctx context.Context, records []jdr.JDR) error
	NextID(records []jdr.JDR) int
}

type ImageStore interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
	Remove(ctx context.Context, ref string) error
}

type ImageReader interface {
	Resolve(rel string) (string, error)
	ContentType(full string) string
}

type ReductionSource interface {
	All(ctx context.Context) ([]reduction.Reduction, error)
}
