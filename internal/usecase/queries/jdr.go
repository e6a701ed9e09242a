package queries

//go:generate mockgen -source=jdr.go -destination=../../../tests/mock/queries/jdr_mock.go -package=queriesmock

import (
	"context"

	"github.com/romainbeka/dashboardsteph/internal/domain/jdr"
	"github.com/romainbeka/dashboardsteph/internal/usecase/shared"
)

type JDRQueries interface {
	List(ctx context.Context) ([]jdr.JDR, error)
	RelationAudit(ctx context.Context) ([]jdr.Finding, error)
}

type jdrQueriesImpl struct {
	store shared.JDRStore
}

func NewJDRQueries(store shared.JDRStore) JDRQueries {
	return &jdrQueriesImpl{store: store}
}

// List returns the stored collection unmodified.
func (q *jdrQueriesImpl) List(ctx context.Context) ([]jdr.JDR, error) {
	records, err := q.store.Load(ctx)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}
	return records, nil
}

func (q *jdrQueriesImpl) RelationAudit(ctx context.Context) ([]jdr.Finding, error) {
	records, err := q.List(ctx)
	if err != nil {
		return nil, err
	}
	return jdr.Audit(records), nil
}
