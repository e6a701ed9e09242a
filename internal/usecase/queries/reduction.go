package queries

//go:generate mockgen -source=reduction.go -destination=../../../tests/mock/queries/reduction_mock.go -package=queriesmock

import (
	"context"

	"github.com/romainbeka/dashboardsteph/internal/domain/reduction"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// ReductionView is a reduction as served, with its derived status and the
// uses left before the cap.
type ReductionView struct {
	ID            int              `json:"id"`
	Code          string           `json:"code"`
	Pourcentage   int              `json:"pourcentage"`
	Utiliser      int              `json:"utiliser"`
	MaxUsage      *int             `json:"maxUsage"`
	RemainingUses *int             `json:"remainingUses,omitempty"`
	Start         reduction.Date   `json:"start"`
	End           reduction.Date   `json:"end"`
	Status        reduction.Status `json:"status"`
	IsActive      bool             `json:"isActive"`
}

type ReductionQueries interface {
	List(ctx context.Context) ([]ReductionView, error)
}

type reductionQueriesImpl struct {
	source    shared.ReductionSource
	evaluator *reduction.Evaluator
}

func NewReductionQueries(source shared.ReductionSource, evaluator *reduction.Evaluator) ReductionQueries {
	return &reductionQueriesImpl{source: source, evaluator: evaluator}
}

// List recomputes every status on each call; nothing is cached.
func (q *reductionQueriesImpl) List(ctx context.Context) ([]ReductionView, error) {
	base, err := q.source.All(ctx)
	if err != nil {
		return nil, shared.TranslateRepoErr(err)
	}

	evaluated := q.evaluator.Apply(base)

	views := make([]ReductionView, 0, len(evaluated))
	if err := copier.Copy(&views, &evaluated); err != nil {
		return nil, errs.Wrap(err, "copy reductions into views")
	}
	for i := range views {
		views[i].RemainingUses = evaluated[i].RemainingUses()
	}
	return views, nil
}
