//go:build unit || e2e

package builder

import (
	"time"

	"github.com/romainbeka/dashboardsteph/internal/domain/reduction"
)

type ReductionBuilder struct {
	ID          int
	Code        string
	Pourcentage int
	Utiliser    int
	MaxUsage    *int
	Start       reduction.Date
	End         reduction.Date
	IsActive    bool
}

func NewReductionBuilder() *ReductionBuilder {
	return &ReductionBuilder{
		ID:          1,
		Code:        "TEST10",
		Pourcentage: 10,
		Start:       reduction.NewDate(2025, time.March, 1),
		End:         reduction.NewDate(2025, time.March, 31),
		IsActive:    true,
	}
}

func (b *ReductionBuilder) With(mutate func(*ReductionBuilder)) *ReductionBuilder {
	mutate(b)
	return b
}

func (b *ReductionBuilder) WithWindow(start, end reduction.Date) *ReductionBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReductionBuilder) Build() reduction.Reduction {
	return reduction.Reduction{
		ID:          b.ID,
		Code:        b.Code,
		Pourcentage: b.Pourcentage,
		Utiliser:    b.Utiliser,
		MaxUsage:    b.MaxUsage,
		Start:       b.Start,
		End:         b.End,
		IsActive:    b.IsActive,
	}
}
