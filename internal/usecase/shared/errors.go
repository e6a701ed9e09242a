package shared

import (
	"github.com/romainbeka/dashboardsteph/internal/infra"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
)

// TranslateRepoErr marks infrastructure errors with the usecase sentinel
// matching their kind. Errors already carrying a sentinel pass through.
func TranslateRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindStorageUnavailable):
		return errs.Mark(err, errs.ErrStorageUnavailable)
	case infra.IsKind(err, infra.KindCorruptData):
		return errs.Mark(err, errs.ErrCorruptData)
	case infra.IsKind(err, infra.KindWriteFailure):
		return errs.Mark(err, errs.ErrWriteFailure)
	default:
		return err
	}
}
