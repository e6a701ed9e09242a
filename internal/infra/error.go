package infra

import (
	"errors"
	"log/slog"

	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	if slogger == nil {
		slogger = slog.Default()
	}
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// NOT_FOUND is an expected outcome for lookups and stays below error level.
	if kind == KindNotFound {
		slogger.Debug("Repository error: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	// msg is carried by RepositoryError itself; the cause only gains a stack.
	return RepositoryError{Kind: kind, msg: msg, err: errs.WithStack(err)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindStorageUnavailable RepositoryErrorKind = "STORAGE_UNAVAILABLE"
	KindCorruptData        RepositoryErrorKind = "CORRUPT_DATA"
	KindWriteFailure       RepositoryErrorKind = "WRITE_FAILURE"
)
