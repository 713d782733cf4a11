package infra

import (
	"errors"
	"log/slog"

	"airvoucher-admin/internal/pkg/errs"
	"airvoucher-admin/internal/pkg/pgconv"
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

// WrapRepoErr wraps err with a kind; DB_FAILURE when no kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg,
			slog.String("kind", string(k)),
			slog.Any("error", err),
		)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

// WrapWriteErr classifies constraint violations raised by INSERT/UPDATE/DELETE.
func WrapWriteErr(msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return WrapRepoErr(msg, err, KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return WrapRepoErr(msg, err, KindForeignKeyViolated)
	default:
		return WrapRepoErr(msg, err)
	}
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
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
