package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// DataAccessError reports a connectivity, SQL or constraint failure.
// The enclosing transaction has already been rolled back when it is returned.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func dataAccessError(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

// IsDataAccessError reports whether err is (or wraps) a DataAccessError
func IsDataAccessError(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}

// IsDuplicateKey checks if the error is a PostgreSQL unique constraint violation
// whose constraint name contains the given fragment. An empty fragment matches
// any unique violation.
func IsDuplicateKey(err error, constraintName string) bool {
	return hasPgCode(err, "23505", constraintName)
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation
// whose constraint name contains the given fragment
func IsForeignKeyViolation(err error, constraintName string) bool {
	return hasPgCode(err, "23503", constraintName)
}

func hasPgCode(err error, code, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
}
