package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the application reacts to
const (
	CodeUniqueViolation           = "23505"
	CodeCheckViolation            = "23514"
	CodeInvalidDatetimeFormat     = "22007"
	CodeDatetimeFieldOverflow     = "22008"
	CodeInvalidTextRepresentation = "22P02"
	CodeUndefinedTable            = "42P01"
)

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, c := range codes {
		if pgErr.Code == c {
			return true
		}
	}
	return false
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports a unique violation on any constraint
func IsUniqueViolation(err error) bool {
	return hasCode(err, CodeUniqueViolation)
}

// IsCheckViolation reports a CHECK constraint failure, e.g. a slot ending before it starts
func IsCheckViolation(err error) bool {
	return hasCode(err, CodeCheckViolation)
}

// IsInvalidInput reports values PostgreSQL could not convert, such as a malformed TIME literal
func IsInvalidInput(err error) bool {
	return hasCode(err, CodeInvalidDatetimeFormat, CodeDatetimeFieldOverflow, CodeInvalidTextRepresentation)
}

// IsUndefinedTable reports a query against a table that does not exist, usually a missing migration
func IsUndefinedTable(err error) bool {
	return hasCode(err, CodeUndefinedTable)
}
