// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrOverlap             = errors.New("exclusion constraint violation")
	ErrStatusMismatch      = errors.New("status precondition not met")
	ErrIllegalTransition   = errors.New("illegal status transition")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, pgErrCodeUniqueViolation)
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgErrCodeForeignKeyViolation)
}

// IsExclusionViolation checks if the error is a PostgreSQL exclusion constraint violation.
func IsExclusionViolation(err error) bool {
	return hasCode(err, pgErrCodeExclusionViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// WrapDuplicateKeyError wraps a duplicate key error with context about which constraint was violated.
func WrapDuplicateKeyError(err error, context string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
}

// WrapForeignKeyError wraps a foreign key violation with context.
func WrapForeignKeyError(err error, context string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
}

// wrapConstraintError maps constraint violations onto sentinels, leaving other errors untouched.
func wrapConstraintError(err error, context string) error {
	switch {
	case IsDuplicateKeyError(err):
		return WrapDuplicateKeyError(err, context)
	case IsForeignKeyViolation(err):
		return WrapForeignKeyError(err, context)
	case IsExclusionViolation(err):
		return fmt.Errorf("%s: %w", context, ErrOverlap)
	default:
		return fmt.Errorf("%s: %w", context, err)
	}
}
