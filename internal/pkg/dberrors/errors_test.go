package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "identities_email_key"}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "staff_records_school_id_registration_no_key"}

	assert.True(t, IsDuplicateConstraintError(uniqueErr, "staff_records_school_id_registration_no_key"))
	assert.False(t, IsDuplicateConstraintError(uniqueErr, "identities_email_key"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503"}, "staff_records_school_id_registration_no_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("other"), "identities_email_key"))
}
