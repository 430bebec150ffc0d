package pgx

import (
	"errors"
	"fmt"
	"testing"

	"gradeline/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		code       string
		constraint string
		want       error
	}{
		{uniqueViolation, "teams_team_repo_name_key", domain.ErrTeamExists},
		{uniqueViolation, "teams_webhook_secret_key", domain.ErrTokenExists},
		{uniqueViolation, "projects_secret_key", domain.ErrTokenExists},
		{uniqueViolation, "projects_pkey", domain.ErrProjectExists},
		{uniqueViolation, "accounts_username_key", domain.ErrAccountExists},
		{foreignKeyViolation, "teams_repo_name_fkey", domain.ErrNoParentProject},
		{foreignKeyViolation, "tests_step_fkey", domain.ErrStepNotFound},
		{foreignKeyViolation, "account_team_id_account_fkey", domain.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: tt.code, ConstraintName: tt.constraint})
			assert.ErrorIs(t, translateError(err), tt.want)
		})
	}

	t.Run("parent project is a missing project", func(t *testing.T) {
		err := translateError(&pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "steps_repo_name_fkey"})
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})

	t.Run("unknown constraint passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "other_key"}
		assert.Same(t, pgErr, translateError(pgErr))
	})

	t.Run("non postgres error passes through", func(t *testing.T) {
		plain := errors.New("conn reset")
		assert.Equal(t, plain, translateError(plain))
	})
}
