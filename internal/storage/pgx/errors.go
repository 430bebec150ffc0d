package pgx

import (
	"errors"

	"gradeline/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translateError maps constraint violations to domain errors by constraint
// name. Anything else is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		switch pgErr.ConstraintName {
		case "teams_team_repo_name_key":
			return domain.ErrTeamExists
		case "teams_webhook_secret_key", "projects_secret_key":
			return domain.ErrTokenExists
		case "projects_pkey":
			return domain.ErrProjectExists
		case "accounts_username_key":
			return domain.ErrAccountExists
		}
	case foreignKeyViolation:
		switch pgErr.ConstraintName {
		case "teams_repo_name_fkey", "steps_repo_name_fkey":
			return domain.ErrNoParentProject
		case "tests_step_fkey":
			return domain.ErrStepNotFound
		case "account_team_id_account_fkey", "projects_id_account_fkey":
			return domain.ErrAccountNotFound
		}
	}
	return err
}
