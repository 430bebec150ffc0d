package pgx

import (
	"context"
	"errors"

	"gradeline/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Storage) ListSteps(ctx context.Context, repoName string) ([]domain.Step, error) {
	const query = `select repo_name, step_name, title, description, num_order
	from steps where repo_name = $1 order by num_order, step_name;`

	rows, err := s.getExecutor(ctx).Query(ctx, query, repoName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Step, error) {
		var step domain.Step
		err := row.Scan(&step.RepoName, &step.Name, &step.Title, &step.Description, &step.Order)
		return step, err
	})
}

func (s *Storage) ListStepNames(ctx context.Context, repoName string) ([]string, error) {
	const query = `select step_name from steps where repo_name = $1 order by num_order, step_name;`

	rows, err := s.getExecutor(ctx).Query(ctx, query, repoName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ListPinnedSteps returns the steps that still hold tests of teams other than
// excludeTeamID. Pass zero to consider every team.
func (s *Storage) ListPinnedSteps(ctx context.Context, repoName string, excludeTeamID int64) ([]string, error) {
	const query = `select distinct step_name from tests where repo_name = $1 and id_team <> $2;`

	rows, err := s.getExecutor(ctx).Query(ctx, query, repoName, excludeTeamID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *Storage) ListTeamTests(ctx context.Context, teamID int64) ([]domain.Test, error) {
	query := `select ` + testColumns + ` from tests where id_team = $1 order by step_name, test_name;`

	rows, err := s.getExecutor(ctx).Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Test, error) {
		var dao testDAO
		if err := row.Scan(dao.scanArgs()...); err != nil {
			return domain.Test{}, err
		}
		return dao.toDomain(), nil
	})
}

// CreateStep is a no-op when the step already exists.
func (s *Storage) CreateStep(ctx context.Context, step domain.Step) error {
	const query = `insert into steps (repo_name, step_name, title, description, num_order)
	values ($1, $2, $3, $4, $5)
	on conflict (repo_name, step_name) do nothing;`

	_, err := s.getExecutor(ctx).Exec(ctx, query, step.RepoName, step.Name, step.Title, step.Description, step.Order)
	return translateError(err)
}

func (s *Storage) UpdateStepText(ctx context.Context, repoName, stepName, title, description string) error {
	const query = `update steps set title = $3, description = $4 where repo_name = $1 and step_name = $2;`

	tag, err := s.getExecutor(ctx).Exec(ctx, query, repoName, stepName, title, description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStepNotFound
	}
	return nil
}

func (s *Storage) DeleteStep(ctx context.Context, repoName, stepName string) error {
	const query = `delete from steps where repo_name = $1 and step_name = $2;`

	_, err := s.getExecutor(ctx).Exec(ctx, query, repoName, stepName)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.ErrStepInUse
	}
	return err
}

func (s *Storage) UpsertTest(ctx context.Context, test domain.Test) error {
	const query = `insert into tests (id_team, repo_name, step_name, test_name, status_passed, error, message)
	values ($1, $2, $3, $4, $5, $6, $7)
	on conflict (id_team, repo_name, step_name, test_name)
	do update set status_passed = excluded.status_passed, error = excluded.error, message = excluded.message;`

	_, err := s.getExecutor(ctx).Exec(ctx, query,
		test.TeamID, test.RepoName, test.StepName, test.TestName, test.Passed, test.Error, test.Message,
	)
	return translateError(err)
}

func (s *Storage) DeleteTest(ctx context.Context, teamID int64, repoName string, key domain.TestKey) error {
	const query = `delete from tests where id_team = $1 and repo_name = $2 and step_name = $3 and test_name = $4;`

	_, err := s.getExecutor(ctx).Exec(ctx, query, teamID, repoName, key.StepName, key.TestName)
	return err
}
