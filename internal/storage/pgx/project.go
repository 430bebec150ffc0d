package pgx

import (
	"context"
	"errors"

	"gradeline/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetProjectByRepoName(ctx context.Context, repoName string) (*domain.Project, error) {
	query := `select ` + projectColumns + ` from projects where repo_name = $1;`
	return s.getProject(ctx, query, repoName)
}

func (s *Storage) GetProjectBySecret(ctx context.Context, secret string) (*domain.Project, error) {
	query := `select ` + projectColumns + ` from projects where secret = $1;`
	return s.getProject(ctx, query, secret)
}

func (s *Storage) getProject(ctx context.Context, query string, arg string) (*domain.Project, error) {
	var dao projectDAO
	err := s.getExecutor(ctx).QueryRow(ctx, query, arg).Scan(dao.scanArgs()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	project := dao.toDomain()
	return &project, nil
}

func (s *Storage) CreateProject(ctx context.Context, project domain.Project) error {
	const query = `insert into projects (repo_name, name, description, status_open, end_time, id_account, secret)
	values ($1, $2, $3, $4, $5, $6, $7);`

	_, err := s.getExecutor(ctx).Exec(ctx, query,
		project.RepoName, project.Name, project.Description, project.Open,
		project.Deadline, project.OwnerID, project.Secret,
	)
	return translateError(err)
}

// GetProjectGraph loads a project with its steps, teams, members and tests
// from one snapshot. Teams come back in join order, which is the tie-break
// order of the leaderboard.
func (s *Storage) GetProjectGraph(ctx context.Context, repoName string) (*domain.ProjectGraph, error) {
	var graph *domain.ProjectGraph
	err := s.txManager.WithSnapshot(ctx, func(ctx context.Context) error {
		var err error
		graph, err = s.loadProjectGraph(ctx, repoName)
		return err
	})
	return graph, err
}

func (s *Storage) loadProjectGraph(ctx context.Context, repoName string) (*domain.ProjectGraph, error) {
	project, err := s.GetProjectByRepoName(ctx, repoName)
	if err != nil {
		return nil, err
	}

	steps, err := s.ListSteps(ctx, repoName)
	if err != nil {
		return nil, err
	}

	const queryTeams = `select ` + teamColumns + ` from teams where repo_name = $1 order by join_project_at, id_team;`
	rows, err := s.getExecutor(ctx).Query(ctx, queryTeams, repoName)
	if err != nil {
		return nil, err
	}
	teams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TeamGraph, error) {
		var dao teamDAO
		if err := row.Scan(dao.scanArgs()...); err != nil {
			return domain.TeamGraph{}, err
		}
		return domain.TeamGraph{Team: dao.toDomain()}, nil
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.TeamGraph, len(teams))
	for i := range teams {
		teams[i].Members = make([]domain.Account, 0)
		teams[i].Tests = make([]domain.Test, 0)
		byID[teams[i].Team.ID] = &teams[i]
	}

	const queryMembers = `select at.id_team, a.id_account, a.username, a.first_name, a.last_name, a.email
	from account_team at
	join accounts a on a.id_account = at.id_account
	join teams t on t.id_team = at.id_team
	where t.repo_name = $1
	order by a.username;`

	memberRows, err := s.getExecutor(ctx).Query(ctx, queryMembers, repoName)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var (
			teamID  int64
			account domain.Account
		)
		if err := memberRows.Scan(&teamID, &account.ID, &account.Username, &account.FirstName, &account.LastName, &account.Email); err != nil {
			return nil, err
		}
		if tg, ok := byID[teamID]; ok {
			tg.Members = append(tg.Members, account)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, err
	}

	const queryTests = `select ` + testColumns + ` from tests where repo_name = $1 order by id_team, step_name, test_name;`
	testRows, err := s.getExecutor(ctx).Query(ctx, queryTests, repoName)
	if err != nil {
		return nil, err
	}
	defer testRows.Close()

	for testRows.Next() {
		var dao testDAO
		if err := testRows.Scan(dao.scanArgs()...); err != nil {
			return nil, err
		}
		if tg, ok := byID[dao.TeamID]; ok {
			tg.Tests = append(tg.Tests, dao.toDomain())
		}
	}
	if err := testRows.Err(); err != nil {
		return nil, err
	}

	return &domain.ProjectGraph{
		Project: *project,
		Steps:   steps,
		Teams:   teams,
	}, nil
}

// ListExercises returns the projects the account owns or has a team in.
func (s *Storage) ListExercises(ctx context.Context, accountID int64) ([]domain.Exercise, error) {
	const query = `select p.repo_name, p.name, p.description, p.status_open, t.finished, p.id_account = $1
	from projects p
	left join teams t on t.repo_name = p.repo_name
		and exists (select 1 from account_team at where at.id_team = t.id_team and at.id_account = $1)
	where p.id_account = $1 or t.id_team is not null
	order by p.created_at desc, p.repo_name;`

	rows, err := s.getExecutor(ctx).Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var ex domain.Exercise
		if err := rows.Scan(&ex.RepoName, &ex.Title, &ex.Description, &ex.Open, &ex.TeamFinished, &ex.Owned); err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
