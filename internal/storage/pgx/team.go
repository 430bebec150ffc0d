package pgx

import (
	"context"
	"errors"
	"time"

	"gradeline/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetTeamByRepoName(ctx context.Context, teamRepoName string) (*domain.Team, error) {
	query := `select ` + teamColumns + ` from teams where team_repo_name = $1;`
	return s.getTeam(ctx, query, teamRepoName)
}

func (s *Storage) GetTeamBySecret(ctx context.Context, secret string) (*domain.Team, error) {
	query := `select ` + teamColumns + ` from teams where webhook_secret = $1;`
	return s.getTeam(ctx, query, secret)
}

func (s *Storage) getTeam(ctx context.Context, query string, arg any) (*domain.Team, error) {
	var dao teamDAO
	err := s.getExecutor(ctx).QueryRow(ctx, query, arg).Scan(dao.scanArgs()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	team := dao.toDomain()
	return &team, nil
}

func (s *Storage) UpdateLastCommit(ctx context.Context, teamID int64, at time.Time) error {
	const query = `update teams set last_commit = $2 where id_team = $1;`

	tag, err := s.getExecutor(ctx).Exec(ctx, query, teamID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

// CreateTeamWithMembers Must use in business layer, only with tx
func (s *Storage) CreateTeamWithMembers(ctx context.Context, team domain.Team, memberIDs []int64) (int64, error) {
	const queryTeam = `insert into teams (team_repo_name, repo_name, webhook_secret)
	values ($1, $2, $3) returning id_team;`

	var id int64
	err := s.getExecutor(ctx).QueryRow(ctx, queryTeam, team.TeamRepoName, team.RepoName, team.WebhookSecret).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}

	const queryMember = `insert into account_team (id_account, id_team) values ($1, $2) on conflict do nothing;`
	for _, accountID := range memberIDs {
		if _, err := s.getExecutor(ctx).Exec(ctx, queryMember, accountID, id); err != nil {
			return 0, translateError(err)
		}
	}

	return id, nil
}
