package pgx

import (
	"database/sql"
	"time"

	"gradeline/internal/domain"
)

type projectDAO struct {
	RepoName    string
	Name        string
	Description string
	Open        bool
	Deadline    sql.NullTime
	OwnerID     int64
	Secret      string
	CreatedAt   time.Time
}

const projectColumns = `repo_name, name, description, status_open, end_time, id_account, secret, created_at`

func (p *projectDAO) scanArgs() []any {
	return []any{&p.RepoName, &p.Name, &p.Description, &p.Open, &p.Deadline, &p.OwnerID, &p.Secret, &p.CreatedAt}
}

func (p projectDAO) toDomain() domain.Project {
	return domain.Project{
		RepoName:    p.RepoName,
		Name:        p.Name,
		Description: p.Description,
		Open:        p.Open,
		Deadline:    nullTimePtr(p.Deadline),
		OwnerID:     p.OwnerID,
		Secret:      p.Secret,
		CreatedAt:   p.CreatedAt,
	}
}

type teamDAO struct {
	ID            int64
	TeamRepoName  string
	RepoName      string
	WebhookSecret string
	LastCommit    sql.NullTime
	Finished      bool
	JoinedAt      time.Time
}

const teamColumns = `id_team, team_repo_name, repo_name, webhook_secret, last_commit, finished, join_project_at`

func (t *teamDAO) scanArgs() []any {
	return []any{&t.ID, &t.TeamRepoName, &t.RepoName, &t.WebhookSecret, &t.LastCommit, &t.Finished, &t.JoinedAt}
}

func (t teamDAO) toDomain() domain.Team {
	return domain.Team{
		ID:            t.ID,
		TeamRepoName:  t.TeamRepoName,
		RepoName:      t.RepoName,
		WebhookSecret: t.WebhookSecret,
		LastCommit:    nullTimePtr(t.LastCommit),
		Finished:      t.Finished,
		JoinedAt:      t.JoinedAt,
	}
}

type testDAO struct {
	TeamID   int64
	RepoName string
	StepName string
	TestName string
	Passed   bool
	Error    string
	Message  sql.NullString
}

const testColumns = `id_team, repo_name, step_name, test_name, status_passed, error, message`

func (t *testDAO) scanArgs() []any {
	return []any{&t.TeamID, &t.RepoName, &t.StepName, &t.TestName, &t.Passed, &t.Error, &t.Message}
}

func (t testDAO) toDomain() domain.Test {
	var msg *string
	if t.Message.Valid {
		m := t.Message.String
		msg = &m
	}
	return domain.Test{
		TeamID:   t.TeamID,
		RepoName: t.RepoName,
		StepName: t.StepName,
		TestName: t.TestName,
		Passed:   t.Passed,
		Error:    t.Error,
		Message:  msg,
	}
}

func nullTimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
