package service

import (
	"context"
	"testing"

	"gradeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func exerciseGraph() *domain.ProjectGraph {
	return &domain.ProjectGraph{
		Project: domain.Project{RepoName: "tp", Name: "TP", OwnerID: 1, Open: true},
		Steps:   []domain.Step{{RepoName: "tp", Name: "s1", Order: 1}},
		Teams: []domain.TeamGraph{
			{
				Team:    domain.Team{ID: 10, TeamRepoName: "tp-alice"},
				Members: []domain.Account{{ID: 2, Username: "alice"}},
				Tests:   []domain.Test{{TeamID: 10, StepName: "s1", TestName: "t1", Passed: true, Error: "OK"}},
			},
			{
				Team:    domain.Team{ID: 11, TeamRepoName: "tp-bob"},
				Members: []domain.Account{{ID: 3, Username: "bob"}},
			},
		},
	}
}

func TestService_Scoreboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("GetProjectGraph", ctx, "tp").Return(exerciseGraph(), nil)

	board, err := f.svc.Scoreboard(ctx, "tp", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, board.Header.Rank)
	assert.Equal(t, 1, board.Header.StepsFinished)
	require.Len(t, board.Steps, 1)
	assert.Equal(t, 1, board.Steps[0].TestCount)

	owner, err := f.svc.Scoreboard(ctx, "tp", 1)
	require.NoError(t, err)
	assert.Zero(t, owner.Header.Rank)
	assert.Zero(t, owner.Steps[0].TestCount)

	_, err = f.svc.Scoreboard(ctx, "tp", 99)
	assert.ErrorIs(t, err, domain.ErrNotInExercise)
}

func TestService_Leaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("GetProjectGraph", ctx, "tp").Return(exerciseGraph(), nil)

	board, err := f.svc.Leaderboard(ctx, "tp", 0)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, int64(10), board[0].TeamID)
	assert.Equal(t, 4, board[0].EarnedPoints)

	_, err = f.svc.Leaderboard(ctx, "tp", 42)
	assert.ErrorIs(t, err, domain.ErrNotInExercise)
}

func TestService_UpdateStep(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.projects.On("GetProjectByRepoName", ctx, "tp").Return(&domain.Project{RepoName: "tp", OwnerID: 1}, nil)
	f.results.On("UpdateStepText", ctx, "tp", "s1", "Setup", "Install the toolchain").Return(nil).Once()

	require.NoError(t, f.svc.UpdateStep(ctx, "tp", "s1", 1, "Setup", "Install the toolchain"))
	assert.ErrorIs(t, f.svc.UpdateStep(ctx, "tp", "s1", 2, "Setup", ""), domain.ErrNotOwner)
	assert.ErrorIs(t, f.svc.UpdateStep(ctx, "tp", "s1", 1, "", ""), domain.ErrValidation)
}

func TestService_RegisterAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("existing git user", func(t *testing.T) {
		f := newFixture(t)
		f.git.On("UserExists", ctx, "alice").Return(true, nil).Once()
		f.accounts.On("CreateAccount", ctx, domain.Account{Username: "alice", FirstName: "Alice", Email: "a@x.io"}).
			Return(int64(5), nil).Once()

		account, err := f.svc.RegisterAccount(ctx, RegisterAccountRequest{Username: "alice", FirstName: "Alice", Email: "a@x.io"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), account.ID)
	})

	t.Run("new git user", func(t *testing.T) {
		f := newFixture(t)
		f.git.On("UserExists", ctx, "bob").Return(false, nil).Once()
		f.git.On("CreateUser", ctx, domain.ForgeUser{Username: "bob", Email: "b@x.io", FullName: "Bob B", Password: "pw"}).
			Return(nil).Once()
		f.accounts.On("CreateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(int64(6), nil).Once()

		_, err := f.svc.RegisterAccount(ctx, RegisterAccountRequest{
			Username: "bob", FirstName: "Bob", LastName: "B", Email: "b@x.io", Password: "pw",
		})
		require.NoError(t, err)
	})

	t.Run("new git user without password", func(t *testing.T) {
		f := newFixture(t)
		f.git.On("UserExists", ctx, "carol").Return(false, nil).Once()

		_, err := f.svc.RegisterAccount(ctx, RegisterAccountRequest{Username: "carol", Email: "c@x.io"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
