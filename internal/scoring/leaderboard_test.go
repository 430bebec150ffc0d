package scoring

import (
	"testing"
	"time"

	"gradeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func passed(teamID int64, step, name string) domain.Test {
	return domain.Test{TeamID: teamID, RepoName: "tp", StepName: step, TestName: name, Passed: true, Error: domain.PassedError}
}

func failed(teamID int64, step, name string) domain.Test {
	return domain.Test{TeamID: teamID, RepoName: "tp", StepName: step, TestName: name, Error: "E1", Message: strPtr("boom")}
}

func sampleGraph() domain.ProjectGraph {
	return domain.ProjectGraph{
		Project: domain.Project{RepoName: "tp", Name: "TP", Open: true},
		Steps: []domain.Step{
			{RepoName: "tp", Name: "s2", Title: "Second", Order: 2},
			{RepoName: "tp", Name: "s1", Title: "First", Order: 1},
		},
		Teams: []domain.TeamGraph{
			{
				Team:    domain.Team{ID: 1, TeamRepoName: "tp-bob"},
				Members: []domain.Account{{Username: "bob", FirstName: "Bob", LastName: "B"}},
			},
			{
				Team:    domain.Team{ID: 2, TeamRepoName: "tp-alice-carol"},
				Members: []domain.Account{{Username: "alice", FirstName: "Alice", LastName: "A"}, {Username: "carol"}},
				Tests: []domain.Test{
					passed(2, "s1", "t1"),
					failed(2, "s1", "t2"),
					passed(2, "s2", "t3"),
				},
			},
			{
				Team:  domain.Team{ID: 3, TeamRepoName: "tp-dave"},
				Tests: []domain.Test{passed(3, "s1", "t1")},
			},
			{
				Team: domain.Team{ID: 4, TeamRepoName: "tp-erin"},
			},
		},
	}
}

func TestBuildLeaderboard(t *testing.T) {
	board := BuildLeaderboard(sampleGraph())
	require.Len(t, board, 4)

	// s1: 1/2 passed of 8 points -> trunc(4.9) = 4; s2: 4/4
	assert.Equal(t, TeamScore{
		TeamID:          2,
		TeamRepoName:    "tp-alice-carol",
		Members:         []string{"Alice A", "carol"},
		EarnedPoints:    8,
		MaxPoints:       12,
		PercentFinished: 66,
	}, board[0])

	assert.Equal(t, int64(3), board[1].TeamID)
	assert.Equal(t, 4, board[1].EarnedPoints)
	assert.Equal(t, 4, board[1].MaxPoints)
	assert.Equal(t, 100, board[1].PercentFinished)

	// ties keep load order
	assert.Equal(t, int64(1), board[2].TeamID)
	assert.Equal(t, int64(4), board[3].TeamID)
	for _, zero := range board[2:] {
		assert.Equal(t, 0, zero.EarnedPoints)
		assert.Equal(t, 0, zero.MaxPoints)
		assert.Equal(t, 0, zero.PercentFinished)
	}
}

func TestBuildLeaderboard_Properties(t *testing.T) {
	graph := sampleGraph()
	// a bigger team with mixed results
	big := domain.TeamGraph{Team: domain.Team{ID: 5}}
	for i := 0; i < 7; i++ {
		name := string(rune('a' + i))
		if i%3 == 0 {
			big.Tests = append(big.Tests, failed(5, "s1", name))
		} else {
			big.Tests = append(big.Tests, passed(5, "s2", name))
		}
	}
	graph.Teams = append(graph.Teams, big)

	board := BuildLeaderboard(graph)
	for i, score := range board {
		assert.GreaterOrEqual(t, score.EarnedPoints, 0)
		assert.LessOrEqual(t, score.EarnedPoints, score.MaxPoints)
		assert.GreaterOrEqual(t, score.PercentFinished, 0)
		assert.LessOrEqual(t, score.PercentFinished, 100)
		if i > 0 {
			assert.GreaterOrEqual(t, board[i-1].EarnedPoints, score.EarnedPoints)
		}
	}
}

func TestBuildLeaderboard_NoTeams(t *testing.T) {
	board := BuildLeaderboard(domain.ProjectGraph{Project: domain.Project{RepoName: "tp"}})
	assert.Empty(t, board)
}

func TestBuildLeaderboard_SinglePassingTest(t *testing.T) {
	graph := domain.ProjectGraph{
		Steps: []domain.Step{{Name: "s1"}},
		Teams: []domain.TeamGraph{{Team: domain.Team{ID: 1}, Tests: []domain.Test{passed(1, "s1", "t1")}}},
	}
	board := BuildLeaderboard(graph)
	require.Len(t, board, 1)
	assert.Equal(t, 4, board[0].EarnedPoints)
	assert.Equal(t, 4, board[0].MaxPoints)
	assert.Equal(t, 100, board[0].PercentFinished)

	graph.Teams[0].Tests = nil
	board = BuildLeaderboard(graph)
	assert.Equal(t, 0, board[0].EarnedPoints)
	assert.Equal(t, 0, board[0].MaxPoints)
	assert.Equal(t, 0, board[0].PercentFinished)
}

func TestRank(t *testing.T) {
	board := BuildLeaderboard(sampleGraph())
	assert.Equal(t, 1, Rank(board, 2))
	assert.Equal(t, 2, Rank(board, 3))
	assert.Equal(t, 0, Rank(board, 99))
}

func TestProgress(t *testing.T) {
	progress := Progress(sampleGraph(), 2)
	require.Len(t, progress, 2)

	assert.Equal(t, "s1", progress[0].Name)
	assert.Equal(t, 2, progress[0].TestCount)
	assert.False(t, progress[0].AllPassed)
	assert.Equal(t, "t2", progress[0].Tests[1].Name)
	assert.Equal(t, "boom", *progress[0].Tests[1].Message)

	assert.Equal(t, "s2", progress[1].Name)
	assert.True(t, progress[1].AllPassed)

	ownerView := Progress(sampleGraph(), 0)
	require.Len(t, ownerView, 2)
	assert.Zero(t, ownerView[0].TestCount)
	assert.Empty(t, ownerView[0].Tests)
}

func TestHeader(t *testing.T) {
	graph := sampleGraph()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-90 * time.Minute)
	graph.Teams[1].Team.LastCommit = &last

	board := BuildLeaderboard(graph)

	h := Header(graph, board, 2, now)
	assert.Equal(t, 1, h.Rank)
	assert.Equal(t, 2, h.StepsTotal)
	assert.Equal(t, 1, h.StepsFinished)
	assert.False(t, h.TeamFinished)
	assert.Equal(t, "1 hours", h.LastCommitAge)

	h = Header(graph, board, 3, now)
	assert.Equal(t, 2, h.Rank)
	assert.Equal(t, 2, h.StepsFinished)
	assert.True(t, h.TeamFinished)
	assert.Empty(t, h.LastCommitAge)

	owner := Header(graph, board, 0, now)
	assert.Zero(t, owner.Rank)
	assert.Equal(t, "TP", owner.Title)
}
