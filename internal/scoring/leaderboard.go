package scoring

import (
	"math"
	"sort"

	"gradeline/internal/domain"
)

type TeamScore struct {
	TeamID          int64
	TeamRepoName    string
	Members         []string
	EarnedPoints    int
	MaxPoints       int
	PercentFinished int
}

// BuildLeaderboard scores every team of the project and sorts them by earned
// points, highest first. Teams with equal points keep their load order.
//
// The maximum is per team: PointsPerTest times the number of tests the team
// reported, so teams with different test counts per step stay comparable.
func BuildLeaderboard(graph domain.ProjectGraph) []TeamScore {
	board := make([]TeamScore, 0, len(graph.Teams))
	order := stepOrder(graph.Steps)

	for _, tg := range graph.Teams {
		board = append(board, scoreTeam(tg, order))
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].EarnedPoints > board[j].EarnedPoints
	})

	return board
}

// Rank returns the 1-based position of the team, or 0 when it is absent.
func Rank(board []TeamScore, teamID int64) int {
	for i, score := range board {
		if score.TeamID == teamID {
			return i + 1
		}
	}
	return 0
}

type stepTally struct {
	tests  int
	passed int
}

func scoreTeam(tg domain.TeamGraph, order map[string]int) TeamScore {
	score := TeamScore{
		TeamID:       tg.Team.ID,
		TeamRepoName: tg.Team.TeamRepoName,
		Members:      make([]string, 0, len(tg.Members)),
	}
	for _, member := range tg.Members {
		score.Members = append(score.Members, member.DisplayName())
	}

	tallies := make(map[string]*stepTally)
	names := make([]string, 0)
	for _, test := range tg.Tests {
		tally, ok := tallies[test.StepName]
		if !ok {
			tally = &stepTally{}
			tallies[test.StepName] = tally
			names = append(names, test.StepName)
		}
		tally.tests++
		if test.Passed {
			tally.passed++
		}
	}
	sortSteps(names, order)

	gained := 0
	for _, name := range names {
		tally := tallies[name]
		if tally.tests == 0 {
			continue
		}
		stepMax := tally.tests * PointsPerTest
		score.MaxPoints += stepMax
		gained += int(math.Trunc(EarnedPoints(float64(tally.passed)/float64(tally.tests), float64(stepMax))))
	}

	score.EarnedPoints = gained
	if score.MaxPoints > 0 {
		score.PercentFinished = int(math.Trunc(100 * float64(gained) / float64(score.MaxPoints)))
	}

	return score
}

func stepOrder(steps []domain.Step) map[string]int {
	order := make(map[string]int, len(steps))
	for _, step := range steps {
		order[step.Name] = step.Order
	}
	return order
}

// sortSteps orders by step order, then name; unknown steps go last.
func sortSteps(names []string, order map[string]int) {
	sort.SliceStable(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
}
