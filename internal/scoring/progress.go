package scoring

import (
	"fmt"
	"sort"
	"time"

	"gradeline/internal/domain"
)

type TestResult struct {
	Name    string
	Passed  bool
	Error   string
	Message *string
}

type StepProgress struct {
	Name        string
	Title       string
	Description string
	TestCount   int
	AllPassed   bool
	Tests       []TestResult
}

// Progress lists every project step with the given team's results under it.
// A zero teamID (an owner with no team) yields the steps without tests.
func Progress(graph domain.ProjectGraph, teamID int64) []StepProgress {
	steps := make([]domain.Step, len(graph.Steps))
	copy(steps, graph.Steps)
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].Order != steps[j].Order {
			return steps[i].Order < steps[j].Order
		}
		return steps[i].Name < steps[j].Name
	})

	var tests []domain.Test
	if tg := findTeam(graph, teamID); tg != nil {
		tests = tg.Tests
	}

	out := make([]StepProgress, 0, len(steps))
	for _, step := range steps {
		sp := StepProgress{
			Name:        step.Name,
			Title:       step.Title,
			Description: step.Description,
			AllPassed:   true,
			Tests:       make([]TestResult, 0),
		}
		for _, test := range tests {
			if test.StepName != step.Name {
				continue
			}
			sp.TestCount++
			if !test.Passed {
				sp.AllPassed = false
			}
			sp.Tests = append(sp.Tests, TestResult{
				Name:    test.TestName,
				Passed:  test.Passed,
				Error:   test.Error,
				Message: test.Message,
			})
		}
		out = append(out, sp)
	}
	return out
}

type TeamHeader struct {
	Title         string
	RepoName      string
	Open          bool
	Rank          int
	StepsFinished int
	StepsTotal    int
	LastCommit    *time.Time
	LastCommitAge string
	TeamFinished  bool
}

// Header summarizes a team's standing. For an owner without a team pass a
// zero teamID: rank and finished steps are left empty.
func Header(graph domain.ProjectGraph, board []TeamScore, teamID int64, now time.Time) TeamHeader {
	h := TeamHeader{
		Title:      graph.Project.Name,
		RepoName:   graph.Project.RepoName,
		Open:       graph.Project.Open,
		StepsTotal: len(graph.Steps),
	}

	tg := findTeam(graph, teamID)
	if tg == nil {
		h.TeamFinished = true
		return h
	}

	unfinished := make(map[string]struct{})
	for _, test := range tg.Tests {
		if !test.Passed {
			unfinished[test.StepName] = struct{}{}
		}
	}

	h.Rank = Rank(board, teamID)
	h.StepsFinished = h.StepsTotal - len(unfinished)
	h.TeamFinished = h.StepsFinished == h.StepsTotal
	h.LastCommit = tg.Team.LastCommit
	if tg.Team.LastCommit != nil {
		h.LastCommitAge = printableAge(now.Sub(*tg.Team.LastCommit))
	}
	return h
}

func findTeam(graph domain.ProjectGraph, teamID int64) *domain.TeamGraph {
	if teamID == 0 {
		return nil
	}
	for i := range graph.Teams {
		if graph.Teams[i].Team.ID == teamID {
			return &graph.Teams[i]
		}
	}
	return nil
}

func printableAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	default:
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
}
