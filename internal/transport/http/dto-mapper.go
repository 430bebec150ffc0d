package http

import (
	"errors"
	"net/http"
	"strings"

	"gradeline/internal/domain"
	"gradeline/internal/scoring"
	"gradeline/internal/service"
)

func reportFromDto(req CIReportRequest) domain.CIReport {
	steps := make([]domain.ReportStep, len(req.Steps))
	for i, step := range req.Steps {
		tests := make([]domain.ReportTest, len(step.Tests))
		for j, test := range step.Tests {
			tests[j] = domain.ReportTest{
				Name:    test.Name,
				Passed:  test.Passed,
				Error:   test.Error,
				Message: test.Message,
			}
		}
		steps[i] = domain.ReportStep{Name: step.Name, Tests: tests}
	}
	return domain.CIReport{Token: req.Token, Steps: steps}
}

func pushEventFromDto(req PushEventRequest) domain.PushEvent {
	if req.Repository == nil {
		return domain.PushEvent{}
	}
	return domain.PushEvent{
		Repository: &domain.PushRepository{
			ID:            req.Repository.ID,
			Name:          req.Repository.Name,
			FullName:      req.Repository.FullName,
			DefaultBranch: req.Repository.DefaultBranch,
		},
	}
}

func projectToDto(p *domain.Project) ProjectDTO {
	return ProjectDTO{
		RepoName:    p.RepoName,
		Name:        p.Name,
		Description: p.Description,
		Open:        p.Open,
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
	}
}

func provisionedToDto(teams []service.ProvisionedTeam) []ProvisionedTeamDTO {
	out := make([]ProvisionedTeamDTO, 0, len(teams))
	for _, team := range teams {
		out = append(out, ProvisionedTeamDTO{
			TeamRepoName: team.Team.TeamRepoName,
			Members:      team.Members,
			CloneURL:     team.Repository.CloneURL,
		})
	}
	return out
}

func accountToDto(a *domain.Account) AccountDTO {
	return AccountDTO{
		ID:        a.ID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
	}
}

func exerciseToDto(e domain.Exercise) ExerciseDTO {
	return ExerciseDTO{
		RepoName:     e.RepoName,
		Title:        e.Title,
		Description:  e.Description,
		Open:         e.Open,
		TeamFinished: e.TeamFinished,
		Owned:        e.Owned,
	}
}

func leaderboardToDto(board []scoring.TeamScore) []LeaderboardEntryDTO {
	out := make([]LeaderboardEntryDTO, 0, len(board))
	for i, score := range board {
		out = append(out, LeaderboardEntryDTO{
			Rank:            i + 1,
			TeamRepoName:    score.TeamRepoName,
			Members:         score.Members,
			EarnedPoints:    score.EarnedPoints,
			MaxPoints:       score.MaxPoints,
			PercentFinished: score.PercentFinished,
		})
	}
	return out
}

func scoreboardToDto(sb *service.Scoreboard) ScoreboardResponse {
	steps := make([]StepProgressDTO, 0, len(sb.Steps))
	for _, step := range sb.Steps {
		tests := make([]TestResultDTO, 0, len(step.Tests))
		for _, test := range step.Tests {
			tests = append(tests, TestResultDTO{
				Name:    test.Name,
				Passed:  test.Passed,
				Error:   test.Error,
				Message: test.Message,
			})
		}
		steps = append(steps, StepProgressDTO{
			Name:        step.Name,
			Title:       step.Title,
			Description: step.Description,
			TestCount:   step.TestCount,
			AllPassed:   step.AllPassed,
			Tests:       tests,
		})
	}

	h := sb.Header
	return ScoreboardResponse{
		Header: ScoreboardHeaderDTO{
			Title:         h.Title,
			RepoName:      h.RepoName,
			Open:          h.Open,
			Rank:          h.Rank,
			StepsFinished: h.StepsFinished,
			StepsTotal:    h.StepsTotal,
			LastCommit:    h.LastCommit,
			LastCommitAge: h.LastCommitAge,
			TeamFinished:  h.TeamFinished,
		},
		Steps: steps,
	}
}

func mappingDomainErrors(err error) (int, ErrorResponse) {
	var code string
	var status int

	var rollbackErr *domain.RollbackError
	var externalErr *domain.ExternalError

	// RollbackError unwraps to the failed delete, so it goes first.
	switch {
	case errors.As(err, &rollbackErr):
		status = http.StatusInternalServerError
		code = "ROLLBACK_FAILED"

	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION"

	case errors.Is(err, domain.ErrTokenNotFound):
		status = http.StatusBadRequest
		code = "TOKEN_NOT_FOUND"

	case errors.Is(err, domain.ErrMissingWebhookSecret):
		status = http.StatusBadRequest
		code = "MISSING_WEBHOOK_SECRET"

	case errors.Is(err, domain.ErrNoParentProject):
		status = http.StatusConflict
		code = "PROJECT_NOT_EXISTS"

	case errors.Is(err, domain.ErrTeamExists):
		status = http.StatusConflict
		code = "TEAM_EXISTS"

	case errors.Is(err, domain.ErrProjectExists):
		status = http.StatusConflict
		code = "PROJECT_EXISTS"

	case errors.Is(err, domain.ErrAccountExists):
		status = http.StatusConflict
		code = "ACCOUNT_EXISTS"

	case errors.Is(err, domain.ErrTokenExists):
		status = http.StatusConflict
		code = "TOKEN_EXISTS"

	case errors.Is(err, domain.ErrStepInUse):
		status = http.StatusConflict
		code = "STEP_IN_USE"

	case errors.Is(err, domain.ErrNotOwner):
		status = http.StatusForbidden
		code = "NOT_OWNER"

	case errors.Is(err, domain.ErrNotInExercise):
		status = http.StatusForbidden
		code = "NOT_IN_EXERCISE"

	case errors.Is(err, domain.ErrTeamNotFound):
		status = http.StatusNotFound
		code = "TEAM_NOT_FOUND"

	case errors.Is(err, domain.ErrProjectNotFound):
		status = http.StatusNotFound
		code = "PROJECT_NOT_FOUND"

	case errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"

	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"

	case errors.As(err, &externalErr):
		// upstream credential failures are ours, not the caller's
		switch st := externalErr.Status; {
		case st == http.StatusUnauthorized || st == http.StatusForbidden:
			status = http.StatusBadGateway
			code = "UPSTREAM_UNAUTHORIZED"
		case st >= 400 && st < 500:
			status = st
			code = "UPSTREAM_" + strings.ToUpper(externalErr.Kind.String())
		default:
			status = http.StatusBadGateway
			code = "UPSTREAM_" + strings.ToUpper(externalErr.Kind.String())
		}

	default:
		status = http.StatusInternalServerError
		code = "INTERNAL"
	}

	return status, ErrorResponse{
		Error: errorBody{
			Code:    code,
			Message: err.Error(),
		},
	}
}
