package service

import (
	"context"

	"gradeline/internal/domain"
	"gradeline/internal/scoring"
)

type Scoreboard struct {
	Header scoring.TeamHeader
	Steps  []scoring.StepProgress
}

func (s *Service) ListExercises(ctx context.Context, accountID int64) ([]domain.Exercise, error) {
	return s.projects.ListExercises(ctx, accountID)
}

// Leaderboard ranks the teams of a project. A zero accountID skips the
// membership check.
func (s *Service) Leaderboard(ctx context.Context, repoName string, accountID int64) ([]scoring.TeamScore, error) {
	graph, err := s.projects.GetProjectGraph(ctx, repoName)
	if err != nil {
		return nil, err
	}
	if accountID != 0 {
		if _, err := viewerTeam(graph, accountID); err != nil {
			return nil, err
		}
	}
	return scoring.BuildLeaderboard(*graph), nil
}

// Scoreboard is the per-step progress of the caller's team. The project owner
// without a team sees the steps only.
func (s *Service) Scoreboard(ctx context.Context, repoName string, accountID int64) (*Scoreboard, error) {
	graph, err := s.projects.GetProjectGraph(ctx, repoName)
	if err != nil {
		return nil, err
	}

	teamID, err := viewerTeam(graph, accountID)
	if err != nil {
		return nil, err
	}

	board := scoring.BuildLeaderboard(*graph)
	return &Scoreboard{
		Header: scoring.Header(*graph, board, teamID, s.now()),
		Steps:  scoring.Progress(*graph, teamID),
	}, nil
}

func (s *Service) UpdateStep(ctx context.Context, repoName, stepName string, accountID int64, title, description string) error {
	project, err := s.projects.GetProjectByRepoName(ctx, repoName)
	if err != nil {
		return err
	}
	if project.OwnerID != accountID {
		return domain.ErrNotOwner
	}
	if title == "" {
		return &domain.ValidationError{Field: "title", Reason: "is required"}
	}
	return s.results.UpdateStepText(ctx, repoName, stepName, title, description)
}

// viewerTeam returns the caller's team id, zero for the owner without a team.
func viewerTeam(graph *domain.ProjectGraph, accountID int64) (int64, error) {
	for _, tg := range graph.Teams {
		for _, member := range tg.Members {
			if member.ID == accountID {
				return tg.Team.ID, nil
			}
		}
	}
	if graph.Project.OwnerID == accountID {
		return 0, nil
	}
	return 0, domain.ErrNotInExercise
}
