package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gradeline/internal/domain"

	"github.com/sirupsen/logrus"
)

type CreateProjectRequest struct {
	Name        string
	Description string
	OwnerID     int64
	// TemplateURL, when set, is cloned into the new repository.
	TemplateURL string
	Deadline    *time.Time
}

// NormalizeRepoName lower-cases the name and replaces spaces with dashes.
func NormalizeRepoName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// CreateProject creates the template repository of a new project on the Git
// host, hooks it to the owner pipeline and stores the project.
func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	repoName := NormalizeRepoName(req.Name)
	if repoName == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	owner, err := s.accounts.GetAccountByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	_, err = s.projects.GetProjectByRepoName(ctx, repoName)
	if err == nil {
		return nil, domain.ErrProjectExists
	}
	if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	if req.TemplateURL != "" {
		if _, err := s.git.MigrateRepository(ctx, req.TemplateURL, repoName); err != nil {
			return nil, err
		}
		if err := s.git.ConvertToTemplate(ctx, repoName); err != nil {
			return nil, s.rollback(ctx, repoName, err)
		}
	} else {
		if _, err := s.git.CreateRepository(ctx, repoName, req.Description, true); err != nil {
			return nil, err
		}
	}

	project := domain.Project{
		RepoName:    repoName,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Open:        true,
		Deadline:    req.Deadline,
		OwnerID:     owner.ID,
		Secret:      s.newSecret(),
		CreatedAt:   s.now(),
	}

	if err := s.git.AddCollaborator(ctx, repoName, owner.Username); err != nil {
		return nil, s.rollback(ctx, repoName, err)
	}
	hook := domain.Webhook{URL: s.settings.PushWebhookURL, Secret: project.Secret}
	if err := s.git.AddWebhook(ctx, repoName, hook); err != nil {
		return nil, s.rollback(ctx, repoName, err)
	}
	if err := s.projects.CreateProject(ctx, project); err != nil {
		return nil, s.rollback(ctx, repoName, err)
	}

	s.log.WithFields(logrus.Fields{"project": repoName, "owner": owner.Username}).Info("project created")
	return &project, nil
}
