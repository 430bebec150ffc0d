package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gradeline/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProvisionRequest struct {
	// Template is the project repository the team repositories are generated from.
	Template   string
	Teams      [][]string
	Protection domain.BranchProtection
}

func (r ProvisionRequest) Validate() error {
	if strings.TrimSpace(r.Template) == "" {
		return &domain.ValidationError{Field: "template", Reason: "is required"}
	}
	if len(r.Teams) == 0 {
		return &domain.ValidationError{Field: "teams", Reason: "at least one team is required"}
	}
	for i, members := range r.Teams {
		if len(members) == 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("teams[%d]", i), Reason: "at least one member is required"}
		}
		for _, member := range members {
			if strings.TrimSpace(member) == "" {
				return &domain.ValidationError{Field: fmt.Sprintf("teams[%d]", i), Reason: "member name is empty"}
			}
		}
	}
	return nil
}

type ProvisionedTeam struct {
	Team       domain.Team
	Repository domain.Repository
	Members    []string
}

// TeamRepoName is "{template}-{member1}-{member2}...", members in input order.
func TeamRepoName(template string, members []string) string {
	return template + "-" + strings.Join(members, "-")
}

// CreateTeamRepositories provisions one repository per team, in order. The
// first failure stops the batch; teams provisioned before it are returned and
// kept.
func (s *Service) CreateTeamRepositories(ctx context.Context, req ProvisionRequest) ([]ProvisionedTeam, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	done := make([]ProvisionedTeam, 0, len(req.Teams))
	for _, members := range req.Teams {
		team, err := s.provisionTeam(ctx, req, members)
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"project":     req.Template,
				"team":        TeamRepoName(req.Template, members),
				"provisioned": len(done),
			}).Error("team provisioning stopped")
			return done, err
		}
		done = append(done, *team)
	}

	return done, nil
}

func (s *Service) provisionTeam(ctx context.Context, req ProvisionRequest, members []string) (*ProvisionedTeam, error) {
	secret := s.newSecret()
	name := TeamRepoName(req.Template, members)

	repo, err := s.git.GenerateFromTemplate(ctx, req.Template, name)
	if err != nil {
		// nothing was created, nothing to roll back
		return nil, fmt.Errorf("generate %s: %w", name, err)
	}

	if err := s.setupTeamRepository(ctx, name, members, secret, req.Protection); err != nil {
		return nil, s.rollback(ctx, name, err)
	}

	team := domain.Team{
		TeamRepoName:  name,
		RepoName:      req.Template,
		WebhookSecret: secret,
	}
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		ids, err := s.resolveMembers(ctx, members)
		if err != nil {
			return err
		}
		id, err := s.teams.CreateTeamWithMembers(ctx, team, ids)
		if err != nil {
			return err
		}
		team.ID = id
		return nil
	})
	if err != nil {
		return nil, s.rollback(ctx, name, err)
	}

	s.log.WithFields(logrus.Fields{"project": req.Template, "team": name}).Info("team provisioned")
	return &ProvisionedTeam{Team: team, Repository: *repo, Members: members}, nil
}

func (s *Service) setupTeamRepository(ctx context.Context, name string, members []string, secret string, protection domain.BranchProtection) error {
	for _, member := range members {
		if err := s.git.AddCollaborator(ctx, name, member); err != nil {
			return fmt.Errorf("add collaborator %s: %w", member, err)
		}
	}

	hook := domain.Webhook{URL: s.settings.PushWebhookURL, Secret: secret}
	if err := s.git.AddWebhook(ctx, name, hook); err != nil {
		return fmt.Errorf("add webhook: %w", err)
	}

	if protection.Branch != "" {
		if err := s.git.ProtectBranch(ctx, name, protection); err != nil {
			return fmt.Errorf("protect branch %s: %w", protection.Branch, err)
		}
	}
	return nil
}

func (s *Service) resolveMembers(ctx context.Context, usernames []string) ([]int64, error) {
	ids := make([]int64, 0, len(usernames))
	for _, username := range usernames {
		account, err := s.accounts.GetAccountByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
			}
			return nil, err
		}
		ids = append(ids, account.ID)
	}
	return ids, nil
}

// rollback deletes a repository created by a failed provisioning. The cause
// is returned when the delete succeeds; otherwise a RollbackError.
func (s *Service) rollback(ctx context.Context, repo string, cause error) error {
	log := s.log.WithField("repo", repo).WithError(cause)

	if err := s.git.DeleteRepository(context.WithoutCancel(ctx), repo); err != nil {
		log.WithField("rollback_error", err.Error()).Error("rollback failed, manual cleanup required")
		return &domain.RollbackError{Repo: repo, Cause: cause, RollbackErr: err}
	}

	log.Warn("repository rolled back")
	return cause
}
