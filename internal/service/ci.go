package service

import (
	"context"
	"errors"
	"fmt"

	"gradeline/internal/domain"
	"gradeline/internal/reconcile"

	"github.com/sirupsen/logrus"
)

const (
	secretCallbackToken = "CALLBACK_TOKEN"
	secretWebhookURL    = "WEBHOOK_URL"
)

// pushTarget is what a pushed repository belongs to: a team, or for template
// repositories the project itself.
type pushTarget struct {
	team        *domain.Team
	secret      string
	callbackURL string
}

// HandleGitEvent activates CI for the pushed repository if needed and
// triggers a pipeline on its default branch.
func (s *Service) HandleGitEvent(ctx context.Context, event domain.PushEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	repo := event.Repository
	log := s.log.WithField("repo", repo.FullName)

	target, err := s.resolvePushTarget(ctx, repo.Name)
	if err != nil {
		return err
	}

	ciRepo, err := s.ensureCIRepository(ctx, log, repo, target)
	if err != nil {
		return err
	}

	if target.team != nil {
		if err := s.teams.UpdateLastCommit(ctx, target.team.ID, s.now()); err != nil {
			log.WithError(err).Warn("update last commit")
		}
	}

	if err := s.ci.TriggerPipeline(ctx, ciRepo.ID, repo.DefaultBranch); err != nil {
		return fmt.Errorf("trigger pipeline: %w", err)
	}
	log.WithField("branch", repo.DefaultBranch).Info("pipeline triggered")
	return nil
}

func (s *Service) resolvePushTarget(ctx context.Context, repoName string) (pushTarget, error) {
	team, err := s.teams.GetTeamByRepoName(ctx, repoName)
	switch {
	case err == nil:
		if team.WebhookSecret == "" {
			return pushTarget{}, domain.ErrMissingWebhookSecret
		}
		return pushTarget{team: team, secret: team.WebhookSecret, callbackURL: s.settings.TeamCallbackURL}, nil
	case !errors.Is(err, domain.ErrTeamNotFound):
		return pushTarget{}, err
	}

	project, err := s.projects.GetProjectByRepoName(ctx, repoName)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return pushTarget{}, domain.ErrTeamNotFound
		}
		return pushTarget{}, err
	}
	if project.Secret == "" {
		return pushTarget{}, domain.ErrMissingWebhookSecret
	}
	return pushTarget{secret: project.Secret, callbackURL: s.settings.OwnerCallbackURL}, nil
}

func (s *Service) ensureCIRepository(ctx context.Context, log logrus.FieldLogger, repo *domain.PushRepository, target pushTarget) (*domain.CIRepository, error) {
	existing, err := s.ci.LookupRepository(ctx, repo.FullName)
	if err != nil {
		return nil, fmt.Errorf("lookup ci repository: %w", err)
	}
	if existing != nil && existing.Active {
		return existing, nil
	}

	activated, err := s.ci.ActivateRepository(ctx, repo.ID)
	if err != nil {
		return nil, fmt.Errorf("activate ci repository: %w", err)
	}

	removed := 0
	if s.settings.HookMatch == "" {
		log.Warn("no webhook match configured, runner webhooks kept")
	} else {
		// never drops the push webhook
		removed, err = s.git.RemoveWebhooks(ctx, repo.FullName, s.settings.HookMatch, s.settings.PushWebhookURL)
		if err != nil {
			return nil, fmt.Errorf("remove ci webhooks: %w", err)
		}
	}

	if err := s.ci.AddSecret(ctx, activated.ID, secretCallbackToken, target.secret); err != nil {
		return nil, fmt.Errorf("add secret %s: %w", secretCallbackToken, err)
	}
	if err := s.ci.AddSecret(ctx, activated.ID, secretWebhookURL, target.callbackURL); err != nil {
		return nil, fmt.Errorf("add secret %s: %w", secretWebhookURL, err)
	}

	log.WithFields(logrus.Fields{"ci_repo": activated.ID, "hooks_removed": removed}).Info("ci repository activated")
	return activated, nil
}

// HandleCIResult reconciles a team's stored results with a CI report. The
// token identifies the team.
func (s *Service) HandleCIResult(ctx context.Context, report domain.CIReport) (domain.Summary, error) {
	if err := report.Validate(); err != nil {
		return domain.Summary{}, err
	}

	team, err := s.teams.GetTeamBySecret(ctx, report.Token)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return domain.Summary{}, domain.ErrTokenNotFound
		}
		return domain.Summary{}, err
	}

	unlock := s.locks.Lock(fmt.Sprintf("team:%d", team.ID))
	defer unlock()

	tests, err := s.results.ListTeamTests(ctx, team.ID)
	if err != nil {
		return domain.Summary{}, err
	}
	projectSteps, err := s.results.ListStepNames(ctx, team.RepoName)
	if err != nil {
		return domain.Summary{}, err
	}
	pinned, err := s.results.ListPinnedSteps(ctx, team.RepoName, team.ID)
	if err != nil {
		return domain.Summary{}, err
	}

	plan := reconcile.Reconcile(reconcile.Snapshot{
		TeamID:       team.ID,
		RepoName:     team.RepoName,
		Tests:        tests,
		ProjectSteps: projectSteps,
		PinnedSteps:  toSet(pinned),
	}, report.Steps)

	log := s.log.WithFields(logrus.Fields{"team": team.TeamRepoName, "project": team.RepoName})
	summary, err := s.applyPlan(ctx, log, team.RepoName, team.ID, plan, stepOrder(report.Steps), domain.Summary{})
	if err != nil {
		return summary, err
	}
	log.Info(summary.Message())
	return summary, nil
}

// HandleCIResultOwner is the project level variant used by template
// repositories: only the step set follows the report.
func (s *Service) HandleCIResultOwner(ctx context.Context, report domain.CIReport) (domain.Summary, error) {
	if err := report.Validate(); err != nil {
		return domain.Summary{}, err
	}

	project, err := s.projects.GetProjectBySecret(ctx, report.Token)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return domain.Summary{}, domain.ErrTokenNotFound
		}
		return domain.Summary{}, err
	}

	unlock := s.locks.Lock("project:" + project.RepoName)
	defer unlock()

	projectSteps, err := s.results.ListStepNames(ctx, project.RepoName)
	if err != nil {
		return domain.Summary{}, err
	}
	pinned, err := s.results.ListPinnedSteps(ctx, project.RepoName, 0)
	if err != nil {
		return domain.Summary{}, err
	}

	plan := reconcile.ReconcileSteps(projectSteps, toSet(pinned), report.Steps)

	log := s.log.WithField("project", project.RepoName)
	summary, err := s.applyPlan(ctx, log, project.RepoName, 0, plan, stepOrder(report.Steps), domain.Summary{StepsOnly: true})
	if err != nil {
		return summary, err
	}
	log.Info(summary.Message())
	return summary, nil
}

// applyPlan runs the four phases in order and stops at the first failure.
func (s *Service) applyPlan(ctx context.Context, log logrus.FieldLogger, repoName string, teamID int64, plan reconcile.Plan, order map[string]int, summary domain.Summary) (domain.Summary, error) {
	fail := func(phase, item string, err error) (domain.Summary, error) {
		log.WithError(err).WithFields(logrus.Fields{"phase": phase, "item": item}).Error("reconciliation stopped")
		return summary, &domain.PhaseError{Phase: phase, Item: item, Done: summary, Err: err}
	}

	for _, name := range plan.StepsToCreate {
		step := domain.Step{RepoName: repoName, Name: name, Title: name, Order: order[name]}
		if err := s.results.CreateStep(ctx, step); err != nil {
			return fail("create step", name, err)
		}
		summary.StepsCreated++
	}

	for _, test := range plan.TestsToUpsert {
		if err := s.results.UpsertTest(ctx, test); err != nil {
			return fail("upsert test", test.StepName+"/"+test.TestName, err)
		}
		summary.TestsUpserted++
	}

	for _, key := range plan.TestsToDelete {
		if err := s.results.DeleteTest(ctx, teamID, repoName, key); err != nil {
			return fail("delete test", key.StepName+"/"+key.TestName, err)
		}
		summary.TestsDeleted++
	}

	for _, name := range plan.StepsToDelete {
		if err := s.results.DeleteStep(ctx, repoName, name); err != nil {
			if errors.Is(err, domain.ErrStepInUse) {
				// another team reported tests under it meanwhile
				log.WithField("step", name).Debug("step kept")
				continue
			}
			return fail("delete step", name, err)
		}
		summary.StepsDeleted++
	}

	return summary, nil
}

// stepOrder numbers the distinct report steps from 1 in first-seen order.
func stepOrder(steps []domain.ReportStep) map[string]int {
	order := make(map[string]int, len(steps))
	for _, step := range steps {
		if _, ok := order[step.Name]; !ok {
			order[step.Name] = len(order) + 1
		}
	}
	return order
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
