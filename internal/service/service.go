package service

import (
	"context"
	"sync"
	"time"

	"gradeline/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ProjectStorage interface {
	GetProjectByRepoName(ctx context.Context, repoName string) (*domain.Project, error)
	GetProjectBySecret(ctx context.Context, secret string) (*domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) error
	GetProjectGraph(ctx context.Context, repoName string) (*domain.ProjectGraph, error)
	ListExercises(ctx context.Context, accountID int64) ([]domain.Exercise, error)
}

type TeamStorage interface {
	GetTeamByRepoName(ctx context.Context, teamRepoName string) (*domain.Team, error)
	GetTeamBySecret(ctx context.Context, secret string) (*domain.Team, error)
	UpdateLastCommit(ctx context.Context, teamID int64, at time.Time) error
	CreateTeamWithMembers(ctx context.Context, team domain.Team, memberIDs []int64) (int64, error)
}

type ResultStorage interface {
	ListStepNames(ctx context.Context, repoName string) ([]string, error)
	ListPinnedSteps(ctx context.Context, repoName string, excludeTeamID int64) ([]string, error)
	ListTeamTests(ctx context.Context, teamID int64) ([]domain.Test, error)
	CreateStep(ctx context.Context, step domain.Step) error
	UpdateStepText(ctx context.Context, repoName, stepName, title, description string) error
	DeleteStep(ctx context.Context, repoName, stepName string) error
	UpsertTest(ctx context.Context, test domain.Test) error
	DeleteTest(ctx context.Context, teamID int64, repoName string, key domain.TestKey) error
}

type AccountStorage interface {
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	CreateAccount(ctx context.Context, account domain.Account) (int64, error)
}

// GitHost manages repositories in the configured organisation of the Git host.
// Repository arguments are plain names except for RemoveWebhooks, which takes
// the full "owner/name" of a pushed repository.
type GitHost interface {
	CreateRepository(ctx context.Context, name, description string, template bool) (*domain.Repository, error)
	GenerateFromTemplate(ctx context.Context, template, name string) (*domain.Repository, error)
	MigrateRepository(ctx context.Context, cloneURL, name string) (*domain.Repository, error)
	ConvertToTemplate(ctx context.Context, name string) error
	AddCollaborator(ctx context.Context, repo, username string) error
	AddWebhook(ctx context.Context, repo string, hook domain.Webhook) error
	ProtectBranch(ctx context.Context, repo string, rule domain.BranchProtection) error
	DeleteRepository(ctx context.Context, repo string) error
	RemoveWebhooks(ctx context.Context, fullName, urlSubstring, keepURL string) (int, error)
	CreateUser(ctx context.Context, user domain.ForgeUser) error
	UserExists(ctx context.Context, username string) (bool, error)
}

type CIRunner interface {
	// LookupRepository returns nil and no error when the runner does not know
	// the repository.
	LookupRepository(ctx context.Context, fullName string) (*domain.CIRepository, error)
	ActivateRepository(ctx context.Context, forgeID int64) (*domain.CIRepository, error)
	AddSecret(ctx context.Context, repoID int64, name, value string) error
	TriggerPipeline(ctx context.Context, repoID int64, branch string) error
}

type txManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Settings are the public URLs handed to the Git host and the CI runner.
type Settings struct {
	// PushWebhookURL receives Git host push events.
	PushWebhookURL string
	// TeamCallbackURL and OwnerCallbackURL receive CI results.
	TeamCallbackURL  string
	OwnerCallbackURL string
	// HookMatch selects the webhooks the CI runner installs on activation.
	HookMatch string
}

type Storages struct {
	Projects ProjectStorage
	Teams    TeamStorage
	Results  ResultStorage
	Accounts AccountStorage
}

type Service struct {
	projects ProjectStorage
	teams    TeamStorage
	results  ResultStorage
	accounts AccountStorage
	git      GitHost
	ci       CIRunner
	tx       txManager

	settings Settings
	log      logrus.FieldLogger
	locks    *keyedMutex

	now       func() time.Time
	newSecret func() string
}

func NewService(store Storages, git GitHost, ci CIRunner, tx txManager, settings Settings, log logrus.FieldLogger) *Service {
	return &Service{
		projects:  store.Projects,
		teams:     store.Teams,
		results:   store.Results,
		accounts:  store.Accounts,
		git:       git,
		ci:        ci,
		tx:        tx,
		settings:  settings,
		log:       log,
		locks:     newKeyedMutex(),
		now:       func() time.Time { return time.Now().UTC() },
		newSecret: uuid.NewString,
	}
}

// keyedMutex serializes work per key. Entries are dropped once unused.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedEntry)}
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
