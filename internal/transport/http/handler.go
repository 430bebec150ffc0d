package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"gradeline/internal/domain"
	"gradeline/internal/scoring"
	"gradeline/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type EndpointService interface {
	HandleGitEvent(ctx context.Context, event domain.PushEvent) error
	HandleCIResult(ctx context.Context, report domain.CIReport) (domain.Summary, error)
	HandleCIResultOwner(ctx context.Context, report domain.CIReport) (domain.Summary, error)
}

type ProvisioningService interface {
	CreateProject(ctx context.Context, req service.CreateProjectRequest) (*domain.Project, error)
	CreateTeamRepositories(ctx context.Context, req service.ProvisionRequest) ([]service.ProvisionedTeam, error)
	RegisterAccount(ctx context.Context, req service.RegisterAccountRequest) (*domain.Account, error)
}

type ExercisesService interface {
	ListExercises(ctx context.Context, accountID int64) ([]domain.Exercise, error)
	Leaderboard(ctx context.Context, repoName string, accountID int64) ([]scoring.TeamScore, error)
	Scoreboard(ctx context.Context, repoName string, accountID int64) (*service.Scoreboard, error)
	UpdateStep(ctx context.Context, repoName, stepName string, accountID int64, title, description string) error
}

type Authenticator interface {
	Authenticate(next http.Handler) http.Handler
	Require(names ...string) func(http.Handler) http.Handler
}

type Handler struct {
	endpoints    EndpointService
	provisioning ProvisioningService
	exercises    ExercisesService
	auth         Authenticator
	log          logrus.FieldLogger
}

func NewHandler(endpoints EndpointService, provisioning ProvisioningService, exercises ExercisesService, auth Authenticator, log logrus.FieldLogger) *Handler {
	return &Handler{
		endpoints:    endpoints,
		provisioning: provisioning,
		exercises:    exercises,
		auth:         auth,
		log:          log,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: h.log, NoColor: true}))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		// CI and Git host callbacks authenticate with their payload
		r.Route("/endpoint", func(r chi.Router) {
			r.Post("/git-event", h.handleGitEvent)
			r.Post("/ci-result", h.handleCIResult)
			r.Post("/ci-result/owner", h.handleCIResultOwner)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Authenticate)

			r.With(h.auth.Require("create_project")).Post("/projects", h.handleProjectCreate)
			r.With(h.auth.Require("create_team")).Post("/projects/{repo}/teams", h.handleTeamsProvision)
			r.With(h.auth.Require("create_account")).Post("/accounts", h.handleAccountCreate)

			r.Route("/exercises", func(r chi.Router) {
				r.Get("/", h.handleExercisesList)
				r.Get("/{repo}/leaderboard", h.handleLeaderboard)
				r.Get("/{repo}/scoreboard", h.handleScoreboard)
				r.Patch("/{repo}/steps/{step}", h.handleStepUpdate)
			})
		})
	})

	return router
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: errorBody{
			Code:    "BAD_REQUEST",
			Message: message,
		},
	})
}

// fail logs server side failures with the request id, then writes the error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := mappingDomainErrors(err)
	entry := h.log.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"code":       body.Error.Code,
	})
	if status >= http.StatusInternalServerError {
		entry.Error(r.Method + " " + r.URL.Path)
	} else {
		entry.Info(r.Method + " " + r.URL.Path)
	}
	writeJSON(w, status, body)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: errorBody{Code: "TOO_LARGE", Message: "request body too large"},
			})
			return false
		}
		writeBadRequest(w, "invalid JSON")
		return false
	}
	return true
}
