package http

import (
	"net/http"

	"gradeline/internal/auth"
	"gradeline/internal/domain"
	"gradeline/internal/service"

	"github.com/go-chi/chi/v5"
)

func principal(r *http.Request) auth.Principal {
	p, _ := auth.PrincipalFromContext(r.Context())
	return p
}

func (h *Handler) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req ProjectCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := h.provisioning.CreateProject(r.Context(), service.CreateProjectRequest{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     principal(r).AccountID,
		TemplateURL: req.TemplateURL,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ProjectCreateResponse{Project: projectToDto(project)})
}

func (h *Handler) handleTeamsProvision(w http.ResponseWriter, r *http.Request) {
	var req TeamsProvisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	done, err := h.provisioning.CreateTeamRepositories(r.Context(), service.ProvisionRequest{
		Template: chi.URLParam(r, "repo"),
		Teams:    req.Teams,
		Protection: domain.BranchProtection{
			Branch: req.ProtectedBranch,
			Files:  req.ProtectedFiles,
		},
	})
	if err != nil && len(done) == 0 {
		h.fail(w, r, err)
		return
	}

	resp := TeamsProvisionResponse{Teams: provisionedToDto(done)}
	if err != nil {
		status, body := mappingDomainErrors(err)
		h.log.WithError(err).WithField("created", len(done)).Warn("team provisioning stopped")
		resp.Error = &body.Error
		writeJSON(w, status, resp)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleAccountCreate(w http.ResponseWriter, r *http.Request) {
	var req AccountCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.provisioning.RegisterAccount(r.Context(), service.RegisterAccountRequest{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, AccountCreateResponse{Account: accountToDto(account)})
}
