package http

import "net/http"

func (h *Handler) handleGitEvent(w http.ResponseWriter, r *http.Request) {
	var req PushEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.endpoints.HandleGitEvent(r.Context(), pushEventFromDto(req)); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleCIResult(w http.ResponseWriter, r *http.Request) {
	var req CIReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summary, err := h.endpoints.HandleCIResult(r.Context(), reportFromDto(req))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: summary.Message()})
}

func (h *Handler) handleCIResultOwner(w http.ResponseWriter, r *http.Request) {
	var req CIReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summary, err := h.endpoints.HandleCIResultOwner(r.Context(), reportFromDto(req))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: summary.Message()})
}
