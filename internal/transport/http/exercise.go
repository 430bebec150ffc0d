package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleExercisesList(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exercises.ListExercises(r.Context(), principal(r).AccountID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := ExercisesResponse{Exercises: make([]ExerciseDTO, 0, len(exercises))}
	for _, e := range exercises {
		resp.Exercises = append(resp.Exercises, exerciseToDto(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.exercises.Leaderboard(r.Context(), chi.URLParam(r, "repo"), principal(r).AccountID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: leaderboardToDto(board)})
}

func (h *Handler) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	sb, err := h.exercises.Scoreboard(r.Context(), chi.URLParam(r, "repo"), principal(r).AccountID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, scoreboardToDto(sb))
}

func (h *Handler) handleStepUpdate(w http.ResponseWriter, r *http.Request) {
	var req StepUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.exercises.UpdateStep(r.Context(),
		chi.URLParam(r, "repo"), chi.URLParam(r, "step"),
		principal(r).AccountID, req.Title, req.Description)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
