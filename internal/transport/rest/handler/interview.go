package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"interviewerbot/internal/model"
	"interviewerbot/internal/service"
)

// InterviewHandler handles interview session endpoints
type InterviewHandler struct {
	svc      *service.InterviewService
	tokenSvc *service.TokenService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(svc *service.InterviewService, tokenSvc *service.TokenService) *InterviewHandler {
	return &InterviewHandler{svc: svc, tokenSvc: tokenSvc}
}

// Start handles POST /v1/interviews/start
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	session, err := h.svc.CreateSession(r.Context(), req.UserSelectedSkills, r.UserAgent(), r.RemoteAddr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start interview")
		return
	}

	token, err := h.tokenSvc.IssueSessionToken(session.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	writeJSON(w, http.StatusCreated, model.StartSessionResponse{
		SessionID: session.ID,
		Token:     token,
		Phase:     session.Phase,
	})
}

// Get handles GET /v1/interviews/{id}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// List handles GET /v1/interviews
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	sessions, err := h.svc.ListSessions(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}

// End handles POST /v1/interviews/{id}/end
func (h *InterviewHandler) End(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	report, err := h.svc.EndInterview(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to end interview")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Report handles GET /v1/interviews/{id}/report
func (h *InterviewHandler) Report(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	report, err := h.svc.Report(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Delete handles DELETE /v1/interviews/{id}
func (h *InterviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
