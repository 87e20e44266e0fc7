package handler

import (
	"net/http"

	"interviewerbot/internal/service"
)

// QuestionHandler handles question bank endpoints
type QuestionHandler struct {
	svc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// Topics handles GET /v1/questions/topics
func (h *QuestionHandler) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.Topics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list topics")
		return
	}

	stats, err := h.svc.TopicStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load topic stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"topics": topics,
		"stats":  stats,
	})
}
