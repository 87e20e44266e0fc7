package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"interviewerbot/internal/service"
)

const maxResumeSize = 10 << 20 // 10 MB

var allowedResumeExts = map[string]bool{
	".pdf": true,
	".txt": true,
}

// ResumeHandler handles resume upload and kicks off question generation
type ResumeHandler struct {
	interviewSvc *service.InterviewService
	resumeSvc    *service.ResumeService
	uploadDir    string
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(interviewSvc *service.InterviewService, resumeSvc *service.ResumeService, uploadDir string) *ResumeHandler {
	return &ResumeHandler{
		interviewSvc: interviewSvc,
		resumeSvc:    resumeSvc,
		uploadDir:    uploadDir,
	}
}

// Upload handles POST /v1/resumes/upload. It persists the file and returns
// immediately; question generation runs in the background and the interview
// polls the readiness flag.
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	sessionID := r.FormValue("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}
	if _, err := h.interviewSvc.GetSession(r.Context(), sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedResumeExts[ext] {
		writeError(w, http.StatusBadRequest, "only .pdf and .txt resumes are supported")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store resume")
		return
	}
	destPath := filepath.Join(h.uploadDir, uuid.New().String()+ext)
	dest, err := os.Create(destPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store resume")
		return
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	if err := h.interviewSvc.SetResumePath(r.Context(), sessionID, destPath); err != nil {
		log.Printf("Failed to record resume path for session %s: %v", sessionID, err)
	}

	text := h.resumeSvc.ExtractText(destPath)
	h.resumeSvc.Start(sessionID, destPath, text)

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status":    "processing",
		"sessionId": sessionID,
	})
}
