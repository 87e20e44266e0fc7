package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"interviewerbot/internal/service"
	"interviewerbot/internal/transport/rest/handler"
	"interviewerbot/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	InterviewService *service.InterviewService
	QuestionService  *service.QuestionService
	ResumeService    *service.ResumeService
	TokenService     *service.TokenService
	WSHub            *ws.Hub
	UploadDir        string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	interviewHandler := handler.NewInterviewHandler(c.InterviewService, c.TokenService)
	resumeHandler := handler.NewResumeHandler(c.InterviewService, c.ResumeService, c.UploadDir)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	wsHandler := ws.NewHandler(c.WSHub, c.InterviewService, c.TokenService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/interviews/start", interviewHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews", interviewHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}", interviewHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/interviews/{id}", interviewHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/end", interviewHandler.End).Methods("POST", "OPTIONS")
	v1.HandleFunc("/interviews/{id}/report", interviewHandler.Report).Methods("GET", "OPTIONS")

	v1.HandleFunc("/resumes/upload", resumeHandler.Upload).Methods("POST", "OPTIONS")

	v1.HandleFunc("/questions/topics", questionHandler.Topics).Methods("GET", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws/interviews/{id}", wsHandler.InterviewWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
