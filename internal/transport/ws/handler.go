package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"interviewerbot/internal/model"
	"interviewerbot/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

var skipPhrases = []string{"skip", "next", "pass", "next question"}

var endPhrases = []string{"end interview", "stop interview", "finish interview", "quit"}

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	svc      *service.InterviewService
	tokenSvc *service.TokenService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, svc *service.InterviewService, tokenSvc *service.TokenService) *Handler {
	return &Handler{
		hub:      hub,
		svc:      svc,
		tokenSvc: tokenSvc,
	}
}

// InterviewWS handles GET /v1/ws/interviews/{id}
func (h *Handler) InterviewWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	tokenSessionID, err := h.tokenSvc.ValidateSessionToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	if tokenSessionID != sessionID {
		http.Error(w, "token not valid for this session", http.StatusForbidden)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

// connState is owned by the readPump goroutine; no locking needed.
type connState struct {
	sessionID string
	joined    bool
	current   *model.QuestionPayload
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	state := &connState{sessionID: conn.SessionID}

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for session %s: %v", conn.SessionID, err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.sendError(state.sessionID, "Could not parse that message.")
			continue
		}
		h.dispatch(state, &msg)
	}
}

func (h *Handler) dispatch(state *connState, msg *Message) {
	ctx := context.Background()

	if msg.Type != MsgJoinSession && !state.joined {
		h.sendError(state.sessionID, "Join the session first.")
		return
	}

	switch msg.Type {
	case MsgJoinSession:
		h.handleJoin(ctx, state)
	case MsgStartInterview:
		h.advanceAndEmit(ctx, state)
	case MsgNextQuestion:
		h.advanceAndEmit(ctx, state)
	case MsgSubmitAnswer:
		var payload SubmitAnswerPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			h.sendError(state.sessionID, "Could not parse that answer.")
			return
		}
		h.handleAnswer(ctx, state, &payload)
	case MsgGetProgress:
		h.emitProgress(ctx, state.sessionID)
	case MsgRequestHint:
		h.handleHint(state)
	case MsgEndInterview:
		h.handleEnd(ctx, state)
	default:
		h.sendError(state.sessionID, fmt.Sprintf("Unknown event %q.", msg.Type))
	}
}

func (h *Handler) handleJoin(ctx context.Context, state *connState) {
	session, err := h.svc.GetSession(ctx, state.sessionID)
	if err != nil {
		h.sendError(state.sessionID, "Session not found.")
		return
	}
	state.joined = true

	resumed := session.Phase != model.PhaseIntro
	h.hub.SendToSession(state.sessionID, MsgSessionJoined, &SessionJoinedPayload{
		SessionID: session.ID,
		Phase:     string(session.Phase),
		Resumed:   resumed,
	})

	// Rejoin replays the last question verbatim. The machine never advances
	// because of a reconnect.
	if resumed && session.LastQuestion != nil {
		state.current = session.LastQuestion
		h.emitQuestion(state.sessionID, session.LastQuestion, true)
	}
}

// advanceAndEmit asks the machine for the next step. Transitions are followed
// by the question they lead to, so the client always ends up with something
// actionable.
func (h *Handler) advanceAndEmit(ctx context.Context, state *connState) {
	for i := 0; i < 3; i++ {
		step, err := h.svc.Advance(ctx, state.sessionID)
		if err != nil {
			log.Printf("Advance failed for session %s: %v", state.sessionID, err)
			h.sendError(state.sessionID, "Something went wrong, please try again.")
			return
		}

		switch step.Kind {
		case model.StepIntro, model.StepTransition:
			h.emitMessage(state.sessionID, step)
			continue
		case model.StepQuestion:
			state.current = step.Question
			h.emitQuestion(state.sessionID, step.Question, false)
			return
		case model.StepFinished:
			h.completeInterview(ctx, state, step.Summary)
			return
		}
	}
}

func (h *Handler) handleAnswer(ctx context.Context, state *connState, payload *SubmitAnswerPayload) {
	answer := strings.TrimSpace(payload.Answer)
	lowered := strings.ToLower(answer)

	for _, phrase := range endPhrases {
		if lowered == phrase {
			h.handleEnd(ctx, state)
			return
		}
	}

	if state.current == nil {
		h.sendError(state.sessionID, "There is no active question to answer.")
		return
	}

	// Skill elicitation answers configure the interview instead of being scored.
	if state.current.RequiresSkillDetection {
		step, err := h.svc.ProcessIntroAnswer(ctx, state.sessionID, payload.DetectedSkills)
		if err != nil {
			log.Printf("Skill elicitation failed for session %s: %v", state.sessionID, err)
			h.sendError(state.sessionID, "Something went wrong, please try again.")
			return
		}
		state.current = nil
		h.emitMessage(state.sessionID, step)
		h.advanceAndEmit(ctx, state)
		return
	}

	for _, phrase := range skipPhrases {
		if lowered == phrase {
			expected, err := h.svc.RecordSkip(ctx, state.sessionID, state.current)
			if err != nil {
				log.Printf("Skip failed for session %s: %v", state.sessionID, err)
				h.sendError(state.sessionID, "Something went wrong, please try again.")
				return
			}
			h.hub.SendToSession(state.sessionID, MsgAnswerResult, map[string]interface{}{
				"skipped":       true,
				"correctAnswer": expected,
			})
			return
		}
	}

	// Acknowledge immediately; evaluation runs on the session worker and only
	// surfaces as a progress update. Scores are withheld until the report.
	h.hub.SendToSession(state.sessionID, MsgAnswerResult, map[string]interface{}{
		"received": true,
	})

	sessionID := state.sessionID
	h.svc.RecordAnswerAsync(context.Background(), sessionID, state.current, answer, payload.ResponseTime, func(_ *model.EvaluationResult, err error) {
		if err != nil {
			log.Printf("Evaluation failed for session %s: %v", sessionID, err)
			return
		}
		h.emitProgress(context.Background(), sessionID)
	})
}

func (h *Handler) handleHint(state *connState) {
	if state.current == nil {
		h.sendError(state.sessionID, "There is no active question to hint at.")
		return
	}
	hint := "Break the problem down and explain your reasoning step by step."
	if len(state.current.Keywords) > 0 {
		limit := len(state.current.Keywords)
		if limit > 3 {
			limit = 3
		}
		hint = fmt.Sprintf("Think about: %s.", strings.Join(state.current.Keywords[:limit], ", "))
	}
	h.hub.SendToSession(state.sessionID, MsgHint, map[string]interface{}{
		"hint": hint,
	})
}

func (h *Handler) handleEnd(ctx context.Context, state *connState) {
	report, err := h.svc.EndInterview(ctx, state.sessionID)
	if err != nil {
		log.Printf("End interview failed for session %s: %v", state.sessionID, err)
		h.sendError(state.sessionID, "Something went wrong ending the interview.")
		return
	}
	state.current = nil
	h.hub.SendToSession(state.sessionID, MsgInterviewComplete, map[string]interface{}{
		"summary": report.Summary,
		"report":  report,
	})
}

func (h *Handler) completeInterview(ctx context.Context, state *connState, summary *model.Summary) {
	report, err := h.svc.Report(ctx, state.sessionID)
	if err != nil {
		log.Printf("Report failed for session %s: %v", state.sessionID, err)
		h.hub.SendToSession(state.sessionID, MsgInterviewComplete, map[string]interface{}{
			"summary": summary,
		})
		return
	}
	state.current = nil
	h.hub.SendToSession(state.sessionID, MsgInterviewComplete, map[string]interface{}{
		"summary": summary,
		"report":  report,
	})
}

func (h *Handler) emitMessage(sessionID string, step *model.NextStep) {
	messageType := "transition"
	if step.Kind == model.StepIntro {
		messageType = "intro"
	}
	h.hub.SendToSession(sessionID, MsgInterviewMessage, map[string]interface{}{
		"messageType":    messageType,
		"message":        step.Message,
		"speakText":      step.SpeakText,
		"detectedSkills": step.DetectedSkills,
		"nextPhase":      step.NextPhase,
	})
}

func (h *Handler) emitQuestion(sessionID string, q *model.QuestionPayload, resumed bool) {
	h.hub.SendToSession(sessionID, MsgQuestion, map[string]interface{}{
		"question": q,
		"resumed":  resumed,
	})
}

func (h *Handler) emitProgress(ctx context.Context, sessionID string) {
	progress, err := h.svc.Progress(ctx, sessionID)
	if err != nil {
		log.Printf("Progress failed for session %s: %v", sessionID, err)
		return
	}
	h.hub.SendToSession(sessionID, MsgProgress, progress)
}

func (h *Handler) sendError(sessionID, message string) {
	h.hub.SendToSession(sessionID, MsgError, map[string]interface{}{
		"message": message,
	})
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
