package ws

import "encoding/json"

// MessageType defines the type of WebSocket message
type MessageType string

// Client -> server events
const (
	MsgJoinSession    MessageType = "join-session"
	MsgStartInterview MessageType = "start-interview"
	MsgNextQuestion   MessageType = "next-question"
	MsgSubmitAnswer   MessageType = "submit-answer"
	MsgGetProgress    MessageType = "get-progress"
	MsgRequestHint    MessageType = "request-hint"
	MsgEndInterview   MessageType = "end-interview"
)

// Server -> client events
const (
	MsgSessionJoined     MessageType = "session-joined"
	MsgInterviewMessage  MessageType = "interview-message"
	MsgQuestion          MessageType = "question"
	MsgAnswerResult      MessageType = "answer-result"
	MsgProgress          MessageType = "progress"
	MsgHint              MessageType = "hint"
	MsgInterviewComplete MessageType = "interview-complete"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SubmitAnswerPayload carries a candidate answer. DetectedSkills is only set
// when answering the skill elicitation prompt; detection runs client-side.
type SubmitAnswerPayload struct {
	Answer         string   `json:"answer"`
	ResponseTime   int      `json:"responseTime,omitempty"`
	DetectedSkills []string `json:"detectedSkills,omitempty"`
}

// SessionJoinedPayload acknowledges a join. Resumed tells the client to
// restore UI state without replaying speech output.
type SessionJoinedPayload struct {
	SessionID string `json:"sessionId"`
	Phase     string `json:"phase"`
	Resumed   bool   `json:"resumed"`
}
