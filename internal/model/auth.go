package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are JWT claims for session resume tokens. The token identifies
// a session across reconnects; it carries no user identity.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// StartSessionRequest is the request body for starting an interview
type StartSessionRequest struct {
	UserSelectedSkills []string `json:"userSelectedSkills"`
}

// StartSessionResponse is returned after session creation
type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Phase     Phase  `json:"phase"`
}
