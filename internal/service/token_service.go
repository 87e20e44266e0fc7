package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"interviewerbot/internal/model"
)

const resumeTokenLifetime = 6 * time.Hour

// TokenService issues and validates the per-session resume tokens that let a
// client rejoin its interview after a disconnect. These are not login tokens;
// the only claim that matters is the session id.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// IssueSessionToken mints a signed token bound to the session id.
func (s *TokenService) IssueSessionToken(sessionID string) (string, error) {
	now := time.Now()
	claims := &model.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(resumeTokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken returns the session id the token was issued for.
func (s *TokenService) ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token claims")
	}
	return claims.SessionID, nil
}
