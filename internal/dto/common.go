package dto

import "time"

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewTokenResponse wraps a signed token in the standard envelope.
func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}
}

// MessageResponse reports a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// formatDate renders optional dates as date-only strings; nil stays an
// explicit JSON null so clients can tell "unset" from "empty".
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
