package models

import (
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// BearerCredential is the persisted OAuth2 token document. It is replaced
// wholesale on refresh and never edited in place.
type BearerCredential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Scope        string    `json:"scope"`
	TokenType    string    `json:"token_type"`
}

// Validate checks the shape invariants of a loaded credential.
func (c *BearerCredential) Validate() error {
	if c.AccessToken == "" {
		return fmt.Errorf("%w: credential has no access token", ErrMalformedPayload)
	}
	if c.UserID == "" {
		return fmt.Errorf("%w: credential has no user id", ErrMalformedPayload)
	}
	if c.ExpiresAt.IsZero() {
		return fmt.Errorf("%w: credential has no expiry", ErrMalformedPayload)
	}
	return nil
}

func (c *BearerCredential) ExpiresIn(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}

func (c *BearerCredential) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Expiry:       c.ExpiresAt,
	}
}
