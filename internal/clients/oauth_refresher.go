package clients

import (
	"context"
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"fmt"
	"golang.org/x/oauth2"
	"net/http"
)

type RefresherInterface interface {
	Refresh(ctx context.Context, refreshToken string) (*models.BearerCredential, error)
	// Ready reports whether client credentials are configured for the grant.
	Ready() bool
}

// OAuthRefresher runs the refresh_token grant against the Fitbit token
// endpoint with client credentials in the Basic auth header.
type OAuthRefresher struct {
	config     *oauth2.Config
	httpClient *http.Client
}

func NewOAuthRefresher(conf *structures.Config, httpClient *http.Client) RefresherInterface {
	return &OAuthRefresher{
		config: &oauth2.Config{
			ClientID:     conf.Fitbit.ClientID,
			ClientSecret: conf.Fitbit.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  conf.Fitbit.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: httpClient,
	}
}

func (r *OAuthRefresher) Ready() bool {
	return r.config.ClientID != "" && r.config.ClientSecret != ""
}

func (r *OAuthRefresher) Refresh(ctx context.Context, refreshToken string) (*models.BearerCredential, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: credential has no refresh token", models.ErrRefreshFailed)
	}
	if !r.Ready() {
		return nil, fmt.Errorf("%w: fitbit.clientId and fitbit.clientSecret are required to refresh", models.ErrRefreshFailed)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	// An empty access token is never valid, so the source always hits the endpoint.
	tok, err := r.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRefreshFailed, err)
	}
	if tok.Expiry.IsZero() {
		return nil, fmt.Errorf("%w: token response has no expiry", models.ErrRefreshFailed)
	}

	cred := &models.BearerCredential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
		TokenType:    tok.TokenType,
	}
	if v, ok := tok.Extra("user_id").(string); ok {
		cred.UserID = v
	}
	if v, ok := tok.Extra("scope").(string); ok {
		cred.Scope = v
	}
	return cred, nil
}
