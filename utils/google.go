// File: utils/google.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"eventhorizon/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewCalendarService builds a read-only Google Calendar client from the
// configured OAuth credentials and token. The token is refreshed
// transparently when expired.
func NewCalendarService(ctx context.Context) (*calendar.Service, error) {
	oauthCfg, err := GoogleOAuthConfig()
	if err != nil {
		return nil, err
	}
	tok, err := googleToken()
	if err != nil {
		return nil, err
	}
	client := oauthCfg.Client(ctx, tok)
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return srv, nil
}

// GoogleOAuthConfig parses the OAuth client config, preferring the inline
// GOOGLE_CREDENTIALS_JSON payload over the credentials file.
func GoogleOAuthConfig() (*oauth2.Config, error) {
	raw := []byte(config.AppConfig.GoogleCredentialsJSON)
	if len(raw) == 0 {
		b, err := os.ReadFile(config.AppConfig.GoogleCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("reading Google credentials: %w", err)
		}
		raw = b
	}
	oauthCfg, err := google.ConfigFromJSON(raw, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing Google credentials: %w", err)
	}
	return oauthCfg, nil
}

func googleToken() (*oauth2.Token, error) {
	if config.AppConfig.GoogleTokenJSON != "" {
		tok := &oauth2.Token{}
		if err := json.Unmarshal([]byte(config.AppConfig.GoogleTokenJSON), tok); err != nil {
			return nil, fmt.Errorf("parsing inline Google token: %w", err)
		}
		return tok, nil
	}
	return TokenFromFile(config.AppConfig.GoogleTokenFile)
}

// TokenFromFile reads an OAuth token saved by a previous login.
func TokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading Google token: %w", err)
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decoding Google token: %w", err)
	}
	return tok, nil
}

// SaveToken persists an OAuth token for later runs.
func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("saving Google token: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("encoding Google token: %w", err)
	}
	return nil
}
