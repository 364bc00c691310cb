package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"joonbee_backend/internal/config"
	"joonbee_backend/internal/models"
)

const (
	defaultGoogleTokenURL   = "https://oauth2.googleapis.com/token"
	defaultGoogleProfileURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type GoogleProvider struct {
	cfg        config.ProviderConfig
	tokenURL   string
	profileURL string
	client     *http.Client
}

func NewGoogleProvider(cfg config.ProviderConfig, overrideURLs ...string) *GoogleProvider {
	p := &GoogleProvider{
		cfg:        cfg,
		tokenURL:   defaultGoogleTokenURL,
		profileURL: defaultGoogleProfileURL,
		client:     newHTTPClient(),
	}
	if len(overrideURLs) >= 2 {
		p.tokenURL = overrideURLs[0]
		p.profileURL = overrideURLs[1]
	}
	return p
}

func (p *GoogleProvider) Name() string { return string(models.LoginTypeGoogle) }

func (p *GoogleProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {p.cfg.ClientID},
		"client_secret": {p.cfg.ClientSecret},
		"redirect_uri":  {p.cfg.RedirectURL},
		"code":          {code},
	}
	return postToken(ctx, p.client, p.tokenURL, form)
}

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (p *GoogleProvider) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	body, err := getProfile(ctx, p.client, p.profileURL, accessToken)
	if err != nil {
		return nil, err
	}

	var raw googleProfile
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse google profile: %w", err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("empty id in google profile")
	}

	return &Profile{
		ID:        raw.ID,
		Email:     raw.Email,
		Thumbnail: raw.Picture,
		Provider:  p.Name(),
	}, nil
}

var _ Provider = (*GoogleProvider)(nil)
