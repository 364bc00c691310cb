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
	defaultNaverTokenURL   = "https://nid.naver.com/oauth2.0/token"
	defaultNaverProfileURL = "https://openapi.naver.com/v1/nid/me"
)

type NaverProvider struct {
	cfg        config.ProviderConfig
	tokenURL   string
	profileURL string
	client     *http.Client
}

func NewNaverProvider(cfg config.ProviderConfig, overrideURLs ...string) *NaverProvider {
	p := &NaverProvider{
		cfg:        cfg,
		tokenURL:   defaultNaverTokenURL,
		profileURL: defaultNaverProfileURL,
		client:     newHTTPClient(),
	}
	if len(overrideURLs) >= 2 {
		p.tokenURL = overrideURLs[0]
		p.profileURL = overrideURLs[1]
	}
	return p
}

func (p *NaverProvider) Name() string { return string(models.LoginTypeNaver) }

func (p *NaverProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {p.cfg.ClientID},
		"client_secret": {p.cfg.ClientSecret},
		"code":          {code},
	}
	return postToken(ctx, p.client, p.tokenURL, form)
}

// naverProfile wraps the payload in a "response" envelope.
type naverProfile struct {
	Response struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		ProfileImage string `json:"profile_image"`
	} `json:"response"`
}

func (p *NaverProvider) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	body, err := getProfile(ctx, p.client, p.profileURL, accessToken)
	if err != nil {
		return nil, err
	}

	var raw naverProfile
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse naver profile: %w", err)
	}
	if raw.Response.ID == "" {
		return nil, fmt.Errorf("empty id in naver profile")
	}

	return &Profile{
		ID:        raw.Response.ID,
		Email:     raw.Response.Email,
		Thumbnail: raw.Response.ProfileImage,
		Provider:  p.Name(),
	}, nil
}

var _ Provider = (*NaverProvider)(nil)
