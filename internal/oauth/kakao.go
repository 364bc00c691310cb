package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"joonbee_backend/internal/config"
	"joonbee_backend/internal/models"
)

const (
	defaultKakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	defaultKakaoProfileURL = "https://kapi.kakao.com/v2/user/me"
)

type KakaoProvider struct {
	cfg        config.ProviderConfig
	tokenURL   string
	profileURL string
	client     *http.Client
}

// NewKakaoProvider builds the Kakao variant. URLs are overridable for tests.
func NewKakaoProvider(cfg config.ProviderConfig, overrideURLs ...string) *KakaoProvider {
	p := &KakaoProvider{
		cfg:        cfg,
		tokenURL:   defaultKakaoTokenURL,
		profileURL: defaultKakaoProfileURL,
		client:     newHTTPClient(),
	}
	if len(overrideURLs) >= 2 {
		p.tokenURL = overrideURLs[0]
		p.profileURL = overrideURLs[1]
	}
	return p
}

func (p *KakaoProvider) Name() string { return string(models.LoginTypeKakao) }

func (p *KakaoProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"client_id":    {p.cfg.ClientID},
		"redirect_uri": {p.cfg.RedirectURL},
		"code":         {code},
	}
	if p.cfg.ClientSecret != "" {
		form.Set("client_secret", p.cfg.ClientSecret)
	}
	return postToken(ctx, p.client, p.tokenURL, form)
}

type kakaoProfile struct {
	ID         int64 `json:"id"`
	Properties struct {
		ThumbnailImage string `json:"thumbnail_image"`
	} `json:"properties"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
}

func (p *KakaoProvider) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	body, err := getProfile(ctx, p.client, p.profileURL, accessToken)
	if err != nil {
		return nil, err
	}

	var raw kakaoProfile
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse kakao profile: %w", err)
	}
	if raw.ID == 0 {
		return nil, fmt.Errorf("empty id in kakao profile")
	}

	return &Profile{
		ID:        strconv.FormatInt(raw.ID, 10),
		Email:     raw.KakaoAccount.Email,
		Thumbnail: raw.Properties.ThumbnailImage,
		Provider:  p.Name(),
	}, nil
}

var _ Provider = (*KakaoProvider)(nil)
