package services

import (
	"context"
	"errors"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/logger"
	"joonbee_backend/internal/models"
	"joonbee_backend/internal/oauth"
	"joonbee_backend/internal/repositories"
	"joonbee_backend/pkg/apperrors"
)

// passwordSeed fills the unused password column. Login always goes through a
// provider, never through this value.
const passwordSeed = "joonbee"

// profilePlaceholder stands in for profile fields a provider did not return;
// the member columns are non-nullable.
const profilePlaceholder = "joonbee"

// IdentityService runs the OAuth login flow and issues session token pairs.
type IdentityService struct {
	providers oauth.Registry
	tokens    *auth.TokenService
	members   repositories.MemberRepository
}

func NewIdentityService(providers oauth.Registry, tokens *auth.TokenService, members repositories.MemberRepository) *IdentityService {
	return &IdentityService{
		providers: providers,
		tokens:    tokens,
		members:   members,
	}
}

// Authenticate exchanges an authorization code with the named provider,
// upserts the member and returns a token pair. A member that has not picked a
// nickname yet gets OnboardingRequired instead of tokens.
func (s *IdentityService) Authenticate(ctx context.Context, providerTag, code string) (accessToken, refreshToken string, err error) {
	provider, ok := s.providers.Get(providerTag)
	if !ok {
		return "", "", apperrors.NewBadRequestError("unknown login provider: " + providerTag)
	}

	upstreamToken, err := provider.ExchangeCode(ctx, code)
	if err != nil {
		return "", "", apperrors.UpstreamAuthFailed(provider.Name(), err)
	}

	profile, err := provider.FetchProfile(ctx, upstreamToken)
	if err != nil {
		return "", "", apperrors.UpstreamAuthFailed(provider.Name(), err)
	}
	if profile.ID == "" {
		return "", "", apperrors.MissingIdentity(provider.Name())
	}

	member, err := s.members.FindByID(ctx, profile.ID)
	if err != nil {
		if !errors.Is(err, repositories.ErrMemberNotFound) {
			return "", "", apperrors.InternalError(err)
		}
		member = &models.Member{
			ID:        profile.ID,
			Email:     orPlaceholder(profile.Email),
			Password:  auth.EncryptSHA256(passwordSeed),
			Thumbnail: orPlaceholder(profile.Thumbnail),
			LoginType: models.LoginType(profile.Provider),
		}
		if err := s.members.Create(ctx, member); err != nil {
			return "", "", apperrors.InternalError(err)
		}
		logger.Info("member created", "member_id", member.ID, "provider", profile.Provider)
	}

	if !member.Onboarded() {
		return "", "", apperrors.OnboardingRequired(member.ID)
	}

	accessToken, refreshToken, err = s.tokens.Generate(member.ID)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return accessToken, refreshToken, nil
}

func orPlaceholder(v string) string {
	if v == "" {
		return profilePlaceholder
	}
	return v
}

// RefreshSession verifies a refresh token and issues a fresh pair bound to
// the same member id.
func (s *IdentityService) RefreshSession(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", apperrors.MissingCredential()
	}

	memberID, err := s.tokens.Verify(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", "", apperrors.TokenExpired(err)
		}
		return "", "", apperrors.TokenMalformed(err)
	}

	access, refresh, err := s.tokens.Generate(memberID)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return access, refresh, nil
}

// SetNickname completes onboarding: stores a unique nickname and returns the
// first usable token pair.
func (s *IdentityService) SetNickname(ctx context.Context, memberID, nickName string) (string, string, error) {
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return "", "", apperrors.NotFound("member")
		}
		return "", "", apperrors.InternalError(err)
	}

	taken, err := s.members.ExistsByNickName(ctx, nickName)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	if taken {
		return "", "", apperrors.DuplicateNickname(nickName)
	}

	if err := s.members.UpdateNickName(ctx, memberID, nickName); err != nil {
		return "", "", apperrors.InternalError(err)
	}

	access, refresh, err := s.tokens.Generate(memberID)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return access, refresh, nil
}
