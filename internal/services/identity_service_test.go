package services

import (
	"context"
	"errors"
	"testing"

	"joonbee_backend/internal/auth"
	"joonbee_backend/internal/models"
	"joonbee_backend/internal/oauth"
	"joonbee_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name    string
	profile *oauth.Profile
	fail    bool
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) ExchangeCode(context.Context, string) (string, error) {
	if p.fail {
		return "", errors.New("invalid_grant")
	}
	return "upstream-token", nil
}

func (p *stubProvider) FetchProfile(context.Context, string) (*oauth.Profile, error) {
	if p.fail {
		return nil, errors.New("unreachable")
	}
	return p.profile, nil
}

func newIdentityFixture(t *testing.T, members *memMemberRepo, profile *oauth.Profile) *IdentityService {
	t.Helper()
	provider := &stubProvider{name: "KAKAO", profile: profile}
	return NewIdentityService(oauth.NewRegistry(provider), auth.NewTokenService("test-key"), members)
}

func TestAuthenticateNewMemberRequiresOnboarding(t *testing.T) {
	members := newMemMemberRepo()
	svc := newIdentityFixture(t, members, &oauth.Profile{ID: "u1", Email: "u1@example.com", Provider: "KAKAO"})

	access, refresh, err := svc.Authenticate(context.Background(), "KAKAO", "code")
	require.Error(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeOnboardingRequired, appErr.Code)
	assert.Equal(t, 410, appErr.HTTPCode)
	assert.Equal(t, "u1", appErr.Details)

	// The member row is created even though no tokens came back.
	created, err := members.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.LoginTypeKakao, created.LoginType)
	assert.False(t, created.Onboarded())
}

func TestAuthenticateFillsMissingProfileFields(t *testing.T) {
	members := newMemMemberRepo()
	svc := newIdentityFixture(t, members, &oauth.Profile{ID: "u1", Provider: "KAKAO"})

	_, _, err := svc.Authenticate(context.Background(), "KAKAO", "code")
	require.Error(t, err)

	created, err := members.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "joonbee", created.Email)
	assert.Equal(t, "joonbee", created.Thumbnail)
}

func TestAuthenticateKeepsProvidedProfileFields(t *testing.T) {
	members := newMemMemberRepo()
	svc := newIdentityFixture(t, members, &oauth.Profile{
		ID:        "u1",
		Email:     "u1@example.com",
		Thumbnail: "https://img.example.com/u1.png",
		Provider:  "KAKAO",
	})

	_, _, err := svc.Authenticate(context.Background(), "KAKAO", "code")
	require.Error(t, err)

	created, err := members.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", created.Email)
	assert.Equal(t, "https://img.example.com/u1.png", created.Thumbnail)
}

func TestAuthenticateOnboardedMemberGetsTokens(t *testing.T) {
	members := newMemMemberRepo(&models.Member{ID: "u1", NickName: "Alex", LoginType: models.LoginTypeKakao})
	svc := newIdentityFixture(t, members, &oauth.Profile{ID: "u1", Provider: "KAKAO"})

	access, refresh, err := svc.Authenticate(context.Background(), "KAKAO", "code")
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-key")
	memberID, err := tokens.Verify(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", memberID)
	memberID, err = tokens.Verify(refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", memberID)
}

func TestAuthenticateUnknownProvider(t *testing.T) {
	svc := newIdentityFixture(t, newMemMemberRepo(), &oauth.Profile{ID: "u1"})

	_, _, err := svc.Authenticate(context.Background(), "GITHUB", "code")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAuthenticateUpstreamFailure(t *testing.T) {
	provider := &stubProvider{name: "KAKAO", fail: true}
	svc := NewIdentityService(oauth.NewRegistry(provider), auth.NewTokenService("test-key"), newMemMemberRepo())

	_, _, err := svc.Authenticate(context.Background(), "KAKAO", "code")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUpstreamAuthFailed, appErr.Code)
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestSetNicknameCompletesOnboarding(t *testing.T) {
	members := newMemMemberRepo(&models.Member{ID: "u1"})
	svc := newIdentityFixture(t, members, nil)

	access, _, err := svc.SetNickname(context.Background(), "u1", "Alex")
	require.NoError(t, err)

	memberID, err := auth.NewTokenService("test-key").Verify(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", memberID)

	member, err := members.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, member.Onboarded())
}

func TestSetNicknameDuplicate(t *testing.T) {
	members := newMemMemberRepo(
		&models.Member{ID: "u1"},
		&models.Member{ID: "u2", NickName: "Alex"},
	)
	svc := newIdentityFixture(t, members, nil)

	_, _, err := svc.SetNickname(context.Background(), "u1", "Alex")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeDuplicateNickname, appErr.Code)
}

func TestRefreshSessionRoundTrip(t *testing.T) {
	members := newMemMemberRepo(&models.Member{ID: "u1", NickName: "Alex"})
	svc := newIdentityFixture(t, members, &oauth.Profile{ID: "u1", Provider: "KAKAO"})

	_, refresh, err := svc.Authenticate(context.Background(), "KAKAO", "code")
	require.NoError(t, err)

	newAccess, newRefresh, err := svc.RefreshSession(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, newRefresh)

	memberID, err := auth.NewTokenService("test-key").Verify(newAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", memberID)
}

func TestRefreshSessionRejectsBadTokens(t *testing.T) {
	svc := newIdentityFixture(t, newMemMemberRepo(), nil)

	_, _, err := svc.RefreshSession(context.Background(), "")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPCode)

	_, _, err = svc.RefreshSession(context.Background(), "not-a-jwt")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTokenMalformed, appErr.Code)
	assert.Equal(t, 406, appErr.HTTPCode)
}
