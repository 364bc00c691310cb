package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MemberClaim is the claim name carrying the member id in both tokens. The
// session guard reads the same literal back out of the cookie payload.
const MemberClaim = "joonbee"

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 24 * time.Hour
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenService signs and verifies the session token pair.
type TokenService struct {
	key []byte
}

func NewTokenService(key string) *TokenService {
	return &TokenService{key: []byte(key)}
}

// Generate issues the access/refresh pair for a member id.
func (s *TokenService) Generate(memberID string) (accessToken, refreshToken string, err error) {
	accessToken, err = s.sign(memberID, AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.sign(memberID, RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *TokenService) sign(memberID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		MemberClaim: memberID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks signature and expiry and returns the embedded member id.
// Expired and malformed tokens come back as distinguished errors so the
// guards can map them to different status codes.
func (s *TokenService) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}
	memberID, ok := claims[MemberClaim].(string)
	if !ok || memberID == "" {
		return "", ErrTokenMalformed
	}
	return memberID, nil
}
