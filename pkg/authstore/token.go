package authstore

import (
	"errors"
	"fmt"
	"time"

	"career-ai-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens. The subject is the
// identity id, the token id is used as the revocation key.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(identity *entity.Identity) (*entity.Session, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	claims := sessionClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Id.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &entity.Session{
		AccessToken: signed,
		UserId:      identity.Id,
		Email:       identity.Email,
		ExpiresAt:   expiresAt,
	}, nil
}

var errInvalidToken = errors.New("invalid access token")

// Verify returns the session and the token id.
func (t *TokenIssuer) Verify(accessToken string) (*entity.Session, string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, "", errInvalidToken
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, "", errInvalidToken
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &entity.Session{
		AccessToken: accessToken,
		UserId:      userId,
		Email:       claims.Email,
		ExpiresAt:   expiresAt,
	}, claims.ID, nil
}
