package authstore

import (
	"testing"
	"time"

	"career-ai-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Hour)
	identity := &entity.Identity{Id: uuid.New(), Email: "a@b.com"}

	session, err := issuer.Issue(identity)
	require.NoError(t, err)

	verified, tokenId, err := issuer.Verify(session.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenId)
	assert.Equal(t, identity.Id, verified.UserId)
	assert.Equal(t, "a@b.com", verified.Email)
	assert.WithinDuration(t, session.ExpiresAt, verified.ExpiresAt, time.Second)
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Minute)
	issued := time.Now()
	issuer.now = func() time.Time { return issued }

	session, err := issuer.Issue(&entity.Identity{Id: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, _, err = issuer.Verify(session.AccessToken)
	assert.Error(t, err)
}

func TestTokenFromOtherSecretIsRejected(t *testing.T) {
	session, err := NewTokenIssuer("one", time.Hour).Issue(&entity.Identity{Id: uuid.New()})
	require.NoError(t, err)

	_, _, err = NewTokenIssuer("two", time.Hour).Verify(session.AccessToken)
	assert.Error(t, err)
}
