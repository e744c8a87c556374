package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osupdater/internal/domain/user"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	u := user.Record{ID: "u1", Username: "admin", Role: user.RoleAdmin}

	tok, err := iss.Issue(u)
	require.NoError(t, err)

	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestIssuer_Rejects(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	u := user.Record{ID: "u1", Username: "admin", Role: user.RoleAdmin}

	tok, err := iss.Issue(u)
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	later := NewIssuer("secret", time.Hour)
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = iss.Parse("garbage")
	assert.Error(t, err)
}
