package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	issuer, err := New("super-secret", time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestNew_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := New("", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := &Issuer{secret: []byte("secret"), ttl: -1 * time.Second}

	tok, err := issuer.Issue("u1")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_SecretRotation(t *testing.T) {
	t.Parallel()

	before, err := New("secret-one", time.Hour)
	require.NoError(t, err)
	after, err := New("secret-two", time.Hour)
	require.NoError(t, err)

	tok, err := before.Issue("u2")
	require.NoError(t, err)

	// Valid under the issuing secret, invalid after rotation
	_, err = before.Verify(tok)
	require.NoError(t, err)

	_, err = after.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer, err := New("secret", time.Hour)
	require.NoError(t, err)

	for _, tok := range []string{"", "not.a.jwt", "a.b"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestNew_DefaultTTL(t *testing.T) {
	t.Parallel()

	issuer, err := New("secret", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTTL, issuer.ttl)
}
