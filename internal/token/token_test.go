package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	for _, subject := range []string{"admin", "a", "user-with-dashes_and_underscores"} {
		tok, err := svc.Issue(subject, DefaultTTL)
		require.NoError(t, err)
		require.NotEmpty(t, tok)

		got, err := svc.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := svc.Issue("admin", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyExpiresExactlyAfterTTL(t *testing.T) {
	svc := NewService("test-secret")
	frozen := time.Now()
	svc.now = func() time.Time { return frozen }

	tok, err := svc.Issue("admin", time.Hour)
	require.NoError(t, err)

	// Still valid just before expiry.
	svc.now = func() time.Time { return frozen.Add(59 * time.Minute) }
	sub, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)

	// Rejected once the clock passes exp.
	svc.now = func() time.Time { return frozen.Add(61 * time.Minute) }
	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := svc.Issue("admin", DefaultTTL)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Flip a byte in the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService("test-secret")

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := NewService("secret-one")
	verifier := NewService("secret-two")

	tok, err := issuer.Issue("admin", DefaultTTL)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}
