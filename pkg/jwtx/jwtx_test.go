package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret-key-0123456789ab")

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := NewSigner(testSecret, "credgate", time.Hour)
	verifier := NewVerifier(testSecret, "credgate")

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	claims, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, "credgate", claims.Issuer)
	require.NoError(t, claims.ValidateExpiry())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewSigner(testSecret, "credgate", time.Hour)
	verifier := NewVerifier([]byte("a-completely-different-secret!!!"), "credgate")

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer := NewSigner(testSecret, "someone-else", time.Hour)
	verifier := NewVerifier(testSecret, "credgate")

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuerMismatch)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer := NewSigner(testSecret, "credgate", -time.Minute)
	verifier := NewVerifier(testSecret, "credgate")

	raw, err := signer.Sign("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestSignRejectsEmptySubject(t *testing.T) {
	t.Parallel()

	signer := NewSigner(testSecret, "credgate", time.Hour)
	_, err := signer.Sign("")
	require.ErrorIs(t, err, ErrEmptySubject)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(testSecret, "credgate")
	_, err := verifier.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
