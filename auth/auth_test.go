package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axelarnetwork/utils/test/rand"

	"github.com/blockvote/votingd/auth"
)

func TestTokenVerifier(t *testing.T) {
	token := rand.StrBetween(10, 20)
	principal := rand.StrBetween(5, 10)

	verifier, err := auth.NewTokenVerifier(token, principal)
	require.NoError(t, err)

	actual, err := verifier.Verify(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, principal, actual)

	_, err = verifier.Verify(context.Background(), token+"x")
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)

	_, err = verifier.Verify(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredential)
}

func TestNewTokenVerifierRejectsEmptyInputs(t *testing.T) {
	_, err := auth.NewTokenVerifier("", "operator")
	assert.Error(t, err)

	_, err = auth.NewTokenVerifier("token", "")
	assert.Error(t, err)
}
