package ledger_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/blockvote/votingd/ledger"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("insufficient funds")
	err := ledger.NewError(ledger.KindGatewayRejected, cause)

	assert.Equal(t, ledger.KindGatewayRejected, ledger.KindOf(err))
	assert.Equal(t, ledger.KindGatewayRejected, ledger.KindOf(errors.Wrap(err, "vote submission failed")))
	assert.Equal(t, ledger.KindUnknown, ledger.KindOf(cause))
	assert.Equal(t, ledger.KindUnknown, ledger.KindOf(nil))

	assert.True(t, ledger.IsKind(err, ledger.KindGatewayRejected))
	assert.False(t, ledger.IsKind(err, ledger.KindUserRejected))
	assert.ErrorIs(t, err, cause)
}

func TestErrorMessageCarriesTheKind(t *testing.T) {
	err := ledger.NewError(ledger.KindUserRejected, errors.New("User rejected the request."))

	assert.Contains(t, err.Error(), ledger.KindUserRejected.String())
	assert.Contains(t, err.Error(), "User rejected the request.")
}
