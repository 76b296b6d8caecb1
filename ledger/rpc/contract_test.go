package rpc

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/utils/test/rand"

	"github.com/blockvote/votingd/ledger"
)

// rpcError mimics a JSON-RPC error response from the signer or the node
type rpcError struct {
	code int
	msg  string
	data interface{}
}

func (e rpcError) Error() string          { return e.msg }
func (e rpcError) ErrorCode() int         { return e.code }
func (e rpcError) ErrorData() interface{} { return e.data }

func TestEventKindOf(t *testing.T) {
	expected := map[string]ledger.EventKind{
		"CandidateAdded":  ledger.EventCandidateAdded,
		"Voted":           ledger.EventVoted,
		"VoterAuthorized": ledger.EventVoterAuthorized,
		"VoterRemoved":    ledger.EventVoterRemoved,
		"VotingStarted":   ledger.EventVotingStarted,
		"VotingEnded":     ledger.EventVotingEnded,
	}

	assert.Len(t, parsedABI.Events, len(expected))
	for name, kind := range expected {
		event, ok := parsedABI.Events[name]
		assert.True(t, ok, name)

		log := types.Log{Topics: []common.Hash{event.ID}}
		assert.Equal(t, kind, EventKindOf(log))
	}
}

func TestEventKindOfUnknownLog(t *testing.T) {
	assert.Equal(t, ledger.EventUnknown, EventKindOf(types.Log{}))
	assert.Equal(t, ledger.EventUnknown, EventKindOf(types.Log{
		Topics: []common.Hash{common.BytesToHash(rand.Bytes(common.HashLength))},
	}))
}

func TestClassifyWrite(t *testing.T) {
	testCases := []struct {
		label    string
		err      error
		expected ledger.Kind
	}{
		{"signer declined", rpcError{code: 4001, msg: "User rejected the request."}, ledger.KindUserRejected},
		{"revert with return data", rpcError{code: 3, msg: "execution reverted: You are not authorized to vote", data: "0x08c379a0"}, ledger.KindLedgerReverted},
		{"revert reported in the message only", errors.New("execution reverted: Voting is not open"), ledger.KindLedgerReverted},
		{"other rpc error", rpcError{code: -32000, msg: "nonce too low"}, ledger.KindGatewayRejected},
		{"transport failure", errors.New("connection refused"), ledger.KindGatewayUnavailable},
	}

	for _, testCase := range testCases {
		t.Run(testCase.label, func(t *testing.T) {
			err := classifyWrite(testCase.err)

			assert.Equal(t, testCase.expected, ledger.KindOf(err))
			assert.ErrorIs(t, err, testCase.err)
		})
	}
}

func TestClassifyWriteKeepsPreclassifiedErrors(t *testing.T) {
	err := ledger.NewError(ledger.KindUserRejected, errors.New("denied"))

	assert.Equal(t, err, classifyWrite(err))
	assert.Equal(t, err, classifyRead(err))
}

func TestClassifyRead(t *testing.T) {
	assert.Equal(t, ledger.KindGatewayRejected, ledger.KindOf(classifyRead(rpcError{code: -32602, msg: "invalid params"})))
	assert.Equal(t, ledger.KindGatewayUnavailable, ledger.KindOf(classifyRead(errors.New("i/o timeout"))))
}

func TestClassifyWriteWrappedRPCError(t *testing.T) {
	err := classifyWrite(errors.Wrap(rpcError{code: 4001, msg: "User rejected the request."}, "unable to sign"))

	assert.Equal(t, ledger.KindUserRejected, ledger.KindOf(err))
}
