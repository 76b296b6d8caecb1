package session

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"

	"github.com/blockvote/votingd/ledger"
	"github.com/blockvote/votingd/ledger/rpc/mock"
)

func TestReconcilerRefresh(t *testing.T) {
	var (
		client     *mock.ClientMock
		reconciler *Reconciler
		voter      common.Address
		updates    chan Update
	)

	givenReconciler := Given("a reconciler over a healthy ledger", func() {
		voter = common.BytesToAddress(rand.Bytes(common.AddressLength))
		client = &mock.ClientMock{
			CandidatesFunc: func(context.Context) ([]ledger.Candidate, error) {
				return []ledger.Candidate{{ID: 1, Name: "A", VoteCount: 2}}, nil
			},
			VotingOpenFunc:   func(context.Context) (bool, error) { return true, nil },
			HasVotedFunc:     func(context.Context, common.Address) (bool, error) { return false, nil },
			IsAuthorizedFunc: func(context.Context, common.Address) (bool, error) { return true, nil },
			OwnerFunc: func(context.Context) (common.Address, error) {
				return common.BytesToAddress(rand.Bytes(common.AddressLength)), nil
			},
		}

		reconciler = NewReconciler(client, func() (common.Address, bool) { return voter, true }, log.NewNopLogger())
		updates = make(chan Update, 1)
		reconciler.SubscribeUpdates(updates)
	})

	givenReconciler.
		When("a refresh succeeds", func() {
			reconciler.refresh(context.Background())
		}).
		Then("the snapshot is published together with the voter status", func(t *testing.T) {
			assert.False(t, reconciler.Stale())

			snapshot := reconciler.Snapshot()
			assert.True(t, snapshot.Valid)
			assert.True(t, snapshot.VotingOpen)
			assert.Len(t, snapshot.Candidates, 1)
			assert.False(t, snapshot.FetchedAt.IsZero())

			update := <-updates
			assert.Equal(t, voter, update.Voter)
			assert.True(t, update.VoterKnown)
			assert.True(t, update.VoterAuthorized)
		}).
		Run(t)

	givenReconciler.
		When("a refresh succeeded before", func() {
			reconciler.refresh(context.Background())
			<-updates
		}).
		When("a later read fails mid-refresh", func() {
			client.HasVotedFunc = func(context.Context, common.Address) (bool, error) {
				return false, assert.AnError
			}
		}).
		Then("the last good snapshot stays untouched and is flagged stale", func(t *testing.T) {
			before := reconciler.Snapshot()

			reconciler.refresh(context.Background())

			assert.True(t, reconciler.Stale())
			assert.Equal(t, before, reconciler.Snapshot())
			assert.Empty(t, updates)
		}).
		Run(t)

	givenReconciler.
		When("a refresh failed", func() {
			client.VotingOpenFunc = func(context.Context) (bool, error) { return false, assert.AnError }
			reconciler.refresh(context.Background())
		}).
		When("the ledger recovers", func() {
			client.VotingOpenFunc = func(context.Context) (bool, error) { return true, nil }
		}).
		Then("the next refresh clears staleness", func(t *testing.T) {
			reconciler.refresh(context.Background())

			assert.False(t, reconciler.Stale())
			assert.True(t, reconciler.Snapshot().Valid)
		}).
		Run(t)

	givenReconciler.
		When("no wallet is connected", func() {
			reconciler.voter = func() (common.Address, bool) { return common.Address{}, false }
			reconciler.refresh(context.Background())
		}).
		Then("the refresh skips the voter reads", func(t *testing.T) {
			assert.Empty(t, client.HasVotedCalls())
			assert.Empty(t, client.IsAuthorizedCalls())

			update := <-updates
			assert.False(t, update.VoterKnown)
			assert.True(t, update.Snapshot.Valid)
		}).
		Run(t)
}

func TestReconcilerStartsStale(t *testing.T) {
	reconciler := NewReconciler(&mock.ClientMock{}, func() (common.Address, bool) { return common.Address{}, false }, log.NewNopLogger())

	assert.True(t, reconciler.Stale())
	assert.False(t, reconciler.Snapshot().Valid)
}

func TestReconcilerCoalescesTriggers(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	client := &mock.ClientMock{
		CandidatesFunc: func(context.Context) ([]ledger.Candidate, error) {
			entered <- struct{}{}
			<-release
			return nil, nil
		},
		VotingOpenFunc: func(context.Context) (bool, error) { return true, nil },
	}

	reconciler := NewReconciler(client, func() (common.Address, bool) { return common.Address{}, false }, log.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = reconciler.Run(ctx)
	}()

	reconciler.Trigger()
	<-entered

	// both arrive while the first refresh is in flight
	reconciler.Trigger()
	reconciler.Trigger()

	release <- struct{}{}
	<-entered
	release <- struct{}{}

	select {
	case <-entered:
		assert.Fail(t, "coalesced triggers must run a single follow-up refresh")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "reconciler did not stop")
	}

	assert.Len(t, client.CandidatesCalls(), 2)
}
