package session_test

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
	rpcmock "github.com/blockvote/votingd/ledger/rpc/mock"
	"github.com/blockvote/votingd/session"
	"github.com/blockvote/votingd/session/mock"
)

// waitForView drains the view channel until the predicate holds or the
// timeout expires
func waitForView(t *testing.T, views <-chan session.View, predicate func(session.View) bool) session.View {
	timeout := time.After(time.Second)
	for {
		select {
		case view := <-views:
			if predicate(view) {
				return view
			}
		case <-timeout:
			require.Fail(t, "expected session view never arrived")
			return session.View{}
		}
	}
}

func TestCoordinator(t *testing.T) {
	var (
		coordinator *session.Coordinator
		client      *rpcmock.ClientMock
		auth        *mock.AuthenticatorMock
		wallet      *mock.WalletProviderMock

		voter         common.Address
		accounts      chan []common.Address
		chains        chan string
		views         chan session.View
		refreshFailed chan struct{}

		ctx    context.Context
		cancel context.CancelFunc
	)

	givenRunningSession := Given("a running session over a healthy ledger", func() {
		voter = common.BytesToAddress(rand.Bytes(common.AddressLength))
		accounts = make(chan []common.Address)
		chains = make(chan string)

		client = &rpcmock.ClientMock{
			CandidatesFunc: func(context.Context) ([]ledger.Candidate, error) {
				return []ledger.Candidate{
					{ID: 1, Name: "A", VoteCount: 3},
					{ID: 2, Name: "B", VoteCount: 5},
				}, nil
			},
			VotingOpenFunc:   func(context.Context) (bool, error) { return true, nil },
			HasVotedFunc:     func(context.Context, common.Address) (bool, error) { return false, nil },
			IsAuthorizedFunc: func(context.Context, common.Address) (bool, error) { return true, nil },
			OwnerFunc: func(context.Context) (common.Address, error) {
				return common.BytesToAddress(rand.Bytes(common.AddressLength)), nil
			},
			SubmitVoteFunc: func(context.Context, uint64) (ledger.Receipt, error) {
				return ledger.Receipt{TxHash: common.BytesToHash(rand.Bytes(common.HashLength))}, nil
			},
			CloseFunc: func() {},
		}
		auth = &mock.AuthenticatorMock{
			VerifyFunc: func(_ context.Context, credential string) (string, error) { return "operator", nil },
		}
		wallet = &mock.WalletProviderMock{
			RequestAccountsFunc: func(context.Context) ([]common.Address, error) { return []common.Address{voter}, nil },
			AccountsChangedFunc: func() <-chan []common.Address { return accounts },
			ChainChangedFunc:    func() <-chan string { return chains },
			CloseFunc:           func() {},
		}

		coordinator = session.NewCoordinator(client, auth, wallet, log.NewNopLogger())
		views = make(chan session.View, 32)
		coordinator.SubscribeViews(views)

		ctx, cancel = context.WithCancel(context.Background())
		go func() { _ = coordinator.Run(ctx) }()
		go func() { _ = coordinator.Reconciler().Run(ctx) }()
	})

	whenLoggedInWithWallet := When("the operator logs in and connects the wallet", func() {
		if err := coordinator.Login(ctx, "secret"); err != nil {
			panic(err)
		}
		if err := coordinator.ConnectWallet(ctx); err != nil {
			panic(err)
		}

		waitForView(t, views, func(v session.View) bool {
			return v.Identity.IsAuthorizedVoter && v.Snapshot.Valid
		})
	})

	givenRunningSession.
		When("nothing happened yet", func() {}).
		Then("the session starts unauthenticated", func(t *testing.T) {
			defer cancel()

			assert.Equal(t, session.Unauthenticated, coordinator.State())
		}).
		Run(t)

	givenRunningSession.
		When("the operator logs in without a wallet", func() {
			require.NoError(t, coordinator.Login(ctx, "secret"))
		}).
		Then("the session waits for the wallet", func(t *testing.T) {
			defer cancel()

			assert.Equal(t, session.AuthenticatedNoWallet, coordinator.State())
		}).
		Run(t)

	givenRunningSession.
		When("the ledger is unreachable", func() {
			refreshFailed = make(chan struct{}, 1)
			client.CandidatesFunc = func(context.Context) ([]ledger.Candidate, error) {
				select {
				case refreshFailed <- struct{}{}:
				default:
				}
				return nil, assert.AnError
			}
		}).
		Then("login and wallet connect do not make the session ready until a snapshot fetch succeeds", func(t *testing.T) {
			defer cancel()

			require.NoError(t, coordinator.Login(ctx, "secret"))
			require.NoError(t, coordinator.ConnectWallet(ctx))
			<-refreshFailed

			assert.Equal(t, session.AuthenticatedNoWallet, coordinator.State())

			client.CandidatesFunc = func(context.Context) ([]ledger.Candidate, error) {
				return []ledger.Candidate{{ID: 1, Name: "A"}}, nil
			}
			coordinator.Reconciler().Trigger()
			waitForView(t, views, func(v session.View) bool { return v.State == session.Ready })

			assert.Equal(t, session.Ready, coordinator.State())
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		Then("the session is ready and a permitted vote goes through", func(t *testing.T) {
			defer cancel()

			assert.Equal(t, session.Ready, coordinator.State())

			receipt, err := coordinator.CastVote(ctx, 2)

			require.NoError(t, err)
			assert.NotEqual(t, common.Hash{}, receipt.TxHash)
			assert.Len(t, client.SubmitVoteCalls(), 1)
			assert.EqualValues(t, 2, client.SubmitVoteCalls()[0].CandidateID)
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("a vote submission is already in flight", func() {
			blocked := make(chan struct{})
			client.SubmitVoteFunc = func(context.Context, uint64) (ledger.Receipt, error) {
				close(blocked)
				<-ctx.Done()
				return ledger.Receipt{}, ctx.Err()
			}
			go func() { _, _ = coordinator.CastVote(ctx, 1) }()
			<-blocked
		}).
		Then("a second vote is refused without reaching the ledger", func(t *testing.T) {
			defer cancel()

			_, err := coordinator.CastVote(ctx, 2)

			assert.ErrorIs(t, err, session.ErrSubmissionInProgress)
			assert.Len(t, client.SubmitVoteCalls(), 1)
			assert.Equal(t, session.VoteSubmitting, coordinator.State())
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("the voter is not authorized on the ledger", func() {
			client.IsAuthorizedFunc = func(context.Context, common.Address) (bool, error) { return false, nil }
			coordinator.Reconciler().Trigger()
			waitForView(t, views, func(v session.View) bool { return !v.Identity.IsAuthorizedVoter })
		}).
		Then("the guard refuses the vote before submission", func(t *testing.T) {
			defer cancel()

			_, err := coordinator.CastVote(ctx, 1)

			var guardErr *session.GuardError
			require.ErrorAs(t, err, &guardErr)
			assert.Contains(t, guardErr.Violations, session.NotAuthorizedVoter)
			assert.Empty(t, client.SubmitVoteCalls())
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("an unlisted candidate is selected", func() {}).
		Then("the vote fails without reaching the ledger", func(t *testing.T) {
			defer cancel()

			_, err := coordinator.CastVote(ctx, 17)

			assert.ErrorIs(t, err, session.ErrUnknownCandidate)
			assert.Empty(t, client.SubmitVoteCalls())
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("the wallet disconnects all accounts", func() {
			accounts <- nil
			waitForView(t, views, func(v session.View) bool { return !v.Identity.HasWallet })
		}).
		Then("the session drops back to waiting for a wallet", func(t *testing.T) {
			defer cancel()

			assert.Equal(t, session.AuthenticatedNoWallet, coordinator.State())

			_, err := coordinator.CastVote(ctx, 1)
			var guardErr *session.GuardError
			require.ErrorAs(t, err, &guardErr)
			assert.Contains(t, guardErr.Violations, session.WalletNotConnected)
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("the wallet switches to another account", func() {
			accounts <- []common.Address{common.BytesToAddress(rand.Bytes(common.AddressLength))}
			waitForView(t, views, func(v session.View) bool { return !v.Identity.IsAuthorizedVoter })
		}).
		Then("derived flags reset until the next refresh completes", func(t *testing.T) {
			defer cancel()

			waitForView(t, views, func(v session.View) bool { return v.Identity.IsAuthorizedVoter })
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("a successful vote was cast", func() {
			refreshesBefore := len(client.CandidatesCalls())
			_, err := coordinator.CastVote(ctx, 1)
			require.NoError(t, err)

			waitForView(t, views, func(session.View) bool { return len(client.CandidatesCalls()) > refreshesBefore })
		}).
		Then("a snapshot refresh was forced", func(t *testing.T) {
			defer cancel()

			assert.Greater(t, len(client.CandidatesCalls()), 1)
		}).
		Run(t)

	givenRunningSession.
		When2(whenLoggedInWithWallet).
		When("the operator logs out", func() {
			coordinator.Logout()
		}).
		Then("the session is unauthenticated even though the wallet stays connected", func(t *testing.T) {
			defer cancel()

			assert.Equal(t, session.Unauthenticated, coordinator.State())
			assert.True(t, coordinator.CurrentView().Identity.HasWallet)
		}).
		Run(t)
}

func TestCoordinatorSelect(t *testing.T) {
	client := &rpcmock.ClientMock{CloseFunc: func() {}}
	wallet := &mock.WalletProviderMock{CloseFunc: func() {}}
	coordinator := session.NewCoordinator(client, &mock.AuthenticatorMock{}, wallet, log.NewNopLogger())

	assert.Nil(t, coordinator.CurrentView().Guard)

	coordinator.Select(1)

	// nothing is on the ballot yet, so the guard has no decision to publish
	assert.Nil(t, coordinator.CurrentView().Guard)
}

func TestCoordinatorClose(t *testing.T) {
	client := &rpcmock.ClientMock{CloseFunc: func() {}}
	wallet := &mock.WalletProviderMock{CloseFunc: func() {}}
	coordinator := session.NewCoordinator(client, &mock.AuthenticatorMock{}, wallet, log.NewNopLogger())

	coordinator.Close()
	coordinator.Close()

	assert.Len(t, client.CloseCalls(), 1)
	assert.Len(t, wallet.CloseCalls(), 1)
}

func TestCoordinatorLogin(t *testing.T) {
	auth := &mock.AuthenticatorMock{
		VerifyFunc: func(context.Context, string) (string, error) { return "", assert.AnError },
	}
	client := &rpcmock.ClientMock{CloseFunc: func() {}}
	wallet := &mock.WalletProviderMock{CloseFunc: func() {}}
	coordinator := session.NewCoordinator(client, auth, wallet, log.NewNopLogger())

	err := coordinator.Login(context.Background(), "wrong")

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, session.Unauthenticated, coordinator.State())
}
