package session

import (
	"context"
	"sync"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"github.com/blockvote/votingd/ledger"
	"github.com/blockvote/votingd/ledger/rpc"
)

// State is the coordinator's session state
type State int

const (
	// Unauthenticated means no login principal is present
	Unauthenticated State = iota
	// AuthenticatedNoWallet means a login principal is present but the wallet
	// proof or the first ledger snapshot is still missing
	AuthenticatedNoWallet
	// Ready means both identity proofs are present, a snapshot has been
	// fetched and votes can be attempted
	Ready
	// VoteSubmitting means a vote submission is in flight
	VoteSubmitting
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case AuthenticatedNoWallet:
		return "authenticated, not ready"
	case Ready:
		return "ready"
	case VoteSubmitting:
		return "vote submitting"
	default:
		return "unknown"
	}
}

// ErrSubmissionInProgress rejects a vote request while another one is in
// flight. Exactly one submission is allowed per session at a time.
var ErrSubmissionInProgress = errors.New("a vote submission is already in progress")

// View is the immutable projection of the session handed to the presentation
// layer on every identity or snapshot change
type View struct {
	State    State
	Identity Identity
	Snapshot ledger.Snapshot
	Results  ledger.RankedResult
	// Guard is the decision for the currently selected candidate, nil while
	// nothing is selected
	Guard *Decision
}

// Coordinator owns the session: the identity store, the reconciled ledger
// snapshot and the single-submission vote dispatch. The presentation layer
// subscribes to views and issues commands; it never touches the stores
// directly.
type Coordinator struct {
	client     rpc.Client
	auth       Authenticator
	wallet     WalletProvider
	identity   *IdentityStore
	reconciler *Reconciler
	logger     log.Logger

	mu           sync.Mutex
	submitting   bool
	selected     uint64
	hasSelection bool

	viewFeed  event.Feed
	closeOnce sync.Once
}

// NewCoordinator assembles a session over the given collaborators
func NewCoordinator(client rpc.Client, auth Authenticator, wallet WalletProvider, logger log.Logger) *Coordinator {
	identity := NewIdentityStore()

	c := &Coordinator{
		client:   client,
		auth:     auth,
		wallet:   wallet,
		identity: identity,
		logger:   logger.With("module", "session"),
	}
	c.reconciler = NewReconciler(client, func() (common.Address, bool) {
		id := identity.Snapshot()
		return id.Wallet, id.HasWallet
	}, logger)

	return c
}

// Reconciler exposes the coordinator's reconciler so callers can wire its
// poll/watch jobs
func (c *Coordinator) Reconciler() *Reconciler {
	return c.reconciler
}

// SubscribeViews subscribes the given channel to session view updates
func (c *Coordinator) SubscribeViews(ch chan<- View) event.Subscription {
	return c.viewFeed.Subscribe(ch)
}

// Run reacts to reconciler updates and wallet notifications until the context
// is done. It must run for the session's lifetime; the coordinator stays
// responsive to wallet identity changes while reads or writes are
// outstanding because those happen on the callers' goroutines.
func (c *Coordinator) Run(ctx context.Context) error {
	updates := make(chan Update)
	sub := c.reconciler.SubscribeUpdates(updates)
	defer sub.Unsubscribe()

	accounts := c.wallet.AccountsChanged()
	chains := c.wallet.ChainChanged()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			c.applyUpdate(update)
		case accs := <-accounts:
			c.handleAccountsChanged(accs)
		case chain := <-chains:
			c.logger.Info("wallet switched chain", "chain", chain)
			c.reconciler.Trigger()
		}
	}
}

// Login verifies the credential with the login collaborator and records the
// principal. Failures surface immediately and are never retried.
func (c *Coordinator) Login(ctx context.Context, credential string) error {
	principal, err := c.auth.Verify(ctx, credential)
	if err != nil {
		return errors.Wrap(err, "login failed")
	}
	if principal == "" {
		return errors.New("login collaborator returned an empty principal")
	}

	c.identity.SetPrincipal(principal)
	c.logger.Info("login verified", "principal", principal)
	c.publishView()
	return nil
}

// Logout drops the login proof and returns the session to Unauthenticated
func (c *Coordinator) Logout() {
	c.identity.ClearPrincipal()
	c.publishView()
}

// ConnectWallet asks the wallet for its accounts and records the first one as
// the session's wallet identity. A refresh is triggered so the derived flags
// get rederived for the new address.
func (c *Coordinator) ConnectWallet(ctx context.Context) error {
	accounts, err := c.wallet.RequestAccounts(ctx)
	if err != nil {
		return errors.Wrap(err, "wallet connection failed")
	}
	if len(accounts) == 0 {
		return errors.New("wallet reported no accounts")
	}

	c.identity.SetWallet(accounts[0])
	c.logger.Info("wallet connected", "address", accounts[0].Hex())
	c.reconciler.Trigger()
	c.publishView()
	return nil
}

// Select marks a candidate as the current selection; subsequent views carry
// the guard decision for it
func (c *Coordinator) Select(candidateID uint64) {
	c.mu.Lock()
	c.selected = candidateID
	c.hasSelection = true
	c.mu.Unlock()

	c.publishView()
}

// CastVote submits a vote for the given candidate if every precondition
// holds. At most one submission is in flight; a concurrent request fails with
// ErrSubmissionInProgress. Whatever the outcome, a snapshot refresh is forced
// afterwards because a revert can mean the local vote status is stale in
// either direction.
func (c *Coordinator) CastVote(ctx context.Context, candidateID uint64) (ledger.Receipt, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ledger.Receipt{}, ErrSubmissionInProgress
	}

	decision, err := Evaluate(c.identity.Snapshot(), c.guardSnapshot(), candidateID)
	if err != nil {
		c.mu.Unlock()
		return ledger.Receipt{}, err
	}
	if !decision.Permitted {
		c.mu.Unlock()
		return ledger.Receipt{}, &GuardError{Violations: decision.Violations}
	}

	c.submitting = true
	c.mu.Unlock()
	c.publishView()

	receipt, err := c.client.SubmitVote(ctx, candidateID)

	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()

	c.reconciler.Trigger()
	c.publishView()

	if err != nil {
		return ledger.Receipt{}, errors.Wrap(err, "vote submission failed")
	}

	c.logger.Info("vote cast", "candidate", candidateID, "tx", receipt.TxHash.Hex())
	return receipt, nil
}

// AddCandidate passes an add-candidate submission through to the ledger.
// Ownership is enforced by the contract, not here.
func (c *Coordinator) AddCandidate(ctx context.Context, name string) (ledger.Receipt, error) {
	return c.submit(func() (ledger.Receipt, error) { return c.client.SubmitAddCandidate(ctx, name) })
}

// AuthorizeVoter passes a voter authorization through to the ledger
func (c *Coordinator) AuthorizeVoter(ctx context.Context, voter common.Address) (ledger.Receipt, error) {
	return c.submit(func() (ledger.Receipt, error) { return c.client.SubmitAuthorizeVoter(ctx, voter) })
}

// RemoveVoter passes a voter removal through to the ledger
func (c *Coordinator) RemoveVoter(ctx context.Context, voter common.Address) (ledger.Receipt, error) {
	return c.submit(func() (ledger.Receipt, error) { return c.client.SubmitRemoveVoter(ctx, voter) })
}

// StartVoting passes the voting period opening through to the ledger
func (c *Coordinator) StartVoting(ctx context.Context) (ledger.Receipt, error) {
	return c.submit(func() (ledger.Receipt, error) { return c.client.SubmitStartVoting(ctx) })
}

// EndVoting passes the voting period closing through to the ledger
func (c *Coordinator) EndVoting(ctx context.Context) (ledger.Receipt, error) {
	return c.submit(func() (ledger.Receipt, error) { return c.client.SubmitEndVoting(ctx) })
}

// State derives the current session state
func (c *Coordinator) State() State {
	c.mu.Lock()
	submitting := c.submitting
	c.mu.Unlock()

	return deriveState(c.identity.Snapshot(), submitting, !c.reconciler.Stale())
}

// CurrentView builds the view of the session as it is right now
func (c *Coordinator) CurrentView() View {
	return c.buildView()
}

// Close releases the wallet subscriptions and the ledger connection. Safe to
// call multiple times.
func (c *Coordinator) Close() {
	c.closeOnce.Do(func() {
		c.wallet.Close()
		c.client.Close()
		c.logger.Info("session torn down")
	})
}

// deriveState derives the session state. Ready requires a successfully
// fetched snapshot besides the two identity proofs; until the first refresh
// succeeds the wallet connect has not completed the transition.
func deriveState(identity Identity, submitting, synced bool) State {
	switch {
	case !identity.Authenticated():
		return Unauthenticated
	case !identity.HasWallet:
		return AuthenticatedNoWallet
	case submitting:
		return VoteSubmitting
	case !synced:
		return AuthenticatedNoWallet
	default:
		return Ready
	}
}

// submit runs a pass-through write and forces a refresh afterwards no matter
// the outcome
func (c *Coordinator) submit(write func() (ledger.Receipt, error)) (ledger.Receipt, error) {
	receipt, err := write()
	c.reconciler.Trigger()
	if err != nil {
		return ledger.Receipt{}, err
	}
	return receipt, nil
}

// guardSnapshot is the snapshot the guard decides on: the last published data
// with validity revoked while the reconciler reports staleness, so the guard
// refuses to decide on possibly outdated authorization or vote status
func (c *Coordinator) guardSnapshot() ledger.Snapshot {
	snapshot := c.reconciler.Snapshot()
	if c.reconciler.Stale() {
		snapshot.Valid = false
	}
	return snapshot
}

func (c *Coordinator) applyUpdate(update Update) {
	if update.VoterKnown {
		c.identity.ApplyLedgerStatus(update.Voter, update.Owner, update.VoterAuthorized)
	}
	c.publishView()
}

func (c *Coordinator) handleAccountsChanged(accounts []common.Address) {
	if len(accounts) == 0 {
		c.identity.ClearWallet()
		c.logger.Info("wallet disconnected")
	} else {
		c.identity.SetWallet(accounts[0])
		c.logger.Info("wallet account changed", "address", accounts[0].Hex())
		c.reconciler.Trigger()
	}

	c.publishView()
}

func (c *Coordinator) buildView() View {
	c.mu.Lock()
	submitting := c.submitting
	selected, hasSelection := c.selected, c.hasSelection
	c.mu.Unlock()

	identity := c.identity.Snapshot()
	snapshot := c.guardSnapshot()

	view := View{
		State:    deriveState(identity, submitting, snapshot.Valid),
		Identity: identity,
		Snapshot: snapshot,
		Results:  Aggregate(snapshot),
	}

	if hasSelection {
		if decision, err := Evaluate(identity, snapshot, selected); err == nil {
			view.Guard = &decision
		}
	}

	return view
}

func (c *Coordinator) publishView() {
	c.viewFeed.Send(c.buildView())
}
