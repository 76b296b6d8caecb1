package session

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/jobs"

	"github.com/blockvote/votingd/ledger"
	"github.com/blockvote/votingd/ledger/rpc"
)

// DefaultPollInterval is the reference polling interval for pull-based refreshes
const DefaultPollInterval = 3 * time.Second

// AddressSource reports the wallet address a refresh should be taken for,
// or false if no wallet is connected
type AddressSource func() (common.Address, bool)

// Update is published after every successful refresh. Besides the snapshot it
// carries the ledger-reported status for the wallet the refresh was taken
// with, so derived identity flags can be rederived without another read.
type Update struct {
	Snapshot ledger.Snapshot

	Voter           common.Address
	VoterKnown      bool
	Owner           common.Address
	VoterAuthorized bool
}

// Reconciler keeps a best-effort up-to-date snapshot of the ledger state.
// A refresh replaces the published snapshot only if every read succeeds;
// partial results are discarded and the last good snapshot stays untouched.
// Refresh triggers coalesce: one refresh is in flight at a time and at most
// one follow-up is recorded while it runs.
type Reconciler struct {
	client rpc.Client
	voter  AddressSource
	logger log.Logger

	trigger chan struct{}

	mu       sync.RWMutex
	snapshot ledger.Snapshot
	stale    bool

	feed event.Feed
}

// NewReconciler returns a reconciler reading through the given client.
// The voter source is consulted on each refresh so wallet changes are picked
// up without re-wiring.
func NewReconciler(client rpc.Client, voter AddressSource, logger log.Logger) *Reconciler {
	return &Reconciler{
		client:  client,
		voter:   voter,
		logger:  logger.With("process", "reconciler"),
		trigger: make(chan struct{}, 1),
		stale:   true,
	}
}

// Trigger requests a refresh. It never blocks; triggers arriving while a
// refresh is in flight collapse into a single follow-up refresh.
func (r *Reconciler) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Snapshot returns the last successfully published snapshot
func (r *Reconciler) Snapshot() ledger.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Stale reports whether the published snapshot might be outdated, i.e. no
// refresh has succeeded yet or the most recent refresh attempt failed
func (r *Reconciler) Stale() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stale
}

// SubscribeUpdates subscribes the given channel to refresh updates
func (r *Reconciler) SubscribeUpdates(ch chan<- Update) event.Subscription {
	return r.feed.Subscribe(ch)
}

// Run processes refresh triggers until the context is done
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.trigger:
			r.refresh(ctx)
		}
	}
}

// PollJob returns a job triggering a refresh at the given fixed interval
func (r *Reconciler) PollJob(interval time.Duration) jobs.Job {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				r.Trigger()
			}
		}
	}
}

// WatchJob returns a job that triggers a refresh for every ledger change
// notification. The subscription is released when the job stops.
func (r *Reconciler) WatchJob(events <-chan ledger.EventKind, sub ethereum.Subscription) jobs.Job {
	return func(ctx context.Context) error {
		defer sub.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return nil
			case err := <-sub.Err():
				if err != nil {
					return errors.Wrap(err, "ledger event subscription dropped")
				}
				return nil
			case kind, ok := <-events:
				if !ok {
					return nil
				}
				r.logger.Debug("ledger change notification", "event", kind.String())
				r.Trigger()
			}
		}
	}
}

func (r *Reconciler) refresh(ctx context.Context) {
	update, err := r.fetch(ctx)
	if err != nil {
		// keep the last good snapshot untouched, just flag it
		r.mu.Lock()
		r.stale = true
		r.mu.Unlock()

		r.logger.Info("ledger refresh failed, keeping last snapshot", "err", err)
		return
	}

	r.mu.Lock()
	r.snapshot = update.Snapshot
	r.stale = false
	r.mu.Unlock()

	r.feed.Send(update)
}

func (r *Reconciler) fetch(ctx context.Context) (Update, error) {
	candidates, err := r.client.Candidates(ctx)
	if err != nil {
		return Update{}, errors.Wrap(err, "unable to read candidates")
	}

	votingOpen, err := r.client.VotingOpen(ctx)
	if err != nil {
		return Update{}, errors.Wrap(err, "unable to read voting status")
	}

	update := Update{
		Snapshot: ledger.Snapshot{
			VotingOpen: votingOpen,
			Candidates: candidates,
			FetchedAt:  time.Now(),
			Valid:      true,
		},
	}

	voter, ok := r.voter()
	if !ok {
		return update, nil
	}

	hasVoted, err := r.client.HasVoted(ctx, voter)
	if err != nil {
		return Update{}, errors.Wrap(err, "unable to read vote status")
	}

	authorized, err := r.client.IsAuthorized(ctx, voter)
	if err != nil {
		return Update{}, errors.Wrap(err, "unable to read voter authorization")
	}

	owner, err := r.client.Owner(ctx)
	if err != nil {
		return Update{}, errors.Wrap(err, "unable to read contract owner")
	}

	update.Snapshot.HasVoted = hasVoted
	update.Voter = voter
	update.VoterKnown = true
	update.Owner = owner
	update.VoterAuthorized = authorized

	return update, nil
}
