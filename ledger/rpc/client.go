package rpc

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/blockvote/votingd/ledger"
)

//go:generate moq -out ./mock/client.go -pkg mock . Client

// Client provides read and write calls to the voting contract on the ledger.
// It is a thin, stateless boundary: no retries, no caching. Resilience lives
// with the callers.
type Client interface {
	// Candidates returns all candidates in the order the ledger reports them
	Candidates(ctx context.Context) ([]ledger.Candidate, error)
	// VotingOpen returns whether the voting period is currently open
	VotingOpen(ctx context.Context) (bool, error)
	// HasVoted returns whether the given voter has already cast a vote
	HasVoted(ctx context.Context, voter common.Address) (bool, error)
	// IsAuthorized returns whether the given voter is on the authorization list
	IsAuthorized(ctx context.Context, voter common.Address) (bool, error)
	// Owner returns the contract owner
	Owner(ctx context.Context) (common.Address, error)
	// Winner returns the contract's own winner computation. Kept for parity with
	// the contract surface; results shown to users are derived client-side so
	// they can never disagree with the displayed tally.
	Winner(ctx context.Context) (ledger.Candidate, error)

	// SubmitVote casts a vote for the given candidate
	SubmitVote(ctx context.Context, candidateID uint64) (ledger.Receipt, error)
	// SubmitAddCandidate registers a new candidate (owner only, enforced by the contract)
	SubmitAddCandidate(ctx context.Context, name string) (ledger.Receipt, error)
	// SubmitAuthorizeVoter adds the given address to the authorization list (owner only)
	SubmitAuthorizeVoter(ctx context.Context, voter common.Address) (ledger.Receipt, error)
	// SubmitRemoveVoter removes the given address from the authorization list (owner only)
	SubmitRemoveVoter(ctx context.Context, voter common.Address) (ledger.Receipt, error)
	// SubmitStartVoting opens the voting period (owner only)
	SubmitStartVoting(ctx context.Context) (ledger.Receipt, error)
	// SubmitEndVoting closes the voting period (owner only)
	SubmitEndVoting(ctx context.Context) (ledger.Receipt, error)

	// Events subscribes to the contract's change notifications. Endpoints
	// without subscription support return an error wrapping
	// rpc.ErrNotificationsUnsupported so callers can fall back to polling.
	Events(ctx context.Context) (<-chan ledger.EventKind, ethereum.Subscription, error)
	// Close closes the underlying connection
	Close()
}

// Transactor supplies signing options for a write call. It is provided by the
// wallet collaborator so that key management stays out of the gateway.
type Transactor func(ctx context.Context) (*bind.TransactOpts, error)
