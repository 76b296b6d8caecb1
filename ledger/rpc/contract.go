package rpc

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	gethRPC "github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/axelarnetwork/utils/slices"

	"github.com/blockvote/votingd/ledger"
)

// votingABI is the ABI of the deployed Voting contract
const votingABI = `[
{"inputs":[{"internalType":"string","name":"_name","type":"string"}],"name":"addCandidate","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"address","name":"_voterAddress","type":"address"}],"name":"authorizeVoter","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"address","name":"","type":"address"}],"name":"authorizedVoters","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"endVoting","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"getCandidates","outputs":[{"components":[{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"string","name":"name","type":"string"},{"internalType":"uint256","name":"voteCount","type":"uint256"}],"internalType":"struct Voting.Candidate[]","name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"getVotingStatus","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"getWinner","outputs":[{"internalType":"uint256","name":"winnerId","type":"uint256"},{"internalType":"string","name":"winnerName","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"address","name":"","type":"address"}],"name":"hasVoted","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"address","name":"_voterAddress","type":"address"}],"name":"removeAuthorizedVoter","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"startVoting","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"uint256","name":"_candidateId","type":"uint256"}],"name":"vote","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"internalType":"uint256","name":"candidateId","type":"uint256"},{"indexed":false,"internalType":"string","name":"name","type":"string"}],"name":"CandidateAdded","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"voter","type":"address"},{"indexed":true,"internalType":"uint256","name":"candidateId","type":"uint256"}],"name":"Voted","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"voterAddress","type":"address"}],"name":"VoterAuthorized","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"voterAddress","type":"address"}],"name":"VoterRemoved","type":"event"},
{"anonymous":false,"inputs":[],"name":"VotingEnded","type":"event"},
{"anonymous":false,"inputs":[],"name":"VotingStarted","type":"event"}
]`

var parsedABI = funcs.Must(abi.JSON(strings.NewReader(votingABI)))

// EIP-1193 error code for a signer declining the request
const codeUserRejected = 4001

// votingCandidate mirrors the contract's Candidate tuple for ABI decoding
type votingCandidate struct {
	Id        *big.Int
	Name      string
	VoteCount *big.Int
}

// VotingClient is a Client backed by an Ethereum JSON-RPC endpoint
type VotingClient struct {
	eth        *ethclient.Client
	contract   *bind.BoundContract
	address    common.Address
	transactor Transactor
}

// NewClient connects to the given JSON-RPC url and binds the voting contract
// at the given address. The transactor supplies signing options for writes.
func NewClient(ctx context.Context, url string, contract common.Address, transactor Transactor) (*VotingClient, error) {
	rpcClient, err := gethRPC.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to dial ledger endpoint %s", url)
	}

	eth := ethclient.NewClient(rpcClient)
	return &VotingClient{
		eth:        eth,
		contract:   bind.NewBoundContract(contract, parsedABI, eth, eth, eth),
		address:    contract,
		transactor: transactor,
	}, nil
}

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// Candidates returns all candidates in the order the ledger reports them
func (c *VotingClient) Candidates(ctx context.Context) ([]ledger.Candidate, error) {
	var out []interface{}
	if err := c.contract.Call(callOpts(ctx), &out, "getCandidates"); err != nil {
		return nil, classifyRead(err)
	}

	raw := *abi.ConvertType(out[0], new([]votingCandidate)).(*[]votingCandidate)
	return slices.Map(raw, func(candidate votingCandidate) ledger.Candidate {
		return ledger.Candidate{
			ID:        candidate.Id.Uint64(),
			Name:      candidate.Name,
			VoteCount: candidate.VoteCount.Uint64(),
		}
	}), nil
}

// VotingOpen returns whether the voting period is currently open
func (c *VotingClient) VotingOpen(ctx context.Context) (bool, error) {
	var out []interface{}
	if err := c.contract.Call(callOpts(ctx), &out, "getVotingStatus"); err != nil {
		return false, classifyRead(err)
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// HasVoted returns whether the given voter has already cast a vote
func (c *VotingClient) HasVoted(ctx context.Context, voter common.Address) (bool, error) {
	var out []interface{}
	if err := c.contract.Call(callOpts(ctx), &out, "hasVoted", voter); err != nil {
		return false, classifyRead(err)
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// IsAuthorized returns whether the given voter is on the authorization list
func (c *VotingClient) IsAuthorized(ctx context.Context, voter common.Address) (bool, error) {
	var out []interface{}
	if err := c.contract.Call(callOpts(ctx), &out, "authorizedVoters", voter); err != nil {
		return false, classifyRead(err)
	}

	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// Owner returns the contract owner
func (c *VotingClient) Owner(ctx context.Context) (common.Address, error) {
	var out []interface{}
	if err := c.contract.Call(callOpts(ctx), &out, "owner"); err != nil {
		return common.Address{}, classifyRead(err)
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// Winner returns the contract's own winner computation
func (c *VotingClient) Winner(ctx context.Context) (ledger.Candidate, error) {
	var out []interface{}
	if err := c.contract.Call(callOpts(ctx), &out, "getWinner"); err != nil {
		return ledger.Candidate{}, classifyRead(err)
	}

	return ledger.Candidate{
		ID:   (*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)).Uint64(),
		Name: *abi.ConvertType(out[1], new(string)).(*string),
	}, nil
}

// SubmitVote casts a vote for the given candidate
func (c *VotingClient) SubmitVote(ctx context.Context, candidateID uint64) (ledger.Receipt, error) {
	return c.transact(ctx, "vote", new(big.Int).SetUint64(candidateID))
}

// SubmitAddCandidate registers a new candidate
func (c *VotingClient) SubmitAddCandidate(ctx context.Context, name string) (ledger.Receipt, error) {
	return c.transact(ctx, "addCandidate", name)
}

// SubmitAuthorizeVoter adds the given address to the authorization list
func (c *VotingClient) SubmitAuthorizeVoter(ctx context.Context, voter common.Address) (ledger.Receipt, error) {
	return c.transact(ctx, "authorizeVoter", voter)
}

// SubmitRemoveVoter removes the given address from the authorization list
func (c *VotingClient) SubmitRemoveVoter(ctx context.Context, voter common.Address) (ledger.Receipt, error) {
	return c.transact(ctx, "removeAuthorizedVoter", voter)
}

// SubmitStartVoting opens the voting period
func (c *VotingClient) SubmitStartVoting(ctx context.Context) (ledger.Receipt, error) {
	return c.transact(ctx, "startVoting")
}

// SubmitEndVoting closes the voting period
func (c *VotingClient) SubmitEndVoting(ctx context.Context) (ledger.Receipt, error) {
	return c.transact(ctx, "endVoting")
}

func (c *VotingClient) transact(ctx context.Context, method string, params ...interface{}) (ledger.Receipt, error) {
	opts, err := c.transactor(ctx)
	if err != nil {
		return ledger.Receipt{}, classifyWrite(err)
	}
	opts.Context = ctx

	tx, err := c.contract.Transact(opts, method, params...)
	if err != nil {
		return ledger.Receipt{}, classifyWrite(err)
	}

	return ledger.Receipt{TxHash: tx.Hash()}, nil
}

// Events subscribes to the contract's logs and maps them to event kinds
func (c *VotingClient) Events(ctx context.Context) (<-chan ledger.EventKind, ethereum.Subscription, error) {
	logs := make(chan types.Log)
	sub, err := c.eth.SubscribeFilterLogs(ctx, ethereum.FilterQuery{Addresses: []common.Address{c.address}}, logs)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to subscribe to contract logs")
	}

	events := make(chan ledger.EventKind)
	go func() {
		defer close(events)
		for {
			select {
			case l := <-logs:
				kind := EventKindOf(l)
				if kind == ledger.EventUnknown {
					continue
				}
				select {
				case events <- kind:
				case <-sub.Err():
					return
				}
			case <-sub.Err():
				return
			}
		}
	}()

	return events, sub, nil
}

// Close closes the underlying connection
func (c *VotingClient) Close() {
	c.eth.Close()
}

// EventKindOf maps a contract log to its event kind
func EventKindOf(l types.Log) ledger.EventKind {
	if len(l.Topics) == 0 {
		return ledger.EventUnknown
	}

	switch l.Topics[0] {
	case parsedABI.Events["CandidateAdded"].ID:
		return ledger.EventCandidateAdded
	case parsedABI.Events["Voted"].ID:
		return ledger.EventVoted
	case parsedABI.Events["VoterAuthorized"].ID:
		return ledger.EventVoterAuthorized
	case parsedABI.Events["VoterRemoved"].ID:
		return ledger.EventVoterRemoved
	case parsedABI.Events["VotingStarted"].ID:
		return ledger.EventVotingStarted
	case parsedABI.Events["VotingEnded"].ID:
		return ledger.EventVotingEnded
	default:
		return ledger.EventUnknown
	}
}

func classifyRead(err error) error {
	if ledger.KindOf(err) != ledger.KindUnknown {
		return err
	}

	var rpcErr gethRPC.Error
	if errors.As(err, &rpcErr) {
		return ledger.NewError(ledger.KindGatewayRejected, err)
	}

	return ledger.NewError(ledger.KindGatewayUnavailable, err)
}

func classifyWrite(err error) error {
	if ledger.KindOf(err) != ledger.KindUnknown {
		return err
	}

	var rpcErr gethRPC.Error
	if errors.As(err, &rpcErr) {
		switch {
		case rpcErr.ErrorCode() == codeUserRejected:
			return ledger.NewError(ledger.KindUserRejected, err)
		case isRevert(err):
			return ledger.NewError(ledger.KindLedgerReverted, err)
		default:
			return ledger.NewError(ledger.KindGatewayRejected, err)
		}
	}

	if isRevert(err) {
		return ledger.NewError(ledger.KindLedgerReverted, err)
	}

	return ledger.NewError(ledger.KindGatewayUnavailable, err)
}

// a revert surfaces either as an rpc error carrying return data or, with some
// providers, only as the revert message in the error string
func isRevert(err error) bool {
	var dataErr gethRPC.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}

	return strings.Contains(err.Error(), "execution reverted")
}
