package ledger

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Candidate is a single ballot option as reported by the voting contract.
// The ID is assigned by the contract and never changes; VoteCount is the
// contract's tally, never mutated locally.
type Candidate struct {
	ID        uint64
	Name      string
	VoteCount uint64
}

// Snapshot is a locally cached copy of the voting state on the ledger.
// It is either fully populated from a successful refresh (Valid is true),
// or it is the last successfully fetched state retained unchanged.
// A failed refresh must never overwrite individual fields.
type Snapshot struct {
	VotingOpen bool
	Candidates []Candidate
	// HasVoted refers to the wallet that was connected when the snapshot was taken
	HasVoted  bool
	FetchedAt time.Time
	Valid     bool
}

// Candidate returns the candidate with the given id if it is part of the snapshot
func (s Snapshot) Candidate(id uint64) (Candidate, bool) {
	for _, candidate := range s.Candidates {
		if candidate.ID == id {
			return candidate, true
		}
	}
	return Candidate{}, false
}

// Age returns how long ago the snapshot was fetched
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// RankedResult is the derived results view. It is recomputed from a snapshot
// on demand and never persisted.
type RankedResult struct {
	// Ranked holds the candidates sorted by vote count in descending order.
	// Candidates with equal counts keep the order the ledger reported them in.
	Ranked     []Candidate
	TotalVotes uint64
	// Winner is set iff voting is closed and there is at least one candidate
	Winner *Candidate
}

// Receipt is the acknowledgement of a state-changing submission to the ledger
type Receipt struct {
	TxHash common.Hash
}

// EventKind enumerates the change notifications emitted by the voting contract
type EventKind int

const (
	EventUnknown EventKind = iota
	EventCandidateAdded
	EventVoted
	EventVoterAuthorized
	EventVoterRemoved
	EventVotingStarted
	EventVotingEnded
)

func (e EventKind) String() string {
	switch e {
	case EventCandidateAdded:
		return "CandidateAdded"
	case EventVoted:
		return "Voted"
	case EventVoterAuthorized:
		return "VoterAuthorized"
	case EventVoterRemoved:
		return "VoterRemoved"
	case EventVotingStarted:
		return "VotingStarted"
	case EventVotingEnded:
		return "VotingEnded"
	default:
		return "Unknown"
	}
}
