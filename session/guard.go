package session

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/slices"

	"github.com/blockvote/votingd/ledger"
)

// Violation is a single failed vote precondition. A guard decision carries
// every violation that holds, not just the first one found, so callers can
// present a complete remediation message.
type Violation int

const (
	// NotAuthenticated means no login principal is present
	NotAuthenticated Violation = iota
	// WalletNotConnected means no wallet address is present
	WalletNotConnected
	// NotAuthorizedVoter means the wallet is not on the ledger's authorization list
	NotAuthorizedVoter
	// AlreadyVoted means the wallet has already cast its vote
	AlreadyVoted
	// VotingClosed means the voting period is not open
	VotingClosed
	// SnapshotStale means the local ledger state cannot be trusted to decide
	SnapshotStale
)

func (v Violation) String() string {
	switch v {
	case NotAuthenticated:
		return "not authenticated"
	case WalletNotConnected:
		return "wallet not connected"
	case NotAuthorizedVoter:
		return "not an authorized voter"
	case AlreadyVoted:
		return "already voted"
	case VotingClosed:
		return "voting closed"
	case SnapshotStale:
		return "ledger state is stale"
	default:
		return "unknown violation"
	}
}

// Decision is the outcome of a vote guard evaluation
type Decision struct {
	Permitted  bool
	Violations []Violation
}

// Has returns true if the decision includes the given violation
func (d Decision) Has(violation Violation) bool {
	return slices.Any(d.Violations, func(v Violation) bool { return v == violation })
}

// ErrUnknownCandidate means a vote referenced a candidate that is not part of
// the snapshot. This is a caller bug, not something the voter can remediate,
// so it is reported as an error instead of a violation.
var ErrUnknownCandidate = errors.New("unknown candidate")

// Evaluate decides whether a vote for the given candidate is permitted. It is
// a pure function of the identity and snapshot; the checks are independent and
// all violations are reported.
func Evaluate(identity Identity, snapshot ledger.Snapshot, candidateID uint64) (Decision, error) {
	if _, ok := snapshot.Candidate(candidateID); !ok {
		return Decision{}, errors.Wrapf(ErrUnknownCandidate, "id %d", candidateID)
	}

	var violations []Violation
	if !identity.Authenticated() {
		violations = append(violations, NotAuthenticated)
	}
	if !identity.HasWallet {
		violations = append(violations, WalletNotConnected)
	}
	if !snapshot.Valid {
		violations = append(violations, SnapshotStale)
	}
	if !identity.IsAuthorizedVoter {
		violations = append(violations, NotAuthorizedVoter)
	}
	if snapshot.HasVoted {
		violations = append(violations, AlreadyVoted)
	}
	if !snapshot.VotingOpen {
		violations = append(violations, VotingClosed)
	}

	return Decision{Permitted: len(violations) == 0, Violations: violations}, nil
}

// GuardError carries the full set of violated vote preconditions
type GuardError struct {
	Violations []Violation
}

func (e *GuardError) Error() string {
	reasons := slices.Map(e.Violations, Violation.String)
	return "vote not permitted: " + strings.Join(reasons, ", ")
}
