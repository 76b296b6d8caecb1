package session

import (
	"sort"

	"github.com/axelarnetwork/utils/slices"

	"github.com/blockvote/votingd/ledger"
)

// Aggregate derives the ranked results view from a snapshot. Sorting is by
// vote count descending with a stable sort, so candidates with equal counts
// keep the order the ledger reported them in and the result is reproducible
// from the same snapshot. The winner is derived from the candidate list
// itself rather than the contract's getWinner call, so the announced winner
// can never disagree with the displayed tally.
func Aggregate(snapshot ledger.Snapshot) ledger.RankedResult {
	ranked := make([]ledger.Candidate, len(snapshot.Candidates))
	copy(ranked, snapshot.Candidates)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].VoteCount > ranked[j].VoteCount })

	result := ledger.RankedResult{
		Ranked: ranked,
		TotalVotes: slices.Reduce(ranked, uint64(0), func(total uint64, candidate ledger.Candidate) uint64 {
			return total + candidate.VoteCount
		}),
	}

	// a winner only exists once voting has closed
	if !snapshot.VotingOpen && len(ranked) > 0 {
		winner := ranked[0]
		result.Winner = &winner
	}

	return result
}
