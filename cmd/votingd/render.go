package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/axelarnetwork/utils/jobs"

	"github.com/blockvote/votingd/session"
)

// renderJob prints every session view to the terminal. This is the whole
// presentation layer of the daemon; the session core neither knows nor cares
// how views are shown.
func renderJob(coordinator *session.Coordinator) jobs.Job {
	return func(ctx context.Context) error {
		views := make(chan session.View, 1)
		sub := coordinator.SubscribeViews(views)
		defer sub.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return nil
			case view := <-views:
				render(view)
			}
		}
	}
}

func render(view session.View) {
	status := pterm.LightRed("CLOSED")
	if view.Snapshot.VotingOpen {
		status = pterm.LightGreen("OPEN")
	}
	pterm.DefaultSection.Printfln("Voting %s, session %s", status, view.State)

	if view.Identity.HasWallet {
		pterm.Printfln("wallet: %s (owner: %t, authorized: %t)",
			view.Identity.Wallet.Hex(), view.Identity.IsOwner, view.Identity.IsAuthorizedVoter)
	}

	rows := pterm.TableData{{"Rank", "Candidate", "Votes"}}
	for i, candidate := range view.Results.Ranked {
		rows = append(rows, []string{fmt.Sprint(i + 1), candidate.Name, fmt.Sprint(candidate.VoteCount)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	if winner := view.Results.Winner; winner != nil {
		pterm.Success.Printfln("winner: %s with %d of %d votes", winner.Name, winner.VoteCount, view.Results.TotalVotes)
	}

	if view.Guard != nil && !view.Guard.Permitted {
		for _, violation := range view.Guard.Violations {
			pterm.Warning.Println(violation.String())
		}
	}
}
