// Package wallet implements the session's wallet collaborator on top of a
// clef external signer. Key management and transaction signing stay inside
// clef; this package only tracks the account list and hands out signing
// options.
package wallet

import (
	"context"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/external"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/slices"

	"github.com/blockvote/votingd/ledger"
)

// clef exposes no push notifications for its account list, so changes are
// detected by polling
const accountPollInterval = 2 * time.Second

// ClefProvider is a session.WalletProvider backed by a clef external signer
type ClefProvider struct {
	signer *external.ExternalSigner
	logger log.Logger

	accountsCh chan []common.Address
	chainCh    chan string

	stopOnce sync.Once
	done     chan struct{}
}

// NewClefProvider connects to the clef signer at the given endpoint
func NewClefProvider(endpoint string, logger log.Logger) (*ClefProvider, error) {
	signer, err := external.NewExternalSigner(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to connect to clef at %s", endpoint)
	}

	p := &ClefProvider{
		signer:     signer,
		logger:     logger.With("module", "wallet"),
		accountsCh: make(chan []common.Address, 1),
		chainCh:    make(chan string, 1),
		done:       make(chan struct{}),
	}
	go p.watchAccounts()

	return p, nil
}

// RequestAccounts returns the accounts clef currently exposes
func (p *ClefProvider) RequestAccounts(_ context.Context) ([]common.Address, error) {
	accs := p.signer.Accounts()
	if len(accs) == 0 {
		return nil, errors.New("clef exposes no accounts")
	}

	return addressesOf(accs), nil
}

// AccountsChanged notifies about changes to clef's account list
func (p *ClefProvider) AccountsChanged() <-chan []common.Address {
	return p.accountsCh
}

// ChainChanged never fires for clef: the signer is chain-agnostic and the
// session is pinned to a single endpoint. The channel exists to satisfy the
// provider contract for wallets that do switch chains.
func (p *ClefProvider) ChainChanged() <-chan string {
	return p.chainCh
}

// Transactor returns signing options bound to the first clef account.
// A decline inside clef surfaces as a user rejection.
func (p *ClefProvider) Transactor(_ context.Context) (*bind.TransactOpts, error) {
	accs := p.signer.Accounts()
	if len(accs) == 0 {
		return nil, errors.New("clef exposes no accounts")
	}

	opts := bind.NewClefTransactor(p.signer, accs[0])

	sign := opts.Signer
	opts.Signer = func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
		signed, err := sign(addr, tx)
		if err != nil && isDenied(err) {
			return nil, ledger.NewError(ledger.KindUserRejected, err)
		}
		return signed, err
	}

	return opts, nil
}

// Close stops the account watcher and closes the signer connection
func (p *ClefProvider) Close() {
	p.stopOnce.Do(func() {
		close(p.done)
		if err := p.signer.Close(); err != nil {
			p.logger.Info("closing clef connection failed", "err", err)
		}
	})
}

func (p *ClefProvider) watchAccounts() {
	ticker := time.NewTicker(accountPollInterval)
	defer ticker.Stop()

	last := addressesOf(p.signer.Accounts())
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			current := addressesOf(p.signer.Accounts())
			if equal(current, last) {
				continue
			}
			last = current

			// drop a stale pending notification, only the latest list matters
			select {
			case <-p.accountsCh:
			default:
			}
			p.accountsCh <- current
		}
	}
}

func addressesOf(accs []accounts.Account) []common.Address {
	return slices.Map(accs, func(acc accounts.Account) common.Address { return acc.Address })
}

func equal(a, b []common.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isDenied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "denied") || strings.Contains(msg, "rejected")
}

