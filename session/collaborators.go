package session

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate moq -out ./mock/collaborators.go -pkg mock . Authenticator WalletProvider

// Authenticator is the login collaborator. Whatever mechanism it uses
// (passkey, password, sso) is opaque; any non-empty principal it returns is
// treated as a sufficient application-level identity proof.
type Authenticator interface {
	// Verify checks the given credential and returns the verified principal
	Verify(ctx context.Context, credential string) (string, error)
}

// WalletProvider is the wallet collaborator. Key management and signing
// internals stay behind this boundary.
type WalletProvider interface {
	// RequestAccounts asks the wallet for its accounts. The first account is
	// treated as the active wallet identity.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// AccountsChanged notifies about changes to the account list. An empty
	// list means the wallet disconnected.
	AccountsChanged() <-chan []common.Address
	// ChainChanged notifies about the wallet switching to a different chain
	ChainChanged() <-chan string
	// Transactor returns signing options for a ledger submission
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
	// Close releases the wallet subscriptions
	Close()
}
