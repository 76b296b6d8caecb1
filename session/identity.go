package session

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Identity holds the two independent identity proofs of a session: the
// application-level login principal and the wallet address. They are never
// collapsed into a single authenticated flag; the vote guard combines them.
// IsOwner and IsAuthorizedVoter are derived from ledger-reported values for
// the current wallet and are reset whenever the wallet changes.
type Identity struct {
	Principal string
	Wallet    common.Address
	HasWallet bool

	IsOwner           bool
	IsAuthorizedVoter bool
}

// Authenticated returns true if a login collaborator has verified a principal
func (i Identity) Authenticated() bool {
	return i.Principal != ""
}

// IdentityStore is the single writable holder of the session identity.
// It is owned by the Coordinator; everything else reads value copies.
type IdentityStore struct {
	mu       sync.RWMutex
	identity Identity
}

// NewIdentityStore returns an empty identity store
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{}
}

// Snapshot returns a copy of the current identity
func (s *IdentityStore) Snapshot() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// SetPrincipal records a successfully verified login principal
func (s *IdentityStore) SetPrincipal(principal string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.Principal = principal
}

// ClearPrincipal removes the login proof
func (s *IdentityStore) ClearPrincipal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.Principal = ""
}

// SetWallet records the active wallet address. The derived ledger flags
// become invalid at this point, so they are reset until the next refresh
// rederives them.
func (s *IdentityStore) SetWallet(wallet common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.Wallet = wallet
	s.identity.HasWallet = true
	s.identity.IsOwner = false
	s.identity.IsAuthorizedVoter = false
}

// ClearWallet removes the wallet proof and all flags derived from it
func (s *IdentityStore) ClearWallet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.Wallet = common.Address{}
	s.identity.HasWallet = false
	s.identity.IsOwner = false
	s.identity.IsAuthorizedVoter = false
}

// ApplyLedgerStatus rederives the ownership and authorization flags from
// ledger-reported values. The update names the wallet it was fetched for and
// is dropped if the wallet has changed since, so a racing refresh can never
// attach another wallet's flags to the current one.
func (s *IdentityStore) ApplyLedgerStatus(fetchedFor common.Address, owner common.Address, authorized bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.identity.HasWallet || s.identity.Wallet != fetchedFor {
		return
	}

	s.identity.IsOwner = s.identity.Wallet == owner
	s.identity.IsAuthorizedVoter = authorized
}
