package ledger

import (
	"github.com/pkg/errors"
)

// Kind classifies failures of ledger reads and writes so callers can
// distinguish transport problems from signer declines and remote reverts
type Kind int

const (
	// KindUnknown is the zero value and means the failure could not be classified
	KindUnknown Kind = iota
	// KindGatewayUnavailable indicates the ledger endpoint could not be reached
	KindGatewayUnavailable
	// KindGatewayRejected indicates the ledger rejected a malformed call
	KindGatewayRejected
	// KindUserRejected indicates the signer declined to sign the submission
	KindUserRejected
	// KindLedgerReverted indicates a remote precondition failed and the ledger reverted the submission
	KindLedgerReverted
)

func (k Kind) String() string {
	switch k {
	case KindGatewayUnavailable:
		return "gateway unavailable"
	case KindGatewayRejected:
		return "gateway rejected"
	case KindUserRejected:
		return "user rejected"
	case KindLedgerReverted:
		return "ledger reverted"
	default:
		return "unknown"
	}
}

// Error wraps a ledger interaction failure with its classification
type Error struct {
	kind  Kind
	cause error
}

// NewError classifies the given cause
func NewError(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

func (e *Error) Error() string {
	return errors.Wrap(e.cause, e.kind.String()).Error()
}

// Unwrap implements the errors unwrap convention
func (e *Error) Unwrap() error { return e.cause }

// Kind returns the error classification
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the classification of err, or KindUnknown if err carries none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// IsKind returns true if err is classified as the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
