package domain

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ConnectFailureKind classifies why a connect attempt failed.
type ConnectFailureKind int

const (
	// ConnectInvalidInput covers input problems caught before any I/O.
	ConnectInvalidInput ConnectFailureKind = iota
	// ConnectUnsupportedPlatform means no validator is registered for the
	// requested platform identifier.
	ConnectUnsupportedPlatform
	// ConnectRejected means the platform refused the credentials.
	ConnectRejected
	// ConnectTransportFault means the platform was unreachable during
	// validation; the credentials were never actually checked.
	ConnectTransportFault
	// ConnectPersistence means validation succeeded but the record could
	// not be saved.
	ConnectPersistence
)

// ConnectFailure carries the user-facing reason for a failed connect attempt
// along with a kind callers can map onto transport-level responses.
type ConnectFailure struct {
	Kind   ConnectFailureKind
	Reason string
}

func (e *ConnectFailure) Error() string { return e.Reason }
