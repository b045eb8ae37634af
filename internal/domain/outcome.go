package domain

// OutcomeKind classifies the result of a credential validation attempt.
type OutcomeKind int

const (
	// OutcomeValid means the platform accepted the credentials.
	OutcomeValid OutcomeKind = iota
	// OutcomeRejected means the credentials are incomplete or the platform
	// refused them; retrying with the same credentials is pointless.
	OutcomeRejected
	// OutcomeTransportFault means the platform could not be reached at all.
	// The credentials may still be valid and a caller may retry.
	OutcomeTransportFault
)

// Outcome is the structured result of a validation attempt.
// Reason is populated exactly when Kind is not OutcomeValid.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Valid reports whether the platform accepted the credentials.
func (o Outcome) Valid() bool { return o.Kind == OutcomeValid }

// Accepted returns a valid outcome.
func Accepted() Outcome { return Outcome{Kind: OutcomeValid} }

// Rejected returns an outcome for credentials the platform refused.
func Rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Reason: reason}
}

// TransportFault returns an outcome for a probe that never got an answer.
func TransportFault(detail string) Outcome {
	return Outcome{Kind: OutcomeTransportFault, Reason: detail}
}
