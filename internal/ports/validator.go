package ports

import (
	"context"

	"shopopti-integration-layer/internal/domain"
)

// CredentialValidator checks a platform-specific credential set against the
// live platform API. Implementations never return an error: every failure
// mode, transport faults included, is folded into the outcome.
type CredentialValidator interface {
	Validate(ctx context.Context, creds domain.Credentials) domain.Outcome
}

// ValidatorRegistry resolves a platform identifier to its validator.
// Lookup is exact-match and case-sensitive.
type ValidatorRegistry interface {
	Lookup(platform string) (CredentialValidator, bool)
}
