package ports

import (
	"context"

	"github.com/bnema/gamectl/internal/domain"
)

// Catalog answers which game build a fingerprint belongs to. Transport
// failures are returned as errors; a negative answer is a not-found outcome.
type Catalog interface {
	FindPatch(ctx context.Context, fingerprint string) (domain.CheckOutcome, error)
}
