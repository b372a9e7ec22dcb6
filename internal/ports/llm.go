package ports

import (
	"context"

	"github.com/vvk-babyorgano/baby-name-generator/internal/domain"
)

// Completer issues a single chat-completion call against one model and
// returns the raw generated text. Implementations classify failures with
// the domain sentinel errors (ErrTransport, ErrUpstream, ErrRateLimited,
// ErrEmptyCompletion) so the orchestrator can tell them apart.
type Completer interface {
	Complete(ctx context.Context, model domain.ModelCandidate, prompt string) (string, error)
}
