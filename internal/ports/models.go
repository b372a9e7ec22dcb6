package ports

import "context"

// ModelLister reports the model identifiers available upstream. Used only
// by diagnostics (GET /test-api and the models subcommand).
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}
