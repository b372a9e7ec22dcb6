package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vvk-babyorgano/baby-name-generator/internal/domain"
	"github.com/vvk-babyorgano/baby-name-generator/internal/ports"
)

// nonceRange bounds the random seed embedded in each prompt.
const nonceRange = 1000

// GenerateResponse is the application-level output.
type GenerateResponse struct {
	Names     []domain.NameEntry
	ModelUsed string
	LatencyMS int64
}

// GeneratorService runs the candidate fallback loop: one bounded completion
// attempt per model, first usable parse wins, last concrete failure cause
// carried in the aggregate error when every candidate is exhausted.
type GeneratorService struct {
	completer  ports.Completer
	candidates []domain.ModelCandidate
	rng        domain.RNG
	timeout    time.Duration
	pause      time.Duration
	logger     *slog.Logger
}

func NewGeneratorService(completer ports.Completer, candidates []domain.ModelCandidate, rng domain.RNG, timeout, pause time.Duration, logger *slog.Logger) *GeneratorService {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeneratorService{
		completer:  completer,
		candidates: candidates,
		rng:        rng,
		timeout:    timeout,
		pause:      pause,
		logger:     logger,
	}
}

// Generate builds one prompt and tries each candidate in order. A candidate
// succeeds only if its completion parses into at least one name entry; any
// other outcome is recorded and the next candidate is tried. No candidate
// is retried within a single call.
func (s *GeneratorService) Generate(ctx context.Context, prefs domain.PreferenceRecord) (GenerateResponse, error) {
	prompt := domain.BuildPrompt(prefs, s.rng.Intn(nonceRange))
	start := time.Now()

	var lastErr error
	for i, candidate := range s.candidates {
		if i > 0 && s.pause > 0 {
			select {
			case <-ctx.Done():
				return GenerateResponse{}, ctx.Err()
			case <-time.After(s.pause):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		text, err := s.completer.Complete(attemptCtx, candidate, prompt)
		cancel()

		if err != nil {
			lastErr = err
			s.logger.WarnContext(ctx, "model failed, trying next",
				"model", candidate.ID, "label", candidate.Label, "error", err)
			continue
		}

		names := domain.ParseNames(text)
		if len(names) == 0 {
			lastErr = fmt.Errorf("%w: model %s", domain.ErrUnparseable, candidate.ID)
			s.logger.WarnContext(ctx, "completion yielded no parseable names, trying next",
				"model", candidate.ID)
			continue
		}

		s.logger.InfoContext(ctx, "names generated",
			"model", candidate.ID, "count", len(names), "latency_ms", time.Since(start).Milliseconds())

		return GenerateResponse{
			Names:     names,
			ModelUsed: candidate.ID,
			LatencyMS: time.Since(start).Milliseconds(),
		}, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate models configured")
	}
	return GenerateResponse{}, fmt.Errorf("%w: %w", domain.ErrAllModelsFailed, lastErr)
}
