package usecase

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/cuid2/internal/errors"
	"github.com/allisson/cuid2/internal/identifier/domain"
	"github.com/allisson/cuid2/internal/identifier/service"
	"github.com/allisson/cuid2/pkg/cuid2"
)

// minParallelBatch is the smallest batch split across workers.
const minParallelBatch = 64

// Config holds the batch limits of the identifier use case.
type Config struct {
	MaxBatchSize int
	Workers      int
}

type identifierUseCase struct {
	config     Config
	generators GeneratorProvider
	logger     *slog.Logger
}

// NewIdentifierUseCase creates an IdentifierUseCase. Non-positive limits fall back to a
// single worker and domain.DefaultBatchSize.
func NewIdentifierUseCase(cfg Config, generators GeneratorProvider, logger *slog.Logger) IdentifierUseCase {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxBatchSize < 1 {
		cfg.MaxBatchSize = domain.DefaultBatchSize
	}
	return &identifierUseCase{
		config:     cfg,
		generators: generators,
		logger:     logger,
	}
}

// Generate fills a batch of identifiers, fanning out to the configured number of workers for
// large batches. Workers share one generator, whose counter is advanced atomically.
func (u *identifierUseCase) Generate(
	ctx context.Context,
	input *domain.GenerateInput,
) ([]*domain.Identifier, error) {
	count := input.Count
	if count == 0 {
		count = domain.DefaultBatchSize
	}
	if count < 0 || count > u.config.MaxBatchSize {
		return nil, apperrors.Wrapf(domain.ErrInvalidBatchSize, "count must be between 1 and %d", u.config.MaxBatchSize)
	}

	gen, err := u.generators.Get(input.Length)
	if err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	identifiers := make([]*domain.Identifier, count)

	workers := u.config.Workers
	if count < minParallelBatch {
		workers = 1
	}
	chunk := (count + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < count; start += chunk {
		end := min(start+chunk, count)
		g.Go(func() error {
			return fill(gctx, gen, identifiers[start:end], createdAt)
		})
	}

	if err := g.Wait(); err != nil {
		u.logger.Debug("identifier batch abandoned",
			slog.Int("count", count),
			slog.Any("error", err),
		)
		return nil, apperrors.Wrap(domain.ErrGenerationCanceled, err.Error())
	}

	return identifiers, nil
}

func fill(ctx context.Context, gen service.IdentifierGenerator, dst []*domain.Identifier, createdAt time.Time) error {
	for i := range dst {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst[i] = &domain.Identifier{
			Value:     gen.Generate(),
			Length:    gen.Length(),
			CreatedAt: createdAt,
		}
	}
	return nil
}

// Validate checks the candidate against the bounds. Zero bounds select cuid2.MinLength and
// cuid2.MaxLength. Malformed candidates are a false result, not an error.
func (u *identifierUseCase) Validate(
	ctx context.Context,
	input *domain.ValidateInput,
) (*domain.ValidationResult, error) {
	minLength := input.MinLength
	if minLength == 0 {
		minLength = cuid2.MinLength
	}
	maxLength := input.MaxLength
	if maxLength == 0 {
		maxLength = cuid2.MaxLength
	}
	if minLength < 0 || maxLength < 0 || minLength > maxLength {
		return nil, apperrors.Wrapf(
			domain.ErrInvalidBounds,
			"min length %d must not exceed max length %d",
			minLength,
			maxLength,
		)
	}

	return &domain.ValidationResult{
		Candidate: input.Candidate,
		Valid:     cuid2.IsValid(input.Candidate, cuid2.WithMinLength(minLength), cuid2.WithMaxLength(maxLength)),
		MinLength: minLength,
		MaxLength: maxLength,
	}, nil
}
