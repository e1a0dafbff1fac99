package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vsinha/nwcorner/pkg/application/dto"
	"github.com/vsinha/nwcorner/pkg/application/services/northwest"
	"github.com/vsinha/nwcorner/pkg/domain/entities"
	"github.com/vsinha/nwcorner/pkg/domain/repositories"
	domainservices "github.com/vsinha/nwcorner/pkg/domain/services"
	"github.com/vsinha/nwcorner/pkg/logging"
)

// ServiceConfig holds configuration for the transport service
type ServiceConfig struct {
	// MaxConcurrency bounds parallel solves in SolveAll (0 = GOMAXPROCS)
	MaxConcurrency int
}

// TransportService validates, balances and solves transportation problems
type TransportService struct {
	adjuster *domainservices.BalanceAdjuster
	config   ServiceConfig
	logger   *slog.Logger
}

// NewTransportService creates a transport service with default configuration
// that logs through the package-level logger
func NewTransportService() *TransportService {
	return NewTransportServiceWithConfig(ServiceConfig{}, nil)
}

// NewTransportServiceWithConfig creates a transport service with custom
// configuration. A nil logger means logging.Logger().
func NewTransportServiceWithConfig(config ServiceConfig, logger *slog.Logger) *TransportService {
	return &TransportService{
		adjuster: domainservices.NewBalanceAdjuster(),
		config:   config,
		logger:   logger,
	}
}

func (s *TransportService) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.Logger()
}

// Balance validates p and returns its balanced form
func (s *TransportService) Balance(p entities.Problem) (entities.BalancedProblem, error) {
	if err := p.Validate(); err != nil {
		return entities.BalancedProblem{}, fmt.Errorf("invalid problem: %w", err)
	}
	return s.adjuster.Balance(p), nil
}

// Solve validates p, balances it and runs the North-West Corner method.
// The whole trace is computed synchronously; on a validation error nothing is
// computed. p is never modified.
func (s *TransportService) Solve(ctx context.Context, p entities.Problem) (*entities.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	balanced, err := s.Balance(p)
	if err != nil {
		return nil, err
	}
	if balanced.Fictitious.Kind != entities.FictitiousNone {
		s.log().DebugContext(ctx, "problem balanced",
			"fictitious", balanced.Fictitious.Kind.String(),
			"index", balanced.Fictitious.Index,
			"supply", p.Supply.Total().String(),
			"demand", p.Demand.Total().String())
	}

	return northwest.Solve(balanced), nil
}

// SolveNamed solves p and wraps the solution with its name, a run id and timing
func (s *TransportService) SolveNamed(ctx context.Context, name string, p entities.Problem) (*dto.SolveResult, error) {
	runID := uuid.NewString()
	log := s.log().With("run_id", runID, "problem", name)
	log.DebugContext(ctx, "solving problem", "suppliers", p.Suppliers(), "consumers", p.Consumers())

	start := time.Now()
	solution, err := s.Solve(ctx, p)
	elapsed := time.Since(start)
	if err != nil {
		log.WarnContext(ctx, "solve failed", "error", err)
		return nil, fmt.Errorf("failed to solve %s: %w", name, err)
	}

	log.InfoContext(ctx, "problem solved",
		"steps", solution.StepCount(),
		"total_cost", solution.TotalCost.String(),
		"elapsed", elapsed)

	return &dto.SolveResult{
		Name:      name,
		RunID:     runID,
		Problem:   p.Clone(),
		Solution:  solution,
		SolveTime: elapsed,
	}, nil
}

// SolveAll solves every problem in repo in parallel. Results keep the
// repository order; the first failure cancels the remaining solves.
func (s *TransportService) SolveAll(ctx context.Context, repo repositories.ProblemRepository) ([]*dto.SolveResult, error) {
	problems, err := repo.GetAllProblems()
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	limit := s.config.MaxConcurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*dto.SolveResult, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, np := range problems {
		g.Go(func() error {
			result, err := s.SolveNamed(gctx, np.Name, np.Problem)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
