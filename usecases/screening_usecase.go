package usecases

import (
	"context"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/clearwatch/clearwatch-backend/infra"
	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/repositories"
	"github.com/clearwatch/clearwatch-backend/usecases/executor_factory"
	"github.com/clearwatch/clearwatch-backend/usecases/screening"
	"github.com/clearwatch/clearwatch-backend/utils"
)

type ScreeningWatchlistRepository interface {
	ListActiveWatchlistEntities(ctx context.Context, exec repositories.Executor) ([]models.WatchlistEntity, error)
}

type ScreeningRepository interface {
	InsertScreening(ctx context.Context, exec repositories.Executor, screening models.Screening) error
	InsertScreeningMatches(ctx context.Context, exec repositories.Executor, matches []models.ScreeningMatch) error
	GetScreening(ctx context.Context, exec repositories.Executor, id string) (models.Screening, error)
	ListScreeningMatches(ctx context.Context, exec repositories.Executor, screeningId string) (
		[]models.ScreeningMatch, error)
	ListScreeningsForUser(ctx context.Context, exec repositories.Executor, userId string, limit int) (
		[]models.Screening, error)
}

type ScreeningUsecase struct {
	executorFactory     executor_factory.ExecutorFactory
	watchlistRepository ScreeningWatchlistRepository
	repository          ScreeningRepository

	validityWindow       time.Duration
	watchlistReadTimeout time.Duration
	matcherParallelism   int
}

// PerformScreening runs one full screening: fetch the active watchlist, score
// every entity against the request, classify the overall risk, persist the
// screening record plus its top matches, and return the summary with the top
// candidates enriched from the entity snapshots already in memory.
//
// The operation has two terminal states. It fails on invalid input, on a
// watchlist read error and on the screening record insert; a failed match
// record insert is logged and swallowed because the screening record is
// already authoritative at that point.
func (uc ScreeningUsecase) PerformScreening(ctx context.Context, callerId string,
	req models.ScreeningRequest,
) (models.ScreeningResult, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return models.ScreeningResult{}, models.ErrMissingFullName
	}

	exec := uc.executorFactory.NewExecutor()

	// The watchlist read is the only unbounded-latency external call of the
	// operation, so it gets its own deadline.
	readCtx, cancel := context.WithTimeout(ctx, uc.watchlistReadTimeout)
	defer cancel()

	entities, err := uc.watchlistRepository.ListActiveWatchlistEntities(readCtx, exec)
	if err != nil {
		return models.ScreeningResult{}, errors.Wrap(models.ErrWatchlistUnavailable, err.Error())
	}

	candidates := uc.matchAll(req, entities)
	riskLevel := screening.ClassifyRisk(candidates)

	now := time.Now().UTC()
	record := models.Screening{
		Id:            uuid.NewString(),
		UserId:        callerId,
		ScreeningType: req.ScreeningType,
		SearchTerms: models.SearchTerms{
			FullName:    req.FullName,
			CompanyName: req.CompanyName,
			DateOfBirth: req.DateOfBirth,
			Nationality: req.Nationality,
		},
		MatchesFound: len(candidates),
		RiskLevel:    riskLevel,
		Status:       models.ScreeningStatusCompleted,
		ScreenedAt:   now,
		ExpiresAt:    now.Add(uc.validityWindow),
	}

	if err := uc.repository.InsertScreening(ctx, exec, record); err != nil {
		return models.ScreeningResult{}, errors.Wrap(models.ErrScreeningNotPersisted, err.Error())
	}

	matchRecords := make([]models.ScreeningMatch, 0, models.MaxPersistedMatches)
	for _, candidate := range candidates[:min(len(candidates), models.MaxPersistedMatches)] {
		matchRecords = append(matchRecords, models.ScreeningMatch{
			Id:          uuid.NewString(),
			ScreeningId: record.Id,
			EntityId:    candidate.EntityId,
			Score:       candidate.Score,
			MatchType:   candidate.MatchType,
			Details:     candidate.Details,
		})
	}

	if err := uc.repository.InsertScreeningMatches(ctx, exec, matchRecords); err != nil {
		// The screening record already exists and is authoritative: an
		// under-persisted match list is reconciled manually, not surfaced to
		// the caller.
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "failed to persist screening matches",
			"screening_id", record.Id,
			"candidates", len(candidates),
			"error", err.Error(),
		)
	}

	infra.ScreeningsPerformed.WithLabelValues(riskLevel.String()).Inc()

	enriched := make([]models.EnrichedMatch, 0, models.MaxReturnedMatches)
	for _, candidate := range candidates[:min(len(candidates), models.MaxReturnedMatches)] {
		enriched = append(enriched, models.EnrichedMatch{
			Score:              candidate.Score,
			MatchType:          candidate.MatchType,
			EntityName:         candidate.Entity.Name,
			EntityType:         candidate.Entity.EntityType,
			SanctionsReason:    candidate.Entity.SanctionsReason,
			SanctionsAuthority: candidate.Entity.SanctionsAuthority,
		})
	}

	return models.ScreeningResult{
		Screening: record,
		Matches:   enriched,
	}, nil
}

// matchAll scores the request against every entity, in parallel: entity
// scores are independent, so only the final ordering matters. Ties keep the
// original watchlist order.
func (uc ScreeningUsecase) matchAll(req models.ScreeningRequest,
	entities []models.WatchlistEntity,
) []models.MatchCandidate {
	results := make([]*models.MatchCandidate, len(entities))

	parallelism := uc.matcherParallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	group := errgroup.Group{}
	group.SetLimit(parallelism)

	for i, entity := range entities {
		i, entity := i, entity
		group.Go(func() error {
			if candidate, ok := screening.MatchEntity(req, entity); ok {
				results[i] = &candidate
			}
			return nil
		})
	}
	_ = group.Wait()

	candidates := make([]models.MatchCandidate, 0, len(entities))
	for _, candidate := range results {
		if candidate != nil {
			candidates = append(candidates, *candidate)
		}
	}

	slices.SortStableFunc(candidates, func(a, b models.MatchCandidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return candidates
}

// GetScreening returns a persisted screening with its stored match records.
// Callers only ever see their own screenings.
func (uc ScreeningUsecase) GetScreening(ctx context.Context, callerId, screeningId string) (
	models.ScreeningWithMatches, error,
) {
	exec := uc.executorFactory.NewExecutor()

	record, err := uc.repository.GetScreening(ctx, exec, screeningId)
	if err != nil {
		return models.ScreeningWithMatches{}, err
	}
	if record.UserId != callerId {
		return models.ScreeningWithMatches{}, errors.Wrap(models.NotFoundError, "screening not found for caller")
	}

	matches, err := uc.repository.ListScreeningMatches(ctx, exec, screeningId)
	if err != nil {
		return models.ScreeningWithMatches{}, err
	}

	return models.ScreeningWithMatches{
		Screening: record,
		Matches:   matches,
	}, nil
}

func (uc ScreeningUsecase) ListScreenings(ctx context.Context, callerId string, limit int) (
	[]models.Screening, error,
) {
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}

	return uc.repository.ListScreeningsForUser(ctx, uc.executorFactory.NewExecutor(), callerId, limit)
}
