package usecases

import (
	"context"
	"time"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/repositories"
	"github.com/clearwatch/clearwatch-backend/usecases/executor_factory"
)

type watchlistRepositoryMock struct {
	entities []models.WatchlistEntity
	err      error
	calls    int
}

func (m *watchlistRepositoryMock) ListActiveWatchlistEntities(ctx context.Context,
	exec repositories.Executor,
) ([]models.WatchlistEntity, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.entities, nil
}

type screeningRepositoryMock struct {
	insertScreeningErr error
	insertMatchesErr   error

	screenings []models.Screening
	matches    []models.ScreeningMatch
}

func (m *screeningRepositoryMock) InsertScreening(ctx context.Context, exec repositories.Executor,
	screening models.Screening,
) error {
	if m.insertScreeningErr != nil {
		return m.insertScreeningErr
	}
	m.screenings = append(m.screenings, screening)
	return nil
}

func (m *screeningRepositoryMock) InsertScreeningMatches(ctx context.Context, exec repositories.Executor,
	matches []models.ScreeningMatch,
) error {
	if m.insertMatchesErr != nil {
		return m.insertMatchesErr
	}
	m.matches = append(m.matches, matches...)
	return nil
}

func (m *screeningRepositoryMock) GetScreening(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Screening, error) {
	for _, screening := range m.screenings {
		if screening.Id == id {
			return screening, nil
		}
	}
	return models.Screening{}, models.NotFoundError
}

func (m *screeningRepositoryMock) ListScreeningMatches(ctx context.Context, exec repositories.Executor,
	screeningId string,
) ([]models.ScreeningMatch, error) {
	matches := make([]models.ScreeningMatch, 0)
	for _, match := range m.matches {
		if match.ScreeningId == screeningId {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (m *screeningRepositoryMock) ListScreeningsForUser(ctx context.Context, exec repositories.Executor,
	userId string, limit int,
) ([]models.Screening, error) {
	screenings := make([]models.Screening, 0)
	for _, screening := range m.screenings {
		if screening.UserId == userId && len(screenings) < limit {
			screenings = append(screenings, screening)
		}
	}
	return screenings, nil
}

func buildScreeningUsecaseMock(watchlist *watchlistRepositoryMock,
	repo *screeningRepositoryMock,
) ScreeningUsecase {
	return ScreeningUsecase{
		executorFactory:      executor_factory.NewExecutorFactoryStub(),
		watchlistRepository:  watchlist,
		repository:           repo,
		validityWindow:       90 * 24 * time.Hour,
		watchlistReadTimeout: 5 * time.Second,
	}
}
