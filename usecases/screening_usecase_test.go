package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearwatch/clearwatch-backend/models"
)

func ptr(s string) *string {
	return &s
}

func watchlistWith(entities ...models.WatchlistEntity) *watchlistRepositoryMock {
	return &watchlistRepositoryMock{entities: entities}
}

func johnSmith() models.WatchlistEntity {
	return models.WatchlistEntity{
		Id:                 "11111111-1111-1111-1111-111111111111",
		Name:               "John Smith",
		EntityType:         models.EntityTypeIndividual,
		SanctionsReason:    "asset freeze",
		SanctionsAuthority: "OFAC",
		Status:             models.WatchlistEntityStatusActive,
	}
}

func TestPerformScreeningExactMatchIsHighRisk(t *testing.T) {
	repo := &screeningRepositoryMock{}
	uc := buildScreeningUsecaseMock(watchlistWith(johnSmith()), repo)

	result, err := uc.PerformScreening(context.TODO(), "user-1",
		models.ScreeningRequest{FullName: "John Smith"})

	require.NoError(t, err)
	assert.Equal(t, models.RiskLevelHigh, result.Screening.RiskLevel)
	assert.Equal(t, 1, result.Screening.MatchesFound)
	assert.Equal(t, models.ScreeningStatusCompleted, result.Screening.Status)
	assert.Equal(t, "user-1", result.Screening.UserId)
	assert.Equal(t, result.Screening.ScreenedAt.Add(90*24*time.Hour), result.Screening.ExpiresAt)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, 1.0, result.Matches[0].Score)
	assert.Equal(t, models.MatchTypeName, result.Matches[0].MatchType)
	assert.Equal(t, "John Smith", result.Matches[0].EntityName)
	assert.Equal(t, "OFAC", result.Matches[0].SanctionsAuthority)

	require.Len(t, repo.screenings, 1)
	require.Len(t, repo.matches, 1)
	assert.Equal(t, repo.screenings[0].Id, repo.matches[0].ScreeningId)
}

func TestPerformScreeningNoMatchIsLowRisk(t *testing.T) {
	repo := &screeningRepositoryMock{}
	uc := buildScreeningUsecaseMock(watchlistWith(johnSmith()), repo)

	result, err := uc.PerformScreening(context.TODO(), "user-1",
		models.ScreeningRequest{FullName: "Zzyzx Qplrm"})

	require.NoError(t, err)
	assert.Equal(t, models.RiskLevelLow, result.Screening.RiskLevel)
	assert.Equal(t, 0, result.Screening.MatchesFound)
	assert.Empty(t, result.Matches)

	// the screening record is persisted even with zero matches
	require.Len(t, repo.screenings, 1)
	assert.Empty(t, repo.matches)
}

func TestPerformScreeningValidationFailsFast(t *testing.T) {
	watchlist := watchlistWith(johnSmith())
	repo := &screeningRepositoryMock{}
	uc := buildScreeningUsecaseMock(watchlist, repo)

	for _, fullName := range []string{"", "   ", "\t"} {
		_, err := uc.PerformScreening(context.TODO(), "user-1",
			models.ScreeningRequest{FullName: fullName})

		assert.ErrorIs(t, err, models.BadParameterError)
	}

	// fail fast: no entity fetch, nothing persisted
	assert.Equal(t, 0, watchlist.calls)
	assert.Empty(t, repo.screenings)
	assert.Empty(t, repo.matches)
}

func TestPerformScreeningWatchlistErrorIsFatal(t *testing.T) {
	watchlist := &watchlistRepositoryMock{err: errors.New("connection refused")}
	repo := &screeningRepositoryMock{}
	uc := buildScreeningUsecaseMock(watchlist, repo)

	_, err := uc.PerformScreening(context.TODO(), "user-1",
		models.ScreeningRequest{FullName: "John Smith"})

	assert.ErrorIs(t, err, models.ErrWatchlistUnavailable)
	assert.Empty(t, repo.screenings)
	assert.Empty(t, repo.matches)
}

func TestPerformScreeningRecordInsertErrorIsFatal(t *testing.T) {
	repo := &screeningRepositoryMock{insertScreeningErr: errors.New("disk full")}
	uc := buildScreeningUsecaseMock(watchlistWith(johnSmith()), repo)

	_, err := uc.PerformScreening(context.TODO(), "user-1",
		models.ScreeningRequest{FullName: "John Smith"})

	assert.ErrorIs(t, err, models.ErrScreeningNotPersisted)
	assert.Empty(t, repo.matches)
}

func TestPerformScreeningMatchInsertErrorIsNotFatal(t *testing.T) {
	repo := &screeningRepositoryMock{insertMatchesErr: errors.New("disk full")}
	uc := buildScreeningUsecaseMock(watchlistWith(johnSmith()), repo)

	result, err := uc.PerformScreening(context.TODO(), "user-1",
		models.ScreeningRequest{FullName: "John Smith"})

	// the screening record is authoritative, the result is still valid
	require.NoError(t, err)
	assert.Equal(t, models.RiskLevelHigh, result.Screening.RiskLevel)
	require.Len(t, result.Matches, 1)
	require.Len(t, repo.screenings, 1)
	assert.Empty(t, repo.matches)
}

func TestPerformScreeningTopNCapping(t *testing.T) {
	birthDate := "1970-01-01"

	entities := []models.WatchlistEntity{johnSmith()}
	for i := 0; i < 14; i++ {
		entities = append(entities, models.WatchlistEntity{
			Id:         fmt.Sprintf("00000000-0000-0000-0000-%012d", i),
			Name:       fmt.Sprintf("Unrelated Entity Number %d", i),
			EntityType: models.EntityTypeIndividual,
			BirthDate:  &birthDate,
			Status:     models.WatchlistEntityStatusActive,
		})
	}

	repo := &screeningRepositoryMock{}
	uc := buildScreeningUsecaseMock(watchlistWith(entities...), repo)

	result, err := uc.PerformScreening(context.TODO(), "user-1", models.ScreeningRequest{
		FullName:    "John Smith",
		DateOfBirth: &birthDate,
	})

	require.NoError(t, err)
	assert.Equal(t, 15, result.Screening.MatchesFound)

	// exactly 10 persisted, exactly 5 returned, both highest score first
	require.Len(t, repo.matches, 10)
	require.Len(t, result.Matches, 5)

	assert.Equal(t, 1.0, repo.matches[0].Score)
	assert.Equal(t, johnSmith().Id, repo.matches[0].EntityId)
	for i := 1; i < len(repo.matches); i++ {
		assert.LessOrEqual(t, repo.matches[i].Score, repo.matches[i-1].Score)
	}

	assert.Equal(t, 1.0, result.Matches[0].Score)
	for i := 1; i < len(result.Matches); i++ {
		assert.LessOrEqual(t, result.Matches[i].Score, result.Matches[i-1].Score)
	}
}

func TestPerformScreeningIsIdempotent(t *testing.T) {
	entityA := johnSmith()
	entityB := johnSmith()
	entityB.Id = "22222222-2222-2222-2222-222222222222"
	entityB.Name = "Jon Smith"

	req := models.ScreeningRequest{FullName: "John Smith"}

	first, err := buildScreeningUsecaseMock(watchlistWith(entityA, entityB),
		&screeningRepositoryMock{}).PerformScreening(context.TODO(), "user-1", req)
	require.NoError(t, err)

	second, err := buildScreeningUsecaseMock(watchlistWith(entityA, entityB),
		&screeningRepositoryMock{}).PerformScreening(context.TODO(), "user-1", req)
	require.NoError(t, err)

	assert.Equal(t, first.Screening.RiskLevel, second.Screening.RiskLevel)
	require.Equal(t, len(first.Matches), len(second.Matches))
	for i := range first.Matches {
		assert.Equal(t, first.Matches[i].Score, second.Matches[i].Score)
		assert.Equal(t, first.Matches[i].EntityName, second.Matches[i].EntityName)
	}
}

func TestGetScreeningEnforcesOwnership(t *testing.T) {
	repo := &screeningRepositoryMock{}
	uc := buildScreeningUsecaseMock(watchlistWith(johnSmith()), repo)

	result, err := uc.PerformScreening(context.TODO(), "user-1",
		models.ScreeningRequest{FullName: "John Smith"})
	require.NoError(t, err)

	screening, err := uc.GetScreening(context.TODO(), "user-1", result.Screening.Id)
	require.NoError(t, err)
	assert.Equal(t, result.Screening.Id, screening.Id)
	assert.Len(t, screening.Matches, 1)

	_, err = uc.GetScreening(context.TODO(), "someone-else", result.Screening.Id)
	assert.ErrorIs(t, err, models.NotFoundError)
}
