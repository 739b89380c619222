package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/repositories/dbmodels"
)

// InsertScreening persists the screening record. The record is immutable:
// there is no update counterpart.
func (repo *ClearwatchDbRepository) InsertScreening(ctx context.Context, exec Executor,
	screening models.Screening,
) error {
	searchTerms, err := json.Marshal(screening.SearchTerms)
	if err != nil {
		return errors.Wrap(err, "error marshalling screening search terms")
	}

	sql := NewQueryBuilder().
		Insert(dbmodels.TABLE_SCREENINGS).
		Columns(
			"id",
			"user_id",
			"screening_type",
			"search_terms",
			"matches_found",
			"risk_level",
			"status",
			"screened_at",
			"expires_at",
		).
		Values(
			screening.Id,
			screening.UserId,
			screening.ScreeningType.String(),
			searchTerms,
			screening.MatchesFound,
			screening.RiskLevel.String(),
			screening.Status.String(),
			screening.ScreenedAt,
			screening.ExpiresAt,
		)

	_, err = ExecBuilder(ctx, exec, sql)
	if IsUniqueViolationError(err) {
		return errors.Wrap(models.ConflictError, "screening already exists")
	}
	return err
}

// InsertScreeningMatches persists match records for an existing screening in
// one batch insert. Callers are expected to have capped the slice already.
func (repo *ClearwatchDbRepository) InsertScreeningMatches(ctx context.Context, exec Executor,
	matches []models.ScreeningMatch,
) error {
	if len(matches) == 0 {
		return nil
	}

	sql := NewQueryBuilder().
		Insert(dbmodels.TABLE_SCREENING_MATCHES).
		Columns(
			"id",
			"screening_id",
			"entity_id",
			"score",
			"match_type",
			"details",
		)

	for _, match := range matches {
		details, err := json.Marshal(match.Details)
		if err != nil {
			return errors.Wrap(err, "error marshalling match details")
		}

		sql = sql.Values(
			match.Id,
			match.ScreeningId,
			match.EntityId,
			match.Score,
			match.MatchType.String(),
			details,
		)
	}

	_, err := ExecBuilder(ctx, exec, sql)
	if IsForeignKeyViolationError(err) {
		return errors.Wrap(err, "screening record missing for matches")
	}
	return err
}

func (repo *ClearwatchDbRepository) GetScreening(ctx context.Context, exec Executor, id string) (
	models.Screening, error,
) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectScreeningColumn...).
		From(dbmodels.TABLE_SCREENINGS).
		Where(squirrel.Eq{"id": id})

	return SqlToModel(ctx, exec, sql, dbmodels.AdaptScreening)
}

func (repo *ClearwatchDbRepository) ListScreeningMatches(ctx context.Context, exec Executor,
	screeningId string,
) ([]models.ScreeningMatch, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectScreeningMatchColumn...).
		From(dbmodels.TABLE_SCREENING_MATCHES).
		Where(squirrel.Eq{"screening_id": screeningId}).
		OrderBy("score DESC")

	return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptScreeningMatch)
}

// ListScreeningsForUser returns the caller's screening history, newest first.
func (repo *ClearwatchDbRepository) ListScreeningsForUser(ctx context.Context, exec Executor,
	userId string, limit int,
) ([]models.Screening, error) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectScreeningColumn...).
		From(dbmodels.TABLE_SCREENINGS).
		Where(squirrel.Eq{"user_id": userId}).
		OrderBy("screened_at DESC").
		Limit(uint64(limit))

	return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptScreening)
}
