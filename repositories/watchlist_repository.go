package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/repositories/dbmodels"
)

// ListActiveWatchlistEntities returns every active entity on the watchlist.
// Inactive entities are never screened against.
func (repo *ClearwatchDbRepository) ListActiveWatchlistEntities(ctx context.Context, exec Executor) (
	[]models.WatchlistEntity, error,
) {
	sql := NewQueryBuilder().
		Select(dbmodels.SelectWatchlistEntityColumn...).
		From(dbmodels.TABLE_WATCHLIST_ENTITIES).
		Where(squirrel.Eq{"status": models.WatchlistEntityStatusActive.String()}).
		OrderBy("created_at ASC")

	return SqlToListOfModels(ctx, exec, sql, dbmodels.AdaptWatchlistEntity)
}
