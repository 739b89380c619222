package dbmodels

import (
	"time"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/utils"
)

const TABLE_WATCHLIST_ENTITIES = "watchlist_entities"

var SelectWatchlistEntityColumn = utils.ColumnList[DBWatchlistEntity]()

type DBWatchlistEntity struct {
	Id                 string    `db:"id"`
	Name               string    `db:"name"`
	EntityType         string    `db:"entity_type"`
	Aliases            []string  `db:"aliases"`
	BirthDate          *string   `db:"birth_date"`
	Nationalities      []string  `db:"nationalities"`
	SanctionsReason    string    `db:"sanctions_reason"`
	SanctionsAuthority string    `db:"sanctions_authority"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func AdaptWatchlistEntity(db DBWatchlistEntity) (models.WatchlistEntity, error) {
	return models.WatchlistEntity{
		Id:                 db.Id,
		Name:               db.Name,
		EntityType:         models.WatchlistEntityTypeFrom(db.EntityType),
		Aliases:            db.Aliases,
		BirthDate:          db.BirthDate,
		Nationalities:      db.Nationalities,
		SanctionsReason:    db.SanctionsReason,
		SanctionsAuthority: db.SanctionsAuthority,
		Status:             models.WatchlistEntityStatusFrom(db.Status),
		CreatedAt:          db.CreatedAt,
		UpdatedAt:          db.UpdatedAt,
	}, nil
}
