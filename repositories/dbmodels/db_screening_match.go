package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/utils"
)

const TABLE_SCREENING_MATCHES = "screening_matches"

var SelectScreeningMatchColumn = utils.ColumnList[DBScreeningMatch]()

type DBScreeningMatch struct {
	Id          string          `db:"id"`
	ScreeningId string          `db:"screening_id"`
	EntityId    string          `db:"entity_id"`
	Score       float64         `db:"score"`
	MatchType   string          `db:"match_type"`
	Details     json.RawMessage `db:"details"`
	CreatedAt   time.Time       `db:"created_at"`
}

func AdaptScreeningMatch(db DBScreeningMatch) (models.ScreeningMatch, error) {
	var details models.MatchDetails
	if err := json.Unmarshal(db.Details, &details); err != nil {
		return models.ScreeningMatch{}, errors.Wrap(err, "error unmarshalling match details")
	}

	return models.ScreeningMatch{
		Id:          db.Id,
		ScreeningId: db.ScreeningId,
		EntityId:    db.EntityId,
		Score:       db.Score,
		MatchType:   models.MatchTypeFrom(db.MatchType),
		Details:     details,
		CreatedAt:   db.CreatedAt,
	}, nil
}
