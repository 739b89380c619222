package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/utils"
)

const TABLE_SCREENINGS = "screenings"

var SelectScreeningColumn = utils.ColumnList[DBScreening]()

type DBScreening struct {
	Id            string          `db:"id"`
	UserId        string          `db:"user_id"`
	ScreeningType string          `db:"screening_type"`
	SearchTerms   json.RawMessage `db:"search_terms"`
	MatchesFound  int             `db:"matches_found"`
	RiskLevel     string          `db:"risk_level"`
	Status        string          `db:"status"`
	ScreenedAt    time.Time       `db:"screened_at"`
	ExpiresAt     time.Time       `db:"expires_at"`
}

func AdaptScreening(db DBScreening) (models.Screening, error) {
	var searchTerms models.SearchTerms
	if err := json.Unmarshal(db.SearchTerms, &searchTerms); err != nil {
		return models.Screening{}, errors.Wrap(err, "error unmarshalling screening search terms")
	}

	return models.Screening{
		Id:            db.Id,
		UserId:        db.UserId,
		ScreeningType: models.ScreeningTypeFrom(db.ScreeningType),
		SearchTerms:   searchTerms,
		MatchesFound:  db.MatchesFound,
		RiskLevel:     models.RiskLevelFrom(db.RiskLevel),
		Status:        models.ScreeningStatusFrom(db.Status),
		ScreenedAt:    db.ScreenedAt,
		ExpiresAt:     db.ExpiresAt,
	}, nil
}
