package screening

import (
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/pure_utils"
)

// MatchEntity scores one screening request against one watchlist entity. The
// best textual similarity across name, aliases and (for organizations) the
// company name decides the score and the match type; date of birth and
// nationality matches only raise the score to a floor, they never change the
// match type. The second return value is false when the final score stays
// below the persistence threshold.
func MatchEntity(req models.ScreeningRequest, entity models.WatchlistEntity) (models.MatchCandidate, bool) {
	details := models.MatchDetails{
		SearchedName: req.FullName,
		EntityName:   entity.Name,
	}

	best := pure_utils.Similarity(req.FullName, entity.Name)
	matchType := models.MatchTypeName

	for _, alias := range entity.Aliases {
		alias := alias
		if aliasScore := pure_utils.Similarity(req.FullName, alias); aliasScore > best {
			best = aliasScore
			matchType = models.MatchTypeAlias
			details.MatchedAlias = &alias
		}
	}

	if req.CompanyName != nil && entity.EntityType == models.EntityTypeOrganization {
		if companyScore := pure_utils.Similarity(*req.CompanyName, entity.Name); companyScore > best {
			best = companyScore
			matchType = models.MatchTypeCompany
			details.SearchedCompany = req.CompanyName
			details.MatchedAlias = nil
		}
	}

	if req.DateOfBirth != nil && entity.BirthDate != nil && *req.DateOfBirth == *entity.BirthDate {
		best = max(best, models.BirthDateBoostScore)
		details.DateOfBirthMatch = true
	}

	if req.Nationality != nil && nationalityMatches(*req.Nationality, entity.Nationalities) {
		best = max(best, models.NationalityBoostScore)
		details.NationalityMatch = true
	}

	if best < models.MatchThreshold {
		return models.MatchCandidate{}, false
	}

	return models.MatchCandidate{
		EntityId:  entity.Id,
		Score:     best,
		MatchType: matchType,
		Details:   details,
		Entity:    entity,
	}, true
}

// A searched nationality matches when it appears, case-insensitively, as a
// substring of any of the entity's nationalities ("Russia" matches "Russian
// Federation").
func nationalityMatches(searched string, nationalities []string) bool {
	searched = strings.ToLower(strings.TrimSpace(searched))
	if searched == "" {
		return false
	}

	for _, nationality := range set.From(nationalities).Slice() {
		if strings.Contains(strings.ToLower(nationality), searched) {
			return true
		}
	}
	return false
}
