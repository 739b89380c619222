package models

const (
	// MatchThreshold is the minimum score for a candidate to exist at all.
	MatchThreshold = 0.5

	// MaxPersistedMatches caps how many match records are stored per screening.
	MaxPersistedMatches = 10

	// MaxReturnedMatches caps how many enriched matches the caller gets back.
	MaxReturnedMatches = 5

	// BirthDateBoostScore is the floor a candidate's score is raised to when
	// the searched date of birth equals the entity's.
	BirthDateBoostScore = 0.8

	// NationalityBoostScore is the floor applied on a nationality match.
	NationalityBoostScore = 0.6
)

type MatchType int

const (
	MatchTypeName MatchType = iota
	MatchTypeAlias
	MatchTypeCompany
	MatchTypeUnknown
)

func MatchTypeFrom(s string) MatchType {
	switch s {
	case "name":
		return MatchTypeName
	case "alias":
		return MatchTypeAlias
	case "company":
		return MatchTypeCompany
	}

	return MatchTypeUnknown
}

func (t MatchType) String() string {
	switch t {
	case MatchTypeName:
		return "name"
	case MatchTypeAlias:
		return "alias"
	case MatchTypeCompany:
		return "company"
	}

	return "unknown"
}

// MatchDetails records which raw fields were compared and which boosts fired,
// so a reviewer can replay why a candidate scored the way it did. It is
// stored next to the match record as jsonb.
type MatchDetails struct {
	SearchedName    string  `json:"searched_name"`
	EntityName      string  `json:"entity_name"`
	MatchedAlias    *string `json:"matched_alias,omitempty"`
	SearchedCompany *string `json:"searched_company,omitempty"`

	// Boost flags. The match type always names the textual field that won,
	// even when a boost is what pushed the score over the threshold.
	DateOfBirthMatch bool `json:"date_of_birth_match,omitempty"`
	NationalityMatch bool `json:"nationality_match,omitempty"`
}

// MatchCandidate is the ephemeral per-entity result of one screening run. A
// candidate exists only if its score reached MatchThreshold. The entity
// snapshot is kept so the response can be enriched without a second
// repository round-trip.
type MatchCandidate struct {
	EntityId  string
	Score     float64
	MatchType MatchType
	Details   MatchDetails
	Entity    WatchlistEntity
}
