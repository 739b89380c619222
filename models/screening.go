package models

import "time"

type ScreeningType int

const (
	ScreeningTypeVerification ScreeningType = iota
	ScreeningTypeTransaction
	ScreeningTypePeriodic
	ScreeningTypeUnknown
)

func ScreeningTypeFrom(s string) ScreeningType {
	switch s {
	case "verification", "":
		// verification is the default when the caller does not specify one
		return ScreeningTypeVerification
	case "transaction":
		return ScreeningTypeTransaction
	case "periodic":
		return ScreeningTypePeriodic
	}

	return ScreeningTypeUnknown
}

func (t ScreeningType) String() string {
	switch t {
	case ScreeningTypeVerification:
		return "verification"
	case ScreeningTypeTransaction:
		return "transaction"
	case ScreeningTypePeriodic:
		return "periodic"
	}

	return "unknown"
}

type RiskLevel int

const (
	RiskLevelLow RiskLevel = iota
	RiskLevelMedium
	RiskLevelHigh
	RiskLevelUnknown
)

func RiskLevelFrom(s string) RiskLevel {
	switch s {
	case "low":
		return RiskLevelLow
	case "medium":
		return RiskLevelMedium
	case "high":
		return RiskLevelHigh
	}

	return RiskLevelUnknown
}

func (r RiskLevel) String() string {
	switch r {
	case RiskLevelLow:
		return "low"
	case RiskLevelMedium:
		return "medium"
	case RiskLevelHigh:
		return "high"
	}

	return "unknown"
}

type ScreeningStatus int

// The engine only ever produces completed screenings: there is no async or
// partial state. The enum exists so the persisted status column stays
// self-describing if other producers appear.
const (
	ScreeningStatusCompleted ScreeningStatus = iota
	ScreeningStatusUnknown
)

func ScreeningStatusFrom(s string) ScreeningStatus {
	if s == "completed" {
		return ScreeningStatusCompleted
	}

	return ScreeningStatusUnknown
}

func (s ScreeningStatus) String() string {
	if s == ScreeningStatusCompleted {
		return "completed"
	}

	return "unknown"
}

// ScreeningRequest is the caller-supplied input of one screening run. It is
// not persisted as-is: its four fields are stored verbatim on the screening
// record as search terms for audit.
type ScreeningRequest struct {
	FullName      string
	CompanyName   *string
	DateOfBirth   *string
	Nationality   *string
	ScreeningType ScreeningType
}

// SearchTerms is the verbatim copy of the request fields kept on the
// screening record.
type SearchTerms struct {
	FullName    string  `json:"full_name"`
	CompanyName *string `json:"company_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

// Screening is the persisted audit artifact summarizing one screening
// invocation. Created exactly once, immutable thereafter, never deleted by
// this engine.
type Screening struct {
	Id            string
	UserId        string
	ScreeningType ScreeningType
	SearchTerms   SearchTerms
	MatchesFound  int
	RiskLevel     RiskLevel
	Status        ScreeningStatus
	ScreenedAt    time.Time
	ExpiresAt     time.Time
}

type ScreeningWithMatches struct {
	Screening

	Matches []ScreeningMatch
}

// ScreeningMatch is a persisted match record. At most MaxPersistedMatches are
// stored per screening, the highest-scoring candidates first.
type ScreeningMatch struct {
	Id          string
	ScreeningId string
	EntityId    string
	Score       float64
	MatchType   MatchType
	Details     MatchDetails
	CreatedAt   time.Time
}

// ScreeningResult is what the caller gets back: the screening summary plus
// the top candidates enriched with entity display fields.
type ScreeningResult struct {
	Screening Screening
	Matches   []EnrichedMatch
}

type EnrichedMatch struct {
	Score              float64
	MatchType          MatchType
	EntityName         string
	EntityType         WatchlistEntityType
	SanctionsReason    string
	SanctionsAuthority string
}
