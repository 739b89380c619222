package dto

import (
	"time"

	"github.com/clearwatch/clearwatch-backend/models"
	"github.com/clearwatch/clearwatch-backend/pure_utils"
)

type PerformScreeningBody struct {
	FullName      string  `json:"fullName" binding:"required"`
	CompanyName   *string `json:"companyName"`
	DateOfBirth   *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Nationality   *string `json:"nationality"`
	ScreeningType string  `json:"screeningType" binding:"omitempty,oneof=verification transaction periodic"`
}

func AdaptScreeningRequest(body PerformScreeningBody) models.ScreeningRequest {
	return models.ScreeningRequest{
		FullName:      body.FullName,
		CompanyName:   body.CompanyName,
		DateOfBirth:   body.DateOfBirth,
		Nationality:   body.Nationality,
		ScreeningType: models.ScreeningTypeFrom(body.ScreeningType),
	}
}

type ScreeningSummaryDto struct {
	Id           string    `json:"id"`
	RiskLevel    string    `json:"risk_level"`
	MatchesFound int       `json:"matches_found"`
	ScreenedAt   time.Time `json:"screened_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func AdaptScreeningSummaryDto(m models.Screening) ScreeningSummaryDto {
	return ScreeningSummaryDto{
		Id:           m.Id,
		RiskLevel:    m.RiskLevel.String(),
		MatchesFound: m.MatchesFound,
		ScreenedAt:   m.ScreenedAt,
		ExpiresAt:    m.ExpiresAt,
	}
}

type EnrichedMatchDto struct {
	MatchScore         float64 `json:"match_score"`
	MatchType          string  `json:"match_type"`
	EntityName         string  `json:"entity_name"`
	EntityType         string  `json:"entity_type"`
	SanctionsReason    string  `json:"sanctions_reason"`
	SanctionsAuthority string  `json:"sanctions_authority"`
}

func AdaptEnrichedMatchDto(m models.EnrichedMatch) EnrichedMatchDto {
	return EnrichedMatchDto{
		MatchScore:         m.Score,
		MatchType:          m.MatchType.String(),
		EntityName:         m.EntityName,
		EntityType:         m.EntityType.String(),
		SanctionsReason:    m.SanctionsReason,
		SanctionsAuthority: m.SanctionsAuthority,
	}
}

type ScreeningResultDto struct {
	Success   bool                `json:"success"`
	Screening ScreeningSummaryDto `json:"screening"`
	Matches   []EnrichedMatchDto  `json:"matches"`
	Timestamp time.Time           `json:"timestamp"`
}

func AdaptScreeningResultDto(m models.ScreeningResult) ScreeningResultDto {
	return ScreeningResultDto{
		Success:   true,
		Screening: AdaptScreeningSummaryDto(m.Screening),
		Matches:   pure_utils.Map(m.Matches, AdaptEnrichedMatchDto),
		Timestamp: time.Now().UTC(),
	}
}

type MatchRecordDto struct {
	Id           string              `json:"id"`
	EntityId     string              `json:"entity_id"`
	MatchScore   float64             `json:"match_score"`
	MatchType    string              `json:"match_type"`
	MatchDetails models.MatchDetails `json:"match_details"`
	CreatedAt    time.Time           `json:"created_at"`
}

func AdaptMatchRecordDto(m models.ScreeningMatch) MatchRecordDto {
	return MatchRecordDto{
		Id:           m.Id,
		EntityId:     m.EntityId,
		MatchScore:   m.Score,
		MatchType:    m.MatchType.String(),
		MatchDetails: m.Details,
		CreatedAt:    m.CreatedAt,
	}
}

type ScreeningWithMatchesDto struct {
	ScreeningSummaryDto

	ScreeningType string             `json:"screening_type"`
	Status        string             `json:"status"`
	SearchTerms   models.SearchTerms `json:"search_terms"`
	Matches       []MatchRecordDto   `json:"matches"`
}

func AdaptScreeningWithMatchesDto(m models.ScreeningWithMatches) ScreeningWithMatchesDto {
	return ScreeningWithMatchesDto{
		ScreeningSummaryDto: AdaptScreeningSummaryDto(m.Screening),
		ScreeningType:       m.ScreeningType.String(),
		Status:              m.Status.String(),
		SearchTerms:         m.SearchTerms,
		Matches:             pure_utils.Map(m.Matches, AdaptMatchRecordDto),
	}
}
