package screening

import "github.com/clearwatch/clearwatch-backend/models"

const (
	highRiskScore   = 0.9
	mediumRiskScore = 0.7
)

// ClassifyRisk maps a screening run's candidates to a discrete risk level:
// high if any candidate scored at least 0.9, medium at 0.7, low otherwise
// (including no candidates at all). Pure and deterministic.
func ClassifyRisk(candidates []models.MatchCandidate) models.RiskLevel {
	risk := models.RiskLevelLow

	for _, candidate := range candidates {
		switch {
		case candidate.Score >= highRiskScore:
			return models.RiskLevelHigh
		case candidate.Score >= mediumRiskScore:
			risk = models.RiskLevelMedium
		}
	}

	return risk
}
