package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearwatch/clearwatch-backend/models"
)

func TestClassifyRisk(t *testing.T) {
	candidate := func(score float64) models.MatchCandidate {
		return models.MatchCandidate{Score: score}
	}

	tests := []struct {
		name       string
		candidates []models.MatchCandidate
		expected   models.RiskLevel
	}{
		{"no candidates", nil, models.RiskLevelLow},
		{"all below medium", []models.MatchCandidate{candidate(0.5), candidate(0.69)}, models.RiskLevelLow},
		{"one medium", []models.MatchCandidate{candidate(0.5), candidate(0.7)}, models.RiskLevelMedium},
		{"one high", []models.MatchCandidate{candidate(0.9), candidate(0.5)}, models.RiskLevelHigh},
		{"high after medium", []models.MatchCandidate{candidate(0.75), candidate(0.95)}, models.RiskLevelHigh},
		{"exact match is high", []models.MatchCandidate{candidate(1.0)}, models.RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRisk(tt.candidates))
		})
	}
}

func TestClassifyRiskIsDeterministic(t *testing.T) {
	candidates := []models.MatchCandidate{
		{Score: 0.55}, {Score: 0.72}, {Score: 0.88},
	}

	first := ClassifyRisk(candidates)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyRisk(candidates))
	}
}
