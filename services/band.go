package services

import (
	"fmt"
	"strings"

	"github.com/Bipul-Dubey/loyalty-predictor/constants"
)

// Band is the range a loyalty score falls into.
type Band string

const (
	BandHigh    Band = "high"
	BandAverage Band = "average"
	BandLow     Band = "low"
)

const (
	highScoreThreshold    = 8.0
	averageScoreThreshold = 5.0
)

// ClassifyScore places a score into its band: >= 8 high, [5, 8) average,
// anything else low.
func ClassifyScore(score float64) Band {
	switch {
	case score >= highScoreThreshold:
		return BandHigh
	case score >= averageScoreThreshold:
		return BandAverage
	default:
		return BandLow
	}
}

// Severity is the toast level a band is shown with.
func (b Band) Severity() constants.SeverityEnum {
	switch b {
	case BandHigh:
		return constants.SeveritySuccess
	case BandAverage:
		return constants.SeverityWarning
	case BandLow:
		return constants.SeverityError
	}
	return constants.SeverityInfo
}

// Message composes the result text for a relationship in this band.
func (b Band) Message(relationshipName string) string {
	name := strings.TrimSpace(relationshipName)
	switch b {
	case BandHigh:
		return fmt.Sprintf("🎉 Congratulations %s! You have a high loyalty score!", name)
	case BandAverage:
		return fmt.Sprintf("🙂 %s, your loyalty score is average. Keep nurturing those relationships!", name)
	default:
		return fmt.Sprintf("😟 Sorry %s, your loyalty score is low. Consider improving your connections.", name)
	}
}
