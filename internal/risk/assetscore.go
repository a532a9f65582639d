package risk

import (
	"time"

	"isms-center/internal/models"
)

// Composite asset scoring. The score aggregates the CIA baseline with the
// asset's live exposure (active risks, recent incidents) and subtracts a
// capped credit for protecting controls. Requires Risks, Incidents and
// ProtectingControls to be loaded on the asset.

const (
	highRiskThreshold    = 70
	maxControlReduction  = 30
	incidentWindowMonths = 6
)

type ProtectionStatus string

const (
	Unprotected         ProtectionStatus = "unprotected"
	UnderProtected      ProtectionStatus = "under_protected"
	AdequatelyProtected ProtectionStatus = "adequately_protected"
)

// ActiveRiskCount counts the asset's risks still in active status.
func ActiveRiskCount(asset *models.Asset) int {
	n := 0
	for _, r := range asset.Risks {
		if r.Status == models.RiskStatusActive {
			n++
		}
	}
	return n
}

// ScoreAsset computes the composite 0..100 exposure score:
//
//	+ 10 per CIA point (summed baseline, 0..15)
//	+  5 per active risk
//	+ 10 per incident detected in the trailing 6 months
//	-  3 per protecting control, capped at 30
//
// The result is clamped into [0,100] whatever the inputs.
func ScoreAsset(asset *models.Asset, now time.Time) float64 {
	score := float64(asset.TotalValue() * 10)

	score += float64(5 * ActiveRiskCount(asset))

	cutoff := now.AddDate(0, -incidentWindowMonths, 0)
	for _, inc := range asset.Incidents {
		if inc.DetectedAt != nil && !inc.DetectedAt.Before(cutoff) {
			score += 10
		}
	}

	reduction := 3 * len(asset.ProtectingControls)
	if reduction > maxControlReduction {
		reduction = maxControlReduction
	}
	score -= float64(reduction)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// IsHighRisk reports whether the composite score reaches the high-risk bar.
func IsHighRisk(asset *models.Asset, now time.Time) bool {
	return ScoreAsset(asset, now) >= highRiskThreshold
}

// ProtectionStatusOf classifies control coverage against active risks. An
// asset with neither controls nor active risks lands in adequately_protected
// through the final branch; there is no separate "unknown" outcome.
func ProtectionStatusOf(asset *models.Asset) ProtectionStatus {
	controls := len(asset.ProtectingControls)
	active := ActiveRiskCount(asset)

	switch {
	case controls == 0 && active >= 1:
		return Unprotected
	case controls < active:
		return UnderProtected
	default:
		return AdequatelyProtected
	}
}
