package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isms-center/internal/models"
)

func TestScoreClampsRatings(t *testing.T) {
	assert.Equal(t, 25, Score(5, 5))
	assert.Equal(t, 1, Score(0, 0))
	assert.Equal(t, 25, Score(9, 7))
	assert.Equal(t, 5, Score(-3, 5))
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, LevelCritical, LevelOf(5, 5))
	assert.Equal(t, LevelLow, LevelOf(1, 1))
	assert.Equal(t, LevelHigh, LevelOf(2, 4))
	assert.Equal(t, LevelMedium, LevelOf(2, 2))
	assert.Equal(t, LevelCritical, LevelOf(3, 5))
}

func TestLevelForScoreBoundaries(t *testing.T) {
	assert.Equal(t, LevelLow, LevelForScore(3))
	assert.Equal(t, LevelMedium, LevelForScore(4))
	assert.Equal(t, LevelMedium, LevelForScore(7))
	assert.Equal(t, LevelHigh, LevelForScore(8))
	assert.Equal(t, LevelHigh, LevelForScore(14))
	assert.Equal(t, LevelCritical, LevelForScore(15))
}

// Levels never decrease as the score grows.
func TestLevelForScoreMonotonic(t *testing.T) {
	rank := map[Level]int{LevelLow: 0, LevelMedium: 1, LevelHigh: 2, LevelCritical: 3}

	prev := LevelForScore(1)
	for score := 2; score <= 25; score++ {
		level := LevelForScore(score)
		assert.GreaterOrEqual(t, rank[level], rank[prev], "score %d", score)
		prev = level
	}
}

// The histogram table is narrower than the reporting table; a 4x4 risk is
// critical for reporting but only high for bucketing.
func TestBucketLevelDiffersFromReportingTable(t *testing.T) {
	assert.Equal(t, LevelCritical, LevelForScore(16))
	assert.Equal(t, LevelHigh, bucketLevel(16))

	assert.Equal(t, LevelHigh, bucketLevel(12))
	assert.Equal(t, LevelMedium, bucketLevel(11))
	assert.Equal(t, LevelCritical, bucketLevel(20))
	assert.Equal(t, LevelLow, bucketLevel(5))
	assert.Equal(t, LevelMedium, bucketLevel(6))
}

func TestBuildMatrixPlacesRisks(t *testing.T) {
	risks := []models.Risk{
		{Title: "r1", Probability: 5, Impact: 5},
		{Title: "r2", Probability: 5, Impact: 5},
		{Title: "r3", Probability: 1, Impact: 2},
	}

	m := BuildMatrix(risks)
	assert.Equal(t, 3, m.Total)

	top := m.Cells[4][4]
	assert.Equal(t, 5, top.Probability)
	assert.Equal(t, 5, top.Impact)
	assert.Equal(t, LevelCritical, top.Level)
	assert.Len(t, top.Risks, 2)

	low := m.Cells[0][1]
	assert.Equal(t, LevelLow, low.Level)
	assert.Len(t, low.Risks, 1)

	assert.Empty(t, m.Cells[2][2].Risks)
}

func TestBuildMatrixUnassessedRiskLandsInCenter(t *testing.T) {
	m := BuildMatrix([]models.Risk{{Title: "new"}})

	center := m.Cells[2][2]
	assert.Len(t, center.Risks, 1)
	// 3*3 = 9 buckets to medium on the narrow table
	assert.Equal(t, 1, m.Histogram[LevelMedium])
}

func TestBuildMatrixHistogramUsesNarrowTable(t *testing.T) {
	m := BuildMatrix([]models.Risk{
		{Probability: 4, Impact: 4}, // 16: high on the narrow table
		{Probability: 5, Impact: 5}, // 25: critical
		{Probability: 1, Impact: 1}, // 1: low
	})

	assert.Equal(t, 1, m.Histogram[LevelHigh])
	assert.Equal(t, 1, m.Histogram[LevelCritical])
	assert.Equal(t, 1, m.Histogram[LevelLow])
	assert.Equal(t, 0, m.Histogram[LevelMedium])
}

func TestHistogramAlwaysHasAllLevels(t *testing.T) {
	m := BuildMatrix(nil)
	for _, level := range []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical} {
		count, ok := m.Histogram[level]
		assert.True(t, ok)
		assert.Zero(t, count)
	}
}

func TestHeatmapPoints(t *testing.T) {
	points := HeatmapPoints([]models.Risk{{Probability: 5, Impact: 5}})
	require.Len(t, points, 25)

	var top HeatmapPoint
	for _, pt := range points {
		if pt.X == 5 && pt.Y == 5 {
			top = pt
		}
		assert.Equal(t, LevelColors[pt.Level], pt.Color)
	}

	assert.Equal(t, 1, top.Count)
	assert.Equal(t, LevelCritical, top.Level)
	assert.Equal(t, "#dc3545", top.Color)
}
