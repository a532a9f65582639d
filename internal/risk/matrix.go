// Package risk holds the quantitative side of the ISMS: the 5x5 probability/
// impact matrix, composite asset scoring and review scheduling. Everything
// here is a pure computation over already-loaded records.
package risk

import "isms-center/internal/models"

// Level classifies a risk score.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// LevelColors is the fixed dashboard palette.
var LevelColors = map[Level]string{
	LevelCritical: "#dc3545",
	LevelHigh:     "#fd7e14",
	LevelMedium:   "#ffc107",
	LevelLow:      "#28a745",
}

func clampRating(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// Score multiplies probability and impact after clamping both into 1..5.
func Score(probability, impact int) int {
	return clampRating(probability) * clampRating(impact)
}

// LevelForScore classifies a score with the reporting thresholds (15/8/4).
//
// The matrix histogram and the review scheduler use a narrower 20/12/6 table
// (bucketLevel below). Both tables are carried verbatim from the existing
// reports; do not unify them without product sign-off.
func LevelForScore(score int) Level {
	switch {
	case score >= 15:
		return LevelCritical
	case score >= 8:
		return LevelHigh
	case score >= 4:
		return LevelMedium
	default:
		return LevelLow
	}
}

// LevelOf classifies a probability/impact pair with the reporting thresholds.
func LevelOf(probability, impact int) Level {
	return LevelForScore(Score(probability, impact))
}

// bucketLevel is the narrower threshold table (20/12/6), used for matrix
// histogram bucketing and review interval selection.
func bucketLevel(score int) Level {
	switch {
	case score >= 20:
		return LevelCritical
	case score >= 12:
		return LevelHigh
	case score >= 6:
		return LevelMedium
	default:
		return LevelLow
	}
}

// matrixRating substitutes 3 for unassessed values during matrix placement
// (review classification uses 1 instead; the two defaults are intentionally
// different per call site).
func matrixRating(v int) int {
	if v == 0 {
		return 3
	}
	return clampRating(v)
}

// Cell is one probability/impact combination of the matrix.
type Cell struct {
	Probability int           `json:"probability"`
	Impact      int           `json:"impact"`
	Level       Level         `json:"level"`
	Risks       []models.Risk `json:"risks"`
}

// Matrix is the aggregated 5x5 view over a set of risks.
type Matrix struct {
	// Cells[p-1][i-1] holds the cell for probability p, impact i.
	Cells     [5][5]Cell    `json:"cells"`
	Histogram map[Level]int `json:"histogram"`
	Total     int           `json:"total"`
}

// BuildMatrix places every risk into the 5x5 grid. Each cell carries its
// reporting level; the histogram buckets risks with the narrower table.
func BuildMatrix(risks []models.Risk) Matrix {
	m := Matrix{
		Histogram: map[Level]int{
			LevelLow:      0,
			LevelMedium:   0,
			LevelHigh:     0,
			LevelCritical: 0,
		},
		Total: len(risks),
	}

	for p := 1; p <= 5; p++ {
		for i := 1; i <= 5; i++ {
			m.Cells[p-1][i-1] = Cell{
				Probability: p,
				Impact:      i,
				Level:       LevelForScore(p * i),
				Risks:       []models.Risk{},
			}
		}
	}

	for _, r := range risks {
		p := matrixRating(r.Probability)
		i := matrixRating(r.Impact)
		cell := &m.Cells[p-1][i-1]
		cell.Risks = append(cell.Risks, r)
		m.Histogram[bucketLevel(p*i)]++
	}

	return m
}

// HeatmapPoint is one matrix cell prepared for chart rendering.
type HeatmapPoint struct {
	X     int    `json:"x"` // impact
	Y     int    `json:"y"` // probability
	Count int    `json:"count"`
	Level Level  `json:"level"`
	Color string `json:"color"`
}

// HeatmapPoints emits one point per matrix cell (25 points), colored by the
// cell's reporting level.
func HeatmapPoints(risks []models.Risk) []HeatmapPoint {
	m := BuildMatrix(risks)

	points := make([]HeatmapPoint, 0, 25)
	for p := 1; p <= 5; p++ {
		for i := 1; i <= 5; i++ {
			cell := m.Cells[p-1][i-1]
			points = append(points, HeatmapPoint{
				X:     i,
				Y:     p,
				Count: len(cell.Risks),
				Level: cell.Level,
				Color: LevelColors[cell.Level],
			})
		}
	}
	return points
}
