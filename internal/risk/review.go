package risk

import (
	"time"

	"isms-center/internal/models"
)

// Review scheduling per ISO 27001:2022 6.1.3.d: the higher the risk level,
// the shorter the review cycle.

// ReviewSchedule maps a risk level to its review interval in days.
var ReviewSchedule = map[Level]int{
	LevelCritical: 90,  // quarterly
	LevelHigh:     180, // semi-annually
	LevelMedium:   365, // annually
	LevelLow:      730, // bi-annually
}

const defaultReviewIntervalDays = 365

// ReviewLevel classifies a risk for interval selection. Unassessed
// probability or impact defaults to 1 here (the matrix uses 3), and the
// narrower 20/12/6 table applies; both quirks match the existing call sites.
func ReviewLevel(r *models.Risk) Level {
	p := r.Probability
	if p == 0 {
		p = 1
	}
	i := r.Impact
	if i == 0 {
		i = 1
	}
	return bucketLevel(p * i)
}

// NextReviewDate derives the next review date from the risk's current level,
// assigns it to the risk and returns it. Unknown levels fall back to one
// year.
func NextReviewDate(r *models.Risk, today time.Time) time.Time {
	interval, ok := ReviewSchedule[ReviewLevel(r)]
	if !ok {
		interval = defaultReviewIntervalDays
	}
	next := today.AddDate(0, 0, interval)
	r.ReviewDate = &next
	return next
}

// IsOverdue reports whether the risk needs review: the review date has
// passed, or the risk was never reviewed at all.
func IsOverdue(r *models.Risk, today time.Time) bool {
	return r.ReviewDate == nil || r.ReviewDate.Before(today)
}

// Upcoming filters risks whose review date falls inside
// [today, today+daysAhead], both ends inclusive.
func Upcoming(risks []models.Risk, today time.Time, daysAhead int) []models.Risk {
	end := today.AddDate(0, 0, daysAhead)

	var due []models.Risk
	for _, r := range risks {
		if r.ReviewDate == nil {
			continue
		}
		if !r.ReviewDate.Before(today) && !r.ReviewDate.After(end) {
			due = append(due, r)
		}
	}
	return due
}
