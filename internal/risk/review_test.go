package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isms-center/internal/models"
)

var reviewToday = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func TestReviewLevelUsesNarrowTableAndLowDefault(t *testing.T) {
	assert.Equal(t, LevelCritical, ReviewLevel(&models.Risk{Probability: 5, Impact: 5}))
	assert.Equal(t, LevelHigh, ReviewLevel(&models.Risk{Probability: 4, Impact: 4}))
	assert.Equal(t, LevelMedium, ReviewLevel(&models.Risk{Probability: 3, Impact: 3}))
	assert.Equal(t, LevelLow, ReviewLevel(&models.Risk{Probability: 1, Impact: 1}))

	// unassessed values default to 1 here, not the matrix's 3
	assert.Equal(t, LevelLow, ReviewLevel(&models.Risk{}))
	assert.Equal(t, LevelLow, ReviewLevel(&models.Risk{Probability: 5}))
}

func TestNextReviewDatePerLevel(t *testing.T) {
	cases := []struct {
		name     string
		risk     models.Risk
		expected time.Time
	}{
		{"critical quarterly", models.Risk{Probability: 5, Impact: 5}, reviewToday.AddDate(0, 0, 90)},
		{"high semi-annual", models.Risk{Probability: 4, Impact: 4}, reviewToday.AddDate(0, 0, 180)},
		{"medium annual", models.Risk{Probability: 3, Impact: 3}, reviewToday.AddDate(0, 0, 365)},
		{"low bi-annual", models.Risk{Probability: 2, Impact: 2}, reviewToday.AddDate(0, 0, 730)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := NextReviewDate(&tc.risk, reviewToday)
			assert.Equal(t, tc.expected, next)
			require.NotNil(t, tc.risk.ReviewDate)
			assert.Equal(t, tc.expected, *tc.risk.ReviewDate)
		})
	}
}

func TestIsOverdue(t *testing.T) {
	past := reviewToday.AddDate(0, 0, -1)
	future := reviewToday.AddDate(0, 0, 1)

	assert.True(t, IsOverdue(&models.Risk{}, reviewToday), "never reviewed counts as overdue")
	assert.True(t, IsOverdue(&models.Risk{ReviewDate: &past}, reviewToday))
	assert.False(t, IsOverdue(&models.Risk{ReviewDate: &future}, reviewToday))
	assert.False(t, IsOverdue(&models.Risk{ReviewDate: &reviewToday}, reviewToday), "due today is not overdue yet")
}

func TestUpcomingWindowIsInclusive(t *testing.T) {
	end := reviewToday.AddDate(0, 0, 30)
	afterEnd := reviewToday.AddDate(0, 0, 31)
	yesterday := reviewToday.AddDate(0, 0, -1)
	mid := reviewToday.AddDate(0, 0, 15)

	risks := []models.Risk{
		{Title: "today", ReviewDate: &reviewToday},
		{Title: "mid", ReviewDate: &mid},
		{Title: "last day", ReviewDate: &end},
		{Title: "past window", ReviewDate: &afterEnd},
		{Title: "already overdue", ReviewDate: &yesterday},
		{Title: "unscheduled"},
	}

	due := Upcoming(risks, reviewToday, 30)
	require.Len(t, due, 3)
	assert.Equal(t, "today", due[0].Title)
	assert.Equal(t, "mid", due[1].Title)
	assert.Equal(t, "last day", due[2].Title)
}
