package service

import (
	"log"
	"time"

	"isms-center/internal/models"
	"isms-center/internal/repository"
	"isms-center/internal/risk"
)

// ReviewService runs the periodic risk review workflow (ISO 27001:2022
// 6.1.3.d): interval selection by level, overdue tracking, bulk scheduling.
type ReviewService struct {
	risks *repository.RiskRepository
}

func NewReviewService(risks *repository.RiskRepository) *ReviewService {
	return &ReviewService{risks: risks}
}

// ScheduleNext assigns and persists the next review date for one risk.
func (s *ReviewService) ScheduleNext(r *models.Risk, today time.Time) (time.Time, error) {
	next := risk.NextReviewDate(r, today)

	if err := s.risks.SaveReviewDates([]models.Risk{*r}); err != nil {
		return time.Time{}, err
	}

	log.Printf("scheduled next review for risk %d (level=%s, next=%s)",
		r.ID, risk.ReviewLevel(r), next.Format("2006-01-02"))
	return next, nil
}

// Overdue returns risks with a past review date or none at all.
func (s *ReviewService) Overdue(tenant *models.Tenant, today time.Time) ([]models.Risk, error) {
	return s.risks.OverdueReviews(tenant, today)
}

// Upcoming returns risks due for review within the next daysAhead days.
func (s *ReviewService) Upcoming(tenant *models.Tenant, today time.Time, daysAhead int) ([]models.Risk, error) {
	return s.risks.UpcomingReviews(tenant, today, daysAhead)
}

// Statistics is the review-workload summary for a tenant.
type Statistics struct {
	Total         int `json:"total"`
	Overdue       int `json:"overdue"`
	Upcoming30    int `json:"upcoming_30"`
	Upcoming7     int `json:"upcoming_7"`
	NeverReviewed int `json:"never_reviewed"`
}

func (s *ReviewService) Statistics(tenant *models.Tenant, today time.Time) (Statistics, error) {
	total, err := s.risks.CountByTenant(tenant)
	if err != nil {
		return Statistics{}, err
	}
	overdue, err := s.risks.OverdueReviews(tenant, today)
	if err != nil {
		return Statistics{}, err
	}
	upcoming30, err := s.risks.UpcomingReviews(tenant, today, 30)
	if err != nil {
		return Statistics{}, err
	}
	upcoming7, err := s.risks.UpcomingReviews(tenant, today, 7)
	if err != nil {
		return Statistics{}, err
	}
	neverReviewed, err := s.risks.CountUnscheduled(tenant)
	if err != nil {
		return Statistics{}, err
	}

	return Statistics{
		Total:         total,
		Overdue:       len(overdue),
		Upcoming30:    len(upcoming30),
		Upcoming7:     len(upcoming7),
		NeverReviewed: neverReviewed,
	}, nil
}

// BulkSchedule assigns a review date to every risk of the tenant that lacks
// one. The dates are written in a single transaction, so a partial failure
// leaves nothing assigned. Returns the number of risks scheduled.
func (s *ReviewService) BulkSchedule(tenant *models.Tenant, today time.Time) (int, error) {
	unscheduled, err := s.risks.Unscheduled(tenant)
	if err != nil {
		return 0, err
	}

	for i := range unscheduled {
		risk.NextReviewDate(&unscheduled[i], today)
	}

	if err := s.risks.SaveReviewDates(unscheduled); err != nil {
		return 0, err
	}

	log.Printf("bulk scheduled reviews for tenant %d: %d risks", tenant.ID, len(unscheduled))
	return len(unscheduled), nil
}
