package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"isms-center/internal/models"
)

// RiskRepository adds the review-workflow queries on top of the generic
// tenant-filtered fetch pair.
type RiskRepository struct {
	db *gorm.DB
}

func NewRiskRepository(db *gorm.DB) *RiskRepository {
	return &RiskRepository{db: db}
}

func (r *RiskRepository) ByID(id uint) (*models.Risk, error) {
	var risk models.Risk
	err := r.db.First(&risk, id).Error
	if err != nil {
		return nil, fmt.Errorf("load risk %d: %w", id, err)
	}
	return &risk, nil
}

// OverdueReviews returns risks with a past review date or none at all,
// oldest first.
func (r *RiskRepository) OverdueReviews(tenant *models.Tenant, today time.Time) ([]models.Risk, error) {
	var risks []models.Risk
	err := r.db.
		Where("tenant_id = ?", tenant.ID).
		Where("review_date < ? OR review_date IS NULL", today).
		Order("review_date asc").
		Find(&risks).Error
	if err != nil {
		return nil, fmt.Errorf("load overdue reviews for tenant %d: %w", tenant.ID, err)
	}
	return risks, nil
}

// UpcomingReviews returns risks due for review inside the next daysAhead
// days, both window ends inclusive.
func (r *RiskRepository) UpcomingReviews(tenant *models.Tenant, today time.Time, daysAhead int) ([]models.Risk, error) {
	end := today.AddDate(0, 0, daysAhead)

	var risks []models.Risk
	err := r.db.
		Where("tenant_id = ?", tenant.ID).
		Where("review_date BETWEEN ? AND ?", today, end).
		Order("review_date asc").
		Find(&risks).Error
	if err != nil {
		return nil, fmt.Errorf("load upcoming reviews for tenant %d: %w", tenant.ID, err)
	}
	return risks, nil
}

// Unscheduled returns risks that never had a review date assigned.
func (r *RiskRepository) Unscheduled(tenant *models.Tenant) ([]models.Risk, error) {
	var risks []models.Risk
	err := r.db.
		Where("tenant_id = ?", tenant.ID).
		Where("review_date IS NULL").
		Find(&risks).Error
	if err != nil {
		return nil, fmt.Errorf("load unscheduled risks for tenant %d: %w", tenant.ID, err)
	}
	return risks, nil
}

func (r *RiskRepository) CountByTenant(tenant *models.Tenant) (int, error) {
	var count int64
	err := r.db.Model(&models.Risk{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count risks for tenant %d: %w", tenant.ID, err)
	}
	return int(count), nil
}

func (r *RiskRepository) CountUnscheduled(tenant *models.Tenant) (int, error) {
	var count int64
	err := r.db.Model(&models.Risk{}).
		Where("tenant_id = ?", tenant.ID).
		Where("review_date IS NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count unscheduled risks for tenant %d: %w", tenant.ID, err)
	}
	return int(count), nil
}

// SaveReviewDates persists assigned review dates for a batch of risks in one
// transaction: either every date lands or none does.
func (r *RiskRepository) SaveReviewDates(risks []models.Risk) error {
	if len(risks) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range risks {
			res := tx.Model(&models.Risk{}).
				Where("id = ?", risks[i].ID).
				Update("review_date", risks[i].ReviewDate)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save review dates: %w", err)
	}
	return nil
}
