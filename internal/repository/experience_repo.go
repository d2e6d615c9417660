package repository

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/pkg/listquery"

	"gorm.io/gorm"
)

type ExperienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	var e domain.Experience
	tx := r.db.WithContext(ctx).First(&e, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

// ListByHost returns one page of the host's experiences plus the unpaged
// total. Deleted rows stay hidden even when a status filter is present.
func (r *ExperienceRepository) ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]domain.Experience, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&domain.Experience{}).
			Where("host_id = ?", hostID).
			Where("status <> ?", string(domain.ExperienceDeleted))
	}

	var total int64
	if err := plan.ApplyConds(base()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Experience
	if err := plan.Apply(base()).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ExperienceRepository) CountActiveByHost(ctx context.Context, hostID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Experience{}).
		Where("host_id = ? AND status = ?", hostID, string(domain.ExperiencePublished)).
		Count(&cnt).Error
	return cnt, err
}

// StatusCountsByHost groups the host's experiences by status, deleted excluded.
func (r *ExperienceRepository) StatusCountsByHost(ctx context.Context, hostID int64) (map[domain.ExperienceStatus]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	q := `
SELECT status, COUNT(1) AS cnt
FROM experiences
WHERE host_id = ? AND status <> 'deleted'
GROUP BY status
`
	if err := r.db.WithContext(ctx).Raw(q, hostID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[domain.ExperienceStatus]int64, len(rows))
	for _, row := range rows {
		out[domain.ExperienceStatus(row.Status)] = row.Cnt
	}
	return out, nil
}
