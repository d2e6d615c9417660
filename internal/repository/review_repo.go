package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/pkg/listquery"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	ExperienceID   int64      `gorm:"column:experience_id"`
	ReviewerID     int64      `gorm:"column:reviewer_id"`
	Rating         int        `gorm:"column:rating"`
	Comment        *string    `gorm:"column:comment"`
	IsVerified     bool       `gorm:"column:is_verified"`
	HostResponse   *string    `gorm:"column:host_response"`
	HostResponseAt *time.Time `gorm:"column:host_response_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	comment := ""
	if m.Comment != nil {
		comment = *m.Comment
	}
	return &domain.Review{
		ID:             m.ID,
		ExperienceID:   m.ExperienceID,
		ReviewerID:     m.ReviewerID,
		Rating:         m.Rating,
		Comment:        comment,
		IsVerified:     m.IsVerified,
		HostResponse:   m.HostResponse,
		HostResponseAt: m.HostResponseAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// HostReview is the list-row projection for the host reviews screen.
type HostReview struct {
	ID              int64      `json:"id"`
	Rating          int        `json:"rating"`
	Comment         string     `json:"comment"`
	IsVerified      bool       `json:"is_verified"`
	HostResponse    *string    `json:"host_response,omitempty"`
	HostResponseAt  *time.Time `json:"host_response_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ExperienceID    int64      `json:"experience_id"`
	ExperienceTitle string     `json:"experience_title"`
	ReviewerName    string     `json:"reviewer_name"`
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]HostReview, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("reviews").
			Joins("JOIN experiences ON experiences.id = reviews.experience_id").
			Joins("JOIN users ON users.id = reviews.reviewer_id").
			Where("experiences.host_id = ?", hostID).
			Where("experiences.status <> ?", string(domain.ExperienceDeleted))
	}

	var total int64
	if err := plan.ApplyConds(base()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []HostReview
	err := plan.Apply(base()).
		Select(`reviews.id, reviews.rating, reviews.comment, reviews.is_verified,
			reviews.host_response, reviews.host_response_at, reviews.created_at,
			reviews.experience_id, experiences.title AS experience_title,
			users.name AS reviewer_name`).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// SetHostResponse stores the host's reply and stamps host_response_at.
func (r *ReviewRepository) SetHostResponse(ctx context.Context, id int64, text string) (*domain.Review, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).Where("id = ?", id).Updates(map[string]any{
		"host_response":    text,
		"host_response_at": now,
		"updated_at":       now,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// ClearHostResponse nulls both response fields.
func (r *ReviewRepository) ClearHostResponse(ctx context.Context, id int64) (*domain.Review, error) {
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).Where("id = ?", id).Updates(map[string]any{
		"host_response":    nil,
		"host_response_at": nil,
		"updated_at":       time.Now(),
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// VerifiedTotalsByHost returns the count and rating sum over verified reviews
// of the host's experiences. The average is computed by the caller so the
// division-by-zero guard stays in one testable place.
func (r *ReviewRepository) VerifiedTotalsByHost(ctx context.Context, hostID int64) (int64, int64, error) {
	var row struct {
		Cnt int64
		Sum int64
	}
	q := `
SELECT COUNT(1) AS cnt, COALESCE(SUM(rv.rating), 0) AS sum
FROM reviews rv
JOIN experiences e ON e.id = rv.experience_id
WHERE e.host_id = ? AND e.status <> 'deleted' AND rv.is_verified = ?
`
	if err := r.db.WithContext(ctx).Raw(q, hostID, true).Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Cnt, row.Sum, nil
}
