package repository

import (
	"context"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/pkg/listquery"

	"gorm.io/gorm"
)

type StoryCommentRepository struct {
	db *gorm.DB
}

func NewStoryCommentRepository(db *gorm.DB) *StoryCommentRepository {
	return &StoryCommentRepository{db: db}
}

// HostStoryComment is the moderation-list projection.
type HostStoryComment struct {
	ID            int64     `json:"id"`
	Body          string    `json:"body"`
	IsApproved    bool      `json:"is_approved"`
	ParentID      *int64    `json:"parent_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	StoryID       int64     `json:"story_id"`
	StoryTitle    string    `json:"story_title"`
	CommenterName string    `json:"commenter_name"`
}

func (r *StoryCommentRepository) GetByID(ctx context.Context, id int64) (*domain.StoryComment, error) {
	var c domain.StoryComment
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

// ListByHost pages through comments left on the host's stories.
func (r *StoryCommentRepository) ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]HostStoryComment, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Table("story_comments").
			Joins("JOIN stories ON stories.id = story_comments.story_id").
			Joins("JOIN users ON users.id = story_comments.user_id").
			Where("stories.author_id = ?", hostID)
	}

	var total int64
	if err := plan.ApplyConds(base()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []HostStoryComment
	err := plan.Apply(base()).
		Select(`story_comments.id, story_comments.body, story_comments.is_approved,
			story_comments.parent_id, story_comments.created_at, story_comments.updated_at,
			story_comments.story_id, stories.title AS story_title,
			users.name AS commenter_name`).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *StoryCommentRepository) SetApproval(ctx context.Context, id int64, approved bool) (*domain.StoryComment, error) {
	tx := r.db.WithContext(ctx).Model(&domain.StoryComment{}).Where("id = ?", id).Updates(map[string]any{
		"is_approved": approved,
		"updated_at":  time.Now(),
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
