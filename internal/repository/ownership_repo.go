package repository

import (
	"context"

	"gorm.io/gorm"
)

// OwnershipRepository resolves the transitive owning host of a resource.
// Every query goes through the experience (or story author) relation so a
// dangling reference can never yield an owner.
type OwnershipRepository struct {
	db *gorm.DB
}

func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

func (r *OwnershipRepository) resolve(ctx context.Context, q string, id int64) (int64, error) {
	var hostID int64
	tx := r.db.WithContext(ctx).Raw(q, id).Scan(&hostID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return hostID, nil
}

func (r *OwnershipRepository) ResolveExperienceOwner(ctx context.Context, id int64) (int64, error) {
	return r.resolve(ctx, `SELECT host_id FROM experiences WHERE id = ?`, id)
}

func (r *OwnershipRepository) ResolveBookingOwner(ctx context.Context, id int64) (int64, error) {
	q := `
SELECT e.host_id
FROM bookings b
JOIN experiences e ON e.id = b.experience_id
WHERE b.id = ?
`
	return r.resolve(ctx, q, id)
}

func (r *OwnershipRepository) ResolveReviewOwner(ctx context.Context, id int64) (int64, error) {
	q := `
SELECT e.host_id
FROM reviews rv
JOIN experiences e ON e.id = rv.experience_id
WHERE rv.id = ?
`
	return r.resolve(ctx, q, id)
}

func (r *OwnershipRepository) ResolveStoryOwner(ctx context.Context, id int64) (int64, error) {
	return r.resolve(ctx, `SELECT author_id FROM stories WHERE id = ?`, id)
}

func (r *OwnershipRepository) ResolveStoryCommentOwner(ctx context.Context, id int64) (int64, error) {
	q := `
SELECT s.author_id
FROM story_comments c
JOIN stories s ON s.id = c.story_id
WHERE c.id = ?
`
	return r.resolve(ctx, q, id)
}
