package ownership

import (
	"context"

	"wayfarer/internal/domain"
)

// Resolver maps a resource id to its transitive owning host id.
type Resolver interface {
	ResolveExperienceOwner(ctx context.Context, id int64) (int64, error)
	ResolveBookingOwner(ctx context.Context, id int64) (int64, error)
	ResolveReviewOwner(ctx context.Context, id int64) (int64, error)
	ResolveStoryOwner(ctx context.Context, id int64) (int64, error)
	ResolveStoryCommentOwner(ctx context.Context, id int64) (int64, error)
}

// HostDirectory looks up the acting host's account record.
type HostDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
