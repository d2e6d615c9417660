package story

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"
)

type StoryCommentRepository interface {
	ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]repository.HostStoryComment, int64, error)
	SetApproval(ctx context.Context, id int64, approved bool) (*domain.StoryComment, error)
}

type OwnershipGate interface {
	Authorize(ctx context.Context, actingHostID int64, kind ownership.Kind, resourceID int64) (ownership.Handle, error)
	AuthorizeHost(ctx context.Context, actingHostID int64) (ownership.Handle, error)
}
