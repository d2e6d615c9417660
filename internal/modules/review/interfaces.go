package review

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"
)

type ReviewRepository interface {
	ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]repository.HostReview, int64, error)
	SetHostResponse(ctx context.Context, id int64, text string) (*domain.Review, error)
	ClearHostResponse(ctx context.Context, id int64) (*domain.Review, error)
}

type OwnershipGate interface {
	Authorize(ctx context.Context, actingHostID int64, kind ownership.Kind, resourceID int64) (ownership.Handle, error)
	AuthorizeHost(ctx context.Context, actingHostID int64) (ownership.Handle, error)
}
