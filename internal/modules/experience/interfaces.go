package experience

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
)

type ExperienceRepository interface {
	ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]domain.Experience, int64, error)
}

type OwnershipGate interface {
	AuthorizeHost(ctx context.Context, actingHostID int64) (ownership.Handle, error)
}
