package experience

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/pkg/listquery"
)

type ListParams struct {
	Status string
	Page   int
	Limit  int
}

var filterableStatuses = map[string]bool{
	string(domain.ExperienceDraft):         true,
	string(domain.ExperiencePendingReview): true,
	string(domain.ExperiencePublished):     true,
	string(domain.ExperiencePaused):        true,
	string(domain.ExperienceSuspended):     true,
	string(domain.ExperienceRejected):      true,
}

type Service struct {
	experiences ExperienceRepository
	gate        OwnershipGate
}

func NewService(experiences ExperienceRepository, gate OwnershipGate) *Service {
	return &Service{experiences: experiences, gate: gate}
}

// List pages through the host's experiences, newest first. Deleted rows are
// never returned; filtering for them is not supported here.
func (s *Service) List(ctx context.Context, hostID int64, p ListParams) ([]domain.Experience, int64, error) {
	if _, err := s.gate.AuthorizeHost(ctx, hostID); err != nil {
		return nil, 0, err
	}

	if p.Status != "" && p.Status != "all" && !filterableStatuses[p.Status] {
		return nil, 0, ErrInvalidStatus
	}

	b := listquery.NewBuilder()
	if p.Status != "" && p.Status != "all" {
		b.Where("status = ?", p.Status)
	}
	b.OrderBy("created_at", true)
	b.Paginate(p.Page, p.Limit)

	return s.experiences.ListByHost(ctx, hostID, b.Build())
}
