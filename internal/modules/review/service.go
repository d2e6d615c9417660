package review

import (
	"context"
	"strings"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"
)

// maxResponseLen bounds a host reply; the storage column is unbounded text.
const maxResponseLen = 2000

type Service struct {
	reviews ReviewRepository
	gate    OwnershipGate
}

func NewService(reviews ReviewRepository, gate OwnershipGate) *Service {
	return &Service{reviews: reviews, gate: gate}
}

// Respond attaches (or replaces) the host's public reply to a review.
func (s *Service) Respond(ctx context.Context, hostID, reviewID int64, text string) (*domain.Review, error) {
	if _, err := s.gate.Authorize(ctx, hostID, ownership.KindReview, reviewID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	if len(text) > maxResponseLen {
		return nil, ErrResponseTooLong
	}

	rv, err := s.reviews.SetHostResponse(ctx, reviewID, text)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ownership.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// ClearResponse removes the host's reply, nulling both response fields.
func (s *Service) ClearResponse(ctx context.Context, hostID, reviewID int64) (*domain.Review, error) {
	if _, err := s.gate.Authorize(ctx, hostID, ownership.KindReview, reviewID); err != nil {
		return nil, err
	}

	rv, err := s.reviews.ClearHostResponse(ctx, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ownership.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

// List pages through reviews across the host's experiences, newest first.
func (s *Service) List(ctx context.Context, hostID int64, p ListParams) ([]repository.HostReview, int64, error) {
	if _, err := s.gate.AuthorizeHost(ctx, hostID); err != nil {
		return nil, 0, err
	}

	if p.Rating < 0 || p.Rating > 5 {
		return nil, 0, ErrInvalidRating
	}

	b := listquery.NewBuilder()
	if p.Rating > 0 {
		b.Where("reviews.rating = ?", p.Rating)
	}
	b.OrderBy("reviews.created_at", true)
	b.Paginate(p.Page, p.Limit)

	return s.reviews.ListByHost(ctx, hostID, b.Build())
}
