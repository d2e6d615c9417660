package story

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"
)

type Service struct {
	comments StoryCommentRepository
	gate     OwnershipGate
}

func NewService(comments StoryCommentRepository, gate OwnershipGate) *Service {
	return &Service{comments: comments, gate: gate}
}

// ListComments pages through comments on the host's stories for moderation.
func (s *Service) ListComments(ctx context.Context, hostID int64, p ListParams) ([]repository.HostStoryComment, int64, error) {
	if _, err := s.gate.AuthorizeHost(ctx, hostID); err != nil {
		return nil, 0, err
	}

	b := listquery.NewBuilder()
	switch p.Status {
	case "", "all":
	case "approved":
		b.Where("story_comments.is_approved = ?", true)
	case "pending":
		b.Where("story_comments.is_approved = ?", false)
	default:
		return nil, 0, ErrInvalidFilter
	}

	if p.Search != "" {
		b.Where("story_comments.body LIKE ?", "%"+p.Search+"%")
	}

	order := listquery.CommentOrder(p.SortBy, p.SortOrder)
	b.OrderBy(order.Column, order.Desc)
	b.Paginate(p.Page, p.Limit)

	return s.comments.ListByHost(ctx, hostID, b.Build())
}

// Moderate flips the approval flag on a comment under the host's story.
func (s *Service) Moderate(ctx context.Context, hostID, commentID int64, approved bool) (*domain.StoryComment, error) {
	if _, err := s.gate.Authorize(ctx, hostID, ownership.KindStoryComment, commentID); err != nil {
		return nil, err
	}

	c, err := s.comments.SetApproval(ctx, commentID, approved)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ownership.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
