package ownership

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/repository"
)

type Kind string

const (
	KindExperience   Kind = "experience"
	KindBooking      Kind = "booking"
	KindReview       Kind = "review"
	KindStory        Kind = "story"
	KindStoryComment Kind = "story_comment"
)

// Handle proves that a resource was resolved and belongs to the acting host.
// Downstream services accept a Handle instead of re-checking ownership.
type Handle struct {
	Kind       Kind
	ResourceID int64
	HostID     int64
}

type Service struct {
	resolver Resolver
	hosts    HostDirectory
}

func NewService(resolver Resolver, hosts HostDirectory) *Service {
	return &Service{resolver: resolver, hosts: hosts}
}

// Authorize resolves the resource's owning host and compares it with the
// acting host. Every failure mode — missing host, inactive host, wrong role,
// missing resource, foreign resource — collapses into ErrNotFound.
func (s *Service) Authorize(ctx context.Context, actingHostID int64, kind Kind, resourceID int64) (Handle, error) {
	if actingHostID <= 0 || resourceID <= 0 {
		return Handle{}, ErrNotFound
	}

	host, err := s.hosts.GetByID(ctx, actingHostID)
	if err != nil {
		if repository.IsNotFound(err) {
			return Handle{}, ErrNotFound
		}
		return Handle{}, err
	}
	if host.Role != domain.RoleHost || !host.IsActive {
		return Handle{}, ErrNotFound
	}

	ownerID, err := s.resolveOwner(ctx, kind, resourceID)
	if err != nil {
		if repository.IsNotFound(err) {
			return Handle{}, ErrNotFound
		}
		return Handle{}, err
	}
	if ownerID != actingHostID {
		return Handle{}, ErrNotFound
	}

	return Handle{Kind: kind, ResourceID: resourceID, HostID: actingHostID}, nil
}

// AuthorizeHost checks only the acting host's account, for operations that
// aggregate over everything the host owns rather than touch one resource.
func (s *Service) AuthorizeHost(ctx context.Context, actingHostID int64) (Handle, error) {
	if actingHostID <= 0 {
		return Handle{}, ErrNotFound
	}

	host, err := s.hosts.GetByID(ctx, actingHostID)
	if err != nil {
		if repository.IsNotFound(err) {
			return Handle{}, ErrNotFound
		}
		return Handle{}, err
	}
	if host.Role != domain.RoleHost || !host.IsActive {
		return Handle{}, ErrNotFound
	}

	return Handle{HostID: actingHostID}, nil
}

func (s *Service) resolveOwner(ctx context.Context, kind Kind, resourceID int64) (int64, error) {
	switch kind {
	case KindExperience:
		return s.resolver.ResolveExperienceOwner(ctx, resourceID)
	case KindBooking:
		return s.resolver.ResolveBookingOwner(ctx, resourceID)
	case KindReview:
		return s.resolver.ResolveReviewOwner(ctx, resourceID)
	case KindStory:
		return s.resolver.ResolveStoryOwner(ctx, resourceID)
	case KindStoryComment:
		return s.resolver.ResolveStoryCommentOwner(ctx, resourceID)
	default:
		return 0, ErrNotFound
	}
}
