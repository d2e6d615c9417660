package dashboard

import (
	"context"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/repository"
)

type BookingStats interface {
	CountsByHost(ctx context.Context, hostID int64) (repository.BookingStatusCounts, error)
	RevenueByHost(ctx context.Context, hostID int64) (float64, error)
	RecentByHost(ctx context.Context, hostID int64, limit int) ([]repository.HostBooking, error)
	RevenueRowsSince(ctx context.Context, hostID int64, since time.Time) ([]repository.RevenueRow, error)
	CountByHost(ctx context.Context, hostID int64) (int64, error)
}

type ExperienceStats interface {
	CountActiveByHost(ctx context.Context, hostID int64) (int64, error)
	StatusCountsByHost(ctx context.Context, hostID int64) (map[domain.ExperienceStatus]int64, error)
}

type ReviewStats interface {
	VerifiedTotalsByHost(ctx context.Context, hostID int64) (count int64, ratingSum int64, err error)
}

type OwnershipGate interface {
	AuthorizeHost(ctx context.Context, actingHostID int64) (ownership.Handle, error)
}
