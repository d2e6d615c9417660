package booking

import (
	"context"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"
)

// BookingRepository is the storage surface the lifecycle needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetail(ctx context.Context, id int64) (*domain.Booking, error)
	ListByHost(ctx context.Context, hostID int64, plan listquery.Plan) ([]repository.HostBooking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status, notes string) (*domain.Booking, error)
}

// OwnershipGate authorizes the acting host against a target resource.
type OwnershipGate interface {
	Authorize(ctx context.Context, actingHostID int64, kind ownership.Kind, resourceID int64) (ownership.Handle, error)
	AuthorizeHost(ctx context.Context, actingHostID int64) (ownership.Handle, error)
}

// NotificationSender is the outbound email collaborator. Delivery is outside
// this core; the send is best-effort and never blocks the transition.
type NotificationSender interface {
	NotifyBookingStatusChanged(ctx context.Context, travelerID, bookingID int64, newStatus string) error
}
