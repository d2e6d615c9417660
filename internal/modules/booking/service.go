package booking

import (
	"context"
	"log"

	"wayfarer/internal/domain"
	"wayfarer/internal/modules/ownership"
	"wayfarer/internal/pkg/listquery"
	"wayfarer/internal/repository"
)

type Service struct {
	bookings BookingRepository
	gate     OwnershipGate
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, gate OwnershipGate, notifs NotificationSender) *Service {
	return &Service{bookings: bookings, gate: gate, notifs: notifs}
}

// Transition moves a booking into any of the four host-managed statuses.
// All transitions among them are allowed; backward or post-terminal moves are
// logged so they stay visible, not rejected.
func (s *Service) Transition(ctx context.Context, hostID, bookingID int64, newStatus, note string) (StatusUpdate, error) {
	if _, err := s.gate.Authorize(ctx, hostID, ownership.KindBooking, bookingID); err != nil {
		return StatusUpdate{}, err
	}

	if !domain.IsValidBookingStatus(newStatus) {
		return StatusUpdate{}, ErrInvalidStatus
	}

	prev, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return StatusUpdate{}, ownership.ErrNotFound
		}
		return StatusUpdate{}, err
	}

	if isUnusualTransition(prev.Status, domain.BookingStatus(newStatus)) {
		log.Printf("booking_status_unusual_transition booking_id=%d host_id=%d from=%s to=%s",
			bookingID, hostID, prev.Status, newStatus)
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, newStatus, note)
	if err != nil {
		if repository.IsNotFound(err) {
			return StatusUpdate{}, ownership.ErrNotFound
		}
		return StatusUpdate{}, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingStatusChanged(ctx, updated.TravelerID, updated.ID, newStatus)
	}

	return StatusUpdate{
		ID:        updated.ID,
		Status:    string(updated.Status),
		Notes:     updated.Notes,
		UpdatedAt: updated.UpdatedAt,
	}, nil
}

// List pages through bookings across all of the host's experiences.
func (s *Service) List(ctx context.Context, hostID int64, p ListParams) ([]repository.HostBooking, int64, error) {
	if _, err := s.gate.AuthorizeHost(ctx, hostID); err != nil {
		return nil, 0, err
	}

	if p.Status != "" && p.Status != "all" && !domain.IsValidBookingStatus(p.Status) {
		return nil, 0, ErrInvalidStatus
	}

	b := listquery.NewBuilder()
	if p.Status != "" && p.Status != "all" {
		b.Where("bookings.status = ?", p.Status)
	}
	if p.ExperienceID > 0 {
		b.Where("bookings.experience_id = ?", p.ExperienceID)
	}
	order := listquery.BookingOrder(p.Sort)
	b.OrderBy(order.Column, order.Desc)
	b.Paginate(p.Page, p.Limit)

	return s.bookings.ListByHost(ctx, hostID, b.Build())
}

// Get returns one booking with its experience and traveler projections.
func (s *Service) Get(ctx context.Context, hostID, bookingID int64) (*domain.Booking, error) {
	if _, err := s.gate.Authorize(ctx, hostID, ownership.KindBooking, bookingID); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetDetail(ctx, bookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ownership.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// A transition is unusual when it leaves a terminal state. Product has not
// confirmed whether these should be blocked, so they are only flagged.
func isUnusualTransition(from, to domain.BookingStatus) bool {
	if from == to {
		return false
	}
	return from == domain.BookingCompleted || from == domain.BookingCancelled
}
