package notification

import (
	"context"
	"log"
)

// EmailSender satisfies the booking module's NotificationSender. Actual
// delivery belongs to the platform's mail service; until that integration
// lands this logs the intent and succeeds.
type EmailSender struct{}

func NewEmailSender() *EmailSender {
	return &EmailSender{}
}

func (s *EmailSender) NotifyBookingStatusChanged(ctx context.Context, travelerID, bookingID int64, newStatus string) error {
	log.Printf("notify_booking_status_changed traveler_id=%d booking_id=%d status=%s", travelerID, bookingID, newStatus)
	return nil
}
