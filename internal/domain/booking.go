package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ValidBookingStatuses is the full set a host may move a booking into.
var ValidBookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingCompleted,
}

func IsValidBookingStatus(s string) bool {
	for _, v := range ValidBookingStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                 int64         `json:"id"`
	ExperienceID       int64         `json:"experience_id" validate:"required"`
	TravelerID         int64         `json:"traveler_id" validate:"required"`
	Status             BookingStatus `json:"status"`
	TotalPrice         float64       `json:"total_price" validate:"gte=0"`
	Currency           string        `json:"currency"`
	Participants       int           `json:"participants"`
	BookingDate        time.Time     `json:"booking_date"`
	Notes              string        `json:"notes,omitempty" gorm:"type:text"`
	CancellationReason string        `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`

	Experience *Experience `json:"experience,omitempty" gorm:"foreignKey:ExperienceID"`
	Traveler   *User       `json:"traveler,omitempty" gorm:"foreignKey:TravelerID"`
}
