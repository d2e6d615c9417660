package booking

import "time"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// StatusUpdate is the projection returned after a transition.
type StatusUpdate struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListParams is the typed filter set for the host bookings list.
type ListParams struct {
	Status       string
	ExperienceID int64
	Sort         string
	Page         int
	Limit        int
}
