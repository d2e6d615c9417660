package domain

import "time"

type ExperienceStatus string

const (
	ExperienceDraft         ExperienceStatus = "draft"
	ExperiencePendingReview ExperienceStatus = "pending_review"
	ExperiencePublished     ExperienceStatus = "published"
	ExperiencePaused        ExperienceStatus = "paused"
	ExperienceSuspended     ExperienceStatus = "suspended"
	ExperienceRejected      ExperienceStatus = "rejected"
	ExperienceDeleted       ExperienceStatus = "deleted"
)

type Experience struct {
	ID          int64            `json:"id"`
	HostID      int64            `json:"host_id" validate:"required"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug,omitempty"`
	Description string           `json:"description,omitempty" gorm:"type:text"`
	Status      ExperienceStatus `json:"status"`
	Price       float64          `json:"price"`
	Currency    string           `json:"currency"`
	MinGuests   int              `json:"min_guests"`
	MaxGuests   int              `json:"max_guests"`
	City        string           `json:"city,omitempty"`
	Country     string           `json:"country,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Host *User `json:"host,omitempty" gorm:"foreignKey:HostID"`
}
