package domain

import "time"

type Review struct {
	ID             int64      `json:"id"`
	ExperienceID   int64      `json:"experience_id"`
	ReviewerID     int64      `json:"reviewer_id"`
	Rating         int        `json:"rating" validate:"min=1,max=5"`
	Comment        string     `json:"comment,omitempty" gorm:"type:text"`
	IsVerified     bool       `json:"is_verified"`
	HostResponse   *string    `json:"host_response,omitempty"`
	HostResponseAt *time.Time `json:"host_response_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Experience *Experience `json:"experience,omitempty" gorm:"foreignKey:ExperienceID"`
	Reviewer   *User       `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}
