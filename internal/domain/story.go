package domain

import "time"

type Story struct {
	ID          int64     `json:"id"`
	AuthorID    int64     `json:"author_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body,omitempty" gorm:"type:text"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// StoryComment supports single-level replies via ParentID.
type StoryComment struct {
	ID         int64     `json:"id"`
	StoryID    int64     `json:"story_id"`
	UserID     int64     `json:"user_id"`
	Body       string    `json:"body" gorm:"type:text"`
	IsApproved bool      `json:"is_approved"`
	ParentID   *int64    `json:"parent_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Story *Story `json:"story,omitempty" gorm:"foreignKey:StoryID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
