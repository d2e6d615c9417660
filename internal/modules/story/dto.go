package story

type ListParams struct {
	Status    string // approved | pending | all
	Search    string
	SortBy    string // created_at | updated_at
	SortOrder string // asc | desc
	Page      int
	Limit     int
}

type ModerateRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
