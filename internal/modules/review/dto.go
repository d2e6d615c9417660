package review

type RespondRequest struct {
	Response string `json:"response" binding:"required"`
}

type ListParams struct {
	Rating int
	Page   int
	Limit  int
}
