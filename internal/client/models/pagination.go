package models

// PageParams selects one page of a paginated listing. Zero values are not
// sent.
type PageParams struct {
	Page   int
	Limit  int
	Search string
}

// Pagination is echoed by every paginated admin listing. Limit is only
// present on some endpoints.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Limit      int `json:"limit,omitempty"`
}

// MessageResponse is the minimal acknowledgement most mutations return.
type MessageResponse struct {
	Message string `json:"message"`
}
