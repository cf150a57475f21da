package models

type AuthorRating struct {
	UserID       int64   `json:"user_id"`
	AuthorID     int64   `json:"author_id"`
	RatingValue  int     `json:"rating_value"`
	AvgRating    float64 `json:"avg_rating"`
	TotalRatings int     `json:"total_ratings"`
}

type RateAuthorResponse struct {
	Message string       `json:"message"`
	Rating  AuthorRating `json:"rating"`
}

type OwnAuthorRating struct {
	AuthorRatingID int64  `json:"author_rating_id"`
	RatingValue    int    `json:"rating_value"`
	CreatedAt      string `json:"created_at"`
}

type OwnAuthorRatingResponse struct {
	Rating OwnAuthorRating `json:"rating"`
}

type AuthorReview struct {
	AuthorReviewID int64  `json:"author_review_id"`
	UserID         int64  `json:"user_id,omitempty"`
	Username       string `json:"username"`
	AvatarURL      string `json:"avatar_url"`
	AuthorID       int64  `json:"author_id,omitempty"`
	ReviewText     string `json:"review_text"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type AuthorReviewResponse struct {
	Message string       `json:"message,omitempty"`
	Review  AuthorReview `json:"review"`
}

type AuthorReviewUpdateResponse struct {
	Message    string `json:"message"`
	ReviewText string `json:"review_text"`
}

type AuthorReviews struct {
	Reviews []AuthorReview `json:"reviews"`
	Total   int            `json:"total"`
}
