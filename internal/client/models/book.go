package models

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// BookFilter narrows the public catalogue.
type BookFilter struct {
	Genre  string
	Search string
}

// RatingBreakdown counts ratings per star value.
type RatingBreakdown struct {
	Five  int `json:"5"`
	Four  int `json:"4"`
	Three int `json:"3"`
	Two   int `json:"2"`
	One   int `json:"1"`
}

// Book is a catalogue entry.
type Book struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Author          string           `json:"author"`
	Rating          float64          `json:"rating"`
	TotalRatings    int              `json:"totalRatings"`
	Reviews         int              `json:"reviews,omitempty"`
	Cover           string           `json:"cover,omitempty"`
	CoverURL        string           `json:"coverUrl,omitempty"`
	Genre           string           `json:"genre"`
	Description     string           `json:"description"`
	PublishYear     int              `json:"publishYear,omitempty"`
	IsTrending      bool             `json:"isTrending,omitempty"`
	RatingBreakdown *RatingBreakdown `json:"ratingBreakdown,omitempty"`
}

// BookSubmission is used both by authors submitting for approval and by
// admins adding a book directly. Authors may leave Authors empty; the
// backend assigns the caller.
type BookSubmission struct {
	Title         string   `json:"title"`
	Summary       *string  `json:"summary,omitempty"`
	ISBN          *string  `json:"isbn,omitempty"`
	PublishDate   *string  `json:"publish_date,omitempty"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	SourceName    string   `json:"source_name,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Genres        []string `json:"genres"`
}

// BookUpdate edits a still-pending submission.
type BookUpdate struct {
	Title         string   `json:"title,omitempty"`
	Summary       *string  `json:"summary,omitempty"`
	ISBN          *string  `json:"isbn,omitempty"`
	PublishDate   *string  `json:"publish_date,omitempty"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Genres        []string `json:"genres,omitempty"`
}

type SubmittedBook struct {
	BookID         int64          `json:"book_id"`
	Title          string         `json:"title"`
	Authors        []string       `json:"authors"`
	Genres         []string       `json:"genres"`
	ISBN           string         `json:"isbn,omitempty"`
	PublishDate    string         `json:"publish_date,omitempty"`
	CoverImageURL  string         `json:"cover_image_url,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status,omitempty"`
	SubmittedBy    string         `json:"submitted_by,omitempty"`
	SourceName     string         `json:"source_name,omitempty"`
}

type BookSubmissionResponse struct {
	Message string        `json:"message"`
	Book    SubmittedBook `json:"book"`
}

type BookUpdateResponse struct {
	Message string         `json:"message"`
	Book    map[string]any `json:"book"`
}

type BookDeleteResponse struct {
	Message       string `json:"message"`
	DeletedBookID int64  `json:"deleted_book_id"`
}

// AuthorBook is one of the caller's own submissions.
type AuthorBook struct {
	BookID          int64          `json:"book_id"`
	Title           string         `json:"title"`
	Summary         string         `json:"summary,omitempty"`
	ISBN            string         `json:"isbn,omitempty"`
	PublishDate     string         `json:"publish_date,omitempty"`
	CoverImageURL   string         `json:"cover_image_url,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	AverageRating   float64        `json:"average_rating"`
	Authors         string         `json:"authors"`
	Genres          string         `json:"genres"`
	CreatedAt       string         `json:"created_at"`
	ApprovedAt      string         `json:"approved_at,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty"`
}

type AuthorBooks struct {
	Books []AuthorBook `json:"books"`
	Total int          `json:"total"`
}

type Submitter struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PendingBook struct {
	BookID         int64          `json:"book_id"`
	Title          string         `json:"title"`
	Summary        string         `json:"summary,omitempty"`
	ISBN           string         `json:"isbn,omitempty"`
	PublishDate    string         `json:"publish_date,omitempty"`
	CoverImageURL  string         `json:"cover_image_url,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	Authors        string         `json:"authors"`
	Genres         string         `json:"genres"`
	SourceName     string         `json:"source_name"`
	SubmittedAt    string         `json:"submitted_at"`
	SubmittedBy    Submitter      `json:"submitted_by"`
}

type PendingBooksPage struct {
	Books []PendingBook `json:"books"`
	Pagination
}

type ReviewedBook struct {
	BookID          int64          `json:"book_id"`
	Title           string         `json:"title"`
	Authors         string         `json:"authors,omitempty"`
	Genres          string         `json:"genres,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	ApprovedAt      string         `json:"approved_at,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	RejectedBy      string         `json:"rejected_by,omitempty"`
}

type BookReviewResponse struct {
	Message string       `json:"message"`
	Book    ReviewedBook `json:"book"`
}

type AuthorRatingStats struct {
	AvgRating       float64         `json:"avgRating"`
	TotalRatings    int             `json:"totalRatings"`
	TotalReviews    int             `json:"totalReviews"`
	RatingBreakdown RatingBreakdown `json:"ratingBreakdown"`
}

type AuthorBookStat struct {
	BookID          int64           `json:"book_id"`
	Title           string          `json:"title"`
	Summary         string          `json:"summary,omitempty"`
	ISBN            string          `json:"isbn,omitempty"`
	PublishDate     string          `json:"publish_date,omitempty"`
	CoverImageURL   string          `json:"cover_image_url,omitempty"`
	ApprovalStatus  ApprovalStatus  `json:"approval_status"`
	CreatedAt       string          `json:"created_at"`
	ApprovedAt      string          `json:"approved_at,omitempty"`
	AverageRating   float64         `json:"average_rating"`
	Genres          string          `json:"genres"`
	Authors         string          `json:"authors"`
	TotalReviews    int             `json:"total_reviews"`
	TotalRatings    int             `json:"total_ratings"`
	RatingBreakdown RatingBreakdown `json:"rating_breakdown"`
}

type AuthorBookTotals struct {
	TotalBooks       int     `json:"total_books"`
	PublishedBooks   int     `json:"published_books"`
	PendingBooks     int     `json:"pending_books"`
	RejectedBooks    int     `json:"rejected_books"`
	TotalReviews     int     `json:"total_reviews"`
	TotalRatings     int     `json:"total_ratings"`
	OverallAvgRating float64 `json:"overall_avg_rating"`
}

type AuthorBookStats struct {
	AuthorStats AuthorRatingStats `json:"author_stats"`
	AuthorID    int64             `json:"author_id"`
	Books       []AuthorBookStat  `json:"books"`
	Stats       AuthorBookTotals  `json:"stats"`
}

// BookReview is a reader review of a book.
type BookReview struct {
	ReviewID   int64  `json:"review_id"`
	BookID     int64  `json:"book_id"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	CreatedAt  string `json:"created_at"`
}

type BookReviewSubmission struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

type BookRating struct {
	RatingValue int `json:"rating_value"`
}

type BookRatingResponse struct {
	Rating BookRating `json:"rating"`
}
