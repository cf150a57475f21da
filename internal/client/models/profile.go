package models

// Role is one of normal, premium, author, admin.
type Role string

const (
	RoleNormal  Role = "normal"
	RolePremium Role = "premium"
	RoleAuthor  Role = "author"
	RoleAdmin   Role = "admin"
)

type UserProfile struct {
	UserID             int64   `json:"user_id"`
	Username           string  `json:"username"`
	DisplayName        string  `json:"display_name,omitempty"`
	Email              string  `json:"email"`
	Role               Role    `json:"role"`
	ProfileImage       string  `json:"profile_image,omitempty"`
	Bio                string  `json:"bio,omitempty"`
	Location           string  `json:"location,omitempty"`
	IsPublic           bool    `json:"is_public"`
	CreatedAt          string  `json:"created_at"`
	VerificationStatus *string `json:"verification_status,omitempty"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	DisplayName  string `json:"display_name,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type DeleteAccountResponse struct {
	Message       string `json:"message"`
	DeletedUserID int64  `json:"deleted_user_id,omitempty"`
}

type AuthorRatingEntry struct {
	AuthorID     int64  `json:"author_id"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
	RatingValue  int    `json:"rating_value"`
	RatedAt      string `json:"rated_at"`
	UserID       int64  `json:"user_id"`
}

type BookRatingEntry struct {
	BookID      int64  `json:"book_id"`
	BookTitle   string `json:"book_title"`
	BookCover   string `json:"book_cover"`
	BookAuthor  string `json:"book_author"`
	RatingValue int    `json:"rating_value"`
	RatedAt     string `json:"rated_at"`
}

type AuthorReviewEntry struct {
	AuthorReviewID int64  `json:"author_review_id"`
	AuthorID       int64  `json:"author_id"`
	AuthorName     string `json:"author_name"`
	AuthorAvatar   string `json:"author_avatar"`
	ReviewText     string `json:"review_text"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type BookReviewEntry struct {
	ReviewID    int64  `json:"review_id"`
	BookID      int64  `json:"book_id"`
	BookTitle   string `json:"book_title"`
	BookCover   string `json:"book_cover"`
	BookAuthor  string `json:"book_author"`
	ReviewText  string `json:"review_text"`
	RatingValue int    `json:"rating_value"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// UserStats is the activity summary behind /stats.
type UserStats struct {
	UserID             int64               `json:"user_id"`
	TotalBookReviews   int                 `json:"total_book_reviews"`
	TotalAuthorReviews int                 `json:"total_author_reviews"`
	TotalRatings       int                 `json:"total_ratings"`
	BooksRead          int                 `json:"books_read"`
	Followers          int                 `json:"followers"`
	Following          int                 `json:"following"`
	AuthorRatings      []AuthorRatingEntry `json:"author_ratings"`
	BookRatings        []BookRatingEntry   `json:"book_ratings"`
	AuthorReviews      []AuthorReviewEntry `json:"author_reviews"`
	BookReviews        []BookReviewEntry   `json:"book_reviews"`
}

type UserActivityStats struct {
	TotalReviews int `json:"totalReviews"`
	TotalRatings int `json:"totalRatings"`
	BooksRead    int `json:"booksRead"`
	Followers    int `json:"followers"`
	Following    int `json:"following"`
}

type PublicListSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	IsPublic bool   `json:"isPublic"`
}

type RecentReview struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	Likes      int    `json:"likes"`
}

// PublicUser is another user's profile page.
type PublicUser struct {
	ID             int64               `json:"id"`
	Username       string              `json:"username"`
	Email          string              `json:"email"`
	AvatarURL      string              `json:"avatarUrl"`
	Bio            string              `json:"bio,omitempty"`
	Location       string              `json:"location,omitempty"`
	Website        string              `json:"website,omitempty"`
	JoinDate       string              `json:"joinDate"`
	IsPrivate      bool                `json:"isPrivate"`
	Stats          UserActivityStats   `json:"stats"`
	Lists          []PublicListSummary `json:"lists"`
	RecentReviews  []RecentReview      `json:"recentReviews"`
	FavoriteGenres []string            `json:"favoriteGenres"`
}
