package models

type UserSearch struct {
	Query          string
	Limit          int
	IncludePrivate bool
}

type UserSearchHit struct {
	ID          int64             `json:"id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"displayName"`
	Email       string            `json:"email"`
	Role        Role              `json:"role"`
	AvatarURL   string            `json:"avatarUrl"`
	Bio         string            `json:"bio,omitempty"`
	Location    string            `json:"location,omitempty"`
	Website     string            `json:"website,omitempty"`
	IsPrivate   bool              `json:"isPrivate"`
	JoinDate    string            `json:"joinDate"`
	Stats       UserActivityStats `json:"stats"`
}

type UserSearchResult struct {
	Users []UserSearchHit `json:"users"`
	Total int             `json:"total"`
	Query string          `json:"query"`
}

type AuthorSearch struct {
	Query string
	Limit int
}

type AuthorStats struct {
	TotalBooks      int              `json:"totalBooks"`
	TotalReads      int              `json:"totalReads"`
	TotalRatings    int              `json:"totalRatings"`
	AvgRating       float64          `json:"avgRating"`
	Followers       int              `json:"followers"`
	TotalReviews    int              `json:"totalReviews,omitempty"`
	RatingBreakdown *RatingBreakdown `json:"ratingBreakdown,omitempty"`
}

type AuthorSearchHit struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	AvatarURL  string      `json:"avatarUrl"`
	Bio        string      `json:"bio,omitempty"`
	Location   string      `json:"location,omitempty"`
	Website    string      `json:"website,omitempty"`
	Verified   bool        `json:"verified"`
	JoinDate   string      `json:"joinDate"`
	AuthorType AuthorType  `json:"authorType"`
	Stats      AuthorStats `json:"stats"`
}

type AuthorSearchResult struct {
	Authors []AuthorSearchHit `json:"authors"`
	Total   int               `json:"total"`
	Query   string            `json:"query"`
}

// AuthorProfile is the public author page. Books are passed through as
// the backend sends them.
type AuthorProfile struct {
	ID         int64            `json:"id"`
	AuthorID   int64            `json:"authorId"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	AvatarURL  string           `json:"avatarUrl"`
	Bio        string           `json:"bio,omitempty"`
	Location   string           `json:"location,omitempty"`
	Website    string           `json:"website,omitempty"`
	Verified   bool             `json:"verified"`
	JoinDate   string           `json:"joinDate"`
	AuthorType AuthorType       `json:"authorType"`
	Stats      AuthorStats      `json:"stats"`
	Books      []map[string]any `json:"books"`
}
