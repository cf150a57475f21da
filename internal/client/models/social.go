package models

type FollowAction string

const (
	ActionFollow   FollowAction = "follow"
	ActionUnfollow FollowAction = "unfollow"
)

// AuthorType distinguishes platform accounts from catalogue-only authors.
type AuthorType string

const (
	AuthorRegistered AuthorType = "registered"
	AuthorExternal   AuthorType = "external"
)

type FollowResponse struct {
	Message     string `json:"message"`
	FollowerID  int64  `json:"followerId"`
	FollowingID int64  `json:"followingId"`
}

type FollowStatus struct {
	IsFollowing bool  `json:"isFollowing"`
	FollowerID  int64 `json:"followerId"`
	FollowingID int64 `json:"followingId"`
}

type FollowUserStats struct {
	TotalReviews int `json:"totalReviews"`
	BooksRead    int `json:"booksRead"`
}

type FollowUser struct {
	ID         int64           `json:"id"`
	Username   string          `json:"username"`
	AvatarURL  string          `json:"avatarUrl"`
	Bio        string          `json:"bio,omitempty"`
	IsPrivate  bool            `json:"isPrivate"`
	FollowedAt string          `json:"followedAt"`
	Stats      FollowUserStats `json:"stats"`
}

type Followers struct {
	Followers []FollowUser `json:"followers"`
	Total     int          `json:"total"`
}

type Following struct {
	Following []FollowUser `json:"following"`
	Total     int          `json:"total"`
}

type AuthorFollowResponse struct {
	Message    string     `json:"message"`
	UserID     int64      `json:"userId"`
	AuthorID   int64      `json:"authorId"`
	AuthorType AuthorType `json:"authorType,omitempty"`
}

type AuthorFollowStatus struct {
	IsFollowing bool  `json:"isFollowing"`
	UserID      int64 `json:"userId"`
	AuthorID    int64 `json:"authorId"`
}

type FollowedAuthorStats struct {
	TotalBooks int `json:"totalBooks"`
	Followers  int `json:"followers"`
}

type FollowedAuthor struct {
	AuthorID           int64               `json:"author_id"`
	Name               string              `json:"name"`
	Bio                string              `json:"bio,omitempty"`
	Verified           bool                `json:"verified"`
	AverageRating      float64             `json:"average_rating"`
	IsRegisteredAuthor bool                `json:"is_registered_author"`
	UserID             *int64              `json:"user_id,omitempty"`
	ExternalSourceID   string              `json:"external_source_id,omitempty"`
	FollowedAt         string              `json:"followed_at"`
	Stats              FollowedAuthorStats `json:"stats"`
}

type FollowedAuthors struct {
	Authors []FollowedAuthor `json:"authors"`
	Total   int              `json:"total"`
}

type AuthorFollower struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
	Bio        string `json:"bio,omitempty"`
	FollowedAt string `json:"followed_at"`
}

type AuthorFollowers struct {
	Followers []AuthorFollower `json:"followers"`
	Total     int              `json:"total"`
}
