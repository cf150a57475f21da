package models

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ListSummary is one entry of the profile-page list overview.
type ListSummary struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Count      int        `json:"count"`
	Visibility Visibility `json:"visibility"`
	Icon       string     `json:"icon"`
	CreatedAt  string     `json:"created_at"`
}

type ListsOverview struct {
	DefaultLists []ListSummary `json:"defaultLists"`
	CustomLists  []ListSummary `json:"customLists"`
	Total        int           `json:"total"`
}

type ListCreate struct {
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility,omitempty"`
}

type ListUpdate struct {
	Name       string     `json:"name,omitempty"`
	Visibility Visibility `json:"visibility,omitempty"`
}

type CreatedList struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	Count      int        `json:"count"`
	BookIDs    []int64    `json:"bookIds"`
	CreatedAt  string     `json:"created_at"`
}

type ListCreateResponse struct {
	Message string      `json:"message"`
	List    CreatedList `json:"list"`
}

type ListRef struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
}

type ListUpdateResponse struct {
	Message string  `json:"message"`
	List    ListRef `json:"list"`
}

type ListDeleteResponse struct {
	Message       string `json:"message"`
	DeletedListID int64  `json:"deleted_list_id,omitempty"`
}

// ListBookItem is a book shown inside a list.
type ListBookItem struct {
	BookID        int64    `json:"book_id"`
	Title         string   `json:"title"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	AddedAt       string   `json:"added_at"`
	Authors       []string `json:"authors,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	Genre         string   `json:"genre,omitempty"`
}

// UserList is a reading list as seen by the membership endpoints. IsAdded
// is only set by the per-book lookup.
type UserList struct {
	ListID     int64          `json:"list_id"`
	UserID     int64          `json:"user_id,omitempty"`
	Name       string         `json:"name"`
	Title      string         `json:"title,omitempty"`
	Visibility Visibility     `json:"visibility"`
	CreatedAt  string         `json:"created_at,omitempty"`
	UpdatedAt  string         `json:"updated_at,omitempty"`
	BookCount  *int           `json:"book_count,omitempty"`
	IsAdded    *bool          `json:"is_added,omitempty"`
	AddedAt    string         `json:"added_at,omitempty"`
	Books      []ListBookItem `json:"books,omitempty"`
}

type UserLists struct {
	Lists []UserList `json:"lists"`
}

type UserListResponse struct {
	List UserList `json:"list"`
}

type UserListMutation struct {
	Message string   `json:"message"`
	List    UserList `json:"list"`
}

// CustomListCreate is the body for a titled custom list. Name is always
// "Custom".
type CustomListCreate struct {
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Visibility Visibility `json:"visibility"`
}

type UserListUpdate struct {
	Title      string     `json:"title,omitempty"`
	Visibility Visibility `json:"visibility,omitempty"`
}

type ListBook struct {
	ListBookID int64  `json:"list_book_id"`
	ListID     int64  `json:"list_id"`
	BookID     int64  `json:"book_id"`
	AddedAt    string `json:"added_at"`
}

type AddBookResponse struct {
	Message  string    `json:"message"`
	ListBook *ListBook `json:"list_book,omitempty"`
}
