package models

type AdminStats struct {
	TotalUsers     int    `json:"totalUsers"`
	TotalAuthors   int    `json:"totalAuthors"`
	TotalBooks     int    `json:"totalBooks"`
	PendingReports int    `json:"pendingReports"`
	UsersGrowth    string `json:"usersGrowth"`
	AuthorsGrowth  string `json:"authorsGrowth"`
	BooksGrowth    string `json:"booksGrowth"`
}

type Report struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Reporter string `json:"reporter"`
	Reported string `json:"reported"`
	Reason   string `json:"reason"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

type Reports struct {
	Reports []Report `json:"reports"`
}

type AdminUser struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	JoinDate    string `json:"join_date"`
	IsPublic    bool   `json:"is_public"`
	IsActive    bool   `json:"is_active"`
}

type AdminUsersPage struct {
	Users []AdminUser `json:"users"`
	Pagination
}

type AdminAuthor struct {
	AuthorID  int64  `json:"author_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	BookCount int    `json:"book_count"`
}

type AdminAuthorsPage struct {
	Authors []AdminAuthor `json:"authors"`
	Pagination
}

type AdminBook struct {
	BookID         int64          `json:"book_id"`
	Title          string         `json:"title"`
	Authors        string         `json:"authors"`
	Genres         string         `json:"genres"`
	AverageRating  float64        `json:"average_rating"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
}

type AdminBooksPage struct {
	Books []AdminBook `json:"books"`
	Pagination
}

type UserStatusAction string

const (
	ActionActivate   UserStatusAction = "activate"
	ActionDeactivate UserStatusAction = "deactivate"
)

type UserStatus struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

type UserStatusResponse struct {
	Message string     `json:"message"`
	User    UserStatus `json:"user"`
}
