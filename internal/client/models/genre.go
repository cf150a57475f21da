package models

type Genre struct {
	GenreID     int64  `json:"genre_id"`
	GenreName   string `json:"genre_name"`
	BookCount   int    `json:"book_count"`
	IsFavorited bool   `json:"is_favorited"`
}

type Genres struct {
	Genres       []Genre `json:"genres"`
	Total        int     `json:"total"`
	UserLoggedIn bool    `json:"user_logged_in"`
}

type FavoriteGenre struct {
	GenreID     int64  `json:"genre_id"`
	GenreName   string `json:"genre_name"`
	IsFavorited bool   `json:"is_favorited"`
}

type FavoriteGenreResponse struct {
	Message string        `json:"message"`
	Genre   FavoriteGenre `json:"genre"`
}

type FavoriteGenreSummary struct {
	GenreID   int64  `json:"genre_id"`
	GenreName string `json:"genre_name"`
	BookCount int    `json:"book_count"`
}

type FavoriteGenres struct {
	Genres []FavoriteGenreSummary `json:"genres"`
	Total  int                    `json:"total"`
}
