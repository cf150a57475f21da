package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

// GetAllGenres is public; is_favorited is only meaningful for a signed-in
// caller.
func (c *Client) GetAllGenres(ctx context.Context) (*models.Genres, error) {
	out, err := getPublic[models.Genres](ctx, c.req, "/genres", nil)
	if err != nil {
		return nil, err
	}
	if out.Genres == nil {
		out.Genres = []models.Genre{}
	}
	return out, nil
}

// FavoriteGenre is idempotent on the backend.
func (c *Client) FavoriteGenre(ctx context.Context, genreID int64) (*models.FavoriteGenreResponse, error) {
	return c.favorite(ctx, genreID, "favorite")
}

func (c *Client) UnfavoriteGenre(ctx context.Context, genreID int64) (*models.FavoriteGenreResponse, error) {
	return c.favorite(ctx, genreID, "unfavorite")
}

func (c *Client) favorite(ctx context.Context, genreID int64, action string) (*models.FavoriteGenreResponse, error) {
	return send[models.FavoriteGenreResponse](ctx, c.req, http.MethodPost, path("/genres/%d/favorite", genreID), map[string]string{"action": action})
}

// GetUserFavoriteGenres filters the full genre listing down to the
// caller's favorites.
func (c *Client) GetUserFavoriteGenres(ctx context.Context) (*models.FavoriteGenres, error) {
	all, err := c.GetAllGenres(ctx)
	if err != nil {
		return nil, err
	}
	out := &models.FavoriteGenres{Genres: []models.FavoriteGenreSummary{}}
	for _, g := range all.Genres {
		if !g.IsFavorited {
			continue
		}
		out.Genres = append(out.Genres, models.FavoriteGenreSummary{
			GenreID:   g.GenreID,
			GenreName: g.GenreName,
			BookCount: g.BookCount,
		})
	}
	out.Total = len(out.Genres)
	return out, nil
}
