package api

import (
	"context"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

func (c *Client) SearchUsers(ctx context.Context, s models.UserSearch) (*models.UserSearchResult, error) {
	q := client.NewQuery().
		Set("q", s.Query).
		SetInt("limit", s.Limit).
		SetBool("include_private", s.IncludePrivate)
	return getPublic[models.UserSearchResult](ctx, c.req, "/users/search", q)
}

func (c *Client) SearchAuthors(ctx context.Context, s models.AuthorSearch) (*models.AuthorSearchResult, error) {
	q := client.NewQuery().Set("q", s.Query).SetInt("limit", s.Limit)
	return getPublic[models.AuthorSearchResult](ctx, c.req, "/author", q)
}
