package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

func (c *Client) GetUserLists(ctx context.Context) (*models.ListsOverview, error) {
	return get[models.ListsOverview](ctx, c.req, "/lists", nil)
}

// GetUserListsByID returns another user's lists. Anonymous callers only
// see public lists; the owner sees everything.
func (c *Client) GetUserListsByID(ctx context.Context, userID int64) (*models.ListsOverview, error) {
	return getPublic[models.ListsOverview](ctx, c.req, path("/users/%d/lists", userID), nil)
}

func (c *Client) CreateList(ctx context.Context, l models.ListCreate) (*models.ListCreateResponse, error) {
	return send[models.ListCreateResponse](ctx, c.req, http.MethodPost, "/lists", l)
}

func (c *Client) UpdateList(ctx context.Context, listID int64, u models.ListUpdate) (*models.ListUpdateResponse, error) {
	return send[models.ListUpdateResponse](ctx, c.req, http.MethodPut, path("/lists/%d", listID), u)
}

func (c *Client) DeleteList(ctx context.Context, listID int64) (*models.ListDeleteResponse, error) {
	return send[models.ListDeleteResponse](ctx, c.req, http.MethodDelete, path("/lists/%d", listID), nil)
}

func (c *Client) ToggleListVisibility(ctx context.Context, listID int64, v models.Visibility) (*models.ListUpdateResponse, error) {
	return send[models.ListUpdateResponse](ctx, c.req, http.MethodPatch, path("/lists/%d/visibility", listID), map[string]models.Visibility{"visibility": v})
}
