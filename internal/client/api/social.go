package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

type followBody struct {
	Action     models.FollowAction `json:"action"`
	AuthorType models.AuthorType   `json:"author_type,omitempty"`
}

func (c *Client) FollowUser(ctx context.Context, userID int64) (*models.FollowResponse, error) {
	return c.followUser(ctx, userID, models.ActionFollow)
}

func (c *Client) UnfollowUser(ctx context.Context, userID int64) (*models.FollowResponse, error) {
	return c.followUser(ctx, userID, models.ActionUnfollow)
}

func (c *Client) followUser(ctx context.Context, userID int64, action models.FollowAction) (*models.FollowResponse, error) {
	return send[models.FollowResponse](ctx, c.req, http.MethodPost, path("/users/%d/follow", userID), followBody{Action: action})
}

// CheckFollowStatus reports false for anonymous callers.
func (c *Client) CheckFollowStatus(ctx context.Context, userID int64) (*models.FollowStatus, error) {
	return getPublic[models.FollowStatus](ctx, c.req, path("/users/%d/follower-status", userID), nil)
}

// GetUserFollowers returns an empty list when the backend refuses an
// anonymous caller.
func (c *Client) GetUserFollowers(ctx context.Context, userID int64) (*models.Followers, error) {
	out, err := getPublic[models.Followers](ctx, c.req, path("/users/%d/followers", userID), nil)
	if client.HasKind(err, client.KindUnauthenticated) {
		return &models.Followers{Followers: []models.FollowUser{}}, nil
	}
	return out, err
}

func (c *Client) GetUserFollowing(ctx context.Context, userID int64) (*models.Following, error) {
	out, err := getPublic[models.Following](ctx, c.req, path("/users/%d/following", userID), nil)
	if client.HasKind(err, client.KindUnauthenticated) {
		return &models.Following{Following: []models.FollowUser{}}, nil
	}
	return out, err
}

func (c *Client) FollowAuthor(ctx context.Context, authorID int64, t models.AuthorType) (*models.AuthorFollowResponse, error) {
	return c.followAuthor(ctx, authorID, models.ActionFollow, t)
}

func (c *Client) UnfollowAuthor(ctx context.Context, authorID int64, t models.AuthorType) (*models.AuthorFollowResponse, error) {
	return c.followAuthor(ctx, authorID, models.ActionUnfollow, t)
}

func (c *Client) followAuthor(ctx context.Context, authorID int64, action models.FollowAction, t models.AuthorType) (*models.AuthorFollowResponse, error) {
	return send[models.AuthorFollowResponse](ctx, c.req, http.MethodPost, path("/authors/%d/follow", authorID), followBody{Action: action, AuthorType: t})
}

func (c *Client) CheckAuthorFollowStatus(ctx context.Context, authorID int64) (*models.AuthorFollowStatus, error) {
	return getPublic[models.AuthorFollowStatus](ctx, c.req, path("/authors/%d/follow-status", authorID), nil)
}

func (c *Client) GetFollowedAuthors(ctx context.Context) (*models.FollowedAuthors, error) {
	return get[models.FollowedAuthors](ctx, c.req, "/author/following", nil)
}

func (c *Client) GetAuthorFollowers(ctx context.Context, authorID int64) (*models.AuthorFollowers, error) {
	return getPublic[models.AuthorFollowers](ctx, c.req, path("/authors/%d/followers", authorID), nil)
}
