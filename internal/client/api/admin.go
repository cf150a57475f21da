package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

func (c *Client) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	return get[models.AdminStats](ctx, c.req, "/admin/stats", nil)
}

// GetAdminReports filters by status (pending, resolved, dismissed) when
// one is given.
func (c *Client) GetAdminReports(ctx context.Context, status string) (*models.Reports, error) {
	return get[models.Reports](ctx, c.req, "/admin/reports", client.NewQuery().Set("status", status))
}

func (c *Client) GetAdminUsers(ctx context.Context, p models.PageParams) (*models.AdminUsersPage, error) {
	return get[models.AdminUsersPage](ctx, c.req, "/admin/users", pageQuery(p))
}

func (c *Client) GetAdminAuthors(ctx context.Context, p models.PageParams) (*models.AdminAuthorsPage, error) {
	return get[models.AdminAuthorsPage](ctx, c.req, "/admin/authors", pageQuery(p))
}

func (c *Client) GetAdminBooks(ctx context.Context, p models.PageParams, status models.ApprovalStatus) (*models.AdminBooksPage, error) {
	return get[models.AdminBooksPage](ctx, c.req, "/admin/books", pageQuery(p).Set("status", string(status)))
}

func (c *Client) ToggleUserStatus(ctx context.Context, userID int64, action models.UserStatusAction) (*models.UserStatusResponse, error) {
	if action != models.ActionActivate && action != models.ActionDeactivate {
		return nil, ErrInvalidStatusAction
	}
	return send[models.UserStatusResponse](ctx, c.req, http.MethodPost, path("/admin/users/%d/toggle-status", userID), map[string]models.UserStatusAction{"action": action})
}

// AddBook creates an approved book directly.
func (c *Client) AddBook(ctx context.Context, b models.BookSubmission) (*models.BookSubmissionResponse, error) {
	return send[models.BookSubmissionResponse](ctx, c.req, http.MethodPost, "/admin/books/add", b)
}
