package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

func (c *Client) GetNotifications(ctx context.Context, f models.NotificationFilter) (*models.Notifications, error) {
	q := client.NewQuery().
		SetInt("page", f.Page).
		SetInt("limit", f.Limit)
	if f.IsRead != nil {
		q.Set("is_read", strconv.FormatBool(*f.IsRead))
	}
	q.Set("type", f.Type)
	return get[models.Notifications](ctx, c.req, "/notifications", q)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) (*models.NotificationRead, error) {
	return send[models.NotificationRead](ctx, c.req, http.MethodPatch, path("/notifications/%d/read", id), nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*models.NotificationsMarked, error) {
	return send[models.NotificationsMarked](ctx, c.req, http.MethodPatch, "/notifications/mark-all-read", nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int64) (*models.NotificationDeleted, error) {
	return send[models.NotificationDeleted](ctx, c.req, http.MethodDelete, path("/notifications/%d", id), nil)
}

func (c *Client) GetNotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	return get[models.NotificationPreferences](ctx, c.req, "/notifications/preferences", nil)
}

func (c *Client) UpdateNotificationPreferences(ctx context.Context, u models.NotificationPreferencesUpdate) (*models.NotificationPreferencesResponse, error) {
	return send[models.NotificationPreferencesResponse](ctx, c.req, http.MethodPut, "/notifications/preferences", u)
}
