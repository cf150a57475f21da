package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

const (
	searchLimit       = 10
	notificationLimit = 20
)

func (a *App) Users(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("users <query>")
	}
	res, err := a.api.SearchUsers(ctx, models.UserSearch{Query: strings.Join(args, " "), Limit: searchLimit})
	if err != nil {
		return err
	}
	if len(res.Users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for _, u := range res.Users {
		fmt.Fprintf(a.out, "  [%d] %s (@%s), %d followers\n", u.ID, clean(u.DisplayName), clean(u.Username), u.Stats.Followers)
	}
	return nil
}

func (a *App) Authors(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("authors <query>")
	}
	res, err := a.api.SearchAuthors(ctx, models.AuthorSearch{Query: strings.Join(args, " "), Limit: searchLimit})
	if err != nil {
		return err
	}
	if len(res.Authors) == 0 {
		fmt.Fprintln(a.out, "No authors found.")
		return nil
	}
	for _, au := range res.Authors {
		verified := ""
		if au.Verified {
			verified = " (verified)"
		}
		fmt.Fprintf(a.out, "  [%d] %s%s, %s\n", au.ID, clean(au.Name), verified, au.AuthorType)
	}
	return nil
}

func (a *App) Follow(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 1, "follow <userId>")
	if err != nil {
		return err
	}
	res, err := a.api.FollowUser(ctx, ids[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))
	return nil
}

// Notifications lists recent notifications; "notifications read" marks
// them all as read.
func (a *App) Notifications(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "read" {
		res, err := a.api.MarkAllNotificationsRead(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s (%d)\n", clean(res.Message), res.UpdatedCount)
		return nil
	}
	if len(args) != 0 {
		return usageError("notifications [read]")
	}

	res, err := a.api.GetNotifications(ctx, models.NotificationFilter{Page: 1, Limit: notificationLimit})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d unread of %d\n", res.UnreadCount, res.Total)
	for _, n := range res.Notifications {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		fmt.Fprintf(a.out, " %s %s  %s\n", mark, n.CreatedAt, clean(n.Message))
	}
	return nil
}
