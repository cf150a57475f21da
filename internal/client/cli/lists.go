package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

func (a *App) Lists(ctx context.Context) error {
	res, err := a.lists.GetUserLists(ctx)
	if err != nil {
		return err
	}
	if len(res.Lists) == 0 {
		fmt.Fprintln(a.out, "No lists yet. Create one with 'newlist'.")
		return nil
	}
	for _, l := range res.Lists {
		a.printList(l, false)
	}
	return nil
}

// BookLists shows every list and marks the ones already holding the book.
func (a *App) BookLists(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 1, "booklists <bookId>")
	if err != nil {
		return err
	}
	res, err := a.lists.GetBookLists(ctx, ids[0])
	if err != nil {
		return err
	}
	for _, l := range res.Lists {
		a.printList(l, true)
	}
	return nil
}

func (a *App) printList(l models.UserList, markAdded bool) {
	name := clean(l.Name)
	if l.Title != "" {
		name += ": " + clean(l.Title)
	}
	mark := ""
	if markAdded && l.IsAdded != nil && *l.IsAdded {
		mark = " *"
	}
	count := ""
	if l.BookCount != nil {
		count = fmt.Sprintf(", %d books", *l.BookCount)
	}
	fmt.Fprintf(a.out, "  [%d] %s (%s%s)%s\n", l.ListID, name, l.Visibility, count, mark)
}

func (a *App) AddBook(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 2, "addbook <listId> <bookId>")
	if err != nil {
		return err
	}
	res, err := a.lists.AddBookToList(ctx, ids[0], ids[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))
	a.recordInteraction(ctx, ids[1], models.EventAddToList, nil)
	return nil
}

func (a *App) RemoveBook(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 2, "removebook <listId> <bookId>")
	if err != nil {
		return err
	}
	res, err := a.lists.RemoveBookFromList(ctx, ids[0], ids[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))
	return nil
}

// Move moves a book between two of the user's lists. A failure after the
// book left the source list is reported with the command that completes
// the move.
func (a *App) Move(ctx context.Context, args []string) error {
	ids, err := parseIDs(args, 3, "move <bookId> <fromListId> <toListId>")
	if err != nil {
		return err
	}
	res, err := a.lists.MoveBookBetweenLists(ctx, ids[0], ids[1], ids[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

func (a *App) NewList(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "List title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return usageError("newlist, then enter a non-empty title")
	}
	vis, err := getSimpleText(a.reader, "Visibility (public/private, default private)", a.out)
	if err != nil {
		return err
	}

	visibility := models.Visibility(strings.ToLower(vis))
	switch visibility {
	case "", models.VisibilityPrivate, models.VisibilityPublic:
	default:
		return fmt.Errorf("unknown visibility %q", vis)
	}

	res, err := a.lists.CreateCustomList(ctx, title, visibility)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s [%d]\n", clean(res.Message), res.List.ListID)
	return nil
}
