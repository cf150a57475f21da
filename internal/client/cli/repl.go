package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Register(ctx context.Context) error
	Confirm(ctx context.Context) error
	Resend(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error

	Profile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Avatar(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context) error

	Lists(ctx context.Context) error
	BookLists(ctx context.Context, args []string) error
	AddBook(ctx context.Context, args []string) error
	RemoveBook(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	NewList(ctx context.Context) error

	Books(ctx context.Context, args []string) error
	Rate(ctx context.Context, args []string) error
	Review(ctx context.Context, args []string) error
	Genres(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	Recommend(ctx context.Context, args []string) error

	Users(ctx context.Context, args []string) error
	Authors(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
}

// sessionCommands need a signed-in user; the REPL refuses them otherwise.
var sessionCommands = map[string]bool{
	"passwd": true, "logout": true, "profile": true, "dashboard": true,
	"avatar": true, "verify": true, "deleteaccount": true, "lists": true, "booklists": true,
	"addbook": true, "removebook": true, "move": true, "newlist": true,
	"rate": true, "review": true, "favorite": true, "recommend": true,
	"follow": true, "notifications": true,
}

const (
	helpLoggedOut = "Available commands: register, confirm, resend, login, forgot, books, genres, users, authors, exit"
	helpLoggedIn  = "Available commands: dashboard, profile, avatar, verify, lists, booklists, addbook, removebook, move, newlist, " +
		"books, rate, review, genres, favorite, recommend, users, authors, follow, notifications, passwd, logout, deleteaccount, exit"
)

// runREPL starts a simple read–eval–print loop for the BookArc CLI.
//
// It reads a line from in, parses the first token as the command and the
// rest as arguments, and dispatches to methods on 'a'. Commands that need a
// session are refused while logged out. The loop exits on EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are printed through describeError
// and never stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bookarc%s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if sessionCommands[cmd] && !a.isLoggedIn(ctx) {
			printlnFn("Please log in first (type 'login')")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "confirm":
			cmdErr = a.Confirm(ctx)
		case "resend":
			cmdErr = a.Resend(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "forgot":
			cmdErr = a.ForgotPassword(ctx)
		case "passwd":
			cmdErr = a.ChangePassword(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)
		case "dashboard":
			cmdErr = a.Dashboard(ctx)
		case "avatar":
			cmdErr = a.Avatar(ctx, args)
		case "verify":
			cmdErr = a.Verify(ctx, args)
		case "deleteaccount":
			cmdErr = a.DeleteAccount(ctx)

		case "lists":
			cmdErr = a.Lists(ctx)
		case "booklists":
			cmdErr = a.BookLists(ctx, args)
		case "addbook":
			cmdErr = a.AddBook(ctx, args)
		case "removebook":
			cmdErr = a.RemoveBook(ctx, args)
		case "move":
			cmdErr = a.Move(ctx, args)
		case "newlist":
			cmdErr = a.NewList(ctx)

		case "books":
			cmdErr = a.Books(ctx, args)
		case "rate":
			cmdErr = a.Rate(ctx, args)
		case "review":
			cmdErr = a.Review(ctx, args)
		case "genres":
			cmdErr = a.Genres(ctx)
		case "favorite":
			cmdErr = a.Favorite(ctx, args)
		case "recommend":
			cmdErr = a.Recommend(ctx, args)

		case "users":
			cmdErr = a.Users(ctx, args)
		case "authors":
			cmdErr = a.Authors(ctx, args)
		case "follow":
			cmdErr = a.Follow(ctx, args)
		case "notifications":
			cmdErr = a.Notifications(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}
