// Package cli provides the interactive BookArc command-line client.
//
// It drives the auth service, the list membership sub-client and the
// BookArc API client from a small REPL. Text coming from the backend is
// stripped of markup before it is printed.
//
// Key features:
//   - register / confirm / login / logout, password reset and change
//   - dashboard: profile, stats, lists and unread notifications, fetched
//     concurrently
//   - list membership: add, remove and move books between lists
//   - books, ratings, reviews, genres and recommendations
//   - user and author search, follows, notifications
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
