// Package client contains the transport building blocks shared by every
// BookArc backend caller.
//
// # Overview
//
// The package provides:
//  1. The Requester contract: an authenticated request primitive (Do) and a
//     public, optional-auth variant (DoPublic). Both the resource client
//     (package api) and the list sub-client (package services) depend on
//     this interface rather than on each other.
//  2. HTTPClient, the concrete implementation. It attaches the bearer ID
//     token read from a TokenSource, normalizes non-2xx responses into
//     *Error values, and records logs, Prometheus metrics and OpenTelemetry
//     spans for each call.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite session database and applying embedded goose migrations.
//
// # Error Handling
//
// Every HTTP failure is an *Error carrying a Kind and the HTTP status.
// Callers branch on structure:
//
//	if client.HasKind(err, client.KindNotFound) { ... }
//
// ErrNotAuthenticated is returned by Do, without any network call, when no
// session is stored.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. The token is read from the
// TokenSource on every call. No retries are attempted; a timeout applies
// only when configured.
package client
