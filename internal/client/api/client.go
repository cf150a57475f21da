// Package api is the typed gateway to the BookArc backend. Every method is a
// thin wrapper over one call of the shared client.Requester; validation
// failures are reported before any request is sent.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
	"github.com/dmitrijs2005/bookarc/internal/client/session"
	"github.com/dmitrijs2005/bookarc/internal/logging"
)

const (
	minReviewLength = 10
	maxReviewLength = 5000
	minRating       = 1
	maxRating       = 5
)

var (
	ErrInvalidRating           = errors.New("rating must be between 1 and 5")
	ErrReviewTooShort          = errors.New("review must be at least 10 characters long")
	ErrReviewTooLong           = errors.New("review must be at most 5000 characters long")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrInvalidEventType        = errors.New("invalid interaction event type")
	ErrInvalidStatusAction     = errors.New("action must be activate or deactivate")
)

// Uploader puts raw bytes to a pre-signed storage URL.
type Uploader interface {
	Upload(ctx context.Context, url, contentType string, body io.Reader) error
}

// Client exposes one method per backend operation.
type Client struct {
	req      client.Requester
	uploader Uploader
	store    session.Store
	log      logging.Logger
}

// New builds a Client. store is cleared after a successful account
// deletion and may be nil when that is not needed.
func New(req client.Requester, uploader Uploader, store session.Store, log logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{req: req, uploader: uploader, store: store, log: log.With("component", "api")}
}

// get, getPublic and send decode the response body into a new T.
func get[T any](ctx context.Context, r client.Requester, path string, q *client.Query) (*T, error) {
	var out T
	if err := r.Do(ctx, client.Request{Path: path, Query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getPublic[T any](ctx context.Context, r client.Requester, path string, q *client.Query) (*T, error) {
	var out T
	if err := r.DoPublic(ctx, client.Request{Path: path, Query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func send[T any](ctx context.Context, r client.Requester, method, path string, body any) (*T, error) {
	var out T
	if err := r.Do(ctx, client.Request{Method: method, Path: path, Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func pageQuery(p models.PageParams) *client.Query {
	return client.NewQuery().
		SetInt("page", p.Page).
		SetInt("limit", p.Limit).
		Set("search", p.Search)
}

func validateRating(v int) error {
	if v < minRating || v > maxRating {
		return ErrInvalidRating
	}
	return nil
}

func validateReview(text string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	switch {
	case n < minReviewLength:
		return ErrReviewTooShort
	case n > maxReviewLength:
		return ErrReviewTooLong
	}
	return nil
}

func requireReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrRejectionReasonRequired
	}
	return nil
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
