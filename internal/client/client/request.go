package client

//go:generate mockgen -source=request.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request describes one backend call. Path is relative to the API base
// URL and must start with "/".
type Request struct {
	Method string
	Path   string
	Query  *Query
	Body   any
	Header http.Header
}

// Requester is the request primitive shared by every backend caller.
//
// Do requires a stored session and fails with ErrNotAuthenticated before
// any network call when there is none. DoPublic sends the request either
// way and only attaches the bearer token when one is available.
//
// A 2xx JSON body is decoded into out unless out is nil or the body is
// empty. Any other status yields an *Error.
type Requester interface {
	Do(ctx context.Context, req Request, out any) error
	DoPublic(ctx context.Context, req Request, out any) error
}

// TokenSource supplies the bearer ID token. An empty token means no
// session.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
}

// Query builds a query string that keeps insertion order and skips zero
// values, so unset optional parameters are never sent. A nil *Query is
// empty.
type Query struct {
	keys   []string
	values []string
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) Set(key, value string) *Query {
	if value == "" {
		return q
	}
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
	return q
}

func (q *Query) SetInt(key string, value int) *Query {
	if value == 0 {
		return q
	}
	return q.Set(key, strconv.Itoa(value))
}

// SetBool only emits true values.
func (q *Query) SetBool(key string, value bool) *Query {
	if !value {
		return q
	}
	return q.Set(key, "true")
}

func (q *Query) Empty() bool {
	return q == nil || len(q.keys) == 0
}

func (q *Query) Encode() string {
	if q.Empty() {
		return ""
	}
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[i]))
	}
	return b.String()
}

// PathEscape escapes a single path segment such as a resource id.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}

// RouteOf collapses id-like path segments (anything containing a digit)
// into "{id}" so metrics and spans keep a bounded set of labels.
func RouteOf(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if strings.ContainsAny(p, "0123456789") {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
