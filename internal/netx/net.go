// Package netx holds the direct-to-storage upload used for profile
// pictures.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
)

// maxErrorBody caps how much of a failed upload response is kept in the
// error.
const maxErrorBody = 1 << 10

// HTTPDoer is the subset of *http.Client the uploader needs.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// UploadError is returned for a non-2xx storage response.
type UploadError struct {
	Status int
	Body   string
}

func (e *UploadError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upload failed: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("upload failed: %d %s; body: %s", e.Status, http.StatusText(e.Status), e.Body)
}

// Uploader sends file bytes to a pre-signed URL.
type Uploader struct {
	http HTTPDoer
}

// NewUploader uses http.DefaultClient when doer is nil.
func NewUploader(doer HTTPDoer) *Uploader {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Uploader{http: doer}
}

// NewSafeClient returns a client that refuses anything but https on port
// 443 and blocks private and loopback addresses after DNS resolution.
func NewSafeClient(timeout time.Duration) *http.Client {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("https").
		SetAllowedPorts(443).
		Build()
	return safeurl.Client(cfg).Client
}

// Upload PUTs body to url with the given content type. Any 2xx is
// success; the response body is not parsed.
func (u *Uploader) Upload(ctx context.Context, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := u.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UploadError{Status: resp.StatusCode, Body: string(b)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
