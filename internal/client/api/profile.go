package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
)

// Upload steps reported by UploadError.
const (
	UploadStepPresign = "presign"
	UploadStepUpload  = "upload"
	UploadStepPersist = "persist"
)

// UploadError names the step of a profile picture upload that failed.
// FileURL is set once a target was issued; after a persist failure the
// object is already in storage at that URL.
type UploadError struct {
	Step    string
	FileURL string
	Err     error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("profile picture %s step: %v", e.Step, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return get[models.UserProfile](ctx, c.req, "/profile", nil)
}

func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	return send[models.UserProfile](ctx, c.req, http.MethodPut, "/profile", update)
}

// DeleteAccount irreversibly deletes the signed-in account and drops the
// local session.
func (c *Client) DeleteAccount(ctx context.Context) (*models.DeleteAccountResponse, error) {
	out, err := send[models.DeleteAccountResponse](ctx, c.req, http.MethodDelete, "/profile", map[string]bool{"confirm_delete": true})
	if err != nil {
		return nil, err
	}
	if c.store != nil {
		if err := c.store.Clear(ctx); err != nil {
			c.log.Warn(ctx, "account deleted but session not cleared", "error", err)
		}
	}
	return out, nil
}

func (c *Client) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	return get[models.UserStats](ctx, c.req, "/stats", nil)
}

func (c *Client) GetUserByID(ctx context.Context, userID int64) (*models.PublicUser, error) {
	return get[models.PublicUser](ctx, c.req, path("/users/%d", userID), nil)
}

func (c *Client) GetPresignedUploadURL(ctx context.Context, r models.PresignRequest) (*models.PresignedUpload, error) {
	q := client.NewQuery().Set("fileType", r.FileType).Set("fileName", r.FileName)
	return get[models.PresignedUpload](ctx, c.req, "/profile/picture/url", q)
}

func (c *Client) UpdateProfilePictureURL(ctx context.Context, url string) (*models.ProfilePictureURLResponse, error) {
	return send[models.ProfilePictureURLResponse](ctx, c.req, http.MethodPost, "/picture", map[string]string{"profile_image_url": url})
}

// UploadProfilePicture asks the backend for an upload target, PUTs the
// bytes straight to storage and then points the profile at the new URL.
// The steps are not atomic; failures are *UploadError.
func (c *Client) UploadProfilePicture(ctx context.Context, fileName, contentType string, body io.Reader) (*models.ProfilePictureResult, error) {
	target, err := c.GetPresignedUploadURL(ctx, models.PresignRequest{FileType: contentType, FileName: fileName})
	if err != nil {
		return nil, &UploadError{Step: UploadStepPresign, Err: err}
	}

	if err := c.uploader.Upload(ctx, target.UploadURL, contentType, body); err != nil {
		return nil, &UploadError{Step: UploadStepUpload, FileURL: target.FileURL, Err: err}
	}

	profile, err := c.UpdateProfile(ctx, models.ProfileUpdate{ProfileImage: target.FileURL})
	if err != nil {
		c.log.Warn(ctx, "picture uploaded but profile not updated", "key", target.Key, "error", err)
		return nil, &UploadError{Step: UploadStepPersist, FileURL: target.FileURL, Err: err}
	}

	return &models.ProfilePictureResult{FileURL: target.FileURL, Profile: *profile}, nil
}
