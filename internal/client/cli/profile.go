package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
	"golang.org/x/sync/errgroup"
)

const (
	maxPictureSize     = 5 << 20
	deleteConfirmation = "DELETE"
)

func (a *App) Profile(ctx context.Context) error {
	p, err := a.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	a.printProfile(p)
	return nil
}

func (a *App) printProfile(p *models.UserProfile) {
	fmt.Fprintf(a.out, "%s (@%s), %s\n", clean(p.DisplayName), clean(p.Username), p.Role)
	fmt.Fprintf(a.out, "  email:    %s\n", clean(p.Email))
	if p.Location != "" {
		fmt.Fprintf(a.out, "  location: %s\n", clean(p.Location))
	}
	if p.Bio != "" {
		fmt.Fprintf(a.out, "  bio:      %s\n", clean(p.Bio))
	}
	if p.VerificationStatus != nil {
		fmt.Fprintf(a.out, "  author verification: %s\n", clean(*p.VerificationStatus))
	}
}

// Dashboard loads the profile, activity stats, lists and unread
// notifications concurrently. Any failure cancels the rest.
func (a *App) Dashboard(ctx context.Context) error {
	var (
		profile *models.UserProfile
		stats   *models.UserStats
		lists   *models.ListsOverview
		notes   *models.Notifications
	)

	unread := false
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = a.api.GetProfile(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats, err = a.api.GetUserStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		lists, err = a.api.GetUserLists(gctx)
		return err
	})
	g.Go(func() (err error) {
		notes, err = a.api.GetNotifications(gctx, models.NotificationFilter{Page: 1, Limit: 5, IsRead: &unread})
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	a.printProfile(profile)
	fmt.Fprintf(a.out, "Books read: %d  Ratings: %d  Reviews: %d  Followers: %d  Following: %d\n",
		stats.BooksRead, stats.TotalRatings, stats.TotalBookReviews+stats.TotalAuthorReviews, stats.Followers, stats.Following)

	fmt.Fprintln(a.out, "Lists:")
	for _, group := range [][]models.ListSummary{lists.DefaultLists, lists.CustomLists} {
		for _, l := range group {
			fmt.Fprintf(a.out, "  [%d] %s (%d books, %s)\n", l.ID, clean(l.Name), l.Count, l.Visibility)
		}
	}

	fmt.Fprintf(a.out, "Unread notifications: %d\n", notes.UnreadCount)
	for _, n := range notes.Notifications {
		fmt.Fprintf(a.out, "  - %s\n", clean(n.Message))
	}
	return nil
}

// Avatar uploads a local image as the profile picture.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("avatar <path-to-image>")
	}
	path := args[0]

	data, err := readImage(path)
	if err != nil {
		return err
	}

	res, err := a.api.UploadProfilePicture(ctx, filepath.Base(path), http.DetectContentType(data), bytes.NewReader(data))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile picture updated:", res.FileURL)
	return nil
}

// Verify shows the author verification status, or with two image paths
// submits a new verification request.
func (a *App) Verify(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		st, err := a.api.GetVerificationStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Author verification:", clean(st.VerificationStatus))
		if r := st.LatestRequest; r != nil {
			fmt.Fprintf(a.out, "  request %d (%s) submitted %s\n", r.RequestID, clean(r.Status), r.SubmittedAt)
			if r.RejectionReason != "" {
				fmt.Fprintln(a.out, "  reason:", clean(r.RejectionReason))
			}
		}
		return nil
	case 2:
	default:
		return usageError("verify [<id-card-image> <selfie-image>]")
	}

	idCard, err := readImage(args[0])
	if err != nil {
		return err
	}
	selfie, err := readImage(args[1])
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Full legal name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("full name is required")
	}

	res, err := a.api.SubmitAuthorVerification(ctx, models.VerificationSubmission{
		FullName:    name,
		IDCardImage: models.ImageDataURL(http.DetectContentType(idCard), idCard),
		SelfieImage: models.ImageDataURL(http.DetectContentType(selfie), selfie),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (status: %s)\n", clean(res.Message), clean(res.VerificationStatus))
	return nil
}

// readImage loads a local file no larger than maxPictureSize.
func readImage(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxPictureSize {
		return nil, fmt.Errorf("%s is larger than %d MiB", filepath.Base(path), maxPictureSize>>20)
	}
	return os.ReadFile(path)
}

func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This permanently deletes your account. Type "+deleteConfirmation+" to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != deleteConfirmation {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	res, err := a.api.DeleteAccount(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, clean(res.Message))
	return nil
}
