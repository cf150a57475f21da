package cli

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookarc/internal/client/api"
	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/services"
	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips all markup from backend-supplied text before it
// reaches the terminal. bluemonday policies are safe for concurrent use.
var textPolicy = bluemonday.StrictPolicy()

// clean turns user-generated text from the backend into plain text.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

type usageError string

func (e usageError) Error() string {
	return "Usage: " + string(e)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseIDs expects exactly n positional ids.
func parseIDs(args []string, n int, usage string) ([]int64, error) {
	if len(args) != n {
		return nil, usageError(usage)
	}
	ids := make([]int64, n)
	for i, s := range args {
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// describeError renders a command failure for the user. Partial failures
// say what already happened and how to finish.
func describeError(err error) string {
	var (
		usage     usageError
		moveErr   *services.MoveError
		uploadErr *api.UploadError
		authErr   *services.AuthError
		apiErr    *client.Error
	)

	switch {
	case errors.As(err, &usage):
		return usage.Error()

	case errors.As(err, &moveErr) && moveErr.Step == services.MoveStepAdd:
		return fmt.Sprintf("Book %d was removed from list %d but could not be added to list %d: %s. Run 'addbook %d %d' to finish the move.",
			moveErr.BookID, moveErr.FromListID, moveErr.ToListID, describeCause(moveErr.Err), moveErr.ToListID, moveErr.BookID)

	case errors.As(err, &uploadErr) && uploadErr.Step == api.UploadStepPersist:
		return fmt.Sprintf("Picture uploaded to %s but the profile was not updated: %s", uploadErr.FileURL, describeCause(uploadErr.Err))

	case errors.As(err, &authErr):
		return "Error: " + clean(authErr.Message)

	case errors.As(err, &apiErr) && apiErr.Kind == client.KindUnauthenticated && apiErr.Status == 0:
		return "Not authenticated - please log in (type 'login')"

	default:
		return "Error: " + describeCause(err)
	}
}

func describeCause(err error) string {
	var apiErr *client.Error
	if errors.As(err, &apiErr) {
		return clean(apiErr.Message)
	}
	return clean(err.Error())
}
