package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/bookarc/internal/client/models"
	"github.com/dmitrijs2005/bookarc/internal/client/services"
	"github.com/dmitrijs2005/bookarc/internal/logging"
)

// Backend is the part of the BookArc API the CLI drives. *api.Client
// satisfies it.
type Backend interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	GetUserStats(ctx context.Context) (*models.UserStats, error)
	GetUserLists(ctx context.Context) (*models.ListsOverview, error)
	DeleteAccount(ctx context.Context) (*models.DeleteAccountResponse, error)
	UploadProfilePicture(ctx context.Context, fileName, contentType string, body io.Reader) (*models.ProfilePictureResult, error)
	SubmitAuthorVerification(ctx context.Context, s models.VerificationSubmission) (*models.VerificationSubmitted, error)
	GetVerificationStatus(ctx context.Context) (*models.VerificationStatus, error)

	GetBooks(ctx context.Context, f models.BookFilter) ([]models.Book, error)
	RateBook(ctx context.Context, bookID int64, rating int) (*models.MessageResponse, error)
	SubmitBookReview(ctx context.Context, bookID int64, r models.BookReviewSubmission) (*models.MessageResponse, error)
	RecordInteraction(ctx context.Context, in models.Interaction) (*models.InteractionResponse, error)

	GetAllGenres(ctx context.Context) (*models.Genres, error)
	FavoriteGenre(ctx context.Context, genreID int64) (*models.FavoriteGenreResponse, error)
	GetRecommendations(ctx context.Context, numResults int) (*models.Recommendations, error)

	SearchUsers(ctx context.Context, s models.UserSearch) (*models.UserSearchResult, error)
	SearchAuthors(ctx context.Context, s models.AuthorSearch) (*models.AuthorSearchResult, error)
	FollowUser(ctx context.Context, userID int64) (*models.FollowResponse, error)

	GetNotifications(ctx context.Context, f models.NotificationFilter) (*models.Notifications, error)
	MarkAllNotificationsRead(ctx context.Context) (*models.NotificationsMarked, error)
}

type App struct {
	auth   services.AuthService
	lists  services.ListService
	api    Backend
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the interactive client. Input is read from stdin and
// output goes to stdout.
func NewApp(auth services.AuthService, lists services.ListService, api Backend, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		auth:   auth,
		lists:  lists,
		api:    api,
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run blocks in the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to BookArc (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsAuthenticated(ctx)
}

// status is shown in the prompt: the signed-in username, if any.
func (a *App) status(ctx context.Context) string {
	s, err := a.auth.CurrentSession(ctx)
	if err != nil || s == nil {
		return ""
	}
	name := s.Username
	if name == "" {
		name = s.Email
	}
	return "(" + clean(name) + ")"
}
