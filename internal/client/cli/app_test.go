package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
	"github.com/dmitrijs2005/bookarc/internal/client/services"
	"github.com/dmitrijs2005/bookarc/internal/client/session"
	"github.com/dmitrijs2005/bookarc/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	services.AuthService

	sess *session.Session

	loginEmail, loginPassword string
	loginErr                  error

	registered services.RegisterData
	regResult  *services.RegisterResult

	logoutCalled bool
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.sess != nil }

func (f *fakeAuth) CurrentSession(context.Context) (*session.Session, error) { return f.sess, nil }

func (f *fakeAuth) Login(_ context.Context, email, password string) (*session.Session, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.sess = &session.Session{Username: "Alice", Email: email, IDToken: "id"}
	return f.sess, nil
}

func (f *fakeAuth) Logout(context.Context) {
	f.logoutCalled = true
	f.sess = nil
}

func (f *fakeAuth) Register(_ context.Context, d services.RegisterData) (*services.RegisterResult, error) {
	f.registered = d
	return f.regResult, nil
}

type fakeLists struct {
	services.ListService

	moveArgs []int64
	moveErr  error

	createdTitle      string
	createdVisibility models.Visibility
}

func (f *fakeLists) MoveBookBetweenLists(_ context.Context, bookID, from, to int64) (*models.MessageResponse, error) {
	f.moveArgs = []int64{bookID, from, to}
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	return &models.MessageResponse{Message: "Book moved successfully"}, nil
}

func (f *fakeLists) CreateCustomList(_ context.Context, title string, v models.Visibility) (*models.UserListMutation, error) {
	f.createdTitle, f.createdVisibility = title, v
	return &models.UserListMutation{Message: "List created", List: models.UserList{ListID: 12}}, nil
}

type fakeBackend struct {
	Backend

	profile  *models.UserProfile
	stats    *models.UserStats
	lists    *models.ListsOverview
	notes    *models.Notifications
	statsErr error

	interactions   []models.Interaction
	interactionErr error

	uploadName, uploadType string
	uploadBody             []byte

	deleted bool

	verification *models.VerificationSubmission
	verifyStatus *models.VerificationStatus
}

func (f *fakeBackend) GetProfile(context.Context) (*models.UserProfile, error) { return f.profile, nil }

func (f *fakeBackend) GetUserStats(context.Context) (*models.UserStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeBackend) GetUserLists(context.Context) (*models.ListsOverview, error) {
	return f.lists, nil
}

func (f *fakeBackend) GetNotifications(context.Context, models.NotificationFilter) (*models.Notifications, error) {
	return f.notes, nil
}

func (f *fakeBackend) RateBook(_ context.Context, _ int64, _ int) (*models.MessageResponse, error) {
	return &models.MessageResponse{Message: "Rating saved"}, nil
}

func (f *fakeBackend) RecordInteraction(_ context.Context, in models.Interaction) (*models.InteractionResponse, error) {
	f.interactions = append(f.interactions, in)
	if f.interactionErr != nil {
		return nil, f.interactionErr
	}
	return &models.InteractionResponse{EventType: in.EventType, BookID: in.BookID}, nil
}

func (f *fakeBackend) UploadProfilePicture(_ context.Context, name, ct string, body io.Reader) (*models.ProfilePictureResult, error) {
	f.uploadName, f.uploadType = name, ct
	f.uploadBody, _ = io.ReadAll(body)
	return &models.ProfilePictureResult{FileURL: "https://cdn.example.com/avatars/a.png"}, nil
}

func (f *fakeBackend) SubmitAuthorVerification(_ context.Context, s models.VerificationSubmission) (*models.VerificationSubmitted, error) {
	f.verification = &s
	return &models.VerificationSubmitted{Message: "Verification submitted", VerificationStatus: "pending"}, nil
}

func (f *fakeBackend) GetVerificationStatus(context.Context) (*models.VerificationStatus, error) {
	return f.verifyStatus, nil
}

func (f *fakeBackend) DeleteAccount(context.Context) (*models.DeleteAccountResponse, error) {
	f.deleted = true
	return &models.DeleteAccountResponse{Message: "Account deleted"}, nil
}

func newTestApp(auth services.AuthService, lists services.ListService, api Backend) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := NewApp(auth, lists, api, logging.Nop())
	a.out = out
	a.reader = bufio.NewReader(strings.NewReader(""))
	return a, out
}

func stubTexts(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		s := answers[i]
		i++
		return s, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubSecrets returns the slices handed out so tests can check they were
// wiped.
func stubSecrets(t *testing.T, secrets ...string) *[][]byte {
	t.Helper()
	orig := getSecret
	var given [][]byte
	getSecret = func(_ string, _ io.Writer) ([]byte, error) {
		if len(given) >= len(secrets) {
			return nil, io.EOF
		}
		b := []byte(secrets[len(given)])
		given = append(given, b)
		return b, nil
	}
	t.Cleanup(func() { getSecret = orig })
	return &given
}

func TestLogin_SuccessWipesPassword(t *testing.T) {
	stubTexts(t, "alice@example.com")
	given := stubSecrets(t, "Passw0rd!")

	auth := &fakeAuth{}
	a, out := newTestApp(auth, nil, nil)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice@example.com", auth.loginEmail)
	assert.Equal(t, "Passw0rd!", auth.loginPassword)
	assert.Contains(t, out.String(), "Welcome, Alice!")
	assert.Equal(t, make([]byte, len("Passw0rd!")), (*given)[0])
	assert.Equal(t, "(Alice)", a.status(context.Background()))
}

func TestLogin_FailureIsDescribed(t *testing.T) {
	stubTexts(t, "alice@example.com")
	stubSecrets(t, "wrong")

	auth := &fakeAuth{loginErr: &services.AuthError{Action: "InitiateAuth", Status: 400, Message: "Incorrect username or password."}}
	a, _ := newTestApp(auth, nil, nil)

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Error: Incorrect username or password.", describeError(err))
	assert.Equal(t, "", a.status(context.Background()))
}

func TestRegister_UnconfirmedAsksForCode(t *testing.T) {
	stubTexts(t, "bob@example.com", "bob", "Bob B")
	stubSecrets(t, "Secret123!")

	auth := &fakeAuth{regResult: &services.RegisterResult{Success: true, Message: "Registration successful!"}}
	a, out := newTestApp(auth, nil, nil)

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, services.RegisterData{Email: "bob@example.com", Password: "Secret123!", Username: "bob", DisplayName: "Bob B"}, auth.registered)
	assert.Contains(t, out.String(), "Registration successful!")
	assert.Contains(t, out.String(), "'confirm'")
}

func TestLogout(t *testing.T) {
	auth := &fakeAuth{sess: &session.Session{Username: "Alice"}}
	a, out := newTestApp(auth, nil, nil)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, auth.logoutCalled)
	assert.False(t, a.isLoggedIn(context.Background()))
	assert.Contains(t, out.String(), "Logged out.")
}

func TestMove(t *testing.T) {
	lists := &fakeLists{}
	a, out := newTestApp(&fakeAuth{}, lists, nil)

	require.NoError(t, a.Move(context.Background(), []string{"7", "1", "2"}))
	assert.Equal(t, []int64{7, 1, 2}, lists.moveArgs)
	assert.Contains(t, out.String(), "Book moved successfully")
}

func TestMove_BadArguments(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{}, &fakeLists{}, nil)

	err := a.Move(context.Background(), []string{"7", "1"})
	assert.Equal(t, "Usage: move <bookId> <fromListId> <toListId>", describeError(err))

	err = a.Move(context.Background(), []string{"7", "x", "2"})
	assert.Equal(t, `Error: invalid id "x"`, describeError(err))

	err = a.Move(context.Background(), []string{"7", "-1", "2"})
	assert.Error(t, err)
}

func TestMove_PartialFailureTellsHowToFinish(t *testing.T) {
	cause := &client.Error{Kind: client.KindServerUnavailable, Status: 503, Message: "Service Unavailable"}
	lists := &fakeLists{moveErr: &services.MoveError{Step: services.MoveStepAdd, BookID: 7, FromListID: 1, ToListID: 2, Err: cause}}
	a, _ := newTestApp(&fakeAuth{}, lists, nil)

	err := a.Move(context.Background(), []string{"7", "1", "2"})
	require.Error(t, err)

	msg := describeError(err)
	assert.Contains(t, msg, "Book 7 was removed from list 1 but could not be added to list 2: Service Unavailable.")
	assert.Contains(t, msg, "Run 'addbook 2 7'")
}

func TestMove_RemoveStepFailureIsPlain(t *testing.T) {
	cause := &client.Error{Kind: client.KindNotFound, Status: 404, Message: "Book not in list"}
	lists := &fakeLists{moveErr: &services.MoveError{Step: services.MoveStepRemove, BookID: 7, FromListID: 1, ToListID: 2, Err: cause}}
	a, _ := newTestApp(&fakeAuth{}, lists, nil)

	err := a.Move(context.Background(), []string{"7", "1", "2"})
	assert.Equal(t, "Error: Book not in list", describeError(err))
}

func TestNewList(t *testing.T) {
	stubTexts(t, "Summer reads", "")

	lists := &fakeLists{}
	a, out := newTestApp(&fakeAuth{}, lists, nil)

	require.NoError(t, a.NewList(context.Background()))
	assert.Equal(t, "Summer reads", lists.createdTitle)
	assert.Equal(t, models.Visibility(""), lists.createdVisibility)
	assert.Contains(t, out.String(), "List created [12]")
}

func TestNewList_RejectsUnknownVisibility(t *testing.T) {
	stubTexts(t, "Summer reads", "friends-only")

	lists := &fakeLists{}
	a, _ := newTestApp(&fakeAuth{}, lists, nil)

	require.Error(t, a.NewList(context.Background()))
	assert.Empty(t, lists.createdTitle)
}

func dashboardBackend() *fakeBackend {
	return &fakeBackend{
		profile: &models.UserProfile{Username: "alice", DisplayName: "<b>Alice</b>", Email: "alice@example.com", Role: models.RoleNormal},
		stats:   &models.UserStats{BooksRead: 12, TotalRatings: 30, TotalBookReviews: 4, TotalAuthorReviews: 1, Followers: 3, Following: 5},
		lists: &models.ListsOverview{
			DefaultLists: []models.ListSummary{{ID: 1, Name: "Want to Read", Count: 3, Visibility: models.VisibilityPrivate}},
			CustomLists:  []models.ListSummary{{ID: 9, Name: "Sci-fi <i>faves</i>", Count: 2, Visibility: models.VisibilityPublic}},
		},
		notes: &models.Notifications{UnreadCount: 1, Notifications: []models.Notification{{Message: "Bob followed you<script>alert(1)</script>"}}},
	}
}

func TestDashboard(t *testing.T) {
	a, out := newTestApp(&fakeAuth{}, nil, dashboardBackend())

	require.NoError(t, a.Dashboard(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Alice (@alice), normal")
	assert.Contains(t, s, "Books read: 12  Ratings: 30  Reviews: 5  Followers: 3  Following: 5")
	assert.Contains(t, s, "[1] Want to Read (3 books, private)")
	assert.Contains(t, s, "[9] Sci-fi faves (2 books, public)")
	assert.Contains(t, s, "Unread notifications: 1")
	assert.Contains(t, s, "Bob followed you")
	assert.NotContains(t, s, "<")
}

func TestDashboard_AnyFailureFails(t *testing.T) {
	be := dashboardBackend()
	be.statsErr = &client.Error{Kind: client.KindServerUnavailable, Status: 502, Message: "Bad Gateway"}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	err := a.Dashboard(context.Background())
	require.Error(t, err)
	assert.True(t, client.HasKind(err, client.KindServerUnavailable))
	assert.Empty(t, out.String())
}

func TestRate_RecordsInteraction(t *testing.T) {
	be := &fakeBackend{}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.Rate(context.Background(), []string{"42", "5"}))
	assert.Contains(t, out.String(), "Rating saved")
	require.Len(t, be.interactions, 1)
	assert.Equal(t, models.EventRate, be.interactions[0].EventType)
	assert.Equal(t, int64(42), be.interactions[0].BookID)
	require.NotNil(t, be.interactions[0].EventValue)
	assert.Equal(t, 5.0, *be.interactions[0].EventValue)
}

func TestRate_InteractionFailureIsNotAnError(t *testing.T) {
	be := &fakeBackend{interactionErr: errors.New("recommender down")}
	a, _ := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.Rate(context.Background(), []string{"42", "4"}))
	assert.Len(t, be.interactions, 1)
}

func TestRate_Usage(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{}, nil, &fakeBackend{})

	err := a.Rate(context.Background(), []string{"42", "five"})
	assert.Equal(t, "Usage: rate <bookId> <1-5>", describeError(err))
}

func TestAvatar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "me.png")
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	require.NoError(t, os.WriteFile(path, png, 0o600))

	be := &fakeBackend{}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.Avatar(context.Background(), []string{path}))
	assert.Equal(t, "me.png", be.uploadName)
	assert.Equal(t, "image/png", be.uploadType)
	assert.Equal(t, png, be.uploadBody)
	assert.Contains(t, out.String(), "https://cdn.example.com/avatars/a.png")
}

func TestAvatar_MissingFile(t *testing.T) {
	be := &fakeBackend{}
	a, _ := newTestApp(&fakeAuth{}, nil, be)

	require.Error(t, a.Avatar(context.Background(), []string{filepath.Join(t.TempDir(), "nope.png")}))
	assert.Empty(t, be.uploadName)

	assert.Equal(t, "Usage: avatar <path-to-image>", describeError(a.Avatar(context.Background(), nil)))
}

func TestVerify_Submit(t *testing.T) {
	dir := t.TempDir()
	idPath := filepath.Join(dir, "id.png")
	selfiePath := filepath.Join(dir, "selfie.jpg")
	require.NoError(t, os.WriteFile(idPath, append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...), 0o600))
	require.NoError(t, os.WriteFile(selfiePath, append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, 16)...), 0o600))
	stubTexts(t, "Jane Q. Writer")

	be := &fakeBackend{}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.Verify(context.Background(), []string{idPath, selfiePath}))
	require.NotNil(t, be.verification)
	assert.Equal(t, "Jane Q. Writer", be.verification.FullName)
	assert.True(t, strings.HasPrefix(be.verification.IDCardImage, "data:image/png;base64,"))
	assert.True(t, strings.HasPrefix(be.verification.SelfieImage, "data:image/jpeg;base64,"))
	assert.Contains(t, out.String(), "Verification submitted (status: pending)")
}

func TestVerify_RequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o600))
	stubTexts(t, "")

	be := &fakeBackend{}
	a, _ := newTestApp(&fakeAuth{}, nil, be)

	require.Error(t, a.Verify(context.Background(), []string{path, path}))
	assert.Nil(t, be.verification)
}

func TestVerify_Status(t *testing.T) {
	be := &fakeBackend{verifyStatus: &models.VerificationStatus{
		VerificationStatus: "rejected",
		LatestRequest:      &models.VerificationRequestSummary{RequestID: 3, Status: "rejected", SubmittedAt: "2024-05-01", RejectionReason: "<b>blurry</b> photo"},
	}}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.Verify(context.Background(), nil))
	assert.Contains(t, out.String(), "Author verification: rejected")
	assert.Contains(t, out.String(), "request 3 (rejected)")
	assert.Contains(t, out.String(), "reason: blurry photo")

	assert.Equal(t, "Usage: verify [<id-card-image> <selfie-image>]", describeError(a.Verify(context.Background(), []string{"one"})))
}

func TestDeleteAccount_RequiresConfirmation(t *testing.T) {
	stubTexts(t, "yes")
	be := &fakeBackend{}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.False(t, be.deleted)
	assert.Contains(t, out.String(), "Cancelled.")
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	stubTexts(t, "DELETE")
	be := &fakeBackend{}
	a, out := newTestApp(&fakeAuth{}, nil, be)

	require.NoError(t, a.DeleteAccount(context.Background()))
	assert.True(t, be.deleted)
	assert.Contains(t, out.String(), "Account deleted")
}
