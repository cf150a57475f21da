package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	fail  map[string]error
}

func (f *fakeExec) rec(name string, args ...string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.fail[name]
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error { return f.rec("register") }
func (f *fakeExec) Confirm(context.Context) error  { return f.rec("confirm") }
func (f *fakeExec) Resend(context.Context) error   { return f.rec("resend") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) ForgotPassword(context.Context) error { return f.rec("forgot") }
func (f *fakeExec) ChangePassword(context.Context) error { return f.rec("passwd") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) Profile(context.Context) error              { return f.rec("profile") }
func (f *fakeExec) Dashboard(context.Context) error            { return f.rec("dashboard") }
func (f *fakeExec) Avatar(_ context.Context, a []string) error { return f.rec("avatar", a...) }
func (f *fakeExec) Verify(_ context.Context, a []string) error { return f.rec("verify", a...) }
func (f *fakeExec) DeleteAccount(context.Context) error        { return f.rec("deleteaccount") }
func (f *fakeExec) Lists(context.Context) error                { return f.rec("lists") }
func (f *fakeExec) BookLists(_ context.Context, a []string) error {
	return f.rec("booklists", a...)
}
func (f *fakeExec) AddBook(_ context.Context, a []string) error { return f.rec("addbook", a...) }
func (f *fakeExec) RemoveBook(_ context.Context, a []string) error {
	return f.rec("removebook", a...)
}
func (f *fakeExec) Move(_ context.Context, a []string) error   { return f.rec("move", a...) }
func (f *fakeExec) NewList(context.Context) error              { return f.rec("newlist") }
func (f *fakeExec) Books(_ context.Context, a []string) error  { return f.rec("books", a...) }
func (f *fakeExec) Rate(_ context.Context, a []string) error   { return f.rec("rate", a...) }
func (f *fakeExec) Review(_ context.Context, a []string) error { return f.rec("review", a...) }
func (f *fakeExec) Genres(context.Context) error               { return f.rec("genres") }
func (f *fakeExec) Favorite(_ context.Context, a []string) error {
	return f.rec("favorite", a...)
}
func (f *fakeExec) Recommend(_ context.Context, a []string) error {
	return f.rec("recommend", a...)
}
func (f *fakeExec) Users(_ context.Context, a []string) error   { return f.rec("users", a...) }
func (f *fakeExec) Authors(_ context.Context, a []string) error { return f.rec("authors", a...) }
func (f *fakeExec) Follow(_ context.Context, a []string) error  { return f.rec("follow", a...) }
func (f *fakeExec) Notifications(_ context.Context, a []string) error {
	return f.rec("notifications", a...)
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runInput(exec *fakeExec, lines ...string) {
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, in)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runInput(exec,
		"help",
		"books dune messiah",
		"login",
		"help",
		"lists",
		"move 7 1 2",
		"rate 7 5",
		"logout",
		"exit",
	)

	require.Equal(t, []string{"books", "login", "lists", "move", "rate", "logout"}, exec.calls)
	require.Equal(t, []string{"dune", "messiah"}, exec.args["books"])
	require.Equal(t, []string{"7", "1", "2"}, exec.args["move"])
}

func TestRunREPL_SessionCommandsNeedLogin(t *testing.T) {
	out := capturePrints(t)

	exec := &fakeExec{}
	runInput(exec, "lists", "dashboard", "genres", "quit")

	require.Equal(t, []string{"genres"}, exec.calls)
	require.Contains(t, *out, "Please log in first (type 'login')")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := capturePrints(t)

	runInput(&fakeExec{}, "help", "exit")
	require.Contains(t, *out, helpLoggedOut)

	*out = nil
	runInput(&fakeExec{loggedIn: true}, "help", "exit")
	require.Contains(t, *out, helpLoggedIn)
}

func TestRunREPL_ErrorsArePrintedAndLoopContinues(t *testing.T) {
	out := capturePrints(t)

	exec := &fakeExec{loggedIn: true, fail: map[string]error{"lists": errors.New("boom")}}
	runInput(exec, "lists", "profile", "exit")

	require.Equal(t, []string{"lists", "profile"}, exec.calls)
	require.Contains(t, *out, "Error: boom")
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	out := capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runInput(exec, "", "   ", "foobar", "quit", "lists")

	require.Empty(t, exec.calls)
	require.Contains(t, *out, "Unknown command: foobar")
	require.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runInput(exec, "genres")

	require.Equal(t, []string{"genres"}, exec.calls)
}
