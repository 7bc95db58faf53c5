package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls    []string
	args     [][]string
	reported []error
	failWith error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool             { return f.loggedIn }
func (f *fakeExec) reportError(err error)        { f.reported = append(f.reported, err) }
func (f *fakeExec) WhoAmI(context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) Me(context.Context) error     { return f.record("me", nil) }
func (f *fakeExec) Dashboard(context.Context) error {
	return f.record("dashboard", nil)
}

func (f *fakeExec) Register(context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}

func (f *fakeExec) Products(_ context.Context, a []string) error { return f.record("products", a) }
func (f *fakeExec) Search(_ context.Context, a []string) error   { return f.record("search", a) }
func (f *fakeExec) Product(_ context.Context, a []string) error  { return f.record("product", a) }
func (f *fakeExec) Like(_ context.Context, a []string) error     { return f.record("like", a) }
func (f *fakeExec) Delete(_ context.Context, a []string) error   { return f.record("delete", a) }
func (f *fakeExec) Analyze(_ context.Context, a []string) error  { return f.record("analyze", a) }
func (f *fakeExec) Story(_ context.Context, a []string) error    { return f.record("story", a) }
func (f *fakeExec) Price(_ context.Context, a []string) error    { return f.record("price", a) }
func (f *fakeExec) Profile(_ context.Context, a []string) error  { return f.record("profile", a) }

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.ReplaceAll(toString(v), "\n", " "))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_DispatchesCommandsWithArgs(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"login",
		"products public pottery",
		"search blue vase",
		"product p1",
		"like p1",
		"price 10 2 pottery",
		"",
		"dashboard",
		"logout",
		"exit",
		"whoami",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"login", "products", "search", "product", "like", "price", "dashboard", "logout"}, exec.calls)
	assert.Equal(t, []string{"public", "pottery"}, exec.args[1])
	assert.Equal(t, []string{"blue", "vase"}, exec.args[2])
	assert.Equal(t, []string{"10", "2", "pottery"}, exec.args[5])
	assert.Empty(t, exec.reported)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := silencePrintln(t)

	input := strings.NewReader("help\nlogin\nhelp\nquit\n")
	runREPL(context.Background(), &fakeExec{}, func() string { return "s" }, bufio.NewScanner(input))

	assert.Contains(t, *lines, helpAnonymous)
	assert.Contains(t, *lines, helpSignedIn)
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_ReportsErrorsAndKeepsGoing(t *testing.T) {
	silencePrintln(t)

	boom := errors.New("boom")
	exec := &fakeExec{failWith: boom}
	input := strings.NewReader("me\nfoobar\nstory a title\n")

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"me", "story"}, exec.calls)
	assert.Equal(t, []error{boom, boom}, exec.reported)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := silencePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("get 42\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *lines, "Unknown command: get")
}
