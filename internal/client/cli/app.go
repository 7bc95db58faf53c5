package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/craftconnect/internal/client/client"
	"github.com/dmitrijs2005/craftconnect/internal/client/services"
)

// errUsage is returned by commands called with bad arguments.
type errUsage string

func (e errUsage) Error() string { return "usage: " + string(e) }

type App struct {
	session  *services.SessionManager
	api      client.Client
	profiles *services.ProfileService
	reader   *bufio.Reader
	out      io.Writer

	lastState services.State
}

// NewApp returns a CLI bound to stdin and stdout.
func NewApp(api client.Client, session *services.SessionManager) *App {
	return &App{
		session:   session,
		api:       api,
		profiles:  services.NewProfileService(api, session),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		lastState: services.StateRestoring,
	}
}

// Run restores the persisted session and runs the REPL until the user exits
// or stdin closes.
func (a *App) Run(ctx context.Context) {
	unsubscribe := a.session.Subscribe(a.onSessionChange)
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to CraftConnect CLI (type 'help' for commands)")
	a.session.Restore(ctx)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.session.Session().IsAuthenticated
}

// onSessionChange prints state transitions. Repeated notifications for the
// same state (e.g. a profile update) are not echoed.
func (a *App) onSessionChange(s services.Session) {
	state := s.State()
	if state == a.lastState {
		return
	}
	prev := a.lastState
	a.lastState = state

	switch {
	case state == services.StateAuthenticated:
		fmt.Fprintf(a.out, "Signed in as %s\n", displayName(s))
	case prev == services.StateAuthenticated:
		fmt.Fprintln(a.out, "Signed out")
	}
}

func (a *App) getStatus() string {
	s := a.session.Session()
	if !s.IsAuthenticated {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", displayName(s))
}

func displayName(s services.Session) string {
	if p, err := s.User.Profile(); err == nil {
		switch {
		case p.Name != "":
			return p.Name
		case p.Email != "":
			return p.Email
		}
	}
	if id := s.User.ID(); id != "" {
		return id
	}
	return "unknown user"
}

// reportError prints a command failure for the user.
func (a *App) reportError(err error) {
	var usage errUsage
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "session expired, please log in again")
	case errors.Is(err, services.ErrNotAuthenticated):
		fmt.Fprintln(a.out, "please log in first")
	case errors.As(err, &usage):
		fmt.Fprintln(a.out, usage.Error())
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "backend unavailable, try again later")
	default:
		if d := client.ErrorDetail(err); d != "" {
			fmt.Fprintln(a.out, "error:", d)
			return
		}
		fmt.Fprintln(a.out, "error:", err)
	}
}

func (a *App) requireLogin() (services.Session, error) {
	s := a.session.Session()
	if !s.IsAuthenticated {
		return s, services.ErrNotAuthenticated
	}
	return s, nil
}
