package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for account details and signs the new account in.
// A rejected registration is printed and is not an error of the command.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Enter your location (optional)", a.out)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Email: email, Password: string(password), Name: name}
	if location != "" {
		req.Location = &location
	}

	res := a.session.Register(ctx, req)
	if !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return nil
	}
	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials. Bad credentials are printed inline.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.session.Login(ctx, email, string(password))
	if !res.Success {
		fmt.Fprintln(a.out, res.Error)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.session.Logout(ctx)
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(context.Context) error {
	s := a.session.Session()
	if !s.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "User:    %s\n", displayName(s))
	if id := s.User.ID(); id != "" {
		fmt.Fprintf(a.out, "User ID: %s\n", id)
	}
	if s.ExpiresAt != nil {
		fmt.Fprintf(a.out, "Expires: %s\n", s.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

// Me refreshes the session user from the backend.
func (a *App) Me(ctx context.Context) error {
	user, err := a.profiles.Refresh(ctx)
	if err != nil {
		return err
	}
	p, err := user.Profile()
	if err != nil {
		fmt.Fprintln(a.out, string(user.Raw()))
		return nil
	}
	printProfile(a.out, p)
	return nil
}
