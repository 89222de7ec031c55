package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/onedate/onedate/internal/common"
	"github.com/onedate/onedate/internal/models"
)

// register collects the signup form fields, creates the user and starts
// a session, matching the original signup flow (signup logs you in).
func (a *App) register(ctx context.Context) {
	var u models.User
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"-Enter full name", &u.FullName},
		{"-Enter email", &u.Email},
		{"-Enter phone", &u.Phone},
		{"-Enter city", &u.City},
	} {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		*f.dst = v
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)
	u.Password = string(password)

	if _, err := a.dir.Register(ctx, u); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			fmt.Fprintln(a.out, "This email is already registered.")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.sessions.Start(ctx, u.Email); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.FullName)
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.sessions.Login(ctx, email, string(password))
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		fmt.Fprintln(a.out, "No account found for this email. Please sign up first.")
	case errors.Is(err, common.ErrWrongPassword):
		fmt.Fprintln(a.out, "Incorrect password. Please try again.")
	case err != nil:
		fmt.Fprintf(a.out, "error: %v\n", err)
	default:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.FullName)
	}
}

func (a *App) logout(ctx context.Context) {
	if err := a.sessions.End(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}
