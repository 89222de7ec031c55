package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/onedate/onedate/internal/common"
)

func (a *App) account(ctx context.Context) {
	user, err := a.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			fmt.Fprintln(a.out, "You are not logged in.")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Name:  %s\n", user.FullName)
	fmt.Fprintf(a.out, "Email: %s\n", user.Email)
	fmt.Fprintf(a.out, "Phone: %s\n", user.Phone)
	fmt.Fprintf(a.out, "City:  %s\n", user.City)
}

// history lists bookings newest first. The reversal is display-only:
// the ledger hands entries back in insertion order.
func (a *App) history(ctx context.Context) {
	bookings, err := a.ledger.History(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings found.")
		return
	}

	for i := len(bookings) - 1; i >= 0; i-- {
		b := bookings[i]
		fmt.Fprintf(a.out, "  %s | %s | %s | %s | %s\n",
			b.Event, b.Location, b.Companion, b.Date, b.Status)
	}
}

func (a *App) latest(ctx context.Context) {
	b, err := a.ledger.Latest(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if b == nil {
		fmt.Fprintln(a.out, "No bookings found.")
		return
	}
	fmt.Fprintf(a.out, "Latest booking: %s — %s on %s (%s)\n",
		b.Companion, b.Event, b.Date, b.Status)
}
