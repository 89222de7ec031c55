package cli

import (
	"context"
	"fmt"

	"github.com/onedate/onedate/internal/guard"
	"github.com/onedate/onedate/internal/matching"
	"github.com/onedate/onedate/internal/models"
)

// search runs the booking page flow: guard check, age-range query,
// matching, then an optional companion selection that records a booking.
func (a *App) search(ctx context.Context) {
	s, err := a.sessions.State(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !guard.CanAccess(s, guard.ResourceBooking) {
		fmt.Fprintln(a.out, "Access Denied. Please log in first.")
		return
	}

	ageRaw, err := GetSimpleText(a.reader, "-Preferred age range (e.g. 25-32, empty for any)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	targetAge := matching.ParseTargetAge(ageRaw)
	matches := matching.MatchWindow(a.pool, targetAge, a.config.AgeWindow, a.config.MatchLimit)
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No matches found.")
		return
	}

	for _, c := range matches {
		fmt.Fprintf(a.out, "  %s, %d — %s (rating %.1f)\n", c.Name, c.Age, c.Bio, c.Rating)
	}

	name, err := GetSimpleText(a.reader, "-Select a companion by name (empty to cancel)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if name == "" {
		return
	}

	event, err := GetSimpleText(a.reader, "-Event type (empty for default)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	date, err := GetSimpleText(a.reader, "-Event date (YYYY-MM-DD, empty for TBD)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	location, err := GetSimpleText(a.reader, "-Location (empty for default)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	booking, err := a.ledger.Record(ctx, models.Booking{
		Companion: name,
		Event:     event,
		Date:      date,
		Location:  location,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Booked %s for %s on %s (%s)\n",
		booking.Companion, booking.Event, booking.Date, booking.Status)
}
