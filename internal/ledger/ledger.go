// Package ledger keeps the append-only booking history and the "most
// recent booking" pointer. History entries are never mutated or removed
// once written.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/onedate/onedate/internal/kvstore"
	"github.com/onedate/onedate/internal/logging"
	"github.com/onedate/onedate/internal/models"
)

const (
	keyHistory = "bookingsHistory"
	keyLatest  = "latestBooking"
)

// DateLayout is the calendar-date format bookings carry; anything else
// (including the "TBD" placeholder) counts as not-upcoming.
const DateLayout = "2006-01-02"

// Options tune ledger behavior.
type Options struct {
	// DefaultEvent and DefaultLocation fill absent booking fields.
	DefaultEvent    string
	DefaultLocation string

	// RecomputeStatusOnRead recomputes each booking's status against the
	// current day when reading History or Latest, instead of serving the
	// status frozen at record time. Stored entries are never rewritten
	// either way.
	RecomputeStatusOnRead bool

	// Now is a clock seam for tests; defaults to time.Now.
	Now func() time.Time
}

// Ledger appends bookings and serves them back in stable insertion
// order. Consumers that want newest-first reverse at the presentation
// layer; the ledger guarantees only insertion order.
type Ledger struct {
	codec *kvstore.Codec
	log   logging.Logger
	opts  Options
}

func New(codec *kvstore.Codec, log logging.Logger, opts Options) *Ledger {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Ledger{codec: codec, log: log, opts: opts}
}

// StatusFor classifies a booking date against today at day granularity:
// Upcoming iff date >= today. Unparseable dates (including "TBD") are
// not upcoming and default to Completed.
func StatusFor(date string, today time.Time) models.BookingStatus {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return models.BookingStatusCompleted
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(day) {
		return models.BookingStatusCompleted
	}
	return models.BookingStatusUpcoming
}

// Record fills defaults, stamps the booking, appends it to the history
// and overwrites the latest-booking pointer. Both writes happen
// unconditionally; the only validation is default substitution for
// absent fields. The stored booking is returned.
func (l *Ledger) Record(ctx context.Context, b models.Booking) (models.Booking, error) {
	if b.Event == "" {
		b.Event = l.opts.DefaultEvent
	}
	if b.Location == "" {
		b.Location = l.opts.DefaultLocation
	}
	if b.Date == "" {
		b.Date = "TBD"
	}

	now := l.opts.Now().UTC()
	b.ID = uuid.New().String()
	b.CreatedAt = now
	b.Status = StatusFor(b.Date, now)

	history, err := l.load(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	history = append(history, b)

	if err := l.codec.Set(ctx, keyHistory, history); err != nil {
		return models.Booking{}, fmt.Errorf("failed to save booking history: %w", err)
	}
	if err := l.codec.Set(ctx, keyLatest, b); err != nil {
		return models.Booking{}, fmt.Errorf("failed to save latest booking: %w", err)
	}

	l.log.Info(ctx, "booking recorded",
		"booking_id", b.ID, "companion", b.Companion, "date", b.Date, "status", b.Status)
	return b, nil
}

// History returns every recorded booking in insertion order. A missing
// or malformed history reads as empty.
func (l *Ledger) History(ctx context.Context) ([]models.Booking, error) {
	history, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	if l.opts.RecomputeStatusOnRead {
		today := l.opts.Now().UTC()
		for i := range history {
			history[i].Status = StatusFor(history[i].Date, today)
		}
	}
	return history, nil
}

// Latest returns the most recently recorded booking, or nil when none
// has been recorded yet.
func (l *Ledger) Latest(ctx context.Context) (*models.Booking, error) {
	var b models.Booking
	ok, err := l.codec.Get(ctx, keyLatest, &b)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest booking: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if l.opts.RecomputeStatusOnRead {
		b.Status = StatusFor(b.Date, l.opts.Now().UTC())
	}
	return &b, nil
}

func (l *Ledger) load(ctx context.Context) ([]models.Booking, error) {
	var history []models.Booking
	if _, err := l.codec.Get(ctx, keyHistory, &history); err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}
	return history, nil
}
