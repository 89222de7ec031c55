package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onedate/onedate/internal/kvstore"
	"github.com/onedate/onedate/internal/logging"
	"github.com/onedate/onedate/internal/models"
)

var today = time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

func newLedger(t *testing.T, opts Options) *Ledger {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return today }
	}
	if opts.DefaultEvent == "" {
		opts.DefaultEvent = "Special Event"
	}
	if opts.DefaultLocation == "" {
		opts.DefaultLocation = "Israel"
	}
	codec := kvstore.NewCodec(kvstore.NewMemoryStore(), logging.Discard())
	return New(codec, logging.Discard(), opts)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		date string
		want models.BookingStatus
	}{
		{"same day is upcoming", "2026-08-28", models.BookingStatusUpcoming},
		{"yesterday is completed", "2026-08-27", models.BookingStatusCompleted},
		{"thirty days out is upcoming", "2026-09-27", models.BookingStatusUpcoming},
		{"TBD is completed", "TBD", models.BookingStatusCompleted},
		{"garbage is completed", "not-a-date", models.BookingStatusCompleted},
		{"empty is completed", "", models.BookingStatusCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.date, today))
		})
	}
}

func TestStatusFor_TimeOfDayIsStripped(t *testing.T) {
	// Late in the evening, today's date still counts as upcoming.
	evening := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, models.BookingStatusUpcoming, StatusFor("2026-08-28", evening))
}

func TestRecord_AppendsToHistoryAndSetsLatest(t *testing.T) {
	l := newLedger(t, Options{})
	ctx := context.Background()

	first, err := l.Record(ctx, models.Booking{Companion: "Noa", Date: "2026-09-01"})
	require.NoError(t, err)
	second, err := l.Record(ctx, models.Booking{Companion: "Maya", Date: "2026-09-02"})
	require.NoError(t, err)

	history, err := l.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first, history[0])
	assert.Equal(t, second, history[1])

	latest, err := l.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second, *latest)
}

func TestRecord_FillsDefaults(t *testing.T) {
	l := newLedger(t, Options{})

	b, err := l.Record(context.Background(), models.Booking{Companion: "Tom"})
	require.NoError(t, err)

	assert.Equal(t, "Special Event", b.Event)
	assert.Equal(t, "Israel", b.Location)
	assert.Equal(t, "TBD", b.Date)
	assert.Equal(t, models.BookingStatusCompleted, b.Status) // TBD is not upcoming
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, today, b.CreatedAt)
}

func TestRecord_StatusComputedAtCreation(t *testing.T) {
	l := newLedger(t, Options{})

	b, err := l.Record(context.Background(), models.Booking{Companion: "Adi", Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpcoming, b.Status)
}

func TestHistory_Empty_ReturnsEmpty(t *testing.T) {
	l := newLedger(t, Options{})

	history, err := l.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestLatest_Empty_ReturnsNil(t *testing.T) {
	l := newLedger(t, Options{})

	latest, err := l.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestHistory_SnapshotStatus_StaysFrozenByDefault(t *testing.T) {
	clock := today
	l := newLedger(t, Options{Now: func() time.Time { return clock }})
	ctx := context.Background()

	_, err := l.Record(ctx, models.Booking{Companion: "Noa", Date: "2026-08-28"})
	require.NoError(t, err)

	// A week later the stored status still says Upcoming.
	clock = today.AddDate(0, 0, 7)
	history, err := l.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpcoming, history[0].Status)
}

func TestHistory_RecomputeOnRead_FlipsPastBooking(t *testing.T) {
	clock := today
	l := newLedger(t, Options{
		Now:                   func() time.Time { return clock },
		RecomputeStatusOnRead: true,
	})
	ctx := context.Background()

	_, err := l.Record(ctx, models.Booking{Companion: "Noa", Date: "2026-08-28"})
	require.NoError(t, err)

	clock = today.AddDate(0, 0, 7)

	history, err := l.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, history[0].Status)

	latest, err := l.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, latest.Status)

	// Recomputation is read-side only: the stored entry keeps its
	// creation-time status.
	clock = today
	stored, err := l.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusUpcoming, stored[0].Status)
}
