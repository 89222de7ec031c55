package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onedate/onedate/internal/logging"
	"github.com/onedate/onedate/internal/models"
)

func newCodec(t *testing.T) *Codec {
	t.Helper()
	return NewCodec(NewMemoryStore(), logging.Discard())
}

func TestCodec_RoundTripUser(t *testing.T) {
	c := newCodec(t)
	ctx := context.Background()

	in := models.User{
		FullName: "Dana Levi",
		Email:    "dana@example.com",
		Phone:    "050-1234567",
		City:     "Haifa",
		Password: "secret",
	}
	require.NoError(t, c.Set(ctx, "users", []models.User{in}))

	var out []models.User
	ok, err := c.Get(ctx, "users", &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, in, out[0])
}

func TestCodec_RoundTripBooking(t *testing.T) {
	c := newCodec(t)
	ctx := context.Background()

	in := models.Booking{
		Companion: "Maya",
		Event:     "Gala Dinner",
		Date:      "2026-09-01",
		Location:  "Tel Aviv",
		Status:    models.BookingStatusUpcoming,
	}
	require.NoError(t, c.Set(ctx, "latestBooking", in))

	var out models.Booking
	ok, err := c.Get(ctx, "latestBooking", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestCodec_AbsentKey_ReportsMissing(t *testing.T) {
	c := newCodec(t)

	var out models.Booking
	ok, err := c.Get(context.Background(), "latestBooking", &out)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCodec_MalformedStoredData_DegradesToAbsent(t *testing.T) {
	store := NewMemoryStore()
	c := NewCodec(store, logging.Discard())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", []byte("{not json")))

	var out []models.User
	ok, err := c.Get(ctx, "users", &out)
	require.NoError(t, err) // decode failure is recovered, not propagated
	require.False(t, ok)
	require.Empty(t, out)
}

func TestCodec_IgnoresUnknownFields(t *testing.T) {
	store := NewMemoryStore()
	c := NewCodec(store, logging.Discard())
	ctx := context.Background()

	raw := []byte(`{"companion":"Noa","event":"Concert","date":"TBD","location":"Israel","status":"Completed","futureField":42}`)
	require.NoError(t, store.Set(ctx, "latestBooking", raw))

	var out models.Booking
	ok, err := c.Get(ctx, "latestBooking", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Noa", out.Companion)
	assert.Equal(t, models.BookingStatusCompleted, out.Status)
}
