package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onedate/onedate/internal/common"
	"github.com/onedate/onedate/internal/models"
)

func TestCanAccess_BookingRequiresLogin(t *testing.T) {
	assert.False(t, CanAccess(models.Session{}, ResourceBooking))
	assert.True(t, CanAccess(models.Session{LoggedIn: true, Email: "a@b.c"}, ResourceBooking))
}

func TestCanAccess_UnknownResourceIsOpen(t *testing.T) {
	assert.True(t, CanAccess(models.Session{}, "home"))
}

func TestRequire_DeniedAsErrorValue(t *testing.T) {
	err := Require(models.Session{}, ResourceBooking)
	require.ErrorIs(t, err, common.ErrAccessDenied)

	require.NoError(t, Require(models.Session{LoggedIn: true, Email: "a@b.c"}, ResourceBooking))
}
