// Package guard decides whether a protected action or page is permitted
// given the current session. It is a pure policy: it never mutates
// session state, and a violation is a denial value, not a fault.
package guard

import (
	"github.com/onedate/onedate/internal/common"
	"github.com/onedate/onedate/internal/models"
)

// ResourceBooking names the booking page/action, the only protected
// resource in the current policy.
const ResourceBooking = "booking"

// CanAccess reports whether the session may use the named resource.
// Booking resources require a live session; unknown resources are open.
func CanAccess(s models.Session, resource string) bool {
	if resource == ResourceBooking {
		return s.LoggedIn
	}
	return true
}

// Require is CanAccess as an error value, for callers that thread the
// denial through an error path. The caller still owns the user-facing
// redirect or message.
func Require(s models.Session, resource string) error {
	if !CanAccess(s, resource) {
		return common.ErrAccessDenied
	}
	return nil
}
