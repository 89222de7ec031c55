// Package common defines shared helpers and sentinel errors used across
// the OneDate core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Directory errors.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")

	// Session errors. WrongPassword and UserNotFound are intentionally
	// distinct so the caller can show different guidance.
	ErrWrongPassword = errors.New("wrong password")
	ErrNotLoggedIn   = errors.New("not logged in")

	// Guard errors.
	ErrAccessDenied = errors.New("access denied")
)
