package models

// Session identifies which user, if any, is currently authenticated on
// this device. It is an explicit value passed to callers (the access
// guard in particular) rather than an ambient global.
//
// Invariant: LoggedIn == true implies Email resolves to a registered user;
// the session manager reports a stale email as logged out.
type Session struct {
	LoggedIn bool
	Email    string
}
