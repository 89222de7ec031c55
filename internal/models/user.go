// Package models defines the value types persisted by the OneDate core:
// users, the session singleton, bookings, and the static candidate pool.
//
// JSON field names match the shape the original site kept in browser
// storage, so a store written by one can be read by the other. The schema
// is open and additive: unknown fields are ignored, missing fields take
// zero values.
package models

// User is a registered account, keyed by email (case-insensitive).
// Created on signup; never updated or deleted in the current scope.
type User struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`

	// Password is the stored credential, opaque to everything except the
	// configured credentials.Hasher. With the plaintext hasher it is the
	// password as given; with bcrypt it is a hash.
	Password string `json:"password"`
}
