// Package directory owns the collection of registered users, keyed by
// email (case-insensitive), persisted whole under a single store key.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/onedate/onedate/internal/common"
	"github.com/onedate/onedate/internal/credentials"
	"github.com/onedate/onedate/internal/kvstore"
	"github.com/onedate/onedate/internal/logging"
	"github.com/onedate/onedate/internal/models"
)

// keyUsers holds the whole user collection as one JSON array, in
// insertion order.
const keyUsers = "users"

// Directory is the single writer of the user collection. Writes follow a
// load, mutate in memory, replace-whole-value discipline; the
// single-client scope makes that safe without locking.
type Directory struct {
	codec  *kvstore.Codec
	hasher credentials.Hasher
	log    logging.Logger
}

func New(codec *kvstore.Codec, hasher credentials.Hasher, log logging.Logger) *Directory {
	return &Directory{codec: codec, hasher: hasher, log: log}
}

// List returns all registered users in insertion order. A missing or
// malformed collection reads as empty.
func (d *Directory) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := d.codec.Get(ctx, keyUsers, &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// FindByEmail resolves a user by email, comparing case-insensitively.
// It returns common.ErrUserNotFound when no user matches.
func (d *Directory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, common.ErrUserNotFound
}

// Register appends a new user and persists the whole collection. It
// fails with common.ErrDuplicateEmail when the email is already taken
// (any letter case) and leaves the store untouched. The stored password
// is whatever the configured hasher produces.
//
// Registering does not start a session; the auth flow does that
// explicitly on top.
func (d *Directory) Register(ctx context.Context, u models.User) (*models.User, error) {
	users, err := d.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, u.Email) {
			return nil, common.ErrDuplicateEmail
		}
	}

	stored, err := d.hasher.Hash(u.Password)
	if err != nil {
		return nil, err
	}
	u.Password = stored

	users = append(users, u)
	if err := d.codec.Set(ctx, keyUsers, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	d.log.Info(ctx, "user registered", "email", u.Email, "city", u.City)
	return &u, nil
}
