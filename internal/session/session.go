// Package session tracks the currently authenticated user. The session
// is a per-device singleton backed by two store keys; it is created on
// login or signup, cleared on logout, and handed to callers as an
// explicit models.Session value.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/onedate/onedate/internal/common"
	"github.com/onedate/onedate/internal/credentials"
	"github.com/onedate/onedate/internal/directory"
	"github.com/onedate/onedate/internal/kvstore"
	"github.com/onedate/onedate/internal/logging"
	"github.com/onedate/onedate/internal/models"
)

const (
	keyLoggedIn     = "isLoggedIn"
	keyCurrentEmail = "currentUserEmail"
)

// Manager owns the session singleton. Login is a pure directory read
// plus the session write: it never mutates the user collection.
type Manager struct {
	codec  *kvstore.Codec
	dir    *directory.Directory
	hasher credentials.Hasher
	log    logging.Logger
}

func NewManager(codec *kvstore.Codec, dir *directory.Directory, hasher credentials.Hasher, log logging.Logger) *Manager {
	return &Manager{codec: codec, dir: dir, hasher: hasher, log: log}
}

// Login authenticates by email (case-insensitive) and password and
// starts a session on success. Failures are distinguished so the caller
// can show different guidance: common.ErrUserNotFound when the email is
// unknown, common.ErrWrongPassword when the credential check fails.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := m.dir.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !m.hasher.Verify(user.Password, password) {
		return nil, common.ErrWrongPassword
	}
	if err := m.Start(ctx, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

// Start overwrites the session singleton with a logged-in state for
// email. The auth flow calls it after Login or after a successful
// signup.
func (m *Manager) Start(ctx context.Context, email string) error {
	if err := m.codec.Set(ctx, keyLoggedIn, true); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if err := m.codec.Set(ctx, keyCurrentEmail, email); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	m.log.Info(ctx, "session started", "email", email)
	return nil
}

// End clears both session keys. Ending an absent session is a no-op.
func (m *Manager) End(ctx context.Context) error {
	if err := m.codec.Delete(ctx, keyLoggedIn); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if err := m.codec.Delete(ctx, keyCurrentEmail); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	m.log.Info(ctx, "session ended")
	return nil
}

// State returns the session as an explicit value for policy checks.
// A session whose email no longer resolves through the directory reads
// as logged out.
func (m *Manager) State(ctx context.Context) (models.Session, error) {
	var loggedIn bool
	if _, err := m.codec.Get(ctx, keyLoggedIn, &loggedIn); err != nil {
		return models.Session{}, err
	}
	if !loggedIn {
		return models.Session{}, nil
	}

	var email string
	if _, err := m.codec.Get(ctx, keyCurrentEmail, &email); err != nil {
		return models.Session{}, err
	}
	if _, err := m.dir.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			m.log.Warn(ctx, "session email no longer registered, treating as logged out", "email", email)
			return models.Session{}, nil
		}
		return models.Session{}, err
	}
	return models.Session{LoggedIn: true, Email: email}, nil
}

// Current resolves the logged-in user, or common.ErrNotLoggedIn when the
// session is absent, cleared, or stale.
func (m *Manager) Current(ctx context.Context) (*models.User, error) {
	s, err := m.State(ctx)
	if err != nil {
		return nil, err
	}
	if !s.LoggedIn {
		return nil, common.ErrNotLoggedIn
	}
	return m.dir.FindByEmail(ctx, s.Email)
}
