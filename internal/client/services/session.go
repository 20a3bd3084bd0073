// Package services contains the client core of the marketplace: the Session
// (who is logged in), the Catalog (artworks and artists) and Moderation
// (reports and admin views). Each service owns its state and mirrors it to
// the persisted key/value store.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/client/client"
	"github.com/dmitrijs2005/artmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/artmarket/internal/credentials"
	"github.com/dmitrijs2005/artmarket/internal/idgen"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
	"github.com/dmitrijs2005/artmarket/internal/seed"
)

// Session owns the authenticated-user state.
//
// Login and Register report success as a bool; the reason for a failure is
// only logged. The directory read-modify-write in UpdateUser and RemoveUser
// runs under the write lock, so there is a single writer at a time.
type Session struct {
	mu            sync.RWMutex
	user          models.User
	authenticated bool

	client   client.Client
	kv       kv.Repository
	ids      idgen.Generator
	verifier credentials.Verifier
	log      logging.Logger
	now      func() time.Time
}

func NewSession(c client.Client, store kv.Repository, ids idgen.Generator, verifier credentials.Verifier, log logging.Logger) *Session {
	return &Session{
		client:   c,
		kv:       store,
		ids:      ids,
		verifier: verifier,
		log:      log.With("component", "session"),
		now:      time.Now,
	}
}

// Activate seeds the local user directory on first run and restores a
// previously persisted session.
func (s *Session) Activate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		return fmt.Errorf("read users: %w", err)
	}
	if raw == nil {
		if err := kv.SetJSON(ctx, s.kv, KeyUsers, seed.Users()); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		s.log.Info(ctx, "seeded user directory")
	}

	u, ok, err := kv.GetJSON[models.User](ctx, s.kv, KeySessionUser)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if ok {
		s.user = u
		s.authenticated = true
		s.log.Info(ctx, "session restored", "user_id", u.ID)
	}
	return nil
}

// CurrentUser returns the active user, if any.
func (s *Session) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.authenticated
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Ping checks that the directory service is reachable.
func (s *Session) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Login validates the credentials against the directory service and makes
// the returned user current. Any failure leaves the session untouched.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return false
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setCurrentLocked(ctx, s.kv, u); err != nil {
		s.log.Error(ctx, "persist session failed", "user_id", u.ID, "error", err)
		return false
	}
	s.log.Info(ctx, "logged in", "user_id", u.ID)
	return true
}

// Register creates a local account and logs it in. It fails when the email
// is already present in the directory.
func (s *Session) Register(ctx context.Context, name, email, password string) bool {
	users := s.Directory(ctx)
	for _, u := range users {
		if u.Email == email {
			s.log.Info(ctx, "registration rejected, email taken", "email", email)
			return false
		}
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		s.log.Error(ctx, "hash password failed", "error", err)
		return false
	}

	nu := models.User{
		ID:        s.ids.NewID(),
		Name:      name,
		Email:     email,
		Password:  stored,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevAuth := s.user, s.authenticated
	err = s.kv.WithinTx(ctx, func(ctx context.Context, tx kv.Repository) error {
		if err := kv.SetJSON(ctx, tx, KeyUsers, append(users, nu)); err != nil {
			return err
		}
		return s.setCurrentLocked(ctx, tx, nu)
	})
	if err != nil {
		s.user, s.authenticated = prev, prevAuth
		s.log.Error(ctx, "persist registration failed", "email", email, "error", err)
		return false
	}
	s.log.Info(ctx, "registered", "user_id", nu.ID)
	return true
}

// Logout ends the session. It always succeeds.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	if err := s.kv.Delete(ctx, KeySessionUser); err != nil {
		s.log.Error(ctx, "clear persisted session failed", "error", err)
	}
}

// UpdateUser merges patch into the active user, persists it as the current
// session and replaces the matching entry in the directory. Without an
// active user it does nothing.
func (s *Session) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		return nil
	}

	merged := patch.Apply(s.user)
	if err := kv.SetJSON(ctx, s.kv, KeySessionUser, merged); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.user = merged

	users := s.Directory(ctx)
	for i := range users {
		if users[i].ID == merged.ID {
			users[i] = merged
		}
	}
	if err := kv.SetJSON(ctx, s.kv, KeyUsers, users); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

// Directory fetches every user from the directory service. Failures are
// logged and yield an empty slice.
func (s *Session) Directory(ctx context.Context) []models.User {
	users, err := s.client.GetAllUsers(ctx)
	if err != nil {
		s.log.Warn(ctx, "fetch directory failed", "error", err)
		return []models.User{}
	}
	return users
}

// LocalUsers returns the persisted user directory.
func (s *Session) LocalUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, _, err := kv.GetJSON[[]models.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// RemoveUser drops a user from the persisted directory.
func (s *Session) RemoveUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, _, err := kv.GetJSON[[]models.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return err
	}
	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return kv.SetJSON(ctx, s.kv, KeyUsers, kept)
}

func (s *Session) setCurrentLocked(ctx context.Context, store kv.Repository, u models.User) error {
	if err := kv.SetJSON(ctx, store, KeySessionUser, u); err != nil {
		return err
	}
	s.user = u
	s.authenticated = true
	return nil
}

func (s *Session) clearLocked() {
	s.user = models.User{}
	s.authenticated = false
}
