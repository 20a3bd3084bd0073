package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/artmarket/internal/client/client"
	"github.com/dmitrijs2005/artmarket/internal/credentials"
	"github.com/dmitrijs2005/artmarket/internal/logging"
	"github.com/dmitrijs2005/artmarket/internal/models"
	"github.com/stretchr/testify/require"
)

// ---- fake directory client ----

type fakeClient struct {
	mu sync.Mutex

	Users    []models.User
	UsersErr error

	LoginUser models.User
	LoginErr  error

	PingErr error

	LoginCalls int
	LastEmail  string
	LastPass   string
}

func (f *fakeClient) GetAllUsers(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	out := make([]models.User, len(f.Users))
	copy(out, f.Users)
	return out, nil
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	f.LastEmail, f.LastPass = email, password
	return f.LoginUser, f.LoginErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

// ---- deterministic ids and clock ----

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var fixedNow = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// ---- environment ----

type testEnv struct {
	fc      *fakeClient
	repos   *client.Repositories
	ids     *seqIDs
	session *Session
	catalog *Catalog
	mod     *Moderation
}

func newEnv(t *testing.T, fc *fakeClient, opts ...CatalogOption) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := client.NewRepositories(db)
	ids := &seqIDs{}
	log := logging.NewDiscard()

	s := NewSession(fc, repos.KV, ids, credentials.Plain{}, log)
	s.now = clock
	c := NewCatalog(s, repos.KV, repos.Purchases, ids, log, opts...)
	c.now = clock
	m := NewModeration(s, c, repos.KV, ids, log)
	m.now = clock

	require.NoError(t, s.Activate(ctx))
	require.NoError(t, c.Load(ctx))
	require.NoError(t, m.Load(ctx))

	return &testEnv{fc: fc, repos: repos, ids: ids, session: s, catalog: c, mod: m}
}

// login makes u the current user through the fake directory.
func (e *testEnv) login(t *testing.T, u models.User) {
	t.Helper()
	e.fc.LoginUser, e.fc.LoginErr = u, nil
	require.True(t, e.session.Login(context.Background(), u.Email, "pw"))
}
