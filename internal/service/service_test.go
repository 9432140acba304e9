package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/mailer"
	"github.com/medialogapp/medialog-server/internal/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := sqlite.Open(dbPath, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUser(t *testing.T, s *sqlite.Store, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Email: username + "@example.com", Password: "secret"}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedCategory(t *testing.T, s *sqlite.Store, owner *domain.User, name string) *domain.Category {
	t.Helper()
	cat, _, err := s.FindOrCreateCategory(context.Background(), owner.ID, name)
	require.NoError(t, err)
	return cat
}

func seedItem(t *testing.T, s *sqlite.Store, owner *domain.User, cat *domain.Category, title string) *domain.Item {
	t.Helper()
	it := &domain.Item{Title: title, UserID: owner.ID, CategoryID: cat.ID}
	require.NoError(t, s.CreateItem(context.Background(), it))
	return it
}

func seedTag(t *testing.T, s *sqlite.Store, name string) *domain.Tag {
	t.Helper()
	tag := &domain.Tag{Name: name}
	require.NoError(t, s.CreateTag(context.Background(), tag))
	return tag
}

func seedCreator(t *testing.T, s *sqlite.Store, name string) *domain.Creator {
	t.Helper()
	c := &domain.Creator{Name: name}
	require.NoError(t, s.CreateCreator(context.Background(), c))
	return c
}

// fakeEnqueuer records enqueued jobs without delivering anything.
type fakeEnqueuer struct {
	mu   sync.Mutex
	jobs []mailer.Job
}

func (f *fakeEnqueuer) Enqueue(job mailer.Job) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, job)
}

func (f *fakeEnqueuer) queued() []mailer.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Job(nil), f.jobs...)
}
