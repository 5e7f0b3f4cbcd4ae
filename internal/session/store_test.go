package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/service"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type staticLister struct{ calls int }

func (l *staticLister) ListAssets(context.Context) (models.AssetDirectory, error) {
	l.calls++
	return models.AssetDirectory{{ID: "bitcoin", Symbol: "BTC"}}, nil
}

func newTestStore(clock Clock, lister service.DirectoryLister) *Store {
	return NewStore(10*time.Minute, clock, func() *service.DirectoryMemo {
		return service.NewDirectoryMemo(lister)
	})
}

func TestStore_CreateAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	st := newTestStore(clock, &staticLister{})

	s := st.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, DefaultRange(clock.now), s.State().Range)
	assert.Equal(t, "", s.State().Symbol)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("unknown")
	assert.False(t, ok)
}

func TestStore_EvictsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	st := newTestStore(clock, &staticLister{})

	old := st.Create()
	clock.now = clock.now.Add(5 * time.Minute)
	_, ok := st.Get(old.ID) // refreshes idle timer
	require.True(t, ok)

	clock.now = clock.now.Add(11 * time.Minute)
	_, ok = st.Get(old.ID)
	assert.False(t, ok)

	idle := st.Create()
	clock.now = clock.now.Add(11 * time.Minute)
	st.Create()
	_, ok = st.Get(idle.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestSession_OwnDirectoryMemo(t *testing.T) {
	lister := &staticLister{}
	st := newTestStore(&fakeClock{now: time.Now()}, lister)

	a, b := st.Create(), st.Create()
	_, _ = a.Directory.Get(context.Background())
	_, _ = a.Directory.Get(context.Background())
	_, _ = b.Directory.Get(context.Background())
	assert.Equal(t, 2, lister.calls, "one fetch per session")
}

func TestSession_Commit(t *testing.T) {
	st := newTestStore(&fakeClock{now: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}, &staticLister{})
	s := st.Create()
	next := s.State()
	next.Symbol = "ETH"
	assert.Equal(t, "", s.State().Symbol, "copy must not alias session state")
	s.Commit(next)
	assert.Equal(t, "ETH", s.State().Symbol)
}
