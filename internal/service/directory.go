package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/logger"
)

// DirectoryLister fetches the asset directory from the provider.
type DirectoryLister interface {
	ListAssets(ctx context.Context) (models.AssetDirectory, error)
}

// DirectoryMemo is a memoized asset directory.
//
// Behavior:
//   - The first Get fetches through the lister; later calls reuse the result.
//   - Concurrent first calls share a single upstream fetch.
//   - Failed fetches are not memoized; the next Get tries again.
//   - Reset drops the memoized value. A fetch started before Reset never
//     repopulates the memo.
//
// A fresh memo is created at session start, which is the invalidation point
// of the directory for that session.
type DirectoryMemo struct {
	lister DirectoryLister
	group  singleflight.Group

	mu        sync.RWMutex
	gen       uint64
	dir       models.AssetDirectory
	loaded    bool
	fetchedAt time.Time
}

// NewDirectoryMemo returns an empty memo backed by lister.
func NewDirectoryMemo(lister DirectoryLister) *DirectoryMemo {
	return &DirectoryMemo{lister: lister}
}

// Get returns the memoized directory, fetching it on first use.
func (m *DirectoryMemo) Get(ctx context.Context) (models.AssetDirectory, error) {
	m.mu.RLock()
	if m.loaded {
		dir := m.dir
		m.mu.RUnlock()
		return dir, nil
	}
	gen := m.gen
	m.mu.RUnlock()

	v, err, _ := m.group.Do("directory:"+strconv.FormatUint(gen, 10), func() (any, error) {
		// a flight for this generation may have completed since the check above
		m.mu.RLock()
		if m.loaded && m.gen == gen {
			dir := m.dir
			m.mu.RUnlock()
			return dir, nil
		}
		m.mu.RUnlock()

		dir, err := m.lister.ListAssets(ctx)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		if m.gen == gen {
			m.dir, m.loaded, m.fetchedAt = dir, true, time.Now().UTC()
		}
		m.mu.Unlock()
		logger.L().Debug().Int("assets", len(dir)).Msg("asset directory fetched")
		return dir, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(models.AssetDirectory), nil
}

// Reset invalidates the memoized directory.
func (m *DirectoryMemo) Reset() {
	m.mu.Lock()
	m.gen++
	m.dir, m.loaded, m.fetchedAt = nil, false, time.Time{}
	m.mu.Unlock()
}

// FetchedAt reports when the memoized directory was fetched (zero if none).
func (m *DirectoryMemo) FetchedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetchedAt
}
