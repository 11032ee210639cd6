// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notesadapters "notes_backend/internal/feature/notes/adapters"
	"notes_backend/internal/platform/cache"
)

// NewNoteRepository creates the note repository wrapped with the Redis
// read-through cache. With a nil client the cache layer is a passthrough,
// so callers never need to branch on cache availability.
func NewNoteRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) *cache.CachingNoteRepository {
	return cache.NewCachingNoteRepository(rdb, ttl, notesadapters.NewNoteRepository(db), "notes")
}
