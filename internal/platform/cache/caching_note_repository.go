// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/feature/notes/usecase"
)

// CachingNoteRepository decorates a NoteRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingNoteRepository struct {
	inner     usecase.NoteRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NoteRepository = (*CachingNoteRepository)(nil)

// NewCachingNoteRepository decorates a NoteRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "notes".
// A nil rdb disables caching entirely and passes every call straight through.
func NewCachingNoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NoteRepository, namespace string) *CachingNoteRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "notes"
	}
	return &CachingNoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a note and invalidates the owner's cached listings.
func (c *CachingNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	// First write to the underlying repository (PostgreSQL)
	if err := c.inner.Create(ctx, note); err != nil {
		return err
	}
	_ = c.InvalidateOwner(ctx, note.OwnerID) // Best effort: don't fail if cache deletion fails
	return nil
}

// ListByOwner retrieves the owner's notes, checking cache first then falling
// back to the database.
func (c *CachingNoteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Note, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID)
	}

	key := c.listKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Note
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID always reads through to the database. Single-row lookups are cheap
// and caching them would complicate invalidation.
func (c *CachingNoteRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Note, error) {
	return c.inner.FindByID(ctx, id, ownerID)
}

// Update modifies a note and invalidates the owner's cached listings.
func (c *CachingNoteRepository) Update(ctx context.Context, id, ownerID uuid.UUID, upd entity.NoteUpdate) (*entity.Note, error) {
	note, err := c.inner.Update(ctx, id, ownerID, upd)
	if err != nil {
		return nil, err
	}
	_ = c.InvalidateOwner(ctx, ownerID) // Best effort
	return note, nil
}

// Delete removes a note and invalidates the owner's cached listings.
// The cache is left untouched when nothing was deleted.
func (c *CachingNoteRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	deleted, err := c.inner.Delete(ctx, id, ownerID)
	if err != nil {
		return false, err
	}
	if deleted {
		_ = c.InvalidateOwner(ctx, ownerID) // Best effort
	}
	return deleted, nil
}

// SearchByTitle retrieves matching notes, checking cache first then falling
// back to the database. Each search term gets its own cache entry.
func (c *CachingNoteRepository) SearchByTitle(ctx context.Context, ownerID uuid.UUID, term string) ([]entity.Note, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.SearchByTitle(ctx, ownerID, term)
	}

	key := c.searchKey(ownerID, term)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Note
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.SearchByTitle(ctx, ownerID, term)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// InvalidateOwner drops every cached listing for the given owner. The auth
// feature also calls this when an account is deleted.
func (c *CachingNoteRepository) InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.ownerPrefix(ownerID)+"*")
}

// listKey generates the cache key for an owner's full note listing.
func (c *CachingNoteRepository) listKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:list", c.namespace, ownerID)
}

// searchKey generates the cache key for an owner's search results. The term
// is hex-encoded so distinct terms can never share a key.
func (c *CachingNoteRepository) searchKey(ownerID uuid.UUID, term string) string {
	return fmt.Sprintf("%s:%s:search:%s", c.namespace, ownerID, hex.EncodeToString([]byte(term)))
}

// ownerPrefix generates the common prefix of all cache keys for one owner.
func (c *CachingNoteRepository) ownerPrefix(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:", c.namespace, ownerID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingNoteRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
