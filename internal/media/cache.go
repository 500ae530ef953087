// Package media maps authored assets onto Telegram file_id handles so
// each file is uploaded at most once.
package media

import (
	"errors"
	"log"

	"github.com/DmitryFreeLance/waterbot/internal/storage"
)

// PhotoKey builds the cache key for a photo asset, e.g. "photo:2.jpg".
func PhotoKey(file string) string { return "photo:" + file }

// VideoKey builds the cache key for a video asset, e.g. "video:1.MP4".
func VideoKey(file string) string { return "video:" + file }

// Store is the slice of the persistent store the cache needs.
type Store interface {
	MediaFileID(key string) (string, error)
	SaveMediaFileID(key, fileID string) error
}

// Cache is a read-through cache of Telegram-issued file_ids. The key is
// derived from the logical file name only, not a content hash: replacing
// a file on disk under the same name will keep serving the old upload.
type Cache struct {
	store Store
}

func NewCache(s Store) *Cache {
	return &Cache{store: s}
}

// Resolve returns the cached file_id for key. A storage fault reads as a
// miss so the caller falls back to the upload path.
func (c *Cache) Resolve(key string) (string, bool) {
	id, err := c.store.MediaFileID(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("media cache: lookup %q failed: %v", key, err)
		}
		return "", false
	}
	return id, true
}

// Store saves fileID under key. Losing a cache opportunity is non-fatal,
// so faults are logged and swallowed.
func (c *Cache) Store(key, fileID string) {
	if fileID == "" {
		return
	}
	if err := c.store.SaveMediaFileID(key, fileID); err != nil {
		log.Printf("media cache: store %q failed: %v", key, err)
	}
}
