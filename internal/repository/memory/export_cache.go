package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ExportCache keeps recently rendered export payloads in memory so repeated
// downloads of an unchanged generation skip re-rendering. Keys include the
// generation version, so a content update naturally misses.
type ExportCache struct {
	cache *cache.Cache
}

func NewExportCache() *ExportCache {
	// Rendered documents expire after 30 minutes; expired items are purged
	// every 10 minutes.
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &ExportCache{
		cache: c,
	}
}

func exportKey(generationId uuid.UUID, format string, version int) string {
	return fmt.Sprintf("%s:%s:v%d", generationId, format, version)
}

func (r *ExportCache) Save(generationId uuid.UUID, format string, version int, payload []byte) {
	r.cache.Set(exportKey(generationId, format, version), payload, cache.DefaultExpiration)
}

func (r *ExportCache) Get(generationId uuid.UUID, format string, version int) ([]byte, bool) {
	if x, found := r.cache.Get(exportKey(generationId, format, version)); found {
		return x.([]byte), true
	}
	return nil, false
}
