package metadata_cache

import (
	"sync"
	"time"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The catalog is immutable after load, but metadata is derived on demand and
// cheap to keep around; the TTL only matters once hot-reloading ever lands.

type metadataEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return nil, false
}

func SetMetadata(data *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call if the catalog documents are ever reloaded) ─────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
