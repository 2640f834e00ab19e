package player

import "time"

const (
	// DefaultCacheSize bounds the number of cached player snapshots
	DefaultCacheSize = 1024

	// DefaultCacheTTL is how long a cached snapshot stays fresh
	DefaultCacheTTL = 30 * time.Second
)
