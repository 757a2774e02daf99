package statusline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Usage snapshot TTLs. The session window moves fast, the weekly one
// does not.
const (
	SessionCacheTTL = time.Minute
	WeeklyCacheTTL  = 5 * time.Minute
)

// Cache file names under the cache directory.
const (
	SessionCacheName = "session.json"
	WeeklyCacheName  = "weekly.json"
)

// Usage is a cached utilization snapshot for one billing window.
type Usage struct {
	Pct      int    `json:"pct"`
	ResetsAt string `json:"resets_at,omitempty"`
}

// DefaultCacheDir is where snapshots live between runs.
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, "agentlink", "statusline")
}

// SaveUsage writes a snapshot for later runs. Errors are swallowed:
// the cache only ever adds information to the line.
func SaveUsage(path string, u Usage) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// readCachedUsage returns the snapshot at path when the file is newer
// than ttl, nil otherwise.
func readCachedUsage(path string, ttl time.Duration, now time.Time) *Usage {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if now.Sub(info.ModTime()) > ttl {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var u Usage
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}
	return &u
}
