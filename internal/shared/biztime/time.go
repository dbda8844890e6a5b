// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone only decides
// which calendar month a timestamp falls into for statistics.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"

	// MonthKeyLayout formats month buckets, e.g. "2024-03".
	MonthKeyLayout = "2006-01"
)

var (
	bizLocation   *time.Location
	bizLocationMu sync.RWMutex
)

// Init sets the business timezone. An empty tz selects UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	bizLocationMu.Lock()
	bizLocation = loc
	bizLocationMu.Unlock()
	return nil
}

// Location returns the business timezone location, UTC until Init is called.
func Location() *time.Location {
	bizLocationMu.RLock()
	defer bizLocationMu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowMillis returns the current Unix time in milliseconds, the storage
// format of every timestamp column.
func NowMillis() int64 {
	return NowUTC().UnixMilli()
}

// FromMillis converts a stored timestamp back to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// MonthKey returns the business-timezone month bucket of t.
func MonthKey(t time.Time) string {
	return t.In(Location()).Format(MonthKeyLayout)
}
