package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// ParseOrDefault parses a duration like "600ms", "0.35s", or a bare number
// of milliseconds ("600"). Empty, invalid, or non-positive values fall back
// to def so a half-written config file never stalls animation timing.
func ParseOrDefault(input string, def time.Duration) time.Duration {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return def
	}

	if d, err := time.ParseDuration(trimmed); err == nil {
		if d <= 0 {
			return def
		}
		return d
	}

	if ms, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if ms <= 0 {
			return def
		}
		return time.Duration(ms) * time.Millisecond
	}

	return def
}
