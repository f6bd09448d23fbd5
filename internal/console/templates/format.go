package templates

import (
	"strings"
	"time"
)

// FormatTime renders a registry timestamp, or a dash when unset.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// FormatTTL renders a feature TTL, or a dash when features never expire.
func FormatTTL(ttl time.Duration) string {
	if ttl <= 0 {
		return "-"
	}
	return ttl.String()
}

// FormatBool renders a yes/no flag.
func FormatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// OrDash renders a string value, or a dash when empty.
func OrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// FormatList renders a name list, or a dash when empty.
func FormatList(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
