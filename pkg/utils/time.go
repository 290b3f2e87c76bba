package utils

import "time"

// DisplayTimeLayout is the layout used for session timestamps shown to users
const DisplayTimeLayout = "2006/1/2 15:04:05"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// FormatDisplay formats a timestamp for user-facing session lists
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}
