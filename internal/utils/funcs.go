package utils

import (
	"time"
)

// WindowTimeLayout is the layout accepted for analysis window bounds on the
// command line. Times are interpreted as UTC.
const WindowTimeLayout = "2006-01-02 15:04:05"

func IsIn(s string, arr []string) bool {
	for _, x := range arr {
		if s == x {
			return true
		}
	}
	return false
}

// ParseUTCTime parses a string-represented time of the format
// 2006-01-02 15:04:05 and interprets it as UTC.
func ParseUTCTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WindowTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
