package utils

import (
	"strconv"
	"time"
)

// ParseTimestamp converts a 13-digit millisecond timestamp string.
func ParseTimestamp(tsStr string) (time.Time, error) {
	ms, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	sec := ms / 1000
	nsec := (ms % 1000) * 1e6
	return time.Unix(sec, nsec), nil
}

// IsTimestampValid reports whether ts is within the replay window.
func IsTimestampValid(ts time.Time, window time.Duration) bool {
	diff := time.Since(ts)
	return diff >= 0 && diff <= window
}

func GetTimestampMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func PtrTime(t time.Time) *time.Time { return &t }

func PtrString(s string) *string { return &s }
