package utils

import (
	"fmt"
	"time"
)

// PointerNow returns the current time as a pointer.
func PointerNow() *time.Time {
	now := time.Now()
	return &now
}

// TimeAgo renders a timestamp as a coarse relative age for display
// ("just now", "5m ago", "3h ago", "2d ago").
func TimeAgo(t time.Time) string {
	mins := int(time.Since(t).Minutes())
	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case mins < 1440:
		return fmt.Sprintf("%dh ago", mins/60)
	default:
		return fmt.Sprintf("%dd ago", mins/1440)
	}
}
