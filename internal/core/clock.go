package core

import (
	"fmt"
	"time"
)

// FormatClock renders d as mm:ss. Minutes keep counting past an hour.
func FormatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
