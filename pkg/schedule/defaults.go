package schedule

import (
	"fmt"
	"time"
)

// Defaults fills an Input for a schedule form that has never been touched:
// today's date, half an hour from now, zero seconds, in the system's local
// zone. This is a UX convenience, not part of the resolution contract.
func Defaults() Input {
	return DefaultsAt(time.Now())
}

// DefaultsAt is Defaults anchored at an explicit clock reading.
func DefaultsAt(now time.Time) Input {
	now = now.Local()
	future := now.Add(30 * time.Minute)

	return Input{
		Day:      fmt.Sprintf("%02d", now.Day()),
		Month:    fmt.Sprintf("%02d", int(now.Month())),
		Year:     fmt.Sprintf("%04d", now.Year()),
		Hour:     fmt.Sprintf("%02d", future.Hour()),
		Minute:   fmt.Sprintf("%02d", future.Minute()),
		Second:   "00",
		Timezone: now.Location().String(),
	}
}
