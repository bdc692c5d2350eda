package schedule

import "errors"

// Resolution failures are all equivalent to "incomplete input" for the
// caller; the distinct sentinels exist so messages can say which field to
// fix.
var (
	// ErrNotANumber indicates a numeric field did not parse as an integer.
	ErrNotANumber = errors.New("schedule field is not a number")

	// ErrInvalidDate indicates a field is out of range or the date does not
	// exist on the calendar.
	ErrInvalidDate = errors.New("invalid calendar date or time")

	// ErrUnknownZone indicates the timezone query matched no known zone.
	ErrUnknownZone = errors.New("unknown timezone")

	// ErrNonexistentTime indicates the local time falls in a DST
	// spring-forward gap and never occurred in the target zone.
	ErrNonexistentTime = errors.New("local time does not exist in zone")
)
