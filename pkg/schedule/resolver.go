package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"
	// Fallback zone database for hosts without a system tzdata install.
	_ "time/tzdata"
)

// Input is the raw, possibly incomplete schedule form: six independent
// numeric fields plus a free-text timezone query. Fields keep their text
// form until Resolve so partially typed input is representable.
type Input struct {
	Day      string
	Month    string
	Year     string
	Hour     string
	Minute   string
	Second   string
	Timezone string
}

// Resolve validates the input and maps the described local wall-clock time
// to an absolute UTC instant.
//
// The disambiguation policy for the named zone:
//
//   - unique local time: that instant
//   - ambiguous local time (clocks fell back): the earlier instant, i.e.
//     the offset in effect before the transition
//   - nonexistent local time (clocks sprang forward): ErrNonexistentTime,
//     never a silently adjusted instant
func Resolve(in Input) (time.Time, error) {
	day, err := parseField(in.Day)
	if err != nil {
		return time.Time{}, err
	}
	month, err := parseField(in.Month)
	if err != nil {
		return time.Time{}, err
	}
	year, err := parseField(in.Year)
	if err != nil {
		return time.Time{}, err
	}
	hour, err := parseField(in.Hour)
	if err != nil {
		return time.Time{}, err
	}
	minute, err := parseField(in.Minute)
	if err != nil {
		return time.Time{}, err
	}
	second, err := parseField(in.Second)
	if err != nil {
		return time.Time{}, err
	}

	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, ErrInvalidDate
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}, ErrInvalidDate
	}

	name := strings.TrimSpace(in.Timezone)
	if name == "" {
		// LoadLocation treats "" as UTC; an empty query is incomplete input.
		return time.Time{}, ErrUnknownZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, ErrUnknownZone
	}

	candidates := localInstants(year, time.Month(month), day, hour, minute, second, loc)
	if len(candidates) == 0 {
		return time.Time{}, ErrNonexistentTime
	}

	return candidates[0].UTC(), nil
}

func parseField(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// daysIn returns the number of days in a month, leap years included.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// localInstants returns every instant at which the given wall-clock reading
// occurs in loc, sorted ascending. Zero instants means the reading falls in
// a DST gap; two means it falls in a fall-back overlap.
//
// The zone's UTC offset can only be one of the offsets in effect around the
// target, so each distinct offset within a day either side is tried as a
// fixed zone and kept when the wall clock round-trips.
func localInstants(year int, month time.Month, day, hour, minute, second int, loc *time.Location) []time.Time {
	probe := time.Date(year, month, day, hour, minute, second, 0, time.UTC)

	seen := make(map[int]struct{})
	var out []time.Time
	for _, delta := range []time.Duration{-24 * time.Hour, -12 * time.Hour, 0, 12 * time.Hour, 24 * time.Hour} {
		_, offset := probe.Add(delta).In(loc).Zone()
		if _, ok := seen[offset]; ok {
			continue
		}
		seen[offset] = struct{}{}

		candidate := time.Date(year, month, day, hour, minute, second, 0, time.FixedZone("", offset))
		local := candidate.In(loc)
		if local.Year() == year && local.Month() == month && local.Day() == day &&
			local.Hour() == hour && local.Minute() == minute && local.Second() == second {
			out = append(out, candidate)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
