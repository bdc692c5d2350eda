// Package schedule resolves free-form date/time/timezone input into an
// absolute UTC instant.
//
// Input carries six numeric text fields (day, month, year, hour, minute,
// second) and a timezone name; Resolve validates all of them, applies a
// deterministic DST policy (ambiguous readings take the earlier instant,
// nonexistent readings fail), and returns the instant in UTC. Any failure
// is a sentinel error the caller treats the same as incomplete input.
package schedule
