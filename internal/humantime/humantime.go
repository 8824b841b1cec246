// Package humantime parses durations written the way people type them on a
// command line, such as "1h 15min 3s" or "90sec".
package humantime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var ErrEmpty = errors.New("humantime: empty duration")

//nolint:gochecknoglobals // lookup table
var units = map[string]time.Duration{
	"nsec": time.Nanosecond, "ns": time.Nanosecond,
	"usec": time.Microsecond, "us": time.Microsecond, "µs": time.Microsecond,
	"msec": time.Millisecond, "ms": time.Millisecond,
	"seconds": time.Second, "second": time.Second, "sec": time.Second, "s": time.Second,
	"minutes": time.Minute, "minute": time.Minute, "min": time.Minute, "m": time.Minute,
	"hours": time.Hour, "hour": time.Hour, "hr": time.Hour, "h": time.Hour,
	"days": 24 * time.Hour, "day": 24 * time.Hour, "d": 24 * time.Hour,
	"weeks": 7 * 24 * time.Hour, "week": 7 * 24 * time.Hour, "w": 7 * 24 * time.Hour,
}

// Parse reads a sequence of <number><unit> pairs, optionally separated by
// whitespace, and returns their sum.
func Parse(input string) (time.Duration, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrEmpty
	}

	var total time.Duration
	runes := []rune(s)
	i := 0

	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i == len(runes) {
			break
		}

		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("humantime: expected number at position %d in '%s'", start, input)
		}
		number := string(runes[start:i])

		start = i
		for i < len(runes) && unicode.IsLetter(runes[i]) {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("humantime: missing unit after '%s' in '%s'", number, input)
		}
		unitName := string(runes[start:i])

		unit, ok := units[unitName]
		if !ok {
			return 0, fmt.Errorf("humantime: unknown unit '%s' in '%s'", unitName, input)
		}

		value, err := strconv.ParseInt(number, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("humantime: invalid number '%s': %w", number, err)
		}

		if value > int64(math.MaxInt64/unit) {
			return 0, fmt.Errorf("humantime: duration '%s' overflows", input)
		}

		part := time.Duration(value) * unit
		if total > math.MaxInt64-part {
			return 0, fmt.Errorf("humantime: duration '%s' overflows", input)
		}
		total += part
	}

	return total, nil
}

// Format renders d in the same notation Parse accepts, largest unit first.
func Format(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	parts := make([]string, 0, 4)
	for _, u := range []struct {
		suffix string
		unit   time.Duration
	}{
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
	} {
		if d >= u.unit {
			parts = append(parts, fmt.Sprintf("%d%s", d/u.unit, u.suffix))
			d %= u.unit
		}
	}

	if len(parts) == 0 {
		return d.String()
	}

	return strings.Join(parts, " ")
}
