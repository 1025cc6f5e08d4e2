// Package timeutil parses the report windows accepted on the command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the report window used when none is provided.
	DefaultWindow = "1w"

	day = 24 * time.Hour
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]time.Duration{
		"h":      time.Hour,
		"hr":     time.Hour,
		"hrs":    time.Hour,
		"hour":   time.Hour,
		"hours":  time.Hour,
		"d":      day,
		"day":    day,
		"days":   day,
		"w":      7 * day,
		"wk":     7 * day,
		"week":   7 * day,
		"weeks":  7 * day,
		"mo":     30 * day,
		"month":  30 * day,
		"months": 30 * day,
		"y":      365 * day,
		"yr":     365 * day,
		"year":   365 * day,
		"years":  365 * day,
	}
)

// Window is a trailing span of time ending now.
type Window struct {
	Duration time.Duration
	Label    string
}

// ParseWindow parses a human-friendly span such as "3d", "2w" or "1w2d".
// An empty input is DefaultWindow.
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		remaining = DefaultWindow
	}

	var total time.Duration
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return Window{Duration: total, Label: FormatWindow(total)}, nil
}

// Days reports whether the window is a whole number of days.
func (w Window) Days() (int, bool) {
	if w.Duration <= 0 || w.Duration%day != 0 {
		return 0, false
	}
	return int(w.Duration / day), true
}

// Range returns the [since, until] span of the window ending at now. Whole
// day windows cover that many UTC calendar dates, today included, so they
// line up with day log keys.
func (w Window) Range(now time.Time) (time.Time, time.Time) {
	if n, ok := w.Days(); ok {
		u := now.UTC()
		today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
		return today.AddDate(0, 0, -(n - 1)), now
	}
	return now.Add(-w.Duration), now
}

// FormatWindow renders a duration using week, day and hour tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0h"
	}

	units := []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * day},
		{"d", day},
		{"h", time.Hour},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0h"
	}
	return strings.Join(parts, "")
}
