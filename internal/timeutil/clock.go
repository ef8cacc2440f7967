package timeutil

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// 14:05:09, optionally prefixed with a date token ("2024-03-01 14:05:09").
	clock24Re = regexp.MustCompile(`(?:^|\s)(\d{1,2}):(\d{2}):(\d{2})\s*$`)
	// 2:05:09 PM, optionally prefixed with a date token.
	clock12Re = regexp.MustCompile(`(?i)(?:^|\s)(\d{1,2}):(\d{2}):(\d{2})\s*([AP]M)\s*$`)
	// 2024-03-01 14:05 (date followed by hours and minutes only).
	dateMinuteRe = regexp.MustCompile(`^\S+\s+(\d{1,2}):(\d{2})\s*$`)
)

// ParseClock converts a raw clock string into seconds since local midnight.
// Accepted shapes: "HH:MM:SS" (optionally date-prefixed), "HH:MM:SS AM/PM"
// (optionally date-prefixed), and "date HH:MM". Returns ok=false when no
// shape matches; malformed input never produces an error.
func ParseClock(value string) (float64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}

	if m := clock12Re.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		if hours < 1 || hours > 12 || minutes > 59 || seconds > 59 {
			return 0, false
		}
		if strings.EqualFold(m[4], "pm") {
			if hours != 12 {
				hours += 12
			}
		} else if hours == 12 {
			hours = 0
		}
		return float64(hours*3600 + minutes*60 + seconds), true
	}

	if m := clock24Re.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		if hours > 23 || minutes > 59 || seconds > 59 {
			return 0, false
		}
		return float64(hours*3600 + minutes*60 + seconds), true
	}

	if m := dateMinuteRe.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours > 23 || minutes > 59 {
			return 0, false
		}
		return float64(hours*3600 + minutes*60), true
	}

	return 0, false
}

// FormatSeconds renders seconds since midnight as H:MM:SS for display.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return strconv.Itoa(h) + ":" + pad2(m) + ":" + pad2(s)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
