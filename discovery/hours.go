package discovery

import (
	"strconv"
	"strings"
	"time"
)

// OpenAt reports whether now falls inside a free-text visiting-hours range
// such as "9:00 AM - 5:00 PM". A missing or unparsable range is treated as
// always open. A close time earlier than the open time means the window
// crosses midnight.
func OpenAt(visitTimeRange string, now time.Time) bool {
	if strings.TrimSpace(visitTimeRange) == "" {
		return true
	}

	parts := strings.SplitN(visitTimeRange, "-", 2)
	if len(parts) != 2 {
		return true
	}

	openMinutes, ok := parseClockMinutes(parts[0])
	if !ok {
		return true
	}
	closeMinutes, ok := parseClockMinutes(parts[1])
	if !ok {
		return true
	}

	currentMinutes := now.Hour()*60 + now.Minute()

	if closeMinutes < openMinutes {
		return currentMinutes >= openMinutes || currentMinutes <= closeMinutes
	}
	return currentMinutes >= openMinutes && currentMinutes <= closeMinutes
}

// parseClockMinutes converts a single human time expression ("9:00 AM",
// "22:15", "7 pm") to minutes since midnight. The am/pm marker is detected
// case-insensitively; without one the digits are read as a 24-hour clock.
func parseClockMinutes(timeStr string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(timeStr))

	isPM := strings.Contains(s, "pm")
	isAM := strings.Contains(s, "am")

	s = strings.ReplaceAll(s, "pm", "")
	s = strings.ReplaceAll(s, "am", "")
	s = strings.TrimSpace(s)

	timeParts := strings.Split(s, ":")
	hours, err := strconv.Atoi(strings.TrimSpace(timeParts[0]))
	if err != nil {
		return 0, false
	}

	minutes := 0
	if len(timeParts) > 1 {
		minutes, err = strconv.Atoi(strings.TrimSpace(timeParts[1]))
		if err != nil {
			return 0, false
		}
	}

	// 12 AM is midnight, 12 PM is noon
	if isPM && hours < 12 {
		hours += 12
	}
	if isAM && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, true
}
