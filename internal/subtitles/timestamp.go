package subtitles

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp converts a timecode string into seconds. Accepted shapes are
// "HH:MM:SS.mmm", "MM:SS.mmm", and a bare seconds value; the fractional
// separator may be a comma or a dot.
func ParseTimestamp(value string) (float64, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	parts := strings.Split(value, ":")
	switch len(parts) {
	case 3:
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		seconds, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		return float64(hours*3600+minutes*60) + seconds, nil
	case 2:
		minutes, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		seconds, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		return float64(minutes*60) + seconds, nil
	case 1:
		seconds, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		return seconds, nil
	default:
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
}
