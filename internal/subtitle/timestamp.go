package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSRTTimestamp converts an SRT timestamp (HH:MM:SS,mmm) into seconds.
// A period is tolerated in place of the comma since some tools emit it.
func ParseSRTTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// FormatSRTTimestamp renders seconds as HH:MM:SS,mmm with millisecond
// rounding.
func FormatSRTTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(math.Round(seconds * 1000))
	millis := total % 1000
	total /= 1000
	secs := total % 60
	total /= 60
	minutes := total % 60
	hours := total / 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// ParseASSTimestamp converts an ASS timestamp (H:MM:SS.cc) into seconds.
func ParseASSTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	secs, errS := strconv.ParseFloat(parts[2], 64)
	if errH != nil || errM != nil || errS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60) + secs, nil
}

// FormatASSTimestamp renders seconds as H:MM:SS.cc. Centisecond rounding
// matches the overlap resolver's adjustment granularity so serialization
// cannot collapse a resolved cue back to zero duration.
func FormatASSTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(math.Round(seconds * 100))
	centis := total % 100
	total /= 100
	secs := total % 60
	total /= 60
	minutes := total % 60
	hours := total / 60
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}
