package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/models"
)

var (
	meridiemTimePattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?\s*m?\.?$`)
	plainTimePattern    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?$`)
)

// ToMinutes converts a human time string to minutes since midnight.
//
// Accepted forms are "1:00 PM", "1pm", "1 PM", 24-hour "13:00" and a bare
// hour. Without AM/PM, hours 1 through 6 are taken as afternoon unless
// written with a leading zero ("06:30"). Unparseable input yields 0, so a
// zero result for non-empty text must be treated as untrusted.
func ToMinutes(text string) int {
	s := strings.TrimSpace(text)
	switch strings.ToLower(s) {
	case "noon", "midday":
		return constants.MiddayStartMinutes
	case "midnight":
		return 0
	}

	if m := meridiemTimePattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0
		}
		hour %= 12
		if strings.EqualFold(m[3], "p") {
			hour += 12
		}
		return hour*60 + minute
	}

	if m := plainTimePattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour > 23 || minute > 59 {
			return 0
		}
		if hour >= 1 && hour <= 6 && !strings.HasPrefix(m[1], "0") {
			hour += 12
		}
		return hour*60 + minute
	}

	return 0
}

// ToTimeString formats minutes since midnight as "H:MM AM/PM".
// Values outside a single day wrap around.
func ToTimeString(minutes int) string {
	m := ((minutes % constants.MinutesPerDay) + constants.MinutesPerDay) % constants.MinutesPerDay
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format(constants.ClockFormat)
}

// ToTimeBlock classifies a minute offset into a part of the day.
func ToTimeBlock(minutes int) models.TimeBlock {
	switch {
	case minutes < constants.MiddayStartMinutes:
		return models.TimeBlockMorning
	case minutes < constants.AfternoonStartMinutes:
		return models.TimeBlockMidday
	case minutes < constants.EveningStartMinutes:
		return models.TimeBlockAfternoon
	default:
		return models.TimeBlockEvening
	}
}

// AgeInMonths returns the number of whole months between birthDate (YYYY-MM-DD)
// and now. Future birth dates yield 0.
func AgeInMonths(birthDate string, now time.Time) (int, error) {
	born, err := time.ParseInLocation(constants.DateFormat, birthDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	months := (now.Year()-born.Year())*12 + int(now.Month()) - int(born.Month())
	if now.Day() < born.Day() {
		months--
	}
	if months < 0 {
		return 0, nil
	}
	return months, nil
}

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
// This ensures that "today" is determined by the user's configured timezone, not the system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ResolveDate turns "today" or a YYYY-MM-DD string into a validated date string.
func ResolveDate(date, timezone string) (string, error) {
	if date == "" || date == "today" {
		return GetTodayInTimezone(timezone)
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return date, nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ValidateClockTime reports whether s parses as a time of day. Midnight
// spellings are accepted explicitly since ToMinutes returns 0 on failure.
func ValidateClockTime(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if ToMinutes(s) != 0 {
		return true
	}
	switch strings.ToLower(s) {
	case "midnight", "0", "00", "0:00", "00:00", "12:00 am", "12am", "12 am", "12:00am":
		return true
	}
	return false
}

// BabyAgeMonths derives the age in months from a stored birth date, measured
// in timezone. An empty birth date yields 0.
func BabyAgeMonths(birthDate, timezone string) (int, error) {
	if birthDate == "" {
		return 0, nil
	}
	now, err := NowInTimezone(timezone)
	if err != nil {
		return 0, err
	}
	return AgeInMonths(birthDate, now)
}
