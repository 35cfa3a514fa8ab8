// Package parser extracts appointments from the survey's free-text field.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/utils"
)

var clauseSeparator = regexp.MustCompile(`(?i)[,;\n]|\band\b`)

// intentRule maps a keyword pattern to an appointment type. Rules are
// checked in order and the first match wins.
type intentRule struct {
	pattern  *regexp.Regexp
	kind     models.AppointmentType
	fulfills models.TaskKind
}

var intentRules = []intentRule{
	{
		pattern:  regexp.MustCompile(`(?i)\b(walk\w*|stroll\w*|park|outdoors?|outside|hike|hiking)\b`),
		kind:     models.AppointmentOuting,
		fulfills: models.TaskKindWalk,
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(visit\w*|guests?|play\s?dates?|coming over|come over|friends?|grandma|grandpa|grandparents?|nana|auntie?|uncle)\b`),
		kind:    models.AppointmentVisitor,
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(doctors?|dr\.?|appointments?|appt|check-?ups?|pediatrician|paediatrician|dentist|clinic|hospital|vaccin\w*|shots|nurse|gp)\b`),
		kind:    models.AppointmentAppointment,
	},
	{
		pattern: regexp.MustCompile(`(?i)(\blibrary\b|\bcaf[eé]s?\b|\bcoffee\b|\bmuseum\b|\bzoo\b|\bshop\w*|\bstores?\b|\bgrocer\w*|\bmall\b|\berrands?\b|\bmarket\b|\bclass\b|\bswim\w*|\baquarium\b|\bbrunch\b|\blunch\b)`),
		kind:    models.AppointmentOuting,
	},
}

const timeToken = `(\d{1,2})(?::(\d{2}))?\s*([ap]\.?m\.?)?`

var (
	durationPattern = regexp.MustCompile(`(?i)\bfor\s+(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`)
	rangePattern    = regexp.MustCompile(`(?i)(?:\bfrom\s+)?\b` + timeToken + `\s*(?:-|–|\bto\b|\buntil\b|\btill\b|\btil\b)\s*` + timeToken + `\b`)
	meridiemPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m\b\.?`)
	atPattern       = regexp.MustCompile(`(?i)(?:\b(?:at|by|around)\s+|@\s*)(\d{1,2})(?::(\d{2}))?\b`)
	clockPattern    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	noonPattern     = regexp.MustCompile(`(?i)\b(noon|midday|lunchtime)\b`)
	bareHourPattern = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// ParseAppointments splits text into clauses and returns one Appointment per
// non-empty clause, in input order.
func ParseAppointments(text string) []models.Appointment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var appointments []models.Appointment
	for _, clause := range clauseSeparator.Split(text, -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		appointments = append(appointments, ParseClause(clause))
	}
	return appointments
}

// ParseClause classifies a single clause and extracts its interval.
func ParseClause(clause string) models.Appointment {
	appt := models.Appointment{
		Description: clause,
		Type:        models.AppointmentOther,
	}
	for _, rule := range intentRules {
		if rule.pattern.MatchString(clause) {
			appt.Type = rule.kind
			appt.FulfillsTask = rule.fulfills
			break
		}
	}

	start, end, ok := extractInterval(clause, appt.Type)
	if !ok {
		logger.Debug("No time found in appointment clause", "clause", clause, "type", appt.Type)
		return appt
	}
	appt.StartMinutes = &start
	appt.EndMinutes = &end
	return appt
}

func extractInterval(clause string, kind models.AppointmentType) (int, int, bool) {
	span := defaultSpan(kind)
	if m := durationPattern.FindStringSubmatch(clause); m != nil {
		if d := parseDuration(m[1], m[2]); d > 0 {
			span = d
		}
		clause = durationPattern.ReplaceAllString(clause, " ")
	}

	if start, end, ok := extractRange(clause); ok {
		return start, end, true
	}

	start, ok := extractSingle(clause)
	if !ok {
		return 0, 0, false
	}
	end := start + span
	if end >= constants.MinutesPerDay {
		end = constants.MinutesPerDay - 1
	}
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func defaultSpan(kind models.AppointmentType) int {
	if kind == models.AppointmentAppointment {
		return constants.AppointmentSpanMin
	}
	return constants.OutingSpanMin
}

func parseDuration(amount, unit string) int {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}
	if strings.HasPrefix(strings.ToLower(unit), "h") {
		return int(v * 60)
	}
	return int(v)
}

// extractRange handles "2-4pm", "2 to 4", "from 10am until 11:30".
func extractRange(clause string) (int, int, bool) {
	m := rangePattern.FindStringSubmatch(clause)
	if m == nil {
		return 0, 0, false
	}
	startHour, startMin, startMer := m[1], m[2], normalizeMeridiem(m[3])
	endHour, endMin, endMer := m[4], m[5], normalizeMeridiem(m[6])

	var start int
	switch {
	case startMer != "":
		start = utils.ToMinutes(clockText(startHour, startMin, startMer))
	case endMer != "":
		// "2-4pm": borrow the end's meridiem when that keeps the range forward.
		borrowed := utils.ToMinutes(clockText(startHour, startMin, endMer))
		endWithMer := utils.ToMinutes(clockText(endHour, endMin, endMer))
		if borrowed < endWithMer {
			start = borrowed
		} else {
			start = utils.ToMinutes(clockText(startHour, startMin, ""))
		}
	default:
		start = utils.ToMinutes(clockText(startHour, startMin, ""))
	}

	if endMer == "" {
		endMer = inferEndMeridiem(start, endHour)
	}
	end := utils.ToMinutes(clockText(endHour, endMin, endMer))

	if start == 0 || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// inferEndMeridiem assumes PM when the range started in the afternoon, or
// when the bare end hour is between 1 and 7.
func inferEndMeridiem(start int, endHour string) string {
	if start >= constants.MiddayStartMinutes {
		return "pm"
	}
	h, err := strconv.Atoi(endHour)
	if err == nil && h >= 1 && h <= 7 {
		return "pm"
	}
	return ""
}

func extractSingle(clause string) (int, bool) {
	if m := meridiemPattern.FindStringSubmatch(clause); m != nil {
		if v := utils.ToMinutes(clockText(m[1], m[2], m[3]+"m")); v > 0 {
			return v, true
		}
	}
	if m := atPattern.FindStringSubmatch(clause); m != nil {
		if v := utils.ToMinutes(clockText(m[1], m[2], "")); v > 0 {
			return v, true
		}
	}
	if m := clockPattern.FindStringSubmatch(clause); m != nil {
		if v := utils.ToMinutes(clockText(m[1], m[2], "")); v > 0 {
			return v, true
		}
	}
	if noonPattern.MatchString(clause) {
		return constants.MiddayStartMinutes, true
	}
	if m := bareHourPattern.FindStringSubmatch(clause); m != nil {
		if h, _ := strconv.Atoi(m[1]); h >= 1 && h <= 12 {
			return utils.ToMinutes(m[1]), true
		}
	}
	return 0, false
}

func normalizeMeridiem(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, ".", ""))
	switch s {
	case "am", "pm":
		return s
	}
	return ""
}

func clockText(hour, minute, meridiem string) string {
	if minute == "" {
		minute = "00"
	}
	text := hour + ":" + minute
	if meridiem != "" {
		text += " " + meridiem
	}
	return text
}
