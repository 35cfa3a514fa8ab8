// Package scheduler assembles a day's schedule from preferences, the morning
// survey and the weather.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/littleday/internal/activities"
	"github.com/julianstephens/littleday/internal/allocator"
	"github.com/julianstephens/littleday/internal/constants"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/parser"
	"github.com/julianstephens/littleday/internal/utils"
)

// Generator builds schedules. It holds no per-run state, so one Generator
// may serve concurrent calls; each call owns its own allocator.DaySchedule.
type Generator struct {
	selector  *activities.Selector
	slotTimes []int
	newID     func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithBonusSlotTimes overrides the preferred starts of the bonus activities.
func WithBonusSlotTimes(slots []int) Option {
	return func(g *Generator) {
		g.slotTimes = append([]int(nil), slots...)
	}
}

// WithIDGenerator overrides how item ids are produced.
func WithIDGenerator(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

func New(selector *activities.Selector, opts ...Option) *Generator {
	g := &Generator{
		selector:  selector,
		slotTimes: constants.DefaultBonusSlotTimes,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Selector returns the activity selector used for bonus activities.
func (g *Generator) Selector() *activities.Selector {
	return g.selector
}

// GenerateSchedule parses the survey's appointments and builds the day.
func (g *Generator) GenerateSchedule(survey models.SurveyContext, weather models.WeatherData, prefs models.UserPreferences) []models.ScheduledItem {
	return g.GenerateScheduleWithAppointments(survey, weather, prefs, parser.ParseAppointments(survey.AppointmentsText))
}

// GenerateScheduleWithAppointments builds the day from pre-parsed appointments.
//
// Placement order is fixed: feeds, appointments, naps, recurring tasks, bonus
// activities. Each stage sees everything placed before it as an obstacle.
func (g *Generator) GenerateScheduleWithAppointments(survey models.SurveyContext, weather models.WeatherData, prefs models.UserPreferences, appointments []models.Appointment) []models.ScheduledItem {
	day := allocator.New()
	var items []models.ScheduledItem

	// Feeds are anchors and ignore the day-end boundary
	for _, ft := range prefs.FeedingTimes {
		if !utils.ValidateClockTime(ft) {
			logger.Warn("Skipping unparseable feeding time", "time", ft)
			continue
		}
		start := utils.ToMinutes(ft)
		day.Occupy(start, constants.FeedDurationMin)
		items = append(items, g.newItem("Feeding", models.ItemFeeding, start, constants.FeedDurationMin))
	}

	for _, appt := range appointments {
		if iv, ok := appt.Interval(); ok {
			day.OccupyInterval(iv)
		}
	}
	visit := visitWindow(appointments)

	items = append(items, g.placeNaps(day, prefs)...)
	items = append(items, g.placeRecurring(day, prefs.RecurringTasks, appointments, visit)...)
	items = append(items, g.placeBonus(day, activities.ContextFor(survey, weather, appointments), visit)...)

	SortItems(items)
	return items
}

// GeneratePlan builds the persisted form of a day: the parsed appointments
// alongside the generated items.
func (g *Generator) GeneratePlan(date string, survey models.SurveyContext, weather models.WeatherData, prefs models.UserPreferences) models.DayPlan {
	appointments := parser.ParseAppointments(survey.AppointmentsText)
	items := g.GenerateScheduleWithAppointments(survey, weather, prefs, appointments)
	logger.Debug("Generated schedule", "date", date, "items", len(items), "appointments", len(appointments))
	return models.DayPlan{
		Date:         date,
		Survey:       survey,
		Weather:      weather,
		Appointments: appointments,
		Items:        items,
	}
}

func (g *Generator) placeNaps(day *allocator.DaySchedule, prefs models.UserPreferences) []models.ScheduledItem {
	duration := prefs.NapDurationMinutes
	if duration <= 0 {
		duration = constants.DefaultNapDurationMin
	}

	var naps []models.ScheduledItem
	for i := 0; i < prefs.NapCount; i++ {
		preferred := constants.DefaultNapTimes[min(i, len(constants.DefaultNapTimes)-1)]
		label := "Nap"
		if prefs.NapCount > 1 {
			label = fmt.Sprintf("Nap %d", i+1)
		}
		naps = append(naps, g.place(day, label, models.ItemNap, preferred, duration))
	}
	return naps
}

func (g *Generator) placeRecurring(day *allocator.DaySchedule, tasks []models.RecurringTask, appointments []models.Appointment, visit *models.Interval) []models.ScheduledItem {
	fulfilled := make(map[models.TaskKind]models.Appointment)
	for _, appt := range appointments {
		if appt.FulfillsTask == "" {
			continue
		}
		if _, seen := fulfilled[appt.FulfillsTask]; !seen {
			fulfilled[appt.FulfillsTask] = appt
		}
	}

	socialCount := 0
	if visit != nil {
		for _, task := range tasks {
			if _, ok := fulfilled[task.Kind]; !ok && task.Kind.Defaults().Social {
				socialCount++
			}
		}
	}

	var out []models.ScheduledItem
	socialIdx := 0
	for _, task := range tasks {
		defaults := task.Kind.Defaults()
		label := task.DisplayLabel()

		if appt, ok := fulfilled[task.Kind]; ok {
			out = append(out, g.fulfilledItem(task, appt))
			continue
		}

		if defaults.IgnoresBoundary {
			day.Occupy(defaults.PreferredStart, defaults.DurationMin)
			item := g.newItem(label, models.ItemRecurring, defaults.PreferredStart, defaults.DurationMin)
			item.Kind = task.Kind
			out = append(out, item)
			continue
		}

		preferred := defaults.PreferredStart
		var item models.ScheduledItem
		if defaults.Social && visit != nil {
			preferred = stagger(*visit, socialIdx, socialCount)
			socialIdx++
			item = g.place(day, label, models.ItemRecurring, preferred, defaults.DurationMin, *visit)
		} else {
			item = g.place(day, label, models.ItemRecurring, preferred, defaults.DurationMin)
		}
		item.Kind = task.Kind
		item.SocialActivity = defaults.Social
		out = append(out, item)
	}
	return out
}

func (g *Generator) fulfilledItem(task models.RecurringTask, appt models.Appointment) models.ScheduledItem {
	defaults := task.Kind.Defaults()
	item := models.ScheduledItem{
		ID:              g.newID(),
		Task:            task.DisplayLabel(),
		Type:            models.ItemRecurring,
		TimeBlock:       utils.ToTimeBlock(defaults.PreferredStart),
		DurationMinutes: defaults.DurationMin,
		Kind:            task.Kind,
		Notes:           fmt.Sprintf("Covered by %q", appt.Description),
		CanOverlap:      true,
	}
	if iv, ok := appt.Interval(); ok {
		item.StartMinutes = iv.Start
		item.DurationMinutes = iv.Duration()
		item.SuggestedTime = utils.ToTimeString(iv.Start)
		item.TimeBlock = utils.ToTimeBlock(iv.Start)
	}
	return item
}

func (g *Generator) placeBonus(day *allocator.DaySchedule, ctx activities.Context, visit *models.Interval) []models.ScheduledItem {
	if len(g.slotTimes) == 0 {
		return nil
	}
	selected := g.selector.SelectFor(ctx, constants.BonusActivityCount, g.slotTimes)

	picker := &bonusPicker{selector: g.selector, ctx: ctx}
	retargetCount := 0
	for _, a := range selected {
		picker.excluded = append(picker.excluded, a.ID)
		if visit != nil && suitsVisitors(a) {
			retargetCount++
		}
	}

	var out []models.ScheduledItem
	retargetIdx := 0
	for i, a := range selected {
		preferred := g.slotTimes[min(i, len(g.slotTimes)-1)]
		if visit != nil && suitsVisitors(a) {
			preferred = stagger(*visit, retargetIdx, retargetCount)
			retargetIdx++
		}
		if item, ok := g.placeActivity(day, a, preferred, visit, picker); ok {
			out = append(out, item)
		}
	}
	return out
}

// bonusPicker hands out substitute activities. Every activity it has seen
// stays excluded so a swap never repeats one.
type bonusPicker struct {
	selector *activities.Selector
	ctx      activities.Context
	excluded []string
}

func (p *bonusPicker) next(slot int) (models.Activity, bool) {
	a, ok := p.selector.ReplacementFor(p.ctx, p.excluded, &slot)
	if ok {
		p.excluded = append(p.excluded, a.ID)
	}
	return a, ok
}

// placeActivity places a bonus activity near preferred. Visitor-friendly
// activities may share the visit window. A food venue outing must end by
// the 3:00 PM cutoff wherever it lands; one that cannot is swapped for the
// picker's next candidate. It returns false when no candidate remains.
func (g *Generator) placeActivity(day *allocator.DaySchedule, a models.Activity, preferred int, visit *models.Interval, picker *bonusPicker) (models.ScheduledItem, bool) {
	for {
		retargeted := visit != nil && suitsVisitors(a)
		var ignore []models.Interval
		if retargeted {
			ignore = append(ignore, *visit)
		}

		var item models.ScheduledItem
		if activities.IsFoodVenue(a) {
			start, ok := day.PlaceNearBefore(preferred, a.DurationMinutes, constants.FoodVenueCutoffMinutes, ignore...)
			if !ok {
				logger.Debug("Food outing cannot end before cutoff", "activity", a.ID, "preferred", utils.ToTimeString(preferred))
				if a, ok = picker.next(preferred); !ok {
					return models.ScheduledItem{}, false
				}
				continue
			}
			day.Occupy(start, a.DurationMinutes)
			item = g.newItem(a.Title, models.ItemBonus, start, a.DurationMinutes)
		} else {
			item = g.place(day, a.Title, models.ItemBonus, preferred, a.DurationMinutes, ignore...)
		}

		activity := a
		item.Activity = &activity
		item.SocialActivity = retargeted || a.Category == models.CategorySocial
		return item, true
	}
}

// visitWindow returns the interval of the first timed visitor appointment.
func visitWindow(appointments []models.Appointment) *models.Interval {
	for _, appt := range appointments {
		if appt.Type != models.AppointmentVisitor {
			continue
		}
		if iv, ok := appt.Interval(); ok {
			return &iv
		}
	}
	return nil
}

// suitsVisitors reports whether a bonus activity is moved into a visit.
func suitsVisitors(a models.Activity) bool {
	return a.Indoor && (a.Category == models.CategorySocial || a.Category == models.CategoryCreative)
}

// stagger spreads count items evenly over window; idx picks the item.
func stagger(window models.Interval, idx, count int) int {
	if count <= 1 {
		return window.Start
	}
	return window.Start + window.Duration()*idx/count
}

// place finds a slot near preferred, registers it, and flags the item when
// no free slot existed.
func (g *Generator) place(day *allocator.DaySchedule, task string, kind models.ItemType, preferred, duration int, ignore ...models.Interval) models.ScheduledItem {
	start, found := day.PlaceNear(preferred, duration, ignore...)
	day.Occupy(start, duration)

	item := g.newItem(task, kind, start, duration)
	if !found {
		item.Overlap = true
		logger.Warn("No free slot, keeping preferred time", "task", task, "preferred", utils.ToTimeString(preferred), "duration", duration)
	}
	return item
}

func (g *Generator) newItem(task string, kind models.ItemType, start, duration int) models.ScheduledItem {
	return models.ScheduledItem{
		ID:              g.newID(),
		Task:            task,
		Type:            kind,
		TimeBlock:       utils.ToTimeBlock(start),
		SuggestedTime:   utils.ToTimeString(start),
		StartMinutes:    start,
		DurationMinutes: duration,
	}
}

// SortItems orders items by suggested time; untimed items sort at midnight.
func SortItems(items []models.ScheduledItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortMinutes() < items[j].SortMinutes()
	})
}
