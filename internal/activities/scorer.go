package activities

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/parser"
)

const (
	baseScore          = 50.0
	defaultNoiseRange  = 20.0
	moodBonus          = 10.0
	shortActivityLimit = 15
	longActivityLimit  = 30
)

// Context is the per-day input to scoring.
type Context struct {
	Survey          models.SurveyContext
	Weather         models.WeatherData
	HasAppointments bool
}

// NewContext derives a scoring context from the survey and weather, parsing
// the survey's appointment text. Callers holding parsed appointments should
// use ContextFor instead.
func NewContext(survey models.SurveyContext, weather models.WeatherData) Context {
	return Context{
		Survey:          survey,
		Weather:         weather,
		HasAppointments: len(parser.ParseAppointments(survey.AppointmentsText)) > 0,
	}
}

// ContextFor builds a scoring context from already parsed appointments.
func ContextFor(survey models.SurveyContext, weather models.WeatherData, appointments []models.Appointment) Context {
	return Context{
		Survey:          survey,
		Weather:         weather,
		HasAppointments: len(appointments) > 0,
	}
}

// Scorer rates activities against a day's context. A random value in
// [0, noise) is added to every positive score so repeated days vary; scores
// are therefore not deterministic unless the scorer is built WithoutNoise
// or with a fixed seed.
type Scorer struct {
	mu        sync.Mutex
	rng       *rand.Rand
	noise     float64
	moodBonus float64
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer)

// WithRand sets the random source used for the tiebreak.
func WithRand(r *rand.Rand) ScorerOption {
	return func(s *Scorer) {
		s.rng = r
	}
}

// WithSeed makes the tiebreak reproducible.
func WithSeed(seed uint64) ScorerOption {
	return WithRand(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

// WithoutNoise disables the random tiebreak entirely.
func WithoutNoise() ScorerOption {
	return func(s *Scorer) {
		s.noise = 0
	}
}

// WithMoodBonus adds a small bonus for activities whose category or a tag
// matches one of the survey's requested moods. Off by default.
func WithMoodBonus() ScorerOption {
	return func(s *Scorer) {
		s.moodBonus = moodBonus
	}
}

func NewScorer(opts ...ScorerOption) *Scorer {
	s := &Scorer{
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		noise: defaultNoiseRange,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the activity's fitness for the day. Zero means the activity
// is disqualified; scores are never negative.
func (s *Scorer) Score(a models.Activity, ctx Context) float64 {
	survey, weather := ctx.Survey, ctx.Weather

	if !a.AgeRange.Contains(survey.AgeMonths) {
		return 0
	}
	outdoor := !a.Indoor
	if outdoor && (weather.IsRainy || survey.StayingHome) {
		return 0
	}

	score := baseScore
	goingOut := !survey.StayingHome

	if outdoor && goingOut && weather.IsGoodWeather {
		score += 20
	}
	if a.WeatherDependent == models.WeatherGood && !weather.IsGoodWeather {
		score -= 30
	}
	if outdoor && goingOut {
		score += 15
	}

	switch survey.EnergyLevel {
	case models.EnergyLow:
		switch a.EnergyRequired {
		case models.EnergyHigh:
			score -= 40
		case models.EnergyLow:
			score += 20
		}
	case models.EnergyHigh:
		if a.EnergyRequired == models.EnergyHigh {
			score += 15
		}
	}

	if survey.WantsCrafts {
		if a.Category == models.CategoryCreative {
			score += 30
		}
		if a.HasTag("messy") {
			score += 10
		}
	}

	if ctx.HasAppointments {
		if a.DurationMinutes <= shortActivityLimit {
			score += 15
		}
		if a.DurationMinutes >= longActivityLimit {
			score -= 10
		}
	}

	if s.moodBonus > 0 && matchesMood(a, survey.ActivityMoods) {
		score += s.moodBonus
	}

	score += s.tiebreak()

	if score < 0 {
		return 0
	}
	return score
}

func (s *Scorer) tiebreak() float64 {
	if s.noise <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * s.noise
}

func matchesMood(a models.Activity, moods []string) bool {
	for _, mood := range moods {
		mood = strings.ToLower(strings.TrimSpace(mood))
		if mood == "" {
			continue
		}
		if mood == string(a.Category) || a.HasTag(mood) {
			return true
		}
	}
	return false
}
