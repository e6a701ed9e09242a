package reduction

import (
	"math"
	"time"

	"github.com/romainbeka/dashboardsteph/internal/pkg/clock"
)

type Status string

const (
	StatusActive       Status = "Active"
	StatusEnded        Status = "Terminer"
	StatusExpiringSoon Status = "Bientôt Expirées"
	StatusUpcoming     Status = "Prochainement"
)

const DefaultExpiringSoonDays = 7

const day = 24 * time.Hour

// StatusAt derives the status of the window [start, end] on now.
// Precedence: expiring soon, active, ended, upcoming. The remaining time is
// counted in whole days rounded down.
func StatusAt(start, end, now time.Time, expiringSoonDays int) Status {
	if !now.Before(start) && !now.After(end) {
		if daysBetween(now, end) <= expiringSoonDays {
			return StatusExpiringSoon
		}
		return StatusActive
	}
	if now.After(end) {
		return StatusEnded
	}
	return StatusUpcoming
}

func daysBetween(from, to time.Time) int {
	return int(math.Floor(float64(to.Sub(from)) / float64(day)))
}

// Evaluator applies StatusAt with the current calendar day of its clock.
type Evaluator struct {
	Clock            clock.Clock
	Location         *time.Location
	ExpiringSoonDays int
}

func NewEvaluator(clk clock.Clock, loc *time.Location, expiringSoonDays int) *Evaluator {
	if loc == nil {
		loc = time.UTC
	}
	if expiringSoonDays < 0 {
		expiringSoonDays = DefaultExpiringSoonDays
	}
	return &Evaluator{Clock: clk, Location: loc, ExpiringSoonDays: expiringSoonDays}
}

// Today is the evaluator's current day expressed as a UTC calendar date so it
// compares directly with Date values.
func (e *Evaluator) Today() Date {
	return NewDate(clock.StartOfDay(e.Clock.Now(), e.Location).Date())
}

func (e *Evaluator) Status(r Reduction) Status {
	return StatusAt(r.Start.Time(), r.End.Time(), e.Today().Time(), e.ExpiringSoonDays)
}

// Apply returns copies of rs with Status recomputed.
func (e *Evaluator) Apply(rs []Reduction) []Reduction {
	today := e.Today().Time()
	out := make([]Reduction, len(rs))
	for i, r := range rs {
		r.Status = StatusAt(r.Start.Time(), r.End.Time(), today, e.ExpiringSoonDays)
		out[i] = r
	}
	return out
}
