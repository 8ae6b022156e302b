// Package tracker coordinates the diet domain core with the record
// store: it owns week archival/reset and daily reset, and applies food
// and water mutations. Mutations must be issued by a single caller at
// a time per user (the TUI update loop here); the domain functions are
// pure and do no locking of their own.
package tracker

import (
	"strings"
	"time"

	"github.com/sadopc/plants/internal/diet"
	"github.com/sadopc/plants/internal/store"
)

type Tracker struct {
	store  *store.Store
	userID string
}

func New(s *store.Store, userID string) *Tracker {
	return &Tracker{store: s, userID: userID}
}

func (t *Tracker) UserID() string { return t.userID }

// FoodID derives the stable food identifier from a display name:
// "Red Cabbage " and "red cabbage" are the same food.
func FoodID(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Week returns the current weekly aggregate, creating it on first
// access and archiving-then-resetting it when now has crossed into a
// new week.
func (t *Tracker) Week(now time.Time) (diet.WeeklyAggregate, error) {
	agg, err := t.store.GetWeekly(t.userID)
	if err != nil {
		return diet.WeeklyAggregate{}, err
	}

	if agg != nil && !diet.ShouldArchiveWeek(now, agg.WeekStart) {
		return *agg, nil
	}

	if agg != nil {
		if err := t.store.AddArchivedWeek(t.userID, diet.Archive(*agg)); err != nil {
			return diet.WeeklyAggregate{}, err
		}
	}

	history, err := t.store.ListArchivedWeeks(t.userID)
	if err != nil {
		return diet.WeeklyAggregate{}, err
	}
	fresh := diet.NewWeeklyAggregate(t.userID, now, diet.CalculateStreak(history))
	if err := t.store.PutWeekly(fresh); err != nil {
		return diet.WeeklyAggregate{}, err
	}
	return fresh, nil
}

// Day returns the current daily aggregate, creating it on first access
// for the calendar day. Staleness needs no explicit reset: records are
// keyed by date, so a new day reads as absent.
func (t *Tracker) Day(now time.Time) (diet.DailyAggregate, error) {
	day, err := t.store.GetDaily(t.userID, now)
	if err != nil {
		return diet.DailyAggregate{}, err
	}
	if day != nil {
		return *day, nil
	}

	week, err := t.Week(now)
	if err != nil {
		return diet.DailyAggregate{}, err
	}
	fresh := diet.RecomputeFromWeek(diet.NewDailyAggregate(t.userID, now), week.Foods)
	if err := t.store.PutDaily(fresh); err != nil {
		return diet.DailyAggregate{}, err
	}
	return fresh, nil
}

// LogFood records one eaten food. A duplicate (food, color, fermented)
// submission is a signalled no-op, not an error.
func (t *Tracker) LogFood(now time.Time, name string, category diet.FoodCategory, color diet.FoodColor, fermented bool) (diet.AddResult, error) {
	week, err := t.Week(now)
	if err != nil {
		return diet.AddResult{}, err
	}

	candidate := diet.FoodInstance{
		FoodID:    FoodID(name),
		Name:      strings.TrimSpace(name),
		Category:  category,
		Color:     color,
		Fermented: fermented,
		LoggedAt:  now,
		Points:    diet.PointValue(category),
	}

	result := diet.AddFood(week.Foods, candidate)
	if result.IsDuplicateInstance {
		return result, nil
	}

	week.Foods = result.Foods
	week = diet.Recompute(week)
	if err := t.store.PutWeekly(week); err != nil {
		return diet.AddResult{}, err
	}
	if err := t.recomputeDay(now, week.Foods); err != nil {
		return diet.AddResult{}, err
	}
	return result, nil
}

// RemoveFood deletes one logged instance and recomputes the derived
// aggregates. Removing an unknown instance ID is a no-op.
func (t *Tracker) RemoveFood(now time.Time, instanceID string) error {
	week, err := t.Week(now)
	if err != nil {
		return err
	}
	week.Foods = diet.RemoveFood(week.Foods, instanceID)
	week = diet.Recompute(week)
	if err := t.store.PutWeekly(week); err != nil {
		return err
	}
	return t.recomputeDay(now, week.Foods)
}

func (t *Tracker) recomputeDay(now time.Time, foods []diet.FoodInstance) error {
	day, err := t.Day(now)
	if err != nil {
		return err
	}
	day = diet.RecomputeFromWeek(day, foods)
	return t.store.PutDaily(day)
}

// AdjustWater adds delta glasses to today's count. Out-of-range
// results are silently ignored per the clamp policy.
func (t *Tracker) AdjustWater(now time.Time, delta int) (diet.DailyAggregate, error) {
	day, err := t.Day(now)
	if err != nil {
		return diet.DailyAggregate{}, err
	}
	day = diet.AdjustWater(day, delta)
	if err := t.store.PutDaily(day); err != nil {
		return diet.DailyAggregate{}, err
	}
	return day, nil
}

// History returns the archived weeks, most recent first.
func (t *Tracker) History() ([]diet.ArchivedWeek, error) {
	return t.store.ListArchivedWeeks(t.userID)
}

// Streak returns the consecutive-success count over the archive,
// counting the in-progress week only once it is archived.
func (t *Tracker) Streak() (int, error) {
	history, err := t.store.ListArchivedWeeks(t.userID)
	if err != nil {
		return 0, err
	}
	return diet.CalculateStreak(history), nil
}
