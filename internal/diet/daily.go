package diet

import "time"

const (
	// WaterMax is the largest storable glass count.
	WaterMax = 20

	// WaterGoal is the daily glass target.
	WaterGoal = 8
)

// NewDailyAggregate returns a fresh aggregate for the user's calendar
// day containing date.
func NewDailyAggregate(userID string, date time.Time) DailyAggregate {
	return DailyAggregate{
		UserID: userID,
		Date:   StartOfDay(date),
	}
}

// SetWater sets the glass count. Values outside [0, WaterMax] are
// ignored and the stored count is left unchanged.
func SetWater(d DailyAggregate, glasses int) DailyAggregate {
	if glasses < 0 || glasses > WaterMax {
		return d
	}
	d.WaterGlasses = glasses
	return d
}

// AdjustWater adds delta glasses, subject to the same clamp policy.
func AdjustWater(d DailyAggregate, delta int) DailyAggregate {
	return SetWater(d, d.WaterGlasses+delta)
}

// MarkFermented sets the sticky fermented-food flag for the day.
func MarkFermented(d DailyAggregate) DailyAggregate {
	d.AteFermented = true
	return d
}

// RecomputeFromWeek rebuilds the day's color set and fermented flag
// from the week's food instances filtered to the aggregate's date.
// The fermented flag is sticky: once true it survives recomputes even
// if the instance that set it was removed.
func RecomputeFromWeek(d DailyAggregate, foods []FoodInstance) DailyAggregate {
	d.ColorsEaten = DailyColors(foods, d.Date)
	for _, f := range foods {
		if f.Fermented && SameDay(f.LoggedAt, d.Date) {
			d.AteFermented = true
		}
	}
	return d
}
