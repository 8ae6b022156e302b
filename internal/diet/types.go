package diet

import (
	"strconv"
	"time"
)

// FoodCategory is the closed set of plant food categories.
type FoodCategory string

const (
	WholeGrains FoodCategory = "whole_grains"
	NutsSeeds   FoodCategory = "nuts_seeds"
	Fruits      FoodCategory = "fruits"
	Vegetables  FoodCategory = "vegetables"
	Legumes     FoodCategory = "legumes"
	HerbsSpices FoodCategory = "herbs_spices"
)

// Categories lists every category in display order.
var Categories = []FoodCategory{
	WholeGrains, NutsSeeds, Fruits, Vegetables, Legumes, HerbsSpices,
}

// FoodColor is the closed six-color set ("the rainbow").
type FoodColor string

const (
	Red        FoodColor = "red"
	Orange     FoodColor = "orange"
	Yellow     FoodColor = "yellow"
	Green      FoodColor = "green"
	BluePurple FoodColor = "blue_purple"
	WhiteTan   FoodColor = "white_tan"
)

// Colors lists every color in the fixed enumeration order.
var Colors = []FoodColor{Red, Orange, Yellow, Green, BluePurple, WhiteTan}

// Points is a point total in quarter-point units, so sums of 0.25
// increments stay exact under repeated addition.
type Points int

const (
	// FullPoint is the value of one whole diversity point.
	FullPoint Points = 4

	// WeeklyGoal is 30 points.
	WeeklyGoal = 30 * FullPoint
)

// Float64 converts to whole points for presentation.
func (p Points) Float64() float64 {
	return float64(p) / float64(FullPoint)
}

func (p Points) String() string {
	return strconv.FormatFloat(p.Float64(), 'f', -1, 64)
}

// FoodInstance is one logged occurrence of a food with a specific
// color/fermentation combination.
type FoodInstance struct {
	ID          string
	FoodID      string
	Name        string
	Category    FoodCategory
	Color       FoodColor
	Fermented   bool
	LoggedAt    time.Time
	FirstLogged time.Time // when this FoodID was first logged this week
	Points      Points
}

// WeeklyAggregate is the tracked state of one calendar week.
type WeeklyAggregate struct {
	UserID      string
	WeekStart   time.Time
	WeekEnd     time.Time
	Foods       []FoodInstance
	TotalPoints Points
	Breakdown   map[FoodCategory]Points
	ColorsEaten []FoodColor
	StreakCount int // carried over from archival, not derived from Foods
}

// DailyAggregate is the tracked state of one calendar day.
type DailyAggregate struct {
	UserID       string
	Date         time.Time
	WaterGlasses int
	ColorsEaten  []FoodColor
	AteFermented bool
}

// ArchivedWeek is a finalized, immutable record of a past week's outcome.
type ArchivedWeek struct {
	WeekStart    time.Time
	WeekEnd      time.Time
	TotalPoints  Points
	GoalAchieved bool
}
