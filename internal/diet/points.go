package diet

// PointValue returns the diversity points one unique food in the given
// category is worth: a quarter point for herbs and spices, a full point
// for everything else.
func PointValue(c FoodCategory) Points {
	if c == HerbsSpices {
		return FullPoint / 4
	}
	return FullPoint
}

// WeeklyPoints sums point values over foods. A raw instance list
// overcounts repeat varieties; use Recompute, which reduces to one
// entry per FoodID before summing.
func WeeklyPoints(foods []FoodInstance) Points {
	var total Points
	for _, f := range foods {
		total += PointValue(f.Category)
	}
	return total
}

// CategoryBreakdown maps every category to the summed point value of
// the given unique foods in it. Categories with no foods map to 0, so
// the result always has all six keys.
func CategoryBreakdown(foods []FoodInstance) map[FoodCategory]Points {
	breakdown := make(map[FoodCategory]Points, len(Categories))
	for _, c := range Categories {
		breakdown[c] = 0
	}
	for _, f := range foods {
		breakdown[f.Category] += PointValue(f.Category)
	}
	return breakdown
}
