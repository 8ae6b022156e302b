package diet

import "testing"

// ============================================================
// Point values
// ============================================================

func TestPointValue(t *testing.T) {
	for _, c := range Categories {
		want := FullPoint
		if c == HerbsSpices {
			want = FullPoint / 4
		}
		if got := PointValue(c); got != want {
			t.Fatalf("PointValue(%s) = %v, want %v", c, got, want)
		}
	}
}

func TestPointValueFloat(t *testing.T) {
	if PointValue(Vegetables).Float64() != 1 {
		t.Fatal("vegetables should be worth 1 point")
	}
	if PointValue(HerbsSpices).Float64() != 0.25 {
		t.Fatal("herbs and spices should be worth 0.25 points")
	}
}

// ============================================================
// Weekly totals
// ============================================================

func TestWeeklyPointsEmpty(t *testing.T) {
	if got := WeeklyPoints(nil); got != 0 {
		t.Fatalf("empty input should yield 0, got %v", got)
	}
}

func TestWeeklyPointsExactFractions(t *testing.T) {
	// 13 herbs + 2 vegetables = 5.25, and 5.25 * 4 = 21, exactly.
	var foods []FoodInstance
	for i := 0; i < 13; i++ {
		foods = append(foods, FoodInstance{FoodID: string(rune('a' + i)), Category: HerbsSpices})
	}
	foods = append(foods,
		FoodInstance{FoodID: "carrot", Category: Vegetables},
		FoodInstance{FoodID: "kale", Category: Vegetables},
	)

	total := WeeklyPoints(foods)
	if total.Float64() != 5.25 {
		t.Fatalf("expected 5.25 points, got %v", total.Float64())
	}
	if total*4 != Points(84) || total.Float64()*4 != 21 {
		t.Fatalf("expected exact quadruple 21, got %v", total.Float64()*4)
	}
}

func TestFourHerbsMakeOnePoint(t *testing.T) {
	var total Points
	for i := 0; i < 4; i++ {
		total += PointValue(HerbsSpices)
	}
	if total != FullPoint {
		t.Fatalf("four quarter points should equal one point, got %v", total)
	}
}

// ============================================================
// Category breakdown
// ============================================================

func TestCategoryBreakdownAllKeysPresent(t *testing.T) {
	breakdown := CategoryBreakdown(nil)
	if len(breakdown) != len(Categories) {
		t.Fatalf("expected %d keys, got %d", len(Categories), len(breakdown))
	}
	for _, c := range Categories {
		if v, ok := breakdown[c]; !ok || v != 0 {
			t.Fatalf("category %s should be present with 0, got %v (present=%t)", c, v, ok)
		}
	}
}

func TestCategoryBreakdownSumsToWeeklyPoints(t *testing.T) {
	foods := []FoodInstance{
		{FoodID: "oats", Category: WholeGrains},
		{FoodID: "walnut", Category: NutsSeeds},
		{FoodID: "basil", Category: HerbsSpices},
		{FoodID: "thyme", Category: HerbsSpices},
		{FoodID: "lentil", Category: Legumes},
	}

	breakdown := CategoryBreakdown(foods)
	var sum Points
	for _, v := range breakdown {
		sum += v
	}
	if sum != WeeklyPoints(foods) {
		t.Fatalf("breakdown sum %v != weekly points %v", sum, WeeklyPoints(foods))
	}
}

func TestCategoryBreakdownValues(t *testing.T) {
	foods := []FoodInstance{
		{FoodID: "basil", Category: HerbsSpices},
		{FoodID: "mint", Category: HerbsSpices},
		{FoodID: "apple", Category: Fruits},
	}
	breakdown := CategoryBreakdown(foods)
	if breakdown[HerbsSpices].Float64() != 0.5 {
		t.Fatalf("two herbs should be 0.5, got %v", breakdown[HerbsSpices].Float64())
	}
	if breakdown[Fruits] != FullPoint {
		t.Fatalf("one fruit should be a full point, got %v", breakdown[Fruits])
	}
	if breakdown[Vegetables] != 0 {
		t.Fatal("empty category should be 0")
	}
}

// ============================================================
// Points formatting
// ============================================================

func TestPointsString(t *testing.T) {
	cases := []struct {
		p    Points
		want string
	}{
		{0, "0"},
		{FullPoint, "1"},
		{FullPoint / 4, "0.25"},
		{21, "5.25"},
		{WeeklyGoal, "30"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("Points(%d).String() = %q, want %q", c.p, got, c.want)
		}
	}
}
