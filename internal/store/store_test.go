package store

import (
	"errors"
	"testing"
	"time"

	"github.com/sadopc/plants/internal/diet"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustPutWeekly(t *testing.T, s *Store, agg diet.WeeklyAggregate) {
	t.Helper()
	if err := s.PutWeekly(agg); err != nil {
		t.Fatalf("put weekly: %v", err)
	}
}

func monday(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ============================================================
// Store lifecycle
// ============================================================

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("re-running migrations should be a no-op: %v", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := newTestStore(t)
	user, err := s.ActiveUser()
	if err != nil {
		t.Fatalf("active user: %v", err)
	}
	if user != "default" {
		t.Fatalf("fresh store should have profile 'default', got %q", user)
	}
}

// ============================================================
// Weekly records
// ============================================================

func TestGetWeeklyAbsent(t *testing.T) {
	s := newTestStore(t)
	agg, err := s.GetWeekly("default")
	if err != nil {
		t.Fatalf("get weekly: %v", err)
	}
	if agg != nil {
		t.Fatal("absent record should return nil, nil")
	}
}

func TestWeeklyRoundTrip(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2025, time.January, 8, 14, 0, 0, 0, time.Local)
	week := diet.NewWeeklyAggregate("default", now, 2)
	res := diet.AddFood(nil, diet.FoodInstance{
		FoodID:   "spinach",
		Name:     "Spinach",
		Category: diet.Vegetables,
		Color:    diet.Green,
		LoggedAt: now,
		Points:   diet.PointValue(diet.Vegetables),
	})
	res = diet.AddFood(res.Foods, diet.FoodInstance{
		FoodID:    "kimchi",
		Name:      "Kimchi",
		Category:  diet.Vegetables,
		Color:     diet.Red,
		Fermented: true,
		LoggedAt:  now.Add(time.Hour),
		Points:    diet.PointValue(diet.Vegetables),
	})
	week.Foods = res.Foods
	week = diet.Recompute(week)

	mustPutWeekly(t, s, week)

	got, err := s.GetWeekly("default")
	if err != nil {
		t.Fatalf("get weekly: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if !got.WeekStart.Equal(week.WeekStart) || !got.WeekEnd.Equal(week.WeekEnd) {
		t.Fatalf("week bounds changed across the round trip: %v / %v", got.WeekStart, got.WeekEnd)
	}
	if got.StreakCount != 2 {
		t.Fatalf("streak count should persist, got %d", got.StreakCount)
	}
	if len(got.Foods) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(got.Foods))
	}
	f := got.Foods[1]
	if f.FoodID != "kimchi" || !f.Fermented || f.Color != diet.Red {
		t.Fatalf("instance fields lost: %+v", f)
	}
	if !f.LoggedAt.Equal(week.Foods[1].LoggedAt) {
		t.Fatalf("timestamps should survive, got %v", f.LoggedAt)
	}

	// Derived fields come back recomputed.
	if got.TotalPoints != diet.FullPoint*2 {
		t.Fatalf("expected 2 points, got %v", got.TotalPoints.Float64())
	}
	if len(got.Breakdown) != len(diet.Categories) {
		t.Fatal("breakdown should be rebuilt on load")
	}
	if len(got.ColorsEaten) != 2 {
		t.Fatalf("colors should be rebuilt on load, got %v", got.ColorsEaten)
	}
}

func TestPutWeeklyOverwrites(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.Local)
	week := diet.NewWeeklyAggregate("default", now, 0)
	mustPutWeekly(t, s, week)

	week.StreakCount = 5
	mustPutWeekly(t, s, week)

	got, err := s.GetWeekly("default")
	if err != nil {
		t.Fatalf("get weekly: %v", err)
	}
	if got.StreakCount != 5 {
		t.Fatalf("put should overwrite, got streak %d", got.StreakCount)
	}
}

func TestWeeklyRecordsArePerUser(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.Local)
	mustPutWeekly(t, s, diet.NewWeeklyAggregate("alice", now, 1))
	mustPutWeekly(t, s, diet.NewWeeklyAggregate("bob", now, 7))

	alice, err := s.GetWeekly("alice")
	if err != nil {
		t.Fatalf("get weekly: %v", err)
	}
	if alice.StreakCount != 1 {
		t.Fatalf("profiles must not share records, got %d", alice.StreakCount)
	}
}

func TestDeleteWeeklyIdempotent(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.Local)
	mustPutWeekly(t, s, diet.NewWeeklyAggregate("default", now, 0))

	if err := s.DeleteWeekly("default"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteWeekly("default"); err != nil {
		t.Fatalf("deleting an absent record should not error: %v", err)
	}

	got, err := s.GetWeekly("default")
	if err != nil || got != nil {
		t.Fatalf("record should be gone, got %v (%v)", got, err)
	}
}

// ============================================================
// Daily records
// ============================================================

func TestGetDailyAbsent(t *testing.T) {
	s := newTestStore(t)
	day, err := s.GetDaily("default", monday(2025, time.January, 6))
	if err != nil {
		t.Fatalf("get daily: %v", err)
	}
	if day != nil {
		t.Fatal("absent record should return nil, nil")
	}
}

func TestDailyRoundTrip(t *testing.T) {
	s := newTestStore(t)

	d := diet.NewDailyAggregate("default", monday(2025, time.January, 6))
	d = diet.SetWater(d, 6)
	d = diet.MarkFermented(d)
	d.ColorsEaten = []diet.FoodColor{diet.Red, diet.Green}

	if err := s.PutDaily(d); err != nil {
		t.Fatalf("put daily: %v", err)
	}

	got, err := s.GetDaily("default", monday(2025, time.January, 6))
	if err != nil {
		t.Fatalf("get daily: %v", err)
	}
	if got == nil {
		t.Fatal("expected a record")
	}
	if got.WaterGlasses != 6 {
		t.Fatalf("water lost: %d", got.WaterGlasses)
	}
	if !got.AteFermented {
		t.Fatal("fermented flag lost")
	}
	if len(got.ColorsEaten) != 2 {
		t.Fatalf("colors lost: %v", got.ColorsEaten)
	}
}

func TestDailyRecordsAreKeyedByDate(t *testing.T) {
	s := newTestStore(t)

	d := diet.NewDailyAggregate("default", monday(2025, time.January, 6))
	d = diet.SetWater(d, 8)
	if err := s.PutDaily(d); err != nil {
		t.Fatalf("put daily: %v", err)
	}

	// The next day reads back empty, which is how the daily reset works.
	next, err := s.GetDaily("default", monday(2025, time.January, 7))
	if err != nil {
		t.Fatalf("get daily: %v", err)
	}
	if next != nil {
		t.Fatal("a new date should have no record yet")
	}
}

func TestGetDailyIgnoresTimeOfDay(t *testing.T) {
	s := newTestStore(t)

	d := diet.NewDailyAggregate("default", monday(2025, time.January, 6))
	d = diet.SetWater(d, 3)
	if err := s.PutDaily(d); err != nil {
		t.Fatalf("put daily: %v", err)
	}

	evening := time.Date(2025, time.January, 6, 22, 15, 0, 0, time.Local)
	got, err := s.GetDaily("default", evening)
	if err != nil {
		t.Fatalf("get daily: %v", err)
	}
	if got == nil || got.WaterGlasses != 3 {
		t.Fatal("any time on the same date should hit the same record")
	}
}

func TestDeleteDailyIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteDaily("default", monday(2025, time.January, 6)); err != nil {
		t.Fatalf("deleting an absent record should not error: %v", err)
	}
}

// ============================================================
// Archived weeks
// ============================================================

func TestArchivedWeeksListedMostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	for _, d := range []int{6, 20, 13} {
		start := monday(2025, time.January, d)
		err := s.AddArchivedWeek("default", diet.ArchivedWeek{
			WeekStart:    start,
			WeekEnd:      diet.WeekEnd(start),
			TotalPoints:  diet.WeeklyGoal,
			GoalAchieved: true,
		})
		if err != nil {
			t.Fatalf("archive: %v", err)
		}
	}

	weeks, err := s.ListArchivedWeeks("default")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(weeks) != 3 {
		t.Fatalf("expected 3 weeks, got %d", len(weeks))
	}
	if weeks[0].WeekStart.Day() != 20 || weeks[2].WeekStart.Day() != 6 {
		t.Fatalf("weeks should be most recent first, got %v, %v, %v",
			weeks[0].WeekStart, weeks[1].WeekStart, weeks[2].WeekStart)
	}
}

func TestArchiveSameWeekOverwrites(t *testing.T) {
	s := newTestStore(t)

	start := monday(2025, time.January, 6)
	w := diet.ArchivedWeek{WeekStart: start, WeekEnd: diet.WeekEnd(start), TotalPoints: 20 * diet.FullPoint}
	if err := s.AddArchivedWeek("default", w); err != nil {
		t.Fatalf("archive: %v", err)
	}

	w.TotalPoints = diet.WeeklyGoal
	w.GoalAchieved = true
	if err := s.AddArchivedWeek("default", w); err != nil {
		t.Fatalf("re-archive: %v", err)
	}

	weeks, err := s.ListArchivedWeeks("default")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(weeks) != 1 {
		t.Fatalf("re-archiving a week must not duplicate it, got %d rows", len(weeks))
	}
	if !weeks[0].GoalAchieved {
		t.Fatal("the later archive should win")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSetAndGetSetting(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetSetting("user", "alice"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := s.GetSetting("user")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "alice" {
		t.Fatalf("expected alice, got %q", v)
	}
}

func TestSetActiveUser(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetActiveUser("bob"); err != nil {
		t.Fatalf("set active user: %v", err)
	}
	user, err := s.ActiveUser()
	if err != nil {
		t.Fatalf("active user: %v", err)
	}
	if user != "bob" {
		t.Fatalf("expected bob, got %q", user)
	}
}

func TestGetSettingAbsentKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetSetting("no-such-key")
	if !errors.Is(err, ErrNoSetting) {
		t.Fatalf("absent key should report ErrNoSetting, got %v", err)
	}
}

func TestActiveUserFallsBackToDefault(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.db.Exec(`DELETE FROM settings`); err != nil {
		t.Fatalf("wipe settings: %v", err)
	}

	user, err := s.ActiveUser()
	if err != nil {
		t.Fatalf("active user: %v", err)
	}
	if user != "default" {
		t.Fatalf("a missing user key should fall back to default, got %q", user)
	}
}

func TestGetAllSettings(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.GetAllSettings()
	if err != nil {
		t.Fatalf("list settings: %v", err)
	}
	if len(settings) == 0 {
		t.Fatal("fresh store should carry default settings")
	}
}

// ============================================================
// Clear
// ============================================================

func TestClear(t *testing.T) {
	s := newTestStore(t)

	now := time.Date(2025, time.January, 8, 9, 0, 0, 0, time.Local)
	mustPutWeekly(t, s, diet.NewWeeklyAggregate("default", now, 3))
	if err := s.PutDaily(diet.NewDailyAggregate("default", now)); err != nil {
		t.Fatalf("put daily: %v", err)
	}
	if err := s.SetActiveUser("alice"); err != nil {
		t.Fatalf("set user: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	week, err := s.GetWeekly("default")
	if err != nil || week != nil {
		t.Fatalf("weekly record should be gone, got %v (%v)", week, err)
	}
	day, err := s.GetDaily("default", now)
	if err != nil || day != nil {
		t.Fatalf("daily record should be gone, got %v (%v)", day, err)
	}
	user, err := s.ActiveUser()
	if err != nil {
		t.Fatalf("active user: %v", err)
	}
	if user != "default" {
		t.Fatalf("clear should restore the default profile, got %q", user)
	}
}
