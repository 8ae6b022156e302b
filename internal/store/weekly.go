package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sadopc/plants/internal/diet"
)

// foodRecord is the JSON shape of one food instance inside a weekly
// record's foods column. Dates are RFC 3339 strings.
type foodRecord struct {
	ID          string `json:"id"`
	FoodID      string `json:"food_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Fermented   bool   `json:"fermented"`
	LoggedAt    string `json:"logged_at"`
	FirstLogged string `json:"first_logged_at"`
	Points      int    `json:"points"`
}

func encodeFoods(foods []diet.FoodInstance) (string, error) {
	records := make([]foodRecord, 0, len(foods))
	for _, f := range foods {
		records = append(records, foodRecord{
			ID:          f.ID,
			FoodID:      f.FoodID,
			Name:        f.Name,
			Category:    string(f.Category),
			Color:       string(f.Color),
			Fermented:   f.Fermented,
			LoggedAt:    f.LoggedAt.Format(time.RFC3339Nano),
			FirstLogged: f.FirstLogged.Format(time.RFC3339Nano),
			Points:      int(f.Points),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal foods: %w", err)
	}
	return string(data), nil
}

func decodeFoods(data string) ([]diet.FoodInstance, error) {
	var records []foodRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("unmarshal foods: %w", err)
	}
	var foods []diet.FoodInstance
	for _, r := range records {
		logged, err := time.Parse(time.RFC3339Nano, r.LoggedAt)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at %q: %w", r.LoggedAt, err)
		}
		first, err := time.Parse(time.RFC3339Nano, r.FirstLogged)
		if err != nil {
			return nil, fmt.Errorf("parse first_logged_at %q: %w", r.FirstLogged, err)
		}
		foods = append(foods, diet.FoodInstance{
			ID:          r.ID,
			FoodID:      r.FoodID,
			Name:        r.Name,
			Category:    diet.FoodCategory(r.Category),
			Color:       diet.FoodColor(r.Color),
			Fermented:   r.Fermented,
			LoggedAt:    logged,
			FirstLogged: first,
			Points:      diet.Points(r.Points),
		})
	}
	return foods, nil
}

// GetWeekly loads the user's current weekly record. It returns
// (nil, nil) when no record exists.
func (s *Store) GetWeekly(userID string) (*diet.WeeklyAggregate, error) {
	var weekStart, weekEnd, foodsJSON string
	var totalPoints, streak int
	err := s.db.QueryRow(
		`SELECT week_start, week_end, foods, total_points, streak_count
		 FROM weekly_records WHERE user_id = ?`, userID,
	).Scan(&weekStart, &weekEnd, &foodsJSON, &totalPoints, &streak)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get weekly record for %q: %w", userID, err)
	}

	start, err := time.Parse(time.RFC3339Nano, weekStart)
	if err != nil {
		return nil, fmt.Errorf("parse week_start %q: %w", weekStart, err)
	}
	end, err := time.Parse(time.RFC3339Nano, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("parse week_end %q: %w", weekEnd, err)
	}
	foods, err := decodeFoods(foodsJSON)
	if err != nil {
		return nil, err
	}

	agg := diet.WeeklyAggregate{
		UserID:      userID,
		WeekStart:   start,
		WeekEnd:     end,
		Foods:       foods,
		TotalPoints: diet.Points(totalPoints),
		StreakCount: streak,
	}
	// Breakdown and colors are derived deterministically, so they are
	// recomputed on load instead of being stored.
	agg = diet.Recompute(agg)
	return &agg, nil
}

// PutWeekly upserts the user's weekly record, overwriting any existing
// record for that user.
func (s *Store) PutWeekly(agg diet.WeeklyAggregate) error {
	foodsJSON, err := encodeFoods(agg.Foods)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO weekly_records (user_id, week_start, week_end, foods, total_points, streak_count)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   week_start = excluded.week_start,
		   week_end = excluded.week_end,
		   foods = excluded.foods,
		   total_points = excluded.total_points,
		   streak_count = excluded.streak_count`,
		agg.UserID,
		agg.WeekStart.Format(time.RFC3339Nano),
		agg.WeekEnd.Format(time.RFC3339Nano),
		foodsJSON,
		int(agg.TotalPoints),
		agg.StreakCount,
	)
	if err != nil {
		return fmt.Errorf("put weekly record for %q: %w", agg.UserID, err)
	}
	return nil
}

// DeleteWeekly removes the user's weekly record. Deleting an absent
// record is not an error.
func (s *Store) DeleteWeekly(userID string) error {
	_, err := s.db.Exec(`DELETE FROM weekly_records WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete weekly record for %q: %w", userID, err)
	}
	return nil
}
