package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sadopc/plants/internal/diet"
)

const dateLayout = "2006-01-02"

// GetDaily loads the user's record for the given calendar day. It
// returns (nil, nil) when no record exists.
func (s *Store) GetDaily(userID string, date time.Time) (*diet.DailyAggregate, error) {
	var colorsJSON string
	var water, fermented int
	err := s.db.QueryRow(
		`SELECT water, colors, fermented FROM daily_records WHERE user_id = ? AND date = ?`,
		userID, date.Format(dateLayout),
	).Scan(&water, &colorsJSON, &fermented)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily record for %q: %w", userID, err)
	}

	var colors []diet.FoodColor
	if err := json.Unmarshal([]byte(colorsJSON), &colors); err != nil {
		return nil, fmt.Errorf("unmarshal colors: %w", err)
	}

	return &diet.DailyAggregate{
		UserID:       userID,
		Date:         diet.StartOfDay(date),
		WaterGlasses: water,
		ColorsEaten:  colors,
		AteFermented: fermented == 1,
	}, nil
}

// PutDaily upserts the record for the aggregate's (user, date) key.
func (s *Store) PutDaily(agg diet.DailyAggregate) error {
	colors := agg.ColorsEaten
	if colors == nil {
		colors = []diet.FoodColor{}
	}
	colorsJSON, err := json.Marshal(colors)
	if err != nil {
		return fmt.Errorf("marshal colors: %w", err)
	}
	fermented := 0
	if agg.AteFermented {
		fermented = 1
	}
	_, err = s.db.Exec(
		`INSERT INTO daily_records (user_id, date, water, colors, fermented)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, date) DO UPDATE SET
		   water = excluded.water,
		   colors = excluded.colors,
		   fermented = excluded.fermented`,
		agg.UserID, agg.Date.Format(dateLayout), agg.WaterGlasses, string(colorsJSON), fermented,
	)
	if err != nil {
		return fmt.Errorf("put daily record for %q: %w", agg.UserID, err)
	}
	return nil
}

// DeleteDaily removes the record for (user, date). Deleting an absent
// record is not an error.
func (s *Store) DeleteDaily(userID string, date time.Time) error {
	_, err := s.db.Exec(
		`DELETE FROM daily_records WHERE user_id = ? AND date = ?`,
		userID, date.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("delete daily record for %q: %w", userID, err)
	}
	return nil
}
