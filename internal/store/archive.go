package store

import (
	"fmt"
	"time"

	"github.com/sadopc/plants/internal/diet"
)

// AddArchivedWeek appends a finalized week to the user's history.
// Re-archiving the same week start overwrites the earlier row, so a
// crash between archive and reset cannot duplicate history.
func (s *Store) AddArchivedWeek(userID string, w diet.ArchivedWeek) error {
	goal := 0
	if w.GoalAchieved {
		goal = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO archived_weeks (user_id, week_start, week_end, total_points, goal_achieved)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, week_start) DO UPDATE SET
		   week_end = excluded.week_end,
		   total_points = excluded.total_points,
		   goal_achieved = excluded.goal_achieved`,
		userID,
		w.WeekStart.Format(time.RFC3339Nano),
		w.WeekEnd.Format(time.RFC3339Nano),
		int(w.TotalPoints),
		goal,
	)
	if err != nil {
		return fmt.Errorf("archive week for %q: %w", userID, err)
	}
	return nil
}

// ListArchivedWeeks returns the user's archived weeks, most recent
// first — the order diet.CalculateStreak expects.
func (s *Store) ListArchivedWeeks(userID string) ([]diet.ArchivedWeek, error) {
	rows, err := s.db.Query(
		`SELECT week_start, week_end, total_points, goal_achieved
		 FROM archived_weeks WHERE user_id = ? ORDER BY week_start DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list archived weeks for %q: %w", userID, err)
	}
	defer rows.Close()

	var weeks []diet.ArchivedWeek
	for rows.Next() {
		var startStr, endStr string
		var points, goal int
		if err := rows.Scan(&startStr, &endStr, &points, &goal); err != nil {
			return nil, err
		}
		start, err := time.Parse(time.RFC3339Nano, startStr)
		if err != nil {
			return nil, fmt.Errorf("parse week_start %q: %w", startStr, err)
		}
		end, err := time.Parse(time.RFC3339Nano, endStr)
		if err != nil {
			return nil, fmt.Errorf("parse week_end %q: %w", endStr, err)
		}
		weeks = append(weeks, diet.ArchivedWeek{
			WeekStart:    start,
			WeekEnd:      end,
			TotalPoints:  diet.Points(points),
			GoalAchieved: goal == 1,
		})
	}
	return weeks, rows.Err()
}
