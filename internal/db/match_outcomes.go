package db

import (
	"context"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

// IncrementMatchOutcome upserts a per-keyword match count by outcome.
func (d *DB) IncrementMatchOutcome(ctx context.Context, keyword, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO match_outcomes (keyword, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, outcome) DO UPDATE
		SET count = match_outcomes.count + 1, last_seen_at = NOW()
	`, keyword, outcome)
	return err
}

// GetAllMatchOutcomes returns all match outcome rows for metrics export.
func (d *DB) GetAllMatchOutcomes(ctx context.Context) ([]models.MatchOutcome, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword, outcome, count, last_seen_at FROM match_outcomes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outcomes []models.MatchOutcome
	for rows.Next() {
		var o models.MatchOutcome
		if err := rows.Scan(&o.Keyword, &o.Outcome, &o.Count, &o.LastSeenAt); err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
