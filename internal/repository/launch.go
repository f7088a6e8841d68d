package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nbox/ProductHunt-Statistic/internal/domain"

	"github.com/rs/zerolog"
)

type LaunchRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewLaunchRepository(sqlDB *sql.DB, logger zerolog.Logger) *LaunchRepository {
	return &LaunchRepository{db: sqlDB, logger: logger}
}

// SaveRun upserts the day's aggregate row and replaces the day's launches,
// in one transaction. Re-running a day overwrites its history the same way
// the Markdown report is overwritten.
func (r *LaunchRepository) SaveRun(ctx context.Context, win domain.TimeWindow, tz string, st domain.DailyStats, posts []domain.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (day_label, tz, launch_count, total_votes, avg_votes, median_votes,
			total_comments, unique_makers, prolific_maker, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (day_label) DO UPDATE SET
			tz = excluded.tz,
			launch_count = excluded.launch_count,
			total_votes = excluded.total_votes,
			avg_votes = excluded.avg_votes,
			median_votes = excluded.median_votes,
			total_comments = excluded.total_comments,
			unique_makers = excluded.unique_makers,
			prolific_maker = excluded.prolific_maker,
			updated_at = excluded.updated_at`,
		win.Label, tz, st.Count, st.TotalVotes, st.AvgVotes, st.MedianVotes,
		st.TotalComments, st.UniqueMakers, st.ProlificMaker, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM launches WHERE day_label = ?`, win.Label); err != nil {
		return fmt.Errorf("failed to clear launches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO launches (day_label, name, tagline, description, url, website, votes, comments, makers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (day_label, name) DO UPDATE SET
			tagline = excluded.tagline,
			description = excluded.description,
			url = excluded.url,
			website = excluded.website,
			votes = excluded.votes,
			comments = excluded.comments,
			makers = excluded.makers`)
	if err != nil {
		return fmt.Errorf("failed to prepare launch insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range posts {
		makers, err := json.Marshal(p.Makers)
		if err != nil {
			return fmt.Errorf("failed to encode makers for %q: %w", p.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, win.Label, p.Name, p.Tagline, p.Description,
			p.URL, p.Website, p.VotesCount, p.CommentsCount, string(makers)); err != nil {
			return fmt.Errorf("failed to insert launch %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	r.logger.Debug().Str("day", win.Label).Int("launches", len(posts)).Msg("run persisted")
	return nil
}

// RunCount reports how many days of history are stored.
func (r *LaunchRepository) RunCount(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}
