package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nbox/ProductHunt-Statistic/internal/archive"
	"github.com/nbox/ProductHunt-Statistic/internal/config"
	"github.com/nbox/ProductHunt-Statistic/internal/constants"
	"github.com/nbox/ProductHunt-Statistic/internal/domain"
	loggerpkg "github.com/nbox/ProductHunt-Statistic/internal/logger"
	"github.com/nbox/ProductHunt-Statistic/internal/patch"
	"github.com/nbox/ProductHunt-Statistic/internal/report"
	"github.com/nbox/ProductHunt-Statistic/internal/stats"
	"github.com/nbox/ProductHunt-Statistic/internal/window"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fetcher pulls every launch posted inside the window.
type Fetcher interface {
	FetchPostsForDay(ctx context.Context, win domain.TimeWindow) ([]domain.Post, error)
}

// RunStore persists one day's launches and aggregates.
type RunStore interface {
	SaveRun(ctx context.Context, win domain.TimeWindow, tz string, st domain.DailyStats, posts []domain.Post) error
}

type CatalogService struct {
	cfg     *config.Config
	fetcher Fetcher
	store   RunStore
	logger  zerolog.Logger
}

func NewCatalogService(cfg *config.Config, fetcher Fetcher, store RunStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{cfg: cfg, fetcher: fetcher, store: store, logger: loggerpkg.WithLevel(logger, cfg.LogLevel)}
}

// Run executes one catalog update end to end: resolve the day window, fetch
// launches, aggregate, persist history, write the daily report and patch the
// README. A day with zero launches skips every write and succeeds, so a
// transient empty result never overwrites an existing report.
func (s *CatalogService) Run(ctx context.Context) error {
	runID := uuid.New().String()
	logger := s.logger.With().Str("run_id", runID).Logger()
	start := time.Now()

	if s.cfg.Token == "" {
		return domain.NewConfigError("missing PRODUCTHUNT_TOKEN")
	}

	win, err := window.Resolve(time.Now(), s.cfg.Timezone, s.cfg.DateOverride)
	if err != nil {
		return err
	}
	logger.Info().
		Str("day", win.Label).
		Str("tz", s.cfg.Timezone).
		Str("posted_after", win.PostedAfter()).
		Str("posted_before", win.PostedBefore()).
		Msg("resolved day window")

	posts, err := s.fetcher.FetchPostsForDay(ctx, win)
	if err != nil {
		logger.Error().Err(err).Str("day", win.Label).Msg("failed to fetch launches")
		return err
	}
	logger.Info().Str("day", win.Label).Int("launch_count", len(posts)).Msg("launches fetched")

	if len(posts) == 0 {
		logger.Warn().Str("day", win.Label).Msg("no launches for the day, leaving prior state untouched")
		return nil
	}

	st := stats.Compute(posts, s.cfg.TopN)
	logger.Info().
		Str("day", win.Label).
		Int("launches", st.Count).
		Int("total_votes", st.TotalVotes).
		Float64("avg_votes", st.AvgVotes).
		Float64("median_votes", st.MedianVotes).
		Int("unique_makers", st.UniqueMakers).
		Msg("daily stats computed")

	if err := s.store.SaveRun(ctx, win, s.cfg.Timezone, st, posts); err != nil {
		// History store failures are non-fatal; the Markdown artifacts are
		// the product and the DB can be rebuilt from them.
		logger.Error().Err(err).Str("day", win.Label).Msg("failed to persist run history")
	}

	relLink := fmt.Sprintf("%s/%s/%s%s", win.Year, win.Month, win.Label, constants.ReportExt)
	dailyPath := filepath.Join(s.cfg.OutDir, win.Year, win.Month, win.Label+constants.ReportExt)

	dailyMD := report.Daily(st, posts, win.Label, s.cfg.Timezone, relLink)
	if err := writeText(dailyPath, dailyMD); err != nil {
		return err
	}
	logger.Info().Str("path", dailyPath).Msg("daily report written")

	if err := s.patchReadme(st, win, relLink, logger); err != nil {
		return err
	}

	logger.Info().Dur("duration", time.Since(start)).Str("day", win.Label).Msg("catalog updated")
	return nil
}

func (s *CatalogService) patchReadme(st domain.DailyStats, win domain.TimeWindow, relLink string, logger zerolog.Logger) error {
	raw, err := os.ReadFile(s.cfg.ReadmePath)
	if err != nil {
		logger.Error().Err(err).Str("path", s.cfg.ReadmePath).Msg("host README not readable, create it first")
		return &domain.FilesystemError{Path: s.cfg.ReadmePath, Err: err}
	}

	todayBlock := report.Today(st, win.Label, s.cfg.Timezone, relLink)
	archiveBlock := archive.BuildNav(os.DirFS(s.cfg.OutDir))

	readme := string(raw)
	readme = patch.ReplaceBlock(readme, constants.StartToday, constants.EndToday, todayBlock)
	readme = patch.ReplaceBlock(readme, constants.StartArchive, constants.EndArchive, archiveBlock)

	if err := writeText(s.cfg.ReadmePath, readme); err != nil {
		return err
	}
	logger.Info().Str("path", s.cfg.ReadmePath).Msg("README updated")
	return nil
}

func writeText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
