package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultStatsSyncWorkers = 4

	statsSyncStatusSuccess = "success"
	statsSyncStatusFailed  = "failed"
)

type StatsSyncGameResult struct {
	GameID     string `json:"game_id"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type StatsSyncResult struct {
	Season       int                   `json:"season"`
	SeasonType   string                `json:"season_type"`
	Week         int                   `json:"week"`
	Source       string                `json:"source"`
	SuccessCount int                   `json:"success_count"`
	FailedCount  int                   `json:"failed_count"`
	Games        []StatsSyncGameResult `json:"games"`
}

// SyncWeekStatistics ingests statistics for every game of the week on a
// bounded worker pool. One failing game never stops the others. Rows take
// the cached schedule row's season and week, else the resolved week's.
func (s *NFLService) SyncWeekStatistics(ctx context.Context, season int, seasonType string, week int) (_ StatsSyncResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NFLService.SyncWeekStatistics",
		attribute.Int("nfl.season", season),
		attribute.Int("nfl.week", week),
	)
	defer func() { endUsecaseSpan(span, err) }()

	resolved, err := s.resolver.ResolveWeek(ctx, season, seasonType, week)
	if err != nil {
		return StatsSyncResult{}, fmt.Errorf("resolve week: %w", err)
	}

	result := StatsSyncResult{
		Season:     resolved.Season,
		SeasonType: resolved.SeasonType,
		Week:       resolved.Week,
		Source:     resolved.Source,
		Games:      make([]StatsSyncGameResult, 0, len(resolved.Games)),
	}
	if len(resolved.Games) == 0 {
		return result, nil
	}

	workerCount := min(s.syncMaxWorkers, len(resolved.Games))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return StatsSyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var successCount atomic.Int32
	var failedCount atomic.Int32
	rows := make(chan StatsSyncGameResult, len(resolved.Games))

	var workers sync.WaitGroup
	for _, game := range resolved.Games {
		gameID := game.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := StatsSyncGameResult{GameID: gameID, Status: statsSyncStatusSuccess}
			season, week, ok := s.cachedSeasonWeek(ctx, gameID)
			if !ok {
				season, week = resolved.Season, resolved.Week
			}
			ingested, ingestErr := s.ingestGameStatistics(ctx, gameID, season, week)
			if ingestErr != nil {
				row.Status = statsSyncStatusFailed
				row.Message = ingestErr.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "game statistics sync failed", "game_id", gameID, "error", ingestErr)
			} else {
				row.Records = len(ingested.Players)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			rows <- row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return StatsSyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Games = append(result.Games, row)
	}
	sort.SliceStable(result.Games, func(i, j int) bool {
		return result.Games[i].GameID < result.Games[j].GameID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "week statistics sync finished",
		"season", result.Season,
		"week", result.Week,
		"source", result.Source,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}
