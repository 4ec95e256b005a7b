package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/schedule"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	ScheduleSourceCache          = "cache"
	ScheduleSourceUpstreamWeek   = "upstream_week"
	ScheduleSourceUpstreamSeason = "upstream_season"
	ScheduleSourceEmpty          = "empty"
)

type TeamInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Alias  string `json:"alias,omitempty"`
	Market string `json:"market,omitempty"`
}

type WeekGame struct {
	ID        string   `json:"id"`
	Scheduled string   `json:"scheduled"`
	Status    string   `json:"status"`
	Home      TeamInfo `json:"home"`
	Away      TeamInfo `json:"away"`
	HomeScore *int     `json:"home_score"`
	AwayScore *int     `json:"away_score"`
}

// WeekSchedule is the resolver's answer. Source tells where the games came from.
type WeekSchedule struct {
	Season     int        `json:"season"`
	SeasonType string     `json:"season_type"`
	Week       int        `json:"week"`
	Source     string     `json:"source"`
	Games      []WeekGame `json:"games"`
}

// ScheduleResolver answers week schedule lookups from the local cache first
// and falls back to the provider. It never writes to the cache.
type ScheduleResolver struct {
	scheduleRepo schedule.Repository
	teamRepo     nflteam.Repository
	provider     NFLDataProvider
	logger       *logging.Logger
}

func NewScheduleResolver(
	scheduleRepo schedule.Repository,
	teamRepo nflteam.Repository,
	provider NFLDataProvider,
	logger *logging.Logger,
) *ScheduleResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleResolver{
		scheduleRepo: scheduleRepo,
		teamRepo:     teamRepo,
		provider:     provider,
		logger:       logger.With("component", "schedule_resolver"),
	}
}

func (r *ScheduleResolver) ResolveWeek(ctx context.Context, season int, seasonType string, week int) (result WeekSchedule, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleResolver.ResolveWeek",
		attribute.Int("nfl.season", season),
		attribute.Int("nfl.week", week),
	)
	defer func() {
		span.SetAttributes(attribute.String("nfl.schedule_source", result.Source))
		endUsecaseSpan(span, err)
	}()

	if season <= 0 {
		return WeekSchedule{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	if week <= 0 {
		return WeekSchedule{}, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}
	seasonType = schedule.NormalizeSeasonType(seasonType)

	out := WeekSchedule{Season: season, SeasonType: seasonType, Week: week, Games: []WeekGame{}}

	cached, err := r.scheduleRepo.ListByWeek(ctx, season, week)
	if err != nil {
		return WeekSchedule{}, fmt.Errorf("list cached games season=%d week=%d: %w", season, week, err)
	}
	if len(cached) > 0 {
		out.Source = ScheduleSourceCache
		out.Games = r.fromCache(ctx, cached)
		return out, nil
	}

	direct, err := r.provider.FetchWeekSchedule(ctx, season, seasonType, week)
	if err == nil {
		out.Source = ScheduleSourceUpstreamWeek
		out.Games = fromUpstream(direct.Games)
		return out, nil
	}
	if !errors.Is(err, ErrProviderNotFound) {
		r.logger.WarnContext(ctx, "week schedule unavailable from provider", "season", season, "season_type", seasonType, "week", week, "error", err)
		out.Source = ScheduleSourceEmpty
		return out, nil
	}

	full, err := r.provider.FetchSeasonSchedule(ctx, season, seasonType)
	if err != nil {
		r.logger.WarnContext(ctx, "season schedule fallback failed", "season", season, "season_type", seasonType, "week", week, "error", err)
		out.Source = ScheduleSourceEmpty
		return out, nil
	}
	matched, ok := matchWeek(full.Weeks, week)
	if !ok {
		out.Source = ScheduleSourceEmpty
		return out, nil
	}

	out.Source = ScheduleSourceUpstreamSeason
	out.Games = fromUpstream(matched.Games)
	return out, nil
}

func (r *ScheduleResolver) fromCache(ctx context.Context, games []schedule.Game) []WeekGame {
	teams := make(map[string]TeamInfo, len(games)*2)
	lookup := func(teamID string) TeamInfo {
		if info, ok := teams[teamID]; ok {
			return info
		}
		info := TeamInfo{ID: teamID, Name: teamID}
		team, exists, err := r.teamRepo.GetByID(ctx, teamID)
		switch {
		case err != nil:
			r.logger.WarnContext(ctx, "team lookup failed, using raw id", "team_id", teamID, "error", err)
		case exists:
			info.Name = firstNonEmpty(team.DisplayName(), teamID)
			info.Alias = team.Alias
			info.Market = team.Market
		}
		teams[teamID] = info
		return info
	}

	out := make([]WeekGame, 0, len(games))
	for _, game := range games {
		out = append(out, WeekGame{
			ID:        game.ID,
			Scheduled: game.Scheduled,
			Status:    game.Status,
			Home:      lookup(game.HomeTeamID),
			Away:      lookup(game.AwayTeamID),
			HomeScore: game.HomeScore,
			AwayScore: game.AwayScore,
		})
	}
	return out
}

func fromUpstream(games []ExternalGame) []WeekGame {
	out := make([]WeekGame, 0, len(games))
	for _, game := range games {
		out = append(out, WeekGame{
			ID:        game.ID,
			Scheduled: game.Scheduled,
			Status:    schedule.NormalizeStatus(game.Status),
			Home:      refInfo(game.Home),
			Away:      refInfo(game.Away),
			HomeScore: game.HomePoints,
			AwayScore: game.AwayPoints,
		})
	}
	return out
}

func refInfo(ref ExternalTeamRef) TeamInfo {
	return TeamInfo{
		ID:    ref.ID,
		Name:  firstNonEmpty(ref.Name, ref.Alias, ref.ID),
		Alias: ref.Alias,
	}
}

// matchWeek selects by sequence, then by a title of "N" or "Week N".
func matchWeek(weeks []ExternalWeek, week int) (ExternalWeek, bool) {
	for _, item := range weeks {
		if item.Sequence == week {
			return item, true
		}
	}
	number := strconv.Itoa(week)
	for _, item := range weeks {
		title := strings.TrimSpace(item.Title)
		if title == number || strings.EqualFold(title, "Week "+number) {
			return item, true
		}
	}
	return ExternalWeek{}, false
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
