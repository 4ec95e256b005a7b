package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/riskibarqy/nfl-fantasy-pickem/external/sportradar"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/config"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/domain/nflteam"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/interfaces/httpapi"
	platformcache "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/cache"
	idgen "github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/id"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/logging"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/platform/resilience"
	"github.com/riskibarqy/nfl-fantasy-pickem/internal/usecase"
)

// NewHTTPServer wires storage, the Sportradar client and services into an
// HTTP server. The returned cleanup closes the database pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	if cfg.DBAutoMigrate {
		if err := migrateUp(cfg.DBURL, cfg.DBBinaryParameters, logger.Component("migrate")); err != nil {
			return nil, nil, err
		}
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error { return db.Close() }

	clk := clock.New()

	var teamRepo nflteam.Repository = postgres.NewNFLTeamRepository(db)
	if cfg.CacheEnabled {
		teamRepo = cache.NewNFLTeamRepository(teamRepo, platformcache.NewStore(cfg.CacheTTL, clk))
	}
	scheduleRepo := postgres.NewScheduleRepository(db)
	playerRepo := postgres.NewNFLPlayerRepository(db)
	statsRepo := postgres.NewPlayerStatsRepository(db)
	userRepo := postgres.NewUserRepository(db)
	leagueRepo := postgres.NewFantasyLeagueRepository(db)
	fantasyTeamRepo := postgres.NewFantasyTeamRepository(db)
	rosterRepo := postgres.NewFantasyRosterRepository(db)
	lineupRepo := postgres.NewFantasyLineupRepository(db)
	groupRepo := postgres.NewPickemGroupRepository(db)
	memberRepo := postgres.NewPickemMemberRepository(db)
	pickRepo := postgres.NewPickemPickRepository(db)

	breakerCfg := resilience.CircuitBreakerConfig{
		Enabled:          cfg.SportradarCircuitEnabled,
		FailureThreshold: cfg.SportradarCircuitFailureCount,
		OpenTimeout:      cfg.SportradarCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.SportradarCircuitHalfOpenMaxReq,
	}.WithDefaults()
	provider := sportradar.NewClient(sportradar.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.SportradarTimeout},
		BaseURL:    cfg.SportradarBaseURL,
		APIKey:     cfg.SportradarAPIKey,
		Timeout:    cfg.SportradarTimeout,
		MaxRetries: cfg.SportradarMaxRetries,
		Logger:     logger.Component("sportradar"),
		Clock:      clk,
		CircuitBreaker: breakerCfg,
	})

	authSvc := usecase.NewAuthService(usecase.AuthServiceConfig{
		Users:      userRepo,
		IDs:        idgen.NewUUIDGenerator(),
		Clock:      clk,
		Secret:     cfg.JWTSecret,
		TokenTTL:   cfg.JWTTTL,
		BcryptCost: cfg.BcryptCost,
	})
	nflSvc := usecase.NewNFLService(usecase.NFLServiceConfig{
		Provider:       provider,
		Teams:          teamRepo,
		Schedule:       scheduleRepo,
		Players:        playerRepo,
		Stats:          statsRepo,
		Clock:          clk,
		Logger:         logger.Component("nfl_service"),
		SyncMaxWorkers: cfg.StatsSyncMaxWorkers,
	})
	fantasySvc := usecase.NewFantasyService(leagueRepo, fantasyTeamRepo, rosterRepo, lineupRepo, clk)
	standingsSvc := usecase.NewStandingsService(leagueRepo, fantasyTeamRepo, statsRepo, clk,
		logger.Component("standings_service"), cfg.AggregationMaxConcurrency)
	pickemSvc := usecase.NewPickemService(groupRepo, memberRepo, pickRepo, clk, logger.Component("pickem_service"))
	leaderboardSvc := usecase.NewLeaderboardService(groupRepo, memberRepo, pickRepo, clk,
		logger.Component("leaderboard_service"), cfg.AggregationMaxConcurrency)
	userSvc := usecase.NewUserService(userRepo, fantasyTeamRepo, groupRepo)

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Auth:        authSvc,
		Users:       userSvc,
		NFL:         nflSvc,
		Fantasy:     fantasySvc,
		Standings:   standingsSvc,
		Pickem:      pickemSvc,
		Leaderboard: leaderboardSvc,
		Logger:      logger,
	})
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:            handler,
		Verifier:           authSvc,
		Logger:             logger,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("application wired", append([]any{
		"cache_enabled", cfg.CacheEnabled,
		"swagger_enabled", cfg.SwaggerEnabled,
		"sportradar_base_url", cfg.SportradarBaseURL,
	}, breakerCfg.LogFields()...)...)

	return server, cleanup, nil
}
