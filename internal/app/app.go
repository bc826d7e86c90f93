package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-emissions/internal/config"
	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
	"github.com/riskibarqy/football-emissions/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-emissions/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-emissions/internal/infrastructure/repository/supabase"
	"github.com/riskibarqy/football-emissions/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-emissions/internal/platform/logging"
	"github.com/riskibarqy/football-emissions/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// repositories is the read side of one data source.
type repositories struct {
	leagues  league.Repository
	teams    team.Repository
	seasons  season.Repository
	airports airport.Repository
	matches  match.Repository
	close    func() error
}

type repositoryOpener func(cfg config.Config, logger *logging.Logger) (repositories, error)

// NewHTTPServer wires the service. The returned cleanup releases the data
// source connection and is safe to call when nothing was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	router, cleanup, err := buildRouter(cfg, logger, openRepositories)
	if err != nil {
		return nil, nil, err
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func buildRouter(cfg config.Config, logger *logging.Logger, open repositoryOpener) (http.Handler, func() error, error) {
	noop := func() error { return nil }

	if err := cfg.DataSource.Validate(); err != nil {
		var cfgErr *config.ConfigurationError
		if !errors.As(err, &cfgErr) {
			return nil, nil, err
		}
		logger.Error("data source not configured", "driver", cfgErr.Driver, "missing", cfgErr.Missing)
		return httpapi.NewConfigErrorRouter(cfgErr, logger, cfg.CORSAllowedOrigins), noop, nil
	}

	repos, err := open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if repos.close == nil {
		repos.close = noop
	}

	cities := emissions.DefaultCityTable()
	passengers := cfg.EmissionsPassengers

	referenceSvc := usecase.NewReferenceService(repos.leagues, repos.teams, repos.seasons, repos.matches, repos.airports)
	matchSvc := usecase.NewMatchService(repos.leagues, repos.teams, repos.seasons, repos.airports, repos.matches, cities, passengers, logger)
	dashboardSvc := usecase.NewDashboardService(repos.leagues, repos.teams, repos.seasons, repos.airports, repos.matches, cities, passengers)

	handler := httpapi.NewHandler(referenceSvc, matchSvc, dashboardSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	logger.Info("data source ready", "driver", cfg.DataSource.Driver, "known_cities", cities.Len())
	return router, repos.close, nil
}

func openRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.DataSource.Driver {
	case config.DriverSupabase:
		client, err := supabase.NewClient(supabase.ClientConfig{
			BaseURL: cfg.DataSource.SupabaseURL,
			APIKey:  cfg.DataSource.SupabaseAnonKey,
			Schema:  cfg.DataSource.SupabaseSchema,
			Timeout: cfg.DataSource.SupabaseTimeout,
			Logger:  logger,
		})
		if err != nil {
			return repositories{}, fmt.Errorf("build supabase client: %w", err)
		}
		return repositories{
			leagues:  supabase.NewLeagueRepository(client),
			teams:    supabase.NewTeamRepository(client),
			seasons:  supabase.NewSeasonRepository(client),
			airports: supabase.NewAirportRepository(client),
			matches:  supabase.NewMatchRepository(client),
		}, nil
	case config.DriverPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			leagues:  postgres.NewLeagueRepository(db),
			teams:    postgres.NewTeamRepository(db),
			seasons:  postgres.NewSeasonRepository(db),
			airports: postgres.NewAirportRepository(db),
			matches:  postgres.NewMatchRepository(db),
			close:    db.Close,
		}, nil
	case config.DriverMemory:
		return repositories{
			leagues:  memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			seasons:  memory.NewSeasonRepository(memory.SeedSeasons()),
			airports: memory.NewAirportRepository(memory.SeedAirports()),
			matches:  memory.NewMatchRepository(memory.SeedMatches()),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported data source %q", cfg.DataSource.Driver)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	dsn, err := PostgresDSN(cfg.DataSource)
	if err != nil {
		return nil, err
	}

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(spanStatement),
	}
	if name := databaseName(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
