package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
	qb "github.com/riskibarqy/football-emissions/internal/platform/querybuilder"
	"github.com/riskibarqy/football-emissions/internal/usecase"
)

const (
	tableLeagues  = "leagues"
	tableTeams    = "teams"
	tableSeasons  = "seasons"
	tableMatches  = "matches"
	tableAirports = "airports"
	opSelect      = "select"
	opBuild       = "build"
)

// selectAll runs query into dest and marks any failure as a data source error.
func selectAll(ctx context.Context, db *sqlx.DB, table string, builder *qb.SelectBuilder, dest any) error {
	query, args, err := builder.ToSQL()
	if err != nil {
		return usecase.NewDataSourceError(table, opBuild, crerr.Wrapf(err, "build select %s query", table))
	}
	if err := db.SelectContext(ctx, dest, query, args...); err != nil {
		return usecase.NewDataSourceError(table, opSelect, crerr.Wrapf(err, "select %s", table))
	}
	return nil
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	var rows []leagueTableModel
	builder := qb.Select("id", "name", "country").From(tableLeagues).OrderBy("id")
	if err := selectAll(ctx, r.db, tableLeagues, builder, &rows); err != nil {
		return nil, err
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.League{
			ID:      row.ID,
			Name:    row.Name,
			Country: nullString(row.Country),
		})
	}
	return out, nil
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamTableModel
	builder := qb.Select("id", "name", "city", "country", "stadium", "capacity", "founded").
		From(tableTeams).
		OrderBy("id")
	if err := selectAll(ctx, r.db, tableTeams, builder, &rows); err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:       row.ID,
			Name:     row.Name,
			City:     nullString(row.City),
			Country:  nullString(row.Country),
			Stadium:  nullString(row.Stadium),
			Capacity: nullInt(row.Capacity),
			Founded:  nullInt(row.Founded),
		})
	}
	return out, nil
}

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	var rows []seasonTableModel
	builder := qb.Select("id", "start_date", "end_date").From(tableSeasons).OrderBy("id")
	if err := selectAll(ctx, r.db, tableSeasons, builder, &rows); err != nil {
		return nil, err
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Season{
			ID:        row.ID,
			StartDate: row.StartDate.UTC(),
			EndDate:   row.EndDate.UTC(),
		})
	}
	return out, nil
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]match.Match, error) {
	return r.list(ctx, []qb.Condition{qb.Eq("season_id", seasonID)})
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	return r.list(ctx, matchConditions(filter))
}

func (r *MatchRepository) list(ctx context.Context, conditions []qb.Condition) ([]match.Match, error) {
	var rows []matchTableModel
	builder := qb.Select("id", "date", "league_id", "season_id", "home_team_id", "away_team_id").
		From(tableMatches).
		Where(conditions...).
		OrderBy("id")
	if err := selectAll(ctx, r.db, tableMatches, builder, &rows); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:         row.ID,
			Date:       row.Date.UTC(),
			LeagueID:   row.LeagueID,
			SeasonID:   row.SeasonID,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
		})
	}
	return out, nil
}

func matchConditions(filter match.Filter) []qb.Condition {
	conditions := make([]qb.Condition, 0, 3)
	if filter.LeagueID != 0 {
		conditions = append(conditions, qb.Eq("league_id", filter.LeagueID))
	}
	if filter.SeasonID != 0 {
		conditions = append(conditions, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.TeamID != 0 {
		conditions = append(conditions, qb.Any(
			qb.Eq("home_team_id", filter.TeamID),
			qb.Eq("away_team_id", filter.TeamID),
		))
	}
	return conditions
}

type AirportRepository struct {
	db *sqlx.DB
}

func NewAirportRepository(db *sqlx.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

func (r *AirportRepository) List(ctx context.Context) ([]airport.Airport, error) {
	var rows []airportTableModel
	builder := qb.Select("id", "team_id", "iata_code", "airport_name", "latitude", "longitude").
		From(tableAirports).
		OrderBy("id")
	if err := selectAll(ctx, r.db, tableAirports, builder, &rows); err != nil {
		return nil, err
	}

	out := make([]airport.Airport, 0, len(rows))
	for _, row := range rows {
		out = append(out, airport.Airport{
			ID:        row.ID,
			TeamID:    row.TeamID,
			IATACode:  strings.TrimSpace(row.IATACode),
			Name:      row.AirportName,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})
	}
	return out, nil
}
