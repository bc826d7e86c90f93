package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/usecase"
)

// Set TEST_DB_URL to a disposable postgres database to run these.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	rawURL := strings.TrimSpace(os.Getenv("TEST_DB_URL"))
	if rawURL == "" {
		t.Skip("TEST_DB_URL is not set")
	}

	admin, err := sqlx.Connect("postgres", rawURL)
	if err != nil {
		t.Fatalf("connect admin: %v", err)
	}
	schema := fmt.Sprintf("emissions_it_%d", time.Now().UnixNano())
	if _, err := admin.Exec("CREATE SCHEMA " + schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		_, _ = admin.Exec("DROP SCHEMA " + schema + " CASCADE")
		_ = admin.Close()
	})

	parsed, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse TEST_DB_URL: %v", err)
	}
	query := parsed.Query()
	query.Set("search_path", schema)
	parsed.RawQuery = query.Encode()

	db, err := sqlx.Connect("postgres", parsed.String())
	if err != nil {
		t.Fatalf("connect schema: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyUpMigrations(t, db)
	return db
}

func applyUpMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("..", "..", "..", "..", "db", "migrations", "*.up.sql"))
	if err != nil || len(files) == 0 {
		t.Fatalf("find migrations: %v (found %d)", err, len(files))
	}
	sort.Strings(files)
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		if _, err := db.Exec(string(raw)); err != nil {
			t.Fatalf("apply %s: %v", file, err)
		}
	}
}

func TestRepositories_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	db.MustExec(`INSERT INTO leagues (id, name, country) VALUES (1, 'Premier League', 'England'), (2, 'FA Cup', NULL)`)
	db.MustExec(`INSERT INTO teams (id, name, city, country) VALUES (1, 'Manchester United', 'Manchester', 'England'), (3, 'Liverpool', 'Liverpool', 'England'), (7, 'Newcastle United', 'Newcastle', 'England')`)
	db.MustExec(`INSERT INTO seasons (id, start_date, end_date) VALUES (1, '2022-08-05', '2023-05-30'), (2, '2023-08-11', '2024-05-25')`)
	db.MustExec(`INSERT INTO matches (id, date, league_id, season_id, home_team_id, away_team_id) VALUES
		(101, '2023-08-12', 1, 2, 1, 3),
		(102, '2023-09-02', 1, 2, 7, 1),
		(201, '2022-09-03', 1, 1, 3, 7)`)
	db.MustExec(`INSERT INTO airports (id, team_id, iata_code, airport_name, latitude, longitude) VALUES (1, 7, 'NCL', 'Newcastle International Airport', 55.0375, -1.6917)`)

	leagues, err := NewLeagueRepository(db).List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 2 || leagues[1].Country != "" {
		t.Fatalf("unexpected leagues: %+v", leagues)
	}

	seasons, err := NewSeasonRepository(db).List(ctx)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if !seasons[1].EndDate.Equal(time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected season end: %s", seasons[1].EndDate)
	}

	matches, err := NewMatchRepository(db).List(ctx, match.Filter{SeasonID: 2, TeamID: 1})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("unexpected match count: %d", len(matches))
	}

	bySeason, err := NewMatchRepository(db).ListBySeason(ctx, 1)
	if err != nil {
		t.Fatalf("list matches by season: %v", err)
	}
	if len(bySeason) != 1 || bySeason[0].ID != 201 {
		t.Fatalf("unexpected season matches: %+v", bySeason)
	}

	airports, err := NewAirportRepository(db).List(ctx)
	if err != nil {
		t.Fatalf("list airports: %v", err)
	}
	if len(airports) != 1 || airports[0].Latitude != 55.0375 {
		t.Fatalf("unexpected airports: %+v", airports)
	}

	teams, err := NewTeamRepository(db).List(ctx)
	if err != nil || len(teams) != 3 {
		t.Fatalf("unexpected teams: %+v %v", teams, err)
	}
}

func TestRepositories_Integration_MissingTableIsDataSourceError(t *testing.T) {
	db := openTestDB(t)
	db.MustExec(`DROP TABLE airports`)

	_, err := NewAirportRepository(db).List(context.Background())
	dsErr, ok := usecase.AsDataSourceError(err)
	if !ok || dsErr.Table != "airports" {
		t.Fatalf("expected airports DataSourceError, got %v", err)
	}
}

func sqlNullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
