package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID      int64          `db:"id"`
	Name    string         `db:"name"`
	Country sql.NullString `db:"country"`
}

type teamTableModel struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	City     sql.NullString `db:"city"`
	Country  sql.NullString `db:"country"`
	Stadium  sql.NullString `db:"stadium"`
	Capacity sql.NullInt64  `db:"capacity"`
	Founded  sql.NullInt64  `db:"founded"`
}

type seasonTableModel struct {
	ID        int64     `db:"id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

type matchTableModel struct {
	ID         int64     `db:"id"`
	Date       time.Time `db:"date"`
	LeagueID   int64     `db:"league_id"`
	SeasonID   int64     `db:"season_id"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
}

type airportTableModel struct {
	ID          int64   `db:"id"`
	TeamID      int64   `db:"team_id"`
	IATACode    string  `db:"iata_code"`
	AirportName string  `db:"airport_name"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}
