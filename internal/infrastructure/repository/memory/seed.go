package memory

import (
	"time"

	"github.com/riskibarqy/football-emissions/internal/domain/airport"
	"github.com/riskibarqy/football-emissions/internal/domain/league"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
	"github.com/riskibarqy/football-emissions/internal/domain/season"
	"github.com/riskibarqy/football-emissions/internal/domain/team"
)

const (
	LeagueIDPremierLeague int64 = 1
	LeagueIDFACup         int64 = 2

	SeasonID2023 int64 = 1
	SeasonID2024 int64 = 2

	TeamIDManchesterUnited int64 = 1
	TeamIDManchesterCity   int64 = 2
	TeamIDLiverpool        int64 = 3
	TeamIDEverton          int64 = 4
	TeamIDArsenal          int64 = 5
	TeamIDChelsea          int64 = 6
	TeamIDNewcastle        int64 = 7
	TeamIDBrighton         int64 = 8
)

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDPremierLeague, Name: "Premier League", Country: "England"},
		{ID: LeagueIDFACup, Name: "FA Cup", Country: "England"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDManchesterUnited, Name: "Manchester United", City: "Manchester", Country: "England", Stadium: "Old Trafford", Capacity: 74310, Founded: 1878},
		{ID: TeamIDManchesterCity, Name: "Manchester City", City: "Manchester", Country: "England", Stadium: "Etihad Stadium", Capacity: 53400, Founded: 1880},
		{ID: TeamIDLiverpool, Name: "Liverpool", City: "Liverpool", Country: "England", Stadium: "Anfield", Capacity: 61276, Founded: 1892},
		{ID: TeamIDEverton, Name: "Everton", City: "Liverpool", Country: "England", Stadium: "Goodison Park", Capacity: 39414, Founded: 1878},
		{ID: TeamIDArsenal, Name: "Arsenal", City: "London", Country: "England", Stadium: "Emirates Stadium", Capacity: 60704, Founded: 1886},
		{ID: TeamIDChelsea, Name: "Chelsea", City: "London", Country: "England", Stadium: "Stamford Bridge", Capacity: 40343, Founded: 1905},
		{ID: TeamIDNewcastle, Name: "Newcastle United", City: "Newcastle", Country: "England", Stadium: "St James' Park", Capacity: 52305, Founded: 1892},
		{ID: TeamIDBrighton, Name: "Brighton & Hove Albion", City: "Brighton", Country: "England"},
	}
}

func SeedSeasons() []season.Season {
	return []season.Season{
		{ID: SeasonID2023, StartDate: date(2022, time.August, 5), EndDate: date(2023, time.May, 30)},
		{ID: SeasonID2024, StartDate: date(2023, time.August, 11), EndDate: date(2024, time.May, 25)},
	}
}

// SeedAirports only covers teams outside the static city table.
func SeedAirports() []airport.Airport {
	return []airport.Airport{
		{ID: 1, TeamID: TeamIDNewcastle, IATACode: "NCL", Name: "Newcastle International Airport", Latitude: 55.0375, Longitude: -1.6917},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: 201, Date: date(2022, time.September, 3), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2023, HomeTeamID: TeamIDArsenal, AwayTeamID: TeamIDLiverpool},
		{ID: 202, Date: date(2023, time.April, 15), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2023, HomeTeamID: TeamIDManchesterUnited, AwayTeamID: TeamIDChelsea},
		{ID: 101, Date: date(2023, time.August, 12), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2024, HomeTeamID: TeamIDManchesterUnited, AwayTeamID: TeamIDLiverpool},
		{ID: 102, Date: date(2023, time.September, 2), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2024, HomeTeamID: TeamIDArsenal, AwayTeamID: TeamIDManchesterCity},
		{ID: 103, Date: date(2023, time.October, 21), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2024, HomeTeamID: TeamIDChelsea, AwayTeamID: TeamIDNewcastle},
		{ID: 104, Date: date(2023, time.November, 25), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2024, HomeTeamID: TeamIDEverton, AwayTeamID: TeamIDBrighton},
		{ID: 105, Date: date(2024, time.January, 13), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2024, HomeTeamID: TeamIDLiverpool, AwayTeamID: TeamIDChelsea},
		{ID: 106, Date: date(2024, time.March, 10), LeagueID: LeagueIDPremierLeague, SeasonID: SeasonID2024, HomeTeamID: TeamIDManchesterCity, AwayTeamID: TeamIDManchesterUnited},
		{ID: 301, Date: date(2024, time.February, 28), LeagueID: LeagueIDFACup, SeasonID: SeasonID2024, HomeTeamID: TeamIDChelsea, AwayTeamID: TeamIDEverton},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
