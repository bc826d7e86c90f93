package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/football-emissions/internal/domain/emissions"
	"github.com/riskibarqy/football-emissions/internal/domain/match"
)

type SortOrder string

const (
	SortAll     SortOrder = "all"
	SortHighest SortOrder = "highest"
	SortRecent  SortOrder = "recent"
)

func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortAll:
		return SortAll, nil
	case SortHighest:
		return SortHighest, nil
	case SortRecent:
		return SortRecent, nil
	default:
		return "", fmt.Errorf("%w: unsupported sort %q", ErrInvalidInput, raw)
	}
}

// MatchCriteria is the state of the match list controls.
type MatchCriteria struct {
	Filter     match.Filter
	Search     string
	Sort       SortOrder
	Passengers int
}

func (c MatchCriteria) normalize(defaultPassengers int) (MatchCriteria, error) {
	sortOrder, err := ParseSortOrder(string(c.Sort))
	if err != nil {
		return MatchCriteria{}, err
	}
	c.Sort = sortOrder
	c.Search = strings.TrimSpace(c.Search)

	if c.Filter.LeagueID < 0 || c.Filter.SeasonID < 0 || c.Filter.TeamID < 0 {
		return MatchCriteria{}, fmt.Errorf("%w: filter ids must be positive", ErrInvalidInput)
	}
	if c.Passengers < 0 {
		return MatchCriteria{}, fmt.Errorf("%w: passengers must be positive", ErrInvalidInput)
	}
	if c.Passengers == 0 {
		c.Passengers = defaultPassengers
	}
	if c.Passengers == 0 {
		c.Passengers = emissions.DefaultPassengers
	}
	return c, nil
}

// MatchView is what the match list renders: Shown of Total matches.
type MatchView struct {
	Criteria MatchCriteria
	Matches  []EnrichedMatch
	Total    int
	Shown    int
}

// BuildMatchView searches and sorts base without touching it.
func BuildMatchView(criteria MatchCriteria, base []EnrichedMatch) MatchView {
	query := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]EnrichedMatch, 0, len(base))
	for _, item := range base {
		if query == "" || matchesSearch(item, query) {
			out = append(out, item)
		}
	}

	switch criteria.Sort {
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Estimate, out[j].Estimate
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return a.EmissionsKg > b.EmissionsKg
		})
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	}

	return MatchView{
		Criteria: criteria,
		Matches:  out,
		Total:    len(base),
		Shown:    len(out),
	}
}

func matchesSearch(item EnrichedMatch, query string) bool {
	fields := [...]string{
		item.HomeTeamName,
		item.AwayTeamName,
		item.LeagueName,
		item.HomeCity,
		item.AwayCity,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
