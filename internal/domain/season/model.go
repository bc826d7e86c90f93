package season

import (
	"sort"
	"strconv"
	"time"
)

// Season is one competition year bounded by its start and end dates.
type Season struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
}

// Label is the display name used by filter controls.
func (s Season) Label() string {
	return strconv.FormatInt(s.ID, 10)
}

// Latest returns the season with the greatest end date. Ties keep the first one seen.
func Latest(items []Season) (Season, bool) {
	if len(items) == 0 {
		return Season{}, false
	}

	latest := items[0]
	for _, item := range items[1:] {
		if item.EndDate.After(latest.EndDate) {
			latest = item
		}
	}
	return latest, true
}

// SortByEndDateDesc returns a copy ordered most recent first.
func SortByEndDateDesc(items []Season) []Season {
	out := make([]Season, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndDate.After(out[j].EndDate)
	})
	return out
}

func IndexByID(items []Season) map[int64]Season {
	out := make(map[int64]Season, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}
