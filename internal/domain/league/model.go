package league

// League is a football competition whose fixtures are tracked for travel emissions.
type League struct {
	ID      int64
	Name    string
	Country string
}

// NameByID indexes league names for enrichment lookups.
func NameByID(items []League) map[int64]string {
	out := make(map[int64]string, len(items))
	for _, item := range items {
		out[item.ID] = item.Name
	}
	return out
}
