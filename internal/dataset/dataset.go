// Package dataset assembles scraped advisory levels into the tabular record
// set consumed by the map renderer, and persists it as CSV.
package dataset

// Record is one country's scraped advisory data.
type Record struct {
	Country      string
	URL          string
	Level        int // 1-4; 0 means the level could not be determined
	Standardized string
	Label        string
}

// levelLabels maps advisory levels to human-readable labels.
var levelLabels = map[int]string{
	1: "Normal Precautions",
	2: "High Degree of Caution",
	3: "Avoid Unnecessary Travel",
	4: "Do Not Travel",
}

// Label returns the human-readable label for an advisory level, or "" for
// an unknown level.
func Label(level int) string {
	return levelLabels[level]
}

// Assemble produces the final dataset: rows whose level could not be
// determined are dropped and every remaining row gets its label attached.
// Records are not mutated afterwards.
func Assemble(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Level < 1 || r.Level > 4 {
			continue
		}
		r.Label = levelLabels[r.Level]
		out = append(out, r)
	}
	return out
}

// Distribution counts records per advisory level.
func Distribution(records []Record) map[int]int {
	dist := make(map[int]int)
	for _, r := range records {
		dist[r.Level]++
	}
	return dist
}
