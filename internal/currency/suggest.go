package currency

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit entries whose names are closest to text by
// edit distance. Used when a search leaves the displayed list empty.
func Suggest(catalog []Currency, text string, limit int) []Currency {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" || limit <= 0 || len(catalog) == 0 {
		return nil
	}
	type scored struct {
		c    Currency
		dist int
	}
	ranked := make([]scored, 0, len(catalog))
	for _, c := range catalog {
		d := levenshtein.ComputeDistance(q, strings.ToLower(c.DisplayName))
		if full := levenshtein.ComputeDistance(q, strings.ToLower(c.FullName)); full < d {
			d = full
		}
		ranked = append(ranked, scored{c: c, dist: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].c.Code < ranked[j].c.Code
	})
	// anything further than the query length is noise
	maxDist := len(q)
	out := make([]Currency, 0, limit)
	for _, r := range ranked {
		if len(out) == limit || r.dist > maxDist {
			break
		}
		out = append(out, r.c)
	}
	return out
}
