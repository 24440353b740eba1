package currency

import (
	"fmt"
	"sort"
	"strings"
)

// Direction orders a list by DisplayName.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts "asc"/"desc" (and the long forms, any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending", "az", "a-z":
		return Ascending, nil
	case "desc", "descending", "za", "z-a":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q", s)
}

// Sort returns a sorted copy of list. Names compare byte-wise; equal names
// fall back to code ascending, then to input order.
func Sort(list []Currency, dir Direction) []Currency {
	out := make([]Currency, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DisplayName != b.DisplayName {
			if dir == Descending {
				return a.DisplayName > b.DisplayName
			}
			return a.DisplayName < b.DisplayName
		}
		return a.Code < b.Code
	})
	return out
}

// Filter keeps entries whose DisplayName or FullName contains text,
// ignoring case. Empty text keeps everything. Order is preserved.
func Filter(list []Currency, text string) []Currency {
	if text == "" {
		out := make([]Currency, len(list))
		copy(out, list)
		return out
	}
	q := strings.ToLower(text)
	out := make([]Currency, 0, len(list))
	for _, c := range list {
		if Matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

// Matches expects q already lower-cased.
func Matches(c Currency, q string) bool {
	return strings.Contains(strings.ToLower(c.DisplayName), q) ||
		strings.Contains(strings.ToLower(c.FullName), q)
}

// View is the displayed list: catalog sorted by dir, then filtered by text.
func View(catalog []Currency, text string, dir Direction) []Currency {
	return Filter(Sort(catalog, dir), text)
}
