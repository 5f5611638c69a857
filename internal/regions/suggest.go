package regions

import (
	"sort"
	"strings"
)

// Suggest returns up to limit known names that look like query: exact
// matches first, then prefix matches, then substring matches. Queries of
// three runes or fewer only match exactly or by prefix.
func (r *Resolver) Suggest(query string, limit int) []string {
	q := normalizeName(query)
	if q == "" || limit <= 0 {
		return nil
	}
	short := len([]rune(q)) <= 3

	type scored struct {
		name  string
		score int
	}

	var hits []scored
	for name := range r.table {
		n := normalizeName(name)

		s := 0
		switch {
		case n == q:
			s = 100
		case strings.HasPrefix(n, q):
			s = 70
		case !short && strings.Contains(n, q):
			s = 40
		}

		if s > 0 {
			hits = append(hits, scored{name, s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name < hits[j].name
	})

	out := make([]string, 0, limit)
	for _, h := range hits {
		out = append(out, h.name)
		if len(out) == limit {
			break
		}
	}
	return out
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(".", " ", "(", " ", ")", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
