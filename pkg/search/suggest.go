package search

import (
	"sort"

	"github.com/gardet/listing-finder/pkg/types"
)

// Suggestion is one location completion for the hero search widget.
type Suggestion struct {
	Word string `json:"match"`
	Hits int    `json:"hits"`
}

type suggestEntry struct {
	folded  string
	display string
	hits    int
}

// Suggester indexes the location values of a catalog snapshot for prefix
// completion. Built once after load, read-only afterwards.
type Suggester struct {
	entries []suggestEntry
}

// NewSuggester collects comuna and barrio values of published listings.
func NewSuggester(items []*types.Property) *Suggester {
	counts := map[string]*suggestEntry{}
	add := func(value string) {
		folded := Fold(value)
		if folded == "" {
			return
		}
		if e, ok := counts[folded]; ok {
			e.hits++
			return
		}
		counts[folded] = &suggestEntry{folded: folded, display: value, hits: 1}
	}
	for _, p := range items {
		if !p.Publicado {
			continue
		}
		add(p.Comuna)
		add(p.Barrio)
	}
	entries := make([]suggestEntry, 0, len(counts))
	for _, e := range counts {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].hits != entries[j].hits {
			return entries[i].hits > entries[j].hits
		}
		return entries[i].folded < entries[j].folded
	})
	return &Suggester{entries: entries}
}

// FindMatches returns suggestions whose folded form starts with the folded
// prefix, most frequent first. An empty prefix returns nothing.
func (s *Suggester) FindMatches(prefix string, limit int) []Suggestion {
	folded := Fold(prefix)
	if folded == "" {
		return []Suggestion{}
	}
	result := make([]Suggestion, 0, limit)
	for _, e := range s.entries {
		if len(e.folded) >= len(folded) && e.folded[:len(folded)] == folded {
			result = append(result, Suggestion{Word: e.display, Hits: e.hits})
			if limit > 0 && len(result) >= limit {
				break
			}
		}
	}
	return result
}
