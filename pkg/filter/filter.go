package filter

import (
	"strings"

	"github.com/gardet/listing-finder/pkg/search"
	"github.com/gardet/listing-finder/pkg/types"
)

// Match evaluates every active predicate of the query against one record.
// Absent filter values constrain nothing; a record missing an attribute an
// active predicate needs is excluded (fail-closed), never skipped as a pass.
func Match(p *types.Property, q *types.Query, rate float64) bool {
	if !p.Publicado {
		return false
	}
	if q.Operacion != "" && !strings.EqualFold(p.Operacion, q.Operacion) {
		return false
	}
	if q.Tipo != "" && !strings.EqualFold(p.Tipo, q.Tipo) {
		return false
	}
	if q.Nuevos && !p.Nuevo {
		return false
	}
	if q.Term != "" {
		found := false
		for _, haystack := range p.SearchableText() {
			if haystack != "" && search.ContainsFolded(haystack, q.Term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	min := q.MinBound()
	max := q.MaxBound()
	if min != nil || max != nil {
		price, ok := p.PriceIn(q.Moneda, rate)
		if !ok {
			return false
		}
		if min != nil && price < *min {
			return false
		}
		if max != nil && price > *max {
			return false
		}
	}
	if wanted := q.MinDormitorios(); wanted != nil {
		if p.Dormitorios == nil || *p.Dormitorios < *wanted {
			return false
		}
	}
	if wanted := q.MinBanos(); wanted != nil {
		if p.Banos == nil || *p.Banos < *wanted {
			return false
		}
	}
	return true
}

// Filter returns the records matching every active predicate, preserving
// input order. Pure: the input slice is never mutated.
func Filter(items []*types.Property, q *types.Query, rate float64) []*types.Property {
	result := make([]*types.Property, 0, len(items))
	for _, p := range items {
		if Match(p, q, rate) {
			result = append(result, p)
		}
	}
	return result
}
