package sorting

import (
	"sort"

	"github.com/gardet/listing-finder/pkg/types"
)

// Mode is a named ordering of the filtered result.
type Mode string

const (
	PriceAsc  Mode = "precio-asc"
	PriceDesc Mode = "precio-desc"
	AreaAsc   Mode = "m2-asc"
	AreaDesc  Mode = "m2-desc"
	// Recent keeps the order the data source delivered; the source defines
	// recency, not this layer.
	Recent Mode = "recientes"
)

// ParseMode maps a sort parameter to a known mode, falling back to PriceAsc.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case PriceAsc, PriceDesc, AreaAsc, AreaDesc, Recent:
		return Mode(s)
	default:
		return PriceAsc
	}
}

// key extracts the comparison key for the mode; ok is false when the record
// does not define it.
func key(p *types.Property, mode Mode, currency types.Currency, rate float64) (float64, bool) {
	switch mode {
	case AreaAsc, AreaDesc:
		return p.BestArea()
	default:
		return p.PriceIn(currency, rate)
	}
}

// Compare orders a before b (-1), after (1) or ties (0) under the mode.
// Records without a defined key sort after every record that has one,
// regardless of direction; two keyless records tie.
func Compare(a, b *types.Property, mode Mode, currency types.Currency, rate float64) int {
	if mode == Recent {
		return 0
	}
	av, aok := key(a, mode, currency, rate)
	bv, bok := key(b, mode, currency, rate)
	if !aok && !bok {
		return 0
	}
	if !aok {
		return 1
	}
	if !bok {
		return -1
	}
	if av == bv {
		return 0
	}
	asc := mode == PriceAsc || mode == AreaAsc
	if (av < bv) == asc {
		return -1
	}
	return 1
}

// Apply sorts a copy of items under the mode. The sort is stable: equal keys
// keep their input order. The input slice is left untouched.
func Apply(items []*types.Property, mode Mode, currency types.Currency, rate float64) []*types.Property {
	result := make([]*types.Property, len(items))
	copy(result, items)
	if mode == Recent {
		return result
	}
	sort.SliceStable(result, func(i, j int) bool {
		return Compare(result[i], result[j], mode, currency, rate) < 0
	})
	return result
}
