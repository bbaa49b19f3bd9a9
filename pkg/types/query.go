package types

import (
	"net/url"
	"strconv"
	"strings"
)

const DefaultSort = "precio-asc"

// Query is the full filter/sort/page state of one catalog view. It is the
// single source of truth mirrored to the URL query string: hydrated from the
// request on the way in, serialized back via Values on the way out.
//
// Numeric bounds stay as the raw strings the URL carried; parsing happens at
// evaluation time so that garbage input degrades to "no constraint" instead
// of an error.
type Query struct {
	Term        string   `json:"q,omitempty" schema:"q"`
	Min         string   `json:"min,omitempty" schema:"min"`
	Max         string   `json:"max,omitempty" schema:"max"`
	Moneda      Currency `json:"moneda,omitempty" schema:"moneda"`
	Tipo        string   `json:"tipo,omitempty" schema:"tipo"`
	Operacion   string   `json:"operacion,omitempty" schema:"operacion"`
	Dormitorios string   `json:"dormitorios,omitempty" schema:"dormitorios"`
	Banos       string   `json:"banos,omitempty" schema:"banos"`
	Nuevos      bool     `json:"nuevos,omitempty" schema:"nuevos"`
	Sort        string   `json:"sort,omitempty" schema:"sort"`
	Page        int      `json:"page,omitempty" schema:"page"`
}

// Sanitize normalizes a freshly hydrated query: casing, the "all" sentinel
// the type selector uses, currency fallback and the 1-based page floor.
func (q *Query) Sanitize() {
	q.Term = strings.TrimSpace(q.Term)
	q.Tipo = strings.ToLower(strings.TrimSpace(q.Tipo))
	if q.Tipo == "all" {
		q.Tipo = ""
	}
	q.Operacion = strings.ToLower(strings.TrimSpace(q.Operacion))
	if q.Moneda != CurrencyCLP {
		q.Moneda = CurrencyUF
	}
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	if q.Page < 1 {
		q.Page = 1
	}
}

// parseBound reads a user supplied numeric string, tolerating grouping dots
// and a decimal comma. Anything that does not parse means "no constraint".
func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			clean = append(clean, r)
		}
	}
	normalized := string(clean)
	if strings.Contains(normalized, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// MinBound returns the lower price bound in the query currency, nil when
// absent or not numeric.
func (q *Query) MinBound() *float64 { return parseBound(q.Min) }

// MaxBound returns the upper price bound in the query currency.
func (q *Query) MaxBound() *float64 { return parseBound(q.Max) }

// MinDormitorios returns the inclusive bedroom minimum, nil when unset.
func (q *Query) MinDormitorios() *int { return parseCount(q.Dormitorios) }

// MinBanos returns the inclusive bathroom minimum, nil when unset.
func (q *Query) MinBanos() *int { return parseCount(q.Banos) }

// HasPriceBound reports whether either price bound is active.
func (q *Query) HasPriceBound() bool {
	return q.MinBound() != nil || q.MaxBound() != nil
}

// FiltersEqual compares everything that narrows the result set. Sort and
// page are presentation state and do not count.
func (q *Query) FiltersEqual(other *Query) bool {
	if other == nil {
		return false
	}
	return q.Term == other.Term &&
		q.Min == other.Min &&
		q.Max == other.Max &&
		q.Moneda == other.Moneda &&
		q.Tipo == other.Tipo &&
		q.Operacion == other.Operacion &&
		q.Dormitorios == other.Dormitorios &&
		q.Banos == other.Banos &&
		q.Nuevos == other.Nuevos
}

// ResetPageIfFiltered re-seeds the page to 1 when any filter differs from
// the previous state. Changing only sort or page keeps the page.
func (q *Query) ResetPageIfFiltered(prev *Query) {
	if prev != nil && !q.FiltersEqual(prev) {
		q.Page = 1
	}
}

// Values serializes the non-empty fields back into URL parameters. Defaults
// (UF currency, default sort, page 1) are omitted so cleared filters produce
// a clean URL.
func (q *Query) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("q", q.Term)
	set("min", strings.TrimSpace(q.Min))
	set("max", strings.TrimSpace(q.Max))
	if q.Moneda == CurrencyCLP {
		v.Set("moneda", string(CurrencyCLP))
	}
	set("tipo", q.Tipo)
	set("operacion", q.Operacion)
	set("dormitorios", strings.TrimSpace(q.Dormitorios))
	set("banos", strings.TrimSpace(q.Banos))
	if q.Nuevos {
		v.Set("nuevos", "1")
	}
	if q.Sort != "" && q.Sort != DefaultSort {
		v.Set("sort", q.Sort)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// Encode returns the canonical query string for the current state.
func (q *Query) Encode() string {
	return q.Values().Encode()
}

// Reset clears every filter back to page defaults, keeping only a forced
// operation when the hosting endpoint has one.
func (q *Query) Reset(forcedOperation string) {
	*q = Query{Operacion: forcedOperation}
	q.Sanitize()
}
