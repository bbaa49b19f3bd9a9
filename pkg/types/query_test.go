package types

import (
	"testing"
)

func TestSanitizeDefaults(t *testing.T) {
	q := Query{}
	q.Sanitize()
	if q.Moneda != CurrencyUF {
		t.Errorf("default currency = %q", q.Moneda)
	}
	if q.Sort != DefaultSort {
		t.Errorf("default sort = %q", q.Sort)
	}
	if q.Page != 1 {
		t.Errorf("default page = %d", q.Page)
	}
}

func TestSanitizeNormalizesInput(t *testing.T) {
	q := Query{Term: "  Ñuñoa ", Tipo: " Casa ", Operacion: "VENTA", Moneda: "usd", Page: -2}
	q.Sanitize()
	if q.Term != "Ñuñoa" {
		t.Errorf("term = %q", q.Term)
	}
	if q.Tipo != "casa" {
		t.Errorf("tipo = %q", q.Tipo)
	}
	if q.Operacion != "venta" {
		t.Errorf("operacion = %q", q.Operacion)
	}
	if q.Moneda != CurrencyUF {
		t.Errorf("unknown currency not reset: %q", q.Moneda)
	}
	if q.Page != 1 {
		t.Errorf("page = %d", q.Page)
	}
}

func TestSanitizeTreatsAllAsNoType(t *testing.T) {
	q := Query{Tipo: "all"}
	q.Sanitize()
	if q.Tipo != "" {
		t.Errorf("tipo 'all' kept: %q", q.Tipo)
	}
}

func TestParseBounds(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"3500", 3500, true},
		{" 3500 ", 3500, true},
		{"3.5", 3.5, true},
		{"3.500,5", 3500.5, true},
		{"1,5", 1.5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"12abc", 12, true},
	}
	for _, c := range cases {
		q := Query{Min: c.raw}
		got := q.MinBound()
		if !c.ok {
			if got != nil {
				t.Errorf("MinBound(%q) = %v, expected nil", c.raw, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Errorf("MinBound(%q) = %v, expected %v", c.raw, got, c.want)
		}
	}
}

func TestParseCounts(t *testing.T) {
	q := Query{Dormitorios: "3", Banos: "x"}
	if d := q.MinDormitorios(); d == nil || *d != 3 {
		t.Errorf("MinDormitorios = %v", d)
	}
	if b := q.MinBanos(); b != nil {
		t.Errorf("invalid banos parsed: %v", *b)
	}
	q = Query{Dormitorios: "-1"}
	if d := q.MinDormitorios(); d != nil {
		t.Errorf("negative count parsed: %v", *d)
	}
}

func TestValuesOmitsDefaults(t *testing.T) {
	q := Query{}
	q.Sanitize()
	if enc := q.Encode(); enc != "" {
		t.Errorf("default state serialized to %q", enc)
	}
}

func TestValuesKeepsActiveState(t *testing.T) {
	q := Query{Term: "lo barnechea", Min: "5000", Moneda: CurrencyCLP, Tipo: "casa", Nuevos: true, Sort: "m2-desc", Page: 3}
	q.Sanitize()
	v := q.Values()
	if v.Get("q") != "lo barnechea" || v.Get("min") != "5000" {
		t.Errorf("values: %v", v)
	}
	if v.Get("moneda") != "clp" {
		t.Errorf("moneda = %q", v.Get("moneda"))
	}
	if v.Get("nuevos") != "1" {
		t.Errorf("nuevos = %q", v.Get("nuevos"))
	}
	if v.Get("sort") != "m2-desc" || v.Get("page") != "3" {
		t.Errorf("sort/page: %v", v)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	q := Query{Term: "providencia", Max: "8000", Tipo: "depto", Operacion: "venta", Dormitorios: "2", Page: 2}
	q.Sanitize()
	first := q.Encode()
	if first == "" {
		t.Fatal("active state encoded empty")
	}
	second := q.Encode()
	if first != second {
		t.Errorf("encoding is not deterministic: %q vs %q", first, second)
	}
}

func TestFiltersEqualIgnoresPresentation(t *testing.T) {
	a := Query{Term: "x", Sort: "precio-desc", Page: 4}
	b := Query{Term: "x", Sort: "m2-asc", Page: 1}
	if !a.FiltersEqual(&b) {
		t.Errorf("sort/page changes counted as filter changes")
	}
	b.Term = "y"
	if a.FiltersEqual(&b) {
		t.Errorf("term change not detected")
	}
	if a.FiltersEqual(nil) {
		t.Errorf("nil compares equal")
	}
}

func TestResetPageIfFiltered(t *testing.T) {
	prev := Query{Term: "x", Page: 4}
	next := Query{Term: "y", Page: 4}
	next.ResetPageIfFiltered(&prev)
	if next.Page != 1 {
		t.Errorf("filter change kept page %d", next.Page)
	}

	same := Query{Term: "x", Page: 4, Sort: "precio-desc"}
	same.ResetPageIfFiltered(&prev)
	if same.Page != 4 {
		t.Errorf("sort-only change reset page to %d", same.Page)
	}
}

func TestResetKeepsForcedOperation(t *testing.T) {
	q := Query{Term: "x", Min: "100", Operacion: "venta", Nuevos: true, Page: 5}
	q.Reset("venta")
	if q.Operacion != "venta" {
		t.Errorf("forced operation dropped: %q", q.Operacion)
	}
	if q.Term != "" || q.Min != "" || q.Nuevos {
		t.Errorf("reset kept filters: %+v", q)
	}
	if q.Page != 1 || q.Sort != DefaultSort {
		t.Errorf("reset presentation state: page=%d sort=%q", q.Page, q.Sort)
	}
}
