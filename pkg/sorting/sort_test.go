package sorting

import (
	"testing"

	"github.com/gardet/listing-finder/pkg/types"
)

const testRate = 38000

func fptr(v float64) *float64 { return &v }

func prop(slug string, uf *float64, area *float64) *types.Property {
	return &types.Property{Slug: slug, Publicado: true, PrecioUF: uf, M2Util: area}
}

func order(items []*types.Property) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Slug
	}
	return out
}

func equal(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseModeFallsBackToPriceAsc(t *testing.T) {
	for _, raw := range []string{"", "garbage", "precio", "PRECIO-ASC"} {
		if mode := ParseMode(raw); mode != PriceAsc {
			t.Errorf("ParseMode(%q) = %v, expected %v", raw, mode, PriceAsc)
		}
	}
	if mode := ParseMode("m2-desc"); mode != AreaDesc {
		t.Errorf("ParseMode(m2-desc) = %v", mode)
	}
}

func TestPriceAscending(t *testing.T) {
	items := []*types.Property{
		prop("c", fptr(300), nil),
		prop("a", fptr(100), nil),
		prop("b", fptr(200), nil),
	}
	got := Apply(items, PriceAsc, types.CurrencyUF, testRate)
	if !equal(order(got), "a", "b", "c") {
		t.Errorf("unexpected order: %v", order(got))
	}
}

func TestPriceDescending(t *testing.T) {
	items := []*types.Property{
		prop("a", fptr(100), nil),
		prop("c", fptr(300), nil),
		prop("b", fptr(200), nil),
	}
	got := Apply(items, PriceDesc, types.CurrencyUF, testRate)
	if !equal(order(got), "c", "b", "a") {
		t.Errorf("unexpected order: %v", order(got))
	}
}

func TestMissingKeysSortLastBothDirections(t *testing.T) {
	items := []*types.Property{
		prop("none1", nil, nil),
		prop("mid", fptr(200), nil),
		prop("none2", nil, nil),
		prop("low", fptr(100), nil),
	}
	asc := Apply(items, PriceAsc, types.CurrencyUF, testRate)
	if !equal(order(asc), "low", "mid", "none1", "none2") {
		t.Errorf("ascending: %v", order(asc))
	}
	desc := Apply(items, PriceDesc, types.CurrencyUF, testRate)
	if !equal(order(desc), "mid", "low", "none1", "none2") {
		t.Errorf("descending: %v", order(desc))
	}
}

func TestEqualKeysKeepInputOrder(t *testing.T) {
	items := []*types.Property{
		prop("first", fptr(100), nil),
		prop("second", fptr(100), nil),
		prop("third", fptr(100), nil),
	}
	got := Apply(items, PriceAsc, types.CurrencyUF, testRate)
	if !equal(order(got), "first", "second", "third") {
		t.Errorf("stable sort broke ties: %v", order(got))
	}
	got = Apply(items, PriceDesc, types.CurrencyUF, testRate)
	if !equal(order(got), "first", "second", "third") {
		t.Errorf("stable sort broke ties descending: %v", order(got))
	}
}

func TestAreaModes(t *testing.T) {
	items := []*types.Property{
		prop("big", nil, fptr(300)),
		prop("small", nil, fptr(50)),
		prop("noarea", fptr(100), nil),
	}
	asc := Apply(items, AreaAsc, types.CurrencyUF, testRate)
	if !equal(order(asc), "small", "big", "noarea") {
		t.Errorf("m2-asc: %v", order(asc))
	}
	desc := Apply(items, AreaDesc, types.CurrencyUF, testRate)
	if !equal(order(desc), "big", "small", "noarea") {
		t.Errorf("m2-desc: %v", order(desc))
	}
}

func TestAreaFallsBackToTotal(t *testing.T) {
	a := &types.Property{Slug: "total-only", M2Total: fptr(80)}
	b := &types.Property{Slug: "util", M2Util: fptr(40)}
	got := Apply([]*types.Property{a, b}, AreaAsc, types.CurrencyUF, testRate)
	if !equal(order(got), "util", "total-only") {
		t.Errorf("m2_total fallback: %v", order(got))
	}
}

func TestRecentKeepsSourceOrder(t *testing.T) {
	items := []*types.Property{
		prop("newest", fptr(900), nil),
		prop("older", fptr(100), nil),
		prop("oldest", nil, nil),
	}
	got := Apply(items, Recent, types.CurrencyUF, testRate)
	if !equal(order(got), "newest", "older", "oldest") {
		t.Errorf("recientes reordered: %v", order(got))
	}
}

func TestPriceComparesCLPRecordsInUF(t *testing.T) {
	// 38.000.000 CLP is 1.000 UF at the test rate, so it lands between
	// the 500 and 2.000 UF records.
	items := []*types.Property{
		prop("expensive", fptr(2000), nil),
		{Slug: "clp", Publicado: true, PrecioCLP: fptr(38000000)},
		prop("cheap", fptr(500), nil),
	}
	got := Apply(items, PriceAsc, types.CurrencyUF, testRate)
	if !equal(order(got), "cheap", "clp", "expensive") {
		t.Errorf("cross currency ordering: %v", order(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []*types.Property{
		prop("b", fptr(200), nil),
		prop("a", fptr(100), nil),
	}
	_ = Apply(items, PriceAsc, types.CurrencyUF, testRate)
	if !equal(order(items), "b", "a") {
		t.Errorf("input slice mutated: %v", order(items))
	}
}
