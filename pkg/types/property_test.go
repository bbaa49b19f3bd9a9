package types

import "testing"

func fptr(v float64) *float64 { return &v }

func TestPriceIn(t *testing.T) {
	const rate = 38000

	uf := Property{PrecioUF: fptr(1000)}
	if v, ok := uf.PriceIn(CurrencyUF, rate); !ok || v != 1000 {
		t.Errorf("uf in uf: %v %v", v, ok)
	}
	if v, ok := uf.PriceIn(CurrencyCLP, rate); !ok || v != 38000000 {
		t.Errorf("uf in clp: %v %v", v, ok)
	}

	clp := Property{PrecioCLP: fptr(19000000)}
	if v, ok := clp.PriceIn(CurrencyCLP, rate); !ok || v != 19000000 {
		t.Errorf("clp in clp: %v %v", v, ok)
	}
	if v, ok := clp.PriceIn(CurrencyUF, rate); !ok || v != 500 {
		t.Errorf("clp in uf: %v %v", v, ok)
	}

	both := Property{PrecioUF: fptr(1000), PrecioCLP: fptr(40000000)}
	if v, _ := both.PriceIn(CurrencyCLP, rate); v != 40000000 {
		t.Errorf("native clp not preferred: %v", v)
	}
	if v, _ := both.PriceIn(CurrencyUF, rate); v != 1000 {
		t.Errorf("native uf not preferred: %v", v)
	}

	none := Property{}
	if _, ok := none.PriceIn(CurrencyUF, rate); ok {
		t.Errorf("priceless record reported a price")
	}

	// a zero rate cannot convert
	if _, ok := uf.PriceIn(CurrencyCLP, 0); ok {
		t.Errorf("conversion with zero rate succeeded")
	}
}

func TestBestArea(t *testing.T) {
	p := Property{M2Util: fptr(80), M2Total: fptr(120)}
	if v, ok := p.BestArea(); !ok || v != 80 {
		t.Errorf("m2_util not preferred: %v %v", v, ok)
	}
	p = Property{M2Total: fptr(120)}
	if v, ok := p.BestArea(); !ok || v != 120 {
		t.Errorf("m2_total fallback: %v %v", v, ok)
	}
	p = Property{}
	if _, ok := p.BestArea(); ok {
		t.Errorf("area reported without data")
	}
}

func TestPrimaryPhoto(t *testing.T) {
	p := Property{Fotos: []string{"", "a.jpg", "b.jpg"}}
	if got := p.PrimaryPhoto(); got != "a.jpg" {
		t.Errorf("primary photo = %q", got)
	}
	if got := (&Property{}).PrimaryPhoto(); got != "" {
		t.Errorf("photoless record returned %q", got)
	}
}

func TestSettingsUpdate(t *testing.T) {
	s := &SettingsStore{current: Settings{UFRate: 38000, PageSize: 12, WhatsAppPhone: "111", ContactPage: "contacto.html"}}
	updated := s.Update(Settings{UFRate: 39000})
	if updated.UFRate != 39000 {
		t.Errorf("rate = %v", updated.UFRate)
	}
	if updated.PageSize != 12 || updated.WhatsAppPhone != "111" {
		t.Errorf("zero fields overwrote: %+v", updated)
	}
	updated = s.Update(Settings{PageSize: 6, WhatsAppPhone: "222"})
	if updated.PageSize != 6 || updated.WhatsAppPhone != "222" || updated.UFRate != 39000 {
		t.Errorf("partial update: %+v", updated)
	}
}
