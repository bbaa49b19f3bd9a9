package types

// Currency selects which denomination price bounds and labels use.
// UF is the indexed unit of account, CLP the local spendable currency.
type Currency string

const (
	CurrencyUF  Currency = "uf"
	CurrencyCLP Currency = "clp"
)

const (
	OperationSale   = "venta"
	OperationRental = "arriendo"
)

// Property is one listing as delivered by the catalog document. Records are
// immutable for the lifetime of a store snapshot.
type Property struct {
	Slug        string   `json:"slug"`
	Tipo        string   `json:"tipo,omitempty"`
	Operacion   string   `json:"operacion,omitempty"`
	Publicado   bool     `json:"publicado"`
	Comuna      string   `json:"comuna,omitempty"`
	Barrio      string   `json:"barrio,omitempty"`
	Calle       string   `json:"calle,omitempty"`
	Direccion   string   `json:"direccion,omitempty"`
	PrecioUF    *float64 `json:"precio_uf,omitempty"`
	PrecioCLP   *float64 `json:"precio_clp,omitempty"`
	M2Util      *float64 `json:"m2_util,omitempty"`
	M2Total     *float64 `json:"m2_total,omitempty"`
	Dormitorios *int     `json:"dormitorios,omitempty"`
	Banos       *int     `json:"banos,omitempty"`
	Estado      string   `json:"estado,omitempty"`
	Nuevo       bool     `json:"nuevo,omitempty"`
	Titulo      string   `json:"titulo,omitempty"`
	Descripcion string   `json:"descripcion,omitempty"`
	Fotos       []string `json:"fotos,omitempty"`
}

// PriceIn returns the listing price in the requested currency, converting
// from the other denomination with the fixed rate when needed. The second
// return is false when the record carries no price at all.
func (p *Property) PriceIn(c Currency, rate float64) (float64, bool) {
	if c == CurrencyCLP {
		if p.PrecioCLP != nil {
			return *p.PrecioCLP, true
		}
		if p.PrecioUF != nil && rate > 0 {
			return *p.PrecioUF * rate, true
		}
		return 0, false
	}
	if p.PrecioUF != nil {
		return *p.PrecioUF, true
	}
	if p.PrecioCLP != nil && rate > 0 {
		return *p.PrecioCLP / rate, true
	}
	return 0, false
}

// BestArea prefers usable square meters over total.
func (p *Property) BestArea() (float64, bool) {
	if p.M2Util != nil {
		return *p.M2Util, true
	}
	if p.M2Total != nil {
		return *p.M2Total, true
	}
	return 0, false
}

// SearchableText returns the haystack fields the free text predicate scans.
func (p *Property) SearchableText() []string {
	return []string{p.Comuna, p.Barrio, p.Calle, p.Direccion, p.Titulo, p.Descripcion}
}

// PrimaryPhoto returns the first photo reference, or "" when there is none.
func (p *Property) PrimaryPhoto() string {
	for _, f := range p.Fotos {
		if f != "" {
			return f
		}
	}
	return ""
}
