package view

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/number"

	"github.com/gardet/listing-finder/pkg/types"
)

const (
	PlaceholderImage = "assets/fotos/placeholder.jpg"
	ToneAccent       = "accent"
	ToneMuted        = "muted"
)

type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// PropertyCard is the display contract for one listing: every attribute a
// card needs, no markup. The mapping is pure so it can be tested without a
// rendering environment.
type PropertyCard struct {
	Slug        string  `json:"slug"`
	Image       string  `json:"image"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	PriceLabel  string  `json:"priceLabel"`
	UFLabel     string  `json:"ufLabel,omitempty"`
	CLPLabel    string  `json:"clpLabel,omitempty"`
	Badges      []Badge `json:"badges"`
	Dormitorios string  `json:"dormitorios"`
	Banos       string  `json:"banos"`
	Area        string  `json:"area"`
	Description string  `json:"description,omitempty"`
	ContactURL  string  `json:"contactUrl"`
	WhatsAppURL string  `json:"whatsappUrl"`
}

// EmptyState is rendered when zero records match; distinct from the load
// failure path.
type EmptyState struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	ClearURL string `json:"clearUrl"`
}

// NewEmptyState builds the no-results unit with a clear-filters target that
// keeps only the endpoint's forced operation.
func NewEmptyState(forcedOperation string) EmptyState {
	clear := types.Query{Operacion: forcedOperation}
	clear.Sanitize()
	return EmptyState{
		Title:    "Sin propiedades que coincidan",
		Message:  "Prueba con otro rango de valores o limpia los filtros seleccionados.",
		ClearURL: "?" + clear.Encode(),
	}
}

func badges(p *types.Property) []Badge {
	out := make([]Badge, 0, 2)
	estado := strings.ToLower(strings.TrimSpace(p.Estado))
	switch {
	case estado != "" && estado != "disponible":
		out = append(out, Badge{Label: Capitalize(estado), Tone: ToneMuted})
	case strings.EqualFold(p.Operacion, types.OperationSale):
		out = append(out, Badge{Label: "En venta", Tone: ToneAccent})
	case strings.EqualFold(p.Operacion, types.OperationRental):
		out = append(out, Badge{Label: "En arriendo", Tone: ToneAccent})
	default:
		out = append(out, Badge{Label: "Disponible", Tone: ToneAccent})
	}
	if p.Nuevo {
		out = append(out, Badge{Label: "Nuevo", Tone: ToneAccent})
	}
	return out
}

func locationSummary(p *types.Property) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{p.Comuna, p.Barrio, p.Calle} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return p.Direccion
	}
	return strings.Join(parts, " · ")
}

func priceLabels(p *types.Property) (label, uf, clp string) {
	if p.PrecioUF != nil {
		uf = FormatUF(*p.PrecioUF)
	}
	if p.PrecioCLP != nil {
		clp = FormatCLP(*p.PrecioCLP)
	}
	parts := make([]string, 0, 2)
	if uf != "" {
		parts = append(parts, uf)
	}
	if clp != "" {
		parts = append(parts, clp)
	}
	if len(parts) == 0 {
		return "Precio a consultar", "", ""
	}
	return strings.Join(parts, " · "), uf, clp
}

// NewPropertyCard maps one record to its display unit. The contact and
// WhatsApp targets carry the record slug for correlation.
func NewPropertyCard(p *types.Property, settings types.Settings) PropertyCard {
	title := p.Titulo
	if title == "" {
		title = strings.TrimSpace(fmt.Sprintf("%s en %s", Capitalize(p.Tipo), p.Comuna))
		if title == "en" || title == "" {
			title = "Propiedad"
		}
	}
	image := p.PrimaryPhoto()
	if image == "" {
		image = PlaceholderImage
	}
	priceLabel, uf, clp := priceLabels(p)

	dorms := "—D"
	if p.Dormitorios != nil {
		dorms = fmt.Sprintf("%dD", *p.Dormitorios)
	}
	baths := "—B"
	if p.Banos != nil {
		baths = fmt.Sprintf("%dB", *p.Banos)
	}
	area := "— m²"
	if m2, ok := p.BestArea(); ok {
		area = printer.Sprintf("%v m²", number.Decimal(m2, number.MaxFractionDigits(1)))
	}

	ref := p.Slug
	if ref == "" {
		ref = title
	}
	waText := fmt.Sprintf("Hola, me interesa: %s (%s)", title, ref)

	return PropertyCard{
		Slug:        p.Slug,
		Image:       image,
		Title:       title,
		Location:    locationSummary(p),
		PriceLabel:  priceLabel,
		UFLabel:     uf,
		CLPLabel:    clp,
		Badges:      badges(p),
		Dormitorios: dorms,
		Banos:       baths,
		Area:        area,
		Description: truncate(p.Descripcion, 140),
		ContactURL:  fmt.Sprintf("%s?prop=%s", settings.ContactPage, url.QueryEscape(ref)),
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", settings.WhatsAppPhone, url.QueryEscape(waText)),
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
