package view

import (
	"strings"
	"testing"

	"github.com/gardet/listing-finder/pkg/types"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func cardSettings() types.Settings {
	return types.Settings{
		UFRate:        38000,
		PageSize:      12,
		WhatsAppPhone: "56987829204",
		ContactPage:   "contacto.html",
	}
}

func TestFormatUF(t *testing.T) {
	if got := FormatUF(12500); got != "UF 12.500" {
		t.Errorf("FormatUF(12500) = %q", got)
	}
	if got := FormatUF(3500.5); got != "UF 3.500,5" {
		t.Errorf("FormatUF(3500.5) = %q", got)
	}
}

func TestFormatCLP(t *testing.T) {
	if got := FormatCLP(38000000); got != "CLP $38.000.000" {
		t.Errorf("FormatCLP(38000000) = %q", got)
	}
}

func TestCardCarriesSlugInContactTargets(t *testing.T) {
	p := &types.Property{Slug: "casa-nunoa", Publicado: true, Titulo: "Casa jardín"}
	card := NewPropertyCard(p, cardSettings())
	if card.ContactURL != "contacto.html?prop=casa-nunoa" {
		t.Errorf("contact url = %q", card.ContactURL)
	}
	if !strings.HasPrefix(card.WhatsAppURL, "https://wa.me/56987829204?text=") {
		t.Errorf("whatsapp url = %q", card.WhatsAppURL)
	}
	if !strings.Contains(card.WhatsAppURL, "casa-nunoa") {
		t.Errorf("whatsapp text misses the slug: %q", card.WhatsAppURL)
	}
}

func TestCardPlaceholderImage(t *testing.T) {
	p := &types.Property{Slug: "sin-fotos", Publicado: true}
	card := NewPropertyCard(p, cardSettings())
	if card.Image != PlaceholderImage {
		t.Errorf("image = %q", card.Image)
	}

	p.Fotos = []string{"", "assets/fotos/frontis.jpg"}
	card = NewPropertyCard(p, cardSettings())
	if card.Image != "assets/fotos/frontis.jpg" {
		t.Errorf("first non-empty photo not picked: %q", card.Image)
	}
}

func TestCardPriceLabels(t *testing.T) {
	p := &types.Property{Slug: "a", Publicado: true, PrecioUF: fptr(12500), PrecioCLP: fptr(475000000)}
	card := NewPropertyCard(p, cardSettings())
	if card.UFLabel != "UF 12.500" {
		t.Errorf("uf label = %q", card.UFLabel)
	}
	if card.CLPLabel != "CLP $475.000.000" {
		t.Errorf("clp label = %q", card.CLPLabel)
	}
	if card.PriceLabel != "UF 12.500 · CLP $475.000.000" {
		t.Errorf("price label = %q", card.PriceLabel)
	}
}

func TestCardWithoutPrice(t *testing.T) {
	p := &types.Property{Slug: "a", Publicado: true}
	card := NewPropertyCard(p, cardSettings())
	if card.PriceLabel != "Precio a consultar" {
		t.Errorf("price label = %q", card.PriceLabel)
	}
	if card.UFLabel != "" || card.CLPLabel != "" {
		t.Errorf("empty price produced labels: %q / %q", card.UFLabel, card.CLPLabel)
	}
}

func TestCardAttributePlaceholders(t *testing.T) {
	p := &types.Property{Slug: "a", Publicado: true}
	card := NewPropertyCard(p, cardSettings())
	if card.Dormitorios != "—D" || card.Banos != "—B" || card.Area != "— m²" {
		t.Errorf("placeholders: %q %q %q", card.Dormitorios, card.Banos, card.Area)
	}

	p.Dormitorios = iptr(3)
	p.Banos = iptr(2)
	p.M2Util = fptr(120)
	card = NewPropertyCard(p, cardSettings())
	if card.Dormitorios != "3D" || card.Banos != "2B" {
		t.Errorf("counts: %q %q", card.Dormitorios, card.Banos)
	}
	if card.Area != "120 m²" {
		t.Errorf("area = %q", card.Area)
	}
}

func TestCardTitleFallback(t *testing.T) {
	p := &types.Property{Slug: "a", Publicado: true, Tipo: "casa", Comuna: "Ñuñoa"}
	card := NewPropertyCard(p, cardSettings())
	if card.Title != "Casa en Ñuñoa" {
		t.Errorf("title = %q", card.Title)
	}

	bare := &types.Property{Slug: "b", Publicado: true}
	card = NewPropertyCard(bare, cardSettings())
	if card.Title != "Propiedad" {
		t.Errorf("bare title = %q", card.Title)
	}
}

func TestCardBadges(t *testing.T) {
	sale := &types.Property{Slug: "a", Publicado: true, Operacion: "venta"}
	card := NewPropertyCard(sale, cardSettings())
	if len(card.Badges) != 1 || card.Badges[0].Label != "En venta" || card.Badges[0].Tone != ToneAccent {
		t.Errorf("sale badges = %v", card.Badges)
	}

	rental := &types.Property{Slug: "b", Publicado: true, Operacion: "arriendo", Nuevo: true}
	card = NewPropertyCard(rental, cardSettings())
	if len(card.Badges) != 2 || card.Badges[0].Label != "En arriendo" || card.Badges[1].Label != "Nuevo" {
		t.Errorf("rental badges = %v", card.Badges)
	}

	reserved := &types.Property{Slug: "c", Publicado: true, Operacion: "venta", Estado: "reservada"}
	card = NewPropertyCard(reserved, cardSettings())
	if len(card.Badges) != 1 || card.Badges[0].Label != "Reservada" || card.Badges[0].Tone != ToneMuted {
		t.Errorf("reserved badges = %v", card.Badges)
	}
}

func TestCardTruncatesDescription(t *testing.T) {
	long := strings.Repeat("casa amplia ", 20)
	p := &types.Property{Slug: "a", Publicado: true, Descripcion: long}
	card := NewPropertyCard(p, cardSettings())
	if !strings.HasSuffix(card.Description, "…") {
		t.Errorf("long description not truncated: %q", card.Description)
	}
	if len([]rune(card.Description)) != 141 {
		t.Errorf("truncated length = %d runes", len([]rune(card.Description)))
	}
}

func TestEmptyStateKeepsForcedOperation(t *testing.T) {
	empty := NewEmptyState("venta")
	if empty.ClearURL != "?operacion=venta" {
		t.Errorf("clear url = %q", empty.ClearURL)
	}
	open := NewEmptyState("")
	if open.ClearURL != "?" {
		t.Errorf("open clear url = %q", open.ClearURL)
	}
}
