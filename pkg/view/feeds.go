package view

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/number"

	"github.com/gardet/listing-finder/pkg/search"
	"github.com/gardet/listing-finder/pkg/types"
)

const (
	NewsPlaceholderImage    = "assets/news/noticia-ventas.svg"
	ProjectPlaceholderImage = "assets/fotos/placeholder-project.svg"
)

// NewsCard is the display contract for one news entry.
type NewsCard struct {
	Slug         string `json:"slug,omitempty"`
	Title        string `json:"title"`
	Summary      string `json:"summary,omitempty"`
	Category     string `json:"category,omitempty"`
	CategorySlug string `json:"categorySlug,omitempty"`
	DateLabel    string `json:"dateLabel,omitempty"`
	SourceURL    string `json:"sourceUrl,omitempty"`
	Image        string `json:"image"`
	Icon         string `json:"icon,omitempty"`
	ReadMoreURL  string `json:"readMoreUrl,omitempty"`
}

// CategorySlug folds the category and collapses everything non-alphanumeric
// into dashes.
func CategorySlug(category string) string {
	folded := search.Fold(category)
	var b strings.Builder
	lastDash := true
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NewNewsCard maps one news record to its display unit.
func NewNewsCard(n *types.NewsItem) NewsCard {
	title := n.Titulo
	if title == "" {
		title = "Noticia destacada"
	}
	image := n.Imagen
	if image == "" {
		image = NewsPlaceholderImage
	}
	dateLabel := ""
	if t, ok := n.Date(); ok {
		dateLabel = fmt.Sprintf("%d %s %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	readMore := ""
	if n.Slug != "" {
		readMore = "noticias.html#" + n.Slug
	}
	return NewsCard{
		Slug:         n.Slug,
		Title:        title,
		Summary:      n.Resumen,
		Category:     n.Categoria,
		CategorySlug: CategorySlug(n.Categoria),
		DateLabel:    dateLabel,
		SourceURL:    n.Fuente,
		Image:        image,
		Icon:         n.Icono,
		ReadMoreURL:  readMore,
	}
}

// ProjectCard is the display contract for one development project.
type ProjectCard struct {
	Id         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Location   string `json:"location,omitempty"`
	RangeLabel string `json:"rangeLabel"`
	Meta       string `json:"meta,omitempty"`
	Image      string `json:"image"`
	Badge      Badge  `json:"badge"`
	ContactURL string `json:"contactUrl"`
}

// FormatUFRange renders the project value range, degrading gracefully when
// one or both bounds are missing.
func FormatUFRange(from, to *float64) string {
	fmtUF := func(v float64) string {
		return printer.Sprintf("UF %v", number.Decimal(v, number.MaxFractionDigits(2)))
	}
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("%s – %s", fmtUF(*from), fmtUF(*to))
	case from != nil:
		return "Desde " + fmtUF(*from)
	case to != nil:
		return "Hasta " + fmtUF(*to)
	default:
		return "Valores por confirmar"
	}
}

func projectBadge(estado string) Badge {
	normalized := strings.ToLower(strings.TrimSpace(estado))
	switch {
	case normalized == "":
		return Badge{Label: "Proyecto", Tone: ToneMuted}
	case strings.Contains(normalized, "inmediata"):
		return Badge{Label: "Entrega inmediata", Tone: ToneAccent}
	case strings.Contains(normalized, "verde"):
		return Badge{Label: "En verde", Tone: ToneAccent}
	default:
		return Badge{Label: estado, Tone: ToneMuted}
	}
}

// NewProjectCard maps one project record to its display unit.
func NewProjectCard(p *types.Project, settings types.Settings) ProjectCard {
	title := p.Nombre
	if title == "" {
		title = "Proyecto inmobiliario"
	}
	image := ProjectPlaceholderImage
	for _, f := range p.Fotos {
		if f != "" {
			image = f
			break
		}
	}
	metaParts := make([]string, 0, 2)
	if p.Tipologias != "" {
		metaParts = append(metaParts, "Tipologías "+p.Tipologias)
	}
	if p.Entrega != "" {
		metaParts = append(metaParts, "Entrega "+p.Entrega)
	}
	target := p.Id
	if target == "" {
		target = title
	}
	return ProjectCard{
		Id:         p.Id,
		Title:      title,
		Location:   p.Ubicacion,
		RangeLabel: FormatUFRange(p.DesdeUF, p.HastaUF),
		Meta:       strings.Join(metaParts, " • "),
		Image:      image,
		Badge:      projectBadge(p.Estado),
		ContactURL: fmt.Sprintf("%s?project=%s", settings.ContactPage, url.QueryEscape(target)),
	}
}
