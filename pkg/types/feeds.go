package types

import "time"

// NewsItem is one entry of the news feed document.
type NewsItem struct {
	Slug      string `json:"slug,omitempty"`
	Titulo    string `json:"titulo,omitempty"`
	Resumen   string `json:"resumen,omitempty"`
	Categoria string `json:"categoria,omitempty"`
	Fecha     string `json:"fecha,omitempty"`
	Fuente    string `json:"fuente,omitempty"`
	Imagen    string `json:"imagen,omitempty"`
	Icono     string `json:"icono,omitempty"`
	Publicado bool   `json:"publicado"`
}

// Date parses the publication date, false when absent or malformed.
func (n *NewsItem) Date() (time.Time, bool) {
	if n.Fecha == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, n.Fecha); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Project is one entry of the development projects feed.
type Project struct {
	Id         string   `json:"id,omitempty"`
	Nombre     string   `json:"nombre,omitempty"`
	Ubicacion  string   `json:"ubicacion,omitempty"`
	Estado     string   `json:"estado,omitempty"`
	Tipologias string   `json:"tipologias,omitempty"`
	DesdeUF    *float64 `json:"desde_uf,omitempty"`
	HastaUF    *float64 `json:"hasta_uf,omitempty"`
	Entrega    string   `json:"entrega,omitempty"`
	Fotos      []string `json:"fotos,omitempty"`
}
