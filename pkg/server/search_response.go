package server

import "github.com/gardet/listing-finder/pkg/view"

type SearchResponse struct {
	Items      []view.PropertyCard `json:"items"`
	Empty      *view.EmptyState    `json:"empty,omitempty"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalHits  int                 `json:"totalHits"`
	TotalPages int                 `json:"totalPages"`
	HasPrev    bool                `json:"hasPrev"`
	HasNext    bool                `json:"hasNext"`
	Sort       string              `json:"sort"`
	// Canonical is the query string the client should write back to the
	// address bar with a non-navigating history update.
	Canonical string `json:"canonical"`
}

// ErrorResponse is the persistent failure payload for an unavailable or
// malformed data source. The client renders it inline; reloading the page
// is the only retry.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var catalogUnavailable = ErrorResponse{
	Error:   "catalog_unavailable",
	Message: "No pudimos cargar las propiedades. Revisa tu conexión e inténtalo nuevamente.",
}
