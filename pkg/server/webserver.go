package server

import (
	"net/http"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/gardet/listing-finder/pkg/catalog"
	"github.com/gardet/listing-finder/pkg/messaging"
	"github.com/gardet/listing-finder/pkg/search"
	"github.com/gardet/listing-finder/pkg/tracking"
)

type sonicEncoder = sonic.Encoder

type WebServer struct {
	Store       *catalog.Store
	Source      catalog.Source
	Cache       *Cache
	Tracking    tracking.Tracking
	Leads       *messaging.LeadSender
	AdminSecret string

	mu      sync.RWMutex
	suggest *search.Suggester
}

// RefreshSuggestions rebuilds the hero-search index from the current
// snapshot. Called after the initial load and after an admin reload.
func (ws *WebServer) RefreshSuggestions() {
	s := search.NewSuggester(ws.Store.All())
	ws.mu.Lock()
	ws.suggest = s
	ws.mu.Unlock()
}

func (ws *WebServer) suggester() *search.Suggester {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.suggest
}

// ClientHandler exposes the public read API. The venta and arriendos routes
// mirror the hosting pages of the original site: each forces its transaction
// kind over whatever the URL carries.
func (ws *WebServer) ClientHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", ws.SearchHandler(""))
	mux.HandleFunc("/venta", ws.SearchHandler("venta"))
	mux.HandleFunc("/arriendos", ws.SearchHandler("arriendo"))
	mux.HandleFunc("/property", ws.PropertyHandler)
	mux.HandleFunc("/suggest", ws.SuggestHandler)
	mux.HandleFunc("/news", ws.NewsHandler)
	mux.HandleFunc("/projects", ws.ProjectsHandler)
	mux.HandleFunc("/contact", ws.ContactHandler)
	return mux
}

func setClientHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, stale-while-revalidate=120")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Age", "0")
}

func writeJson(w http.ResponseWriter, data any) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(data)
}
