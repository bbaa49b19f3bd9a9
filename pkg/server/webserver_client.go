package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gardet/listing-finder/pkg/common"
	"github.com/gardet/listing-finder/pkg/filter"
	"github.com/gardet/listing-finder/pkg/paging"
	"github.com/gardet/listing-finder/pkg/sorting"
	"github.com/gardet/listing-finder/pkg/types"
	"github.com/gardet/listing-finder/pkg/view"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listingfinder_searches_total",
		Help: "The total number of processed searches",
	})
	noSuggests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listingfinder_suggest_total",
		Help: "The total number of processed suggestions",
	})
	noFeedHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "listingfinder_feed_total",
		Help: "The total number of news/project feed requests",
	})
)

func (ws *WebServer) storeUnavailable(w http.ResponseWriter) bool {
	if !ws.Store.Ready() || ws.Store.Err() != nil {
		setClientHeaders(w)
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = writeJson(w, catalogUnavailable)
		return true
	}
	return false
}

// runSearch is the one shared filter → sort → paginate → view pipeline. It
// is recomputed from scratch on every request; results are never updated
// incrementally.
func (ws *WebServer) runSearch(q *types.Query, forcedOperation string, settings types.Settings) SearchResponse {
	matching := filter.Filter(ws.Store.All(), q, settings.UFRate)
	ordered := sorting.Apply(matching, sorting.ParseMode(q.Sort), q.Moneda, settings.UFRate)
	page := paging.Paginate(ordered, q.Page, settings.PageSize)
	q.Page = page.Page

	items := make([]view.PropertyCard, len(page.Slice))
	for i, p := range page.Slice {
		items[i] = view.NewPropertyCard(p, settings)
	}
	response := SearchResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalHits:  page.TotalHits,
		TotalPages: page.TotalPages,
		HasPrev:    page.HasPrev,
		HasNext:    page.HasNext,
		Sort:       q.Sort,
		Canonical:  q.Encode(),
	}
	if page.TotalHits == 0 {
		empty := view.NewEmptyState(forcedOperation)
		response.Empty = &empty
	}
	return response
}

// SearchHandler serves one catalog view. forcedOperation pins the
// transaction kind for the venta/arriendos endpoints.
func (ws *WebServer) SearchHandler(forcedOperation string) http.HandlerFunc {
	return common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId int, enc sonicEncoder) error {
		if ws.storeUnavailable(w) {
			return nil
		}
		noSearches.Inc()
		q := QueryFromRequest(r, forcedOperation)
		settings := types.CurrentSettings.Snapshot()

		cacheKey := "search:" + forcedOperation + "?" + q.Encode()
		var response SearchResponse
		if ws.Cache == nil || ws.Cache.Get(cacheKey, &response) != nil {
			response = ws.runSearch(q, forcedOperation, settings)
			if ws.Cache != nil {
				_ = ws.Cache.Set(cacheKey, response, time.Minute)
			}
		}

		if ws.Tracking != nil {
			go ws.Tracking.TrackSearch(sessionId, q.Term, response.TotalHits, response.Page, r)
		}

		setClientHeaders(w)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(response)
	})
}

type PropertyResponse struct {
	Item view.PropertyCard `json:"item"`
}

func (ws *WebServer) PropertyHandler(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId int, enc sonicEncoder) error {
		if ws.storeUnavailable(w) {
			return nil
		}
		slug := r.URL.Query().Get("slug")
		p, ok := ws.Store.Get(slug)
		if !ok || !p.Publicado {
			http.Error(w, "not found", http.StatusNotFound)
			return nil
		}
		setClientHeaders(w)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(PropertyResponse{Item: view.NewPropertyCard(p, types.CurrentSettings.Snapshot())})
	})(w, r)
}

func (ws *WebServer) SuggestHandler(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId int, enc sonicEncoder) error {
		if ws.storeUnavailable(w) {
			return nil
		}
		noSuggests.Inc()
		query := r.URL.Query().Get("q")
		s := ws.suggester()
		setClientHeaders(w)
		w.WriteHeader(http.StatusOK)
		if s == nil {
			return enc.Encode([]interface{}{})
		}
		return enc.Encode(s.FindMatches(query, 8))
	})(w, r)
}

func (ws *WebServer) NewsHandler(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId int, enc sonicEncoder) error {
		noFeedHits.Inc()
		cards := make([]view.NewsCard, 0, 3)
		for _, n := range ws.Store.LatestNews(3) {
			cards = append(cards, view.NewNewsCard(n))
		}
		setClientHeaders(w)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(cards)
	})(w, r)
}

func (ws *WebServer) ProjectsHandler(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId int, enc sonicEncoder) error {
		noFeedHits.Inc()
		settings := types.CurrentSettings.Snapshot()
		projects := ws.Store.Projects()
		cards := make([]view.ProjectCard, len(projects))
		for i, p := range projects {
			cards[i] = view.NewProjectCard(p, settings)
		}
		setClientHeaders(w)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(cards)
	})(w, r)
}
