package catalog

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/gardet/listing-finder/pkg/types"
)

// Store holds one immutable snapshot of the catalog. Each widget of the
// original site fetched the document once at boot and kept it for its
// lifetime; Reload swaps the whole snapshot for the admin path.
type Store struct {
	mu       sync.RWMutex
	items    []*types.Property
	bySlug   map[string]*types.Property
	news     []*types.NewsItem
	projects []*types.Project
	loaded   bool
	loadErr  error
}

func NewStore() *Store {
	return &Store{bySlug: map[string]*types.Property{}}
}

// Load performs the one-shot fetch of every document. A failed or malformed
// properties document leaves the store in a terminal error state surfaced by
// Err; the feeds are optional and only logged on failure.
func (s *Store) Load(ctx context.Context, src Source) error {
	items, err := src.FetchProperties(ctx)
	if err != nil {
		s.mu.Lock()
		s.loaded = true
		s.loadErr = err
		s.mu.Unlock()
		return err
	}

	news, newsErr := src.FetchNews(ctx)
	if newsErr != nil {
		log.Printf("news feed unavailable: %v", newsErr)
	}
	projects, projectsErr := src.FetchProjects(ctx)
	if projectsErr != nil {
		log.Printf("projects feed unavailable: %v", projectsErr)
	}

	s.mu.Lock()
	s.setLocked(items, news, projects)
	s.mu.Unlock()
	log.Printf("catalog loaded: %d properties, %d news, %d projects", len(items), len(news), len(projects))
	return nil
}

// Reload re-fetches everything, replacing the snapshot only on success.
func (s *Store) Reload(ctx context.Context, src Source) error {
	items, err := src.FetchProperties(ctx)
	if err != nil {
		return err
	}
	news, _ := src.FetchNews(ctx)
	projects, _ := src.FetchProjects(ctx)
	s.mu.Lock()
	s.setLocked(items, news, projects)
	s.mu.Unlock()
	log.Printf("catalog reloaded: %d properties", len(items))
	return nil
}

func (s *Store) setLocked(items []*types.Property, news []*types.NewsItem, projects []*types.Project) {
	bySlug := make(map[string]*types.Property, len(items))
	for _, p := range items {
		if p.Slug != "" {
			bySlug[p.Slug] = p
		}
	}
	s.items = items
	s.bySlug = bySlug
	s.news = news
	s.projects = projects
	s.loaded = true
	s.loadErr = nil
}

// SetItems seeds a snapshot directly; used by tests and the file loader.
func (s *Store) SetItems(items []*types.Property) {
	s.mu.Lock()
	s.setLocked(items, s.news, s.projects)
	s.mu.Unlock()
}

// All returns the current snapshot in source order. Callers must not mutate.
func (s *Store) All() []*types.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Get looks a record up by slug.
func (s *Store) Get(slug string) (*types.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.bySlug[slug]
	return p, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Err reports the terminal load error, nil when the snapshot is usable.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Ready reports whether the initial load has finished, successfully or not.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LatestNews returns the published entries, newest first, capped at limit.
// Entries without a parseable date sort last.
func (s *Store) LatestNews(limit int) []*types.NewsItem {
	s.mu.RLock()
	news := s.news
	s.mu.RUnlock()

	published := make([]*types.NewsItem, 0, len(news))
	for _, n := range news {
		if n.Publicado {
			published = append(published, n)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		ti, iok := published[i].Date()
		tj, jok := published[j].Date()
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
	if limit > 0 && len(published) > limit {
		published = published[:limit]
	}
	return published
}

// Projects returns the project feed in source order.
func (s *Store) Projects() []*types.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects
}
