package types

import "sync"

// Settings holds the operator tunables. The UF rate is a fixed daily value
// updated by hand through the admin endpoint, never fetched live.
type Settings struct {
	UFRate        float64 `json:"ufRate"`
	PageSize      int     `json:"pageSize"`
	WhatsAppPhone string  `json:"whatsappPhone"`
	ContactPage   string  `json:"contactPage"`
}

// SettingsStore guards the live settings value.
type SettingsStore struct {
	mu      sync.RWMutex
	current Settings
}

var CurrentSettings = &SettingsStore{
	current: Settings{
		UFRate:        38000,
		PageSize:      12,
		WhatsAppPhone: "56987829204",
		ContactPage:   "contacto.html",
	},
}

// Snapshot returns a copy safe to read without holding the lock.
func (s *SettingsStore) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies non-zero fields from in. Returns the resulting snapshot.
func (s *SettingsStore) Update(in Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.UFRate > 0 {
		s.current.UFRate = in.UFRate
	}
	if in.PageSize > 0 {
		s.current.PageSize = in.PageSize
	}
	if in.WhatsAppPhone != "" {
		s.current.WhatsAppPhone = in.WhatsAppPhone
	}
	if in.ContactPage != "" {
		s.current.ContactPage = in.ContactPage
	}
	return s.current
}
