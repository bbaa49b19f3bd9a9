package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/gardet/listing-finder/pkg/types"
)

func (ws *WebServer) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ws.AdminSecret == "" {
			http.Error(w, "admin disabled", http.StatusForbidden)
			return
		}
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(ws.AdminSecret), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// AdminHandler exposes the operator endpoints: catalog reload and the
// manual settings update (UF rate, page size).
func (ws *WebServer) AdminHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/reload", ws.requireAdmin(ws.reloadHandler))
	mux.HandleFunc("/settings", ws.requireAdmin(ws.settingsHandler))
	return mux
}

func (ws *WebServer) reloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := ws.Store.Reload(r.Context(), ws.Source); err != nil {
		log.Printf("catalog reload failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	ws.RefreshSuggestions()
	if ws.Cache != nil {
		if err := ws.Cache.Flush(); err != nil {
			log.Printf("cache flush failed: %v", err)
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (ws *WebServer) settingsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		_ = writeJson(w, types.CurrentSettings.Snapshot())
	case http.MethodPut:
		in := types.Settings{}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updated := types.CurrentSettings.Update(in)
		if ws.Cache != nil {
			if err := ws.Cache.Flush(); err != nil {
				log.Printf("cache flush failed: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = writeJson(w, updated)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
