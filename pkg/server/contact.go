package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gardet/listing-finder/pkg/common"
	"github.com/gardet/listing-finder/pkg/messaging"
	"github.com/gardet/listing-finder/pkg/types"
)

var noLeads = promauto.NewCounter(prometheus.CounterOpts{
	Name: "listingfinder_leads_total",
	Help: "The total number of accepted contact leads",
})

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type LeadRequest struct {
	Nombre     string `json:"nombre"`
	Correo     string `json:"correo"`
	Telefono   string `json:"telefono"`
	Mensaje    string `json:"mensaje"`
	Referencia string `json:"referencia,omitempty"`
}

// validate mirrors the form messages of the contact page; the map is keyed
// by field name.
func (lr *LeadRequest) validate() map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(lr.Nombre) == "" {
		problems["nombre"] = "Ingresa tu nombre"
	}
	if !emailPattern.MatchString(strings.TrimSpace(lr.Correo)) {
		problems["correo"] = "Ingresa un correo válido"
	}
	if strings.TrimSpace(lr.Telefono) == "" {
		problems["telefono"] = "Indica un teléfono de contacto"
	}
	if strings.TrimSpace(lr.Mensaje) == "" {
		problems["mensaje"] = "Cuéntanos en qué podemos ayudarte"
	}
	return problems
}

type LeadResponse struct {
	LeadId      string `json:"leadId"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

type LeadErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ContactHandler accepts a lead, publishes it for follow-up and hands back
// the WhatsApp continuation URL carrying the listing reference.
func (ws *WebServer) ContactHandler(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId int, enc sonicEncoder) error {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return nil
		}
		lead := LeadRequest{}
		if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil
		}
		if problems := lead.validate(); len(problems) > 0 {
			setClientHeaders(w)
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusUnprocessableEntity)
			return enc.Encode(LeadErrorResponse{Error: "invalid_lead", Fields: problems})
		}

		settings := types.CurrentSettings.Snapshot()
		leadId := uuid.NewString()
		if ws.Leads != nil {
			err := ws.Leads.Send(messaging.Lead{
				Id:         leadId,
				Nombre:     strings.TrimSpace(lead.Nombre),
				Correo:     strings.TrimSpace(lead.Correo),
				Telefono:   strings.TrimSpace(lead.Telefono),
				Mensaje:    strings.TrimSpace(lead.Mensaje),
				Referencia: strings.TrimSpace(lead.Referencia),
				CreatedAt:  time.Now().UTC(),
			})
			if err != nil {
				http.Error(w, "lead delivery failed", http.StatusBadGateway)
				return err
			}
		}
		noLeads.Inc()
		if ws.Tracking != nil {
			go ws.Tracking.TrackLead(sessionId, leadId, lead.Referencia)
		}

		summary := "Consulta general"
		if ref := strings.TrimSpace(lead.Referencia); ref != "" {
			summary = "Interés en " + ref
		}
		text := strings.TrimSpace(fmt.Sprintf("%s · %s. %s", strings.TrimSpace(lead.Nombre), summary, strings.TrimSpace(lead.Mensaje)))

		setClientHeaders(w)
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(LeadResponse{
			LeadId:      leadId,
			Message:     fmt.Sprintf("¡Gracias, %s! Te contactaremos a la brevedad.", strings.TrimSpace(lead.Nombre)),
			WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", settings.WhatsAppPhone, url.QueryEscape(text)),
		})
	})(w, r)
}
