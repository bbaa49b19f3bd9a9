package tracking

import (
	"log"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gardet/listing-finder/pkg/messaging"
)

type RabbitTracking struct {
	connection *amqp.Connection
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	ret := RabbitTracking{}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, "global", messaging.TrackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Send(t.connection, "global", messaging.TrackingTopic, data)
}

type BaseEvent struct {
	SessionId int    `json:"session_id"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func clientIp(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}

func (t *RabbitTracking) TrackSession(sessionId int, r *http.Request) {
	err := t.send(SessionEvent{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId},
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        clientIp(r),
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type SearchEvent struct {
	*BaseEvent
	Query           string `json:"query"`
	NumberOfResults int    `json:"noi"`
	Page            int    `json:"page"`
	Referer         string `json:"referer,omitempty"`
}

func (t *RabbitTracking) TrackSearch(sessionId int, query string, resultLen int, page int, r *http.Request) {
	err := t.send(SearchEvent{
		BaseEvent:       &BaseEvent{Event: 1, SessionId: sessionId},
		Query:           query,
		NumberOfResults: resultLen,
		Page:            page,
		Referer:         r.Referer(),
	})
	if err != nil {
		log.Println("Error sending search event: ", err)
	}
}

type LeadEvent struct {
	*BaseEvent
	LeadId    string `json:"lead_id"`
	Reference string `json:"reference,omitempty"`
}

func (t *RabbitTracking) TrackLead(sessionId int, leadId string, reference string) {
	err := t.send(LeadEvent{
		BaseEvent: &BaseEvent{Event: 2, SessionId: sessionId},
		LeadId:    leadId,
		Reference: reference,
	})
	if err != nil {
		log.Println("Error sending lead event: ", err)
	}
}
