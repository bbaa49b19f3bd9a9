package messaging

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Lead is one contact form submission handed off to the sales pipeline.
type Lead struct {
	Id         string    `json:"id"`
	Nombre     string    `json:"nombre"`
	Correo     string    `json:"correo"`
	Telefono   string    `json:"telefono"`
	Mensaje    string    `json:"mensaje"`
	Referencia string    `json:"referencia,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type LeadSender struct {
	connection *amqp.Connection
}

func NewLeadSender(url string) (*LeadSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := DefineTopic(ch, "global", LeadTopic); err != nil {
		conn.Close()
		return nil, err
	}
	return &LeadSender{connection: conn}, nil
}

func (s *LeadSender) Send(lead Lead) error {
	return Send(s.connection, "global", LeadTopic, lead)
}

func (s *LeadSender) Close() error {
	return s.connection.Close()
}
