package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Event is one message pushed to the live feed.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	SentAt  time.Time   `json:"sentAt"`
}

func NewEvent(eventType string, payload interface{}) Event {
	return Event{Type: eventType, Payload: payload, SentAt: time.Now().UTC()}
}

type Service interface {
	Publish(event Event) error
}

// MelodyService broadcasts events to every connected websocket session.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) Publish(event Event) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.Broadcast(msg)
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(Event) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(event Event) error {
	r.Events = append(r.Events, event)
	return nil
}
