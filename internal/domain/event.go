package domain

import "context"

// EventType distinguishes online and offline events. Sub-events carry their
// own type, independent of the parent event.
type EventType string

const (
	EventOnline  EventType = "ONLINE"
	EventOffline EventType = "OFFLINE"
)

// Venue is where an offline sub-event takes place. The backend accepts empty
// venue objects even for offline sub-events, so neither field is required.
type Venue struct {
	Name   string `json:"name"`
	MapURL string `json:"mapUrl"`
}

// SubEvent is a nested schedule item of an event with its own time window.
// From and To hold local date-time input ("2006-01-02T15:04") until
// serialization rewrites them to absolute instants.
type SubEvent struct {
	Name  string    `json:"name"`
	About string    `json:"about"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	Type  EventType `json:"type"`
	Venue Venue     `json:"venue"`
}

// NewSubEvent returns an empty sub-event with the default type.
func NewSubEvent() SubEvent {
	return SubEvent{Type: EventOnline}
}

// FileAttachment is the event image selected for upload.
type FileAttachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// EventForm is the in-memory state of one event-creation session. Date fields
// hold the local date-time input format; list fields always contain at least
// one element (an empty placeholder when nothing has been entered yet).
type EventForm struct {
	EventName       string
	About           string
	Guidelines      []string
	EventType       EventType
	FromDate        string
	ToDate          string
	Deadline        string
	Website         string
	Emails          []string
	ContactNumbers  []string
	RegistrationURL string
	IsPaidEvent     bool
	Price           float64
	SelectedFile    *FileAttachment
	Details         []SubEvent
}

// NewEventForm returns the initial form state: one empty placeholder per
// list field and one empty sub-event.
func NewEventForm() *EventForm {
	return &EventForm{
		Guidelines:     []string{""},
		EventType:      EventOnline,
		Emails:         []string{""},
		ContactNumbers: []string{""},
		Details:        []SubEvent{NewSubEvent()},
	}
}

// Payload is the serialized multipart body ready for submission.
type Payload struct {
	Body        []byte
	ContentType string
}

// EventAPI is the outbound collaborator that submits a serialized event.
// idempotencyKey dedupes retried submissions of the same form session.
type EventAPI interface {
	CreateEvent(ctx context.Context, token, idempotencyKey string, payload *Payload) error
}
