package forms

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"nexturdayadmin/internal/domain"
)

// ScalarField names a scalar form field targeted by SetField.
type ScalarField string

const (
	FieldEventName       ScalarField = "eventName"
	FieldAbout           ScalarField = "about"
	FieldEventType       ScalarField = "eventType"
	FieldFromDate        ScalarField = "fromDate"
	FieldToDate          ScalarField = "toDate"
	FieldDeadline        ScalarField = "deadline"
	FieldWebsite         ScalarField = "website"
	FieldRegistrationURL ScalarField = "registrationUrl"
)

// SubEventField names a field of one sub-event targeted by UpdateSubEvent.
type SubEventField string

const (
	SubEventName        SubEventField = "name"
	SubEventAbout       SubEventField = "about"
	SubEventFrom        SubEventField = "from"
	SubEventTo          SubEventField = "to"
	SubEventType        SubEventField = "type"
	SubEventVenueName   SubEventField = "venueName"
	SubEventVenueMapURL SubEventField = "venueMapUrl"
)

// Action is one user-triggered mutation of the form session. Applying an
// action produces a fresh form state; the previous state is never mutated.
type Action interface {
	apply(s *Session, f *domain.EventForm)
}

// Session owns the form state of one event-creation flow, plus the
// pending-delete confirmation state for sub-events. It is exclusively owned
// by the active editing flow and is not safe for concurrent use.
type Session struct {
	id            uuid.UUID
	form          *domain.EventForm
	pendingDelete int // target sub-event index, -1 when idle
}

// NewSession returns a session holding the initial form state.
func NewSession() *Session {
	return &Session{
		id:            uuid.New(),
		form:          domain.NewEventForm(),
		pendingDelete: -1,
	}
}

// ID is the session identifier, used as the submission idempotency key.
func (s *Session) ID() uuid.UUID { return s.id }

// Form returns the current form state. Callers must treat it as read-only
// and go through Apply for every mutation.
func (s *Session) Form() *domain.EventForm { return s.form }

// PendingDelete reports the sub-event index awaiting delete confirmation.
func (s *Session) PendingDelete() (int, bool) {
	return s.pendingDelete, s.pendingDelete >= 0
}

// Apply runs one action against a deep copy of the current state and
// installs the result.
func (s *Session) Apply(a Action) {
	next := &domain.EventForm{}
	// copier cannot fail on two identical plain struct types
	_ = copier.CopyWithOption(next, s.form, copier.Option{DeepCopy: true})
	a.apply(s, next)
	s.form = next
}

// SetField sets one scalar field. Unknown fields are ignored.
type SetField struct {
	Field ScalarField
	Value string
}

func (a SetField) apply(_ *Session, f *domain.EventForm) {
	switch a.Field {
	case FieldEventName:
		f.EventName = a.Value
	case FieldAbout:
		f.About = a.Value
	case FieldEventType:
		f.EventType = domain.EventType(a.Value)
	case FieldFromDate:
		f.FromDate = a.Value
	case FieldToDate:
		f.ToDate = a.Value
	case FieldDeadline:
		f.Deadline = a.Value
	case FieldWebsite:
		f.Website = a.Value
	case FieldRegistrationURL:
		f.RegistrationURL = a.Value
	}
}

// SetPaid toggles the paid-event flag.
type SetPaid struct{ Paid bool }

func (a SetPaid) apply(_ *Session, f *domain.EventForm) { f.IsPaidEvent = a.Paid }

// SetPrice sets the ticket price.
type SetPrice struct{ Price float64 }

func (a SetPrice) apply(_ *Session, f *domain.EventForm) { f.Price = a.Price }

// SelectFile replaces the event image. A nil file clears the selection.
type SelectFile struct{ File *domain.FileAttachment }

func (a SelectFile) apply(_ *Session, f *domain.EventForm) { f.SelectedFile = a.File }

// AddGuideline appends an empty guideline.
type AddGuideline struct{}

func (AddGuideline) apply(_ *Session, f *domain.EventForm) {
	f.Guidelines = StringList(f.Guidelines).Add()
}

// UpdateGuideline edits a guideline in place, untrimmed so users can type
// freely.
type UpdateGuideline struct {
	Index int
	Value string
}

func (a UpdateGuideline) apply(_ *Session, f *domain.EventForm) {
	f.Guidelines = StringList(f.Guidelines).Update(a.Index, a.Value)
}

// RemoveGuideline deletes a guideline, keeping the never-empty invariant.
type RemoveGuideline struct{ Index int }

func (a RemoveGuideline) apply(_ *Session, f *domain.EventForm) {
	f.Guidelines = StringList(f.Guidelines).Remove(a.Index)
}

// AddEmail appends an empty contact email.
type AddEmail struct{}

func (AddEmail) apply(_ *Session, f *domain.EventForm) {
	f.Emails = StringList(f.Emails).Add()
}

// UpdateEmail edits a contact email; stored trimmed.
type UpdateEmail struct {
	Index int
	Value string
}

func (a UpdateEmail) apply(_ *Session, f *domain.EventForm) {
	f.Emails = StringList(f.Emails).Update(a.Index, strings.TrimSpace(a.Value))
}

// RemoveEmail deletes a contact email, keeping the never-empty invariant.
type RemoveEmail struct{ Index int }

func (a RemoveEmail) apply(_ *Session, f *domain.EventForm) {
	f.Emails = StringList(f.Emails).Remove(a.Index)
}

// AddContactNumber appends an empty contact number.
type AddContactNumber struct{}

func (AddContactNumber) apply(_ *Session, f *domain.EventForm) {
	f.ContactNumbers = StringList(f.ContactNumbers).Add()
}

// UpdateContactNumber edits a contact number; stored trimmed.
type UpdateContactNumber struct {
	Index int
	Value string
}

func (a UpdateContactNumber) apply(_ *Session, f *domain.EventForm) {
	f.ContactNumbers = StringList(f.ContactNumbers).Update(a.Index, strings.TrimSpace(a.Value))
}

// RemoveContactNumber deletes a contact number, keeping the never-empty
// invariant.
type RemoveContactNumber struct{ Index int }

func (a RemoveContactNumber) apply(_ *Session, f *domain.EventForm) {
	f.ContactNumbers = StringList(f.ContactNumbers).Remove(a.Index)
}

// AddSubEvent appends a new empty sub-event.
type AddSubEvent struct{}

func (AddSubEvent) apply(_ *Session, f *domain.EventForm) {
	f.Details = append(f.Details, domain.NewSubEvent())
}

// UpdateSubEvent sets one field of the sub-event at Index. Out-of-range
// indexes and unknown fields are ignored.
type UpdateSubEvent struct {
	Index int
	Field SubEventField
	Value string
}

func (a UpdateSubEvent) apply(_ *Session, f *domain.EventForm) {
	if a.Index < 0 || a.Index >= len(f.Details) {
		return
	}
	d := &f.Details[a.Index]
	switch a.Field {
	case SubEventName:
		d.Name = a.Value
	case SubEventAbout:
		d.About = a.Value
	case SubEventFrom:
		d.From = a.Value
	case SubEventTo:
		d.To = a.Value
	case SubEventType:
		d.Type = domain.EventType(a.Value)
	case SubEventVenueName:
		d.Venue.Name = a.Value
	case SubEventVenueMapURL:
		d.Venue.MapURL = a.Value
	}
}

// RequestRemoveSubEvent records a delete request pending user confirmation.
// Nothing is removed until ConfirmRemoveSubEvent.
type RequestRemoveSubEvent struct{ Index int }

func (a RequestRemoveSubEvent) apply(s *Session, _ *domain.EventForm) {
	s.pendingDelete = a.Index
}

// ConfirmRemoveSubEvent commits the pending delete and returns to idle.
// A no-op when no delete is pending or the pending index is stale.
type ConfirmRemoveSubEvent struct{}

func (ConfirmRemoveSubEvent) apply(s *Session, f *domain.EventForm) {
	index := s.pendingDelete
	s.pendingDelete = -1
	if index < 0 || index >= len(f.Details) {
		return
	}
	next := append(append([]domain.SubEvent{}, f.Details[:index]...), f.Details[index+1:]...)
	if len(next) == 0 {
		next = []domain.SubEvent{domain.NewSubEvent()}
	}
	f.Details = next
}

// CancelRemoveSubEvent discards the pending delete without removing anything.
type CancelRemoveSubEvent struct{}

func (CancelRemoveSubEvent) apply(s *Session, _ *domain.EventForm) {
	s.pendingDelete = -1
}
