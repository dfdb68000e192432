package forms

import (
	"fmt"
	"math"
	"strings"
	"time"

	"nexturdayadmin/internal/domain"
)

// Layouts accepted for the local date-time inputs.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseLocalDateTime interprets a zone-less form input ("2006-01-02T15:04")
// in loc. A nil loc means time.Local.
func ParseLocalDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	var lastErr error
	for _, layout := range localDateTimeLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// User-facing validation messages. The wording matches what the dashboard
// has always shown, so it must not drift.
const (
	msgRequiredFields   = "Please fill in all required fields!"
	msgInvalidDates     = "Event dates must be valid date-times!"
	msgDateOrder        = "Event start date cannot be later than the end date!"
	msgDeadline         = "Registration deadline must be earlier than the event end date!"
	msgPaidPrice        = "Price is required and must be a valid positive number for paid events!"
	msgPaidWebsite      = "Website URL is required for paid events!"
	msgPaidRegistration = "Registration URL is required for paid events!"
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func anyBlank(values []string) bool {
	for _, v := range values {
		if blank(v) {
			return true
		}
	}
	return false
}

// Validate checks the assembled form against the submission rules, in a
// fixed order, stopping at the first violation. It returns nil when the form
// may be serialized, or a *domain.ValidationError whose message identifies
// the first broken rule. Local date-times are interpreted in loc.
func Validate(f *domain.EventForm, loc *time.Location) error {
	if blank(f.EventName) ||
		blank(f.About) ||
		blank(string(f.EventType)) ||
		blank(f.FromDate) ||
		blank(f.ToDate) ||
		blank(f.Deadline) ||
		anyBlank(f.Guidelines) ||
		anyBlank(f.Emails) ||
		anyBlank(f.ContactNumbers) ||
		f.SelectedFile == nil {
		return &domain.ValidationError{Message: msgRequiredFields}
	}

	from, err := ParseLocalDateTime(f.FromDate, loc)
	if err != nil {
		return &domain.ValidationError{Message: msgInvalidDates}
	}
	to, err := ParseLocalDateTime(f.ToDate, loc)
	if err != nil {
		return &domain.ValidationError{Message: msgInvalidDates}
	}
	deadline, err := ParseLocalDateTime(f.Deadline, loc)
	if err != nil {
		return &domain.ValidationError{Message: msgInvalidDates}
	}

	if from.After(to) {
		return &domain.ValidationError{Message: msgDateOrder}
	}
	if !deadline.Before(to) {
		return &domain.ValidationError{Message: msgDeadline}
	}

	for i, d := range f.Details {
		// messages are 1-based, matching the on-screen numbering
		n := i + 1
		if blank(d.Name) || blank(d.About) {
			return &domain.ValidationError{
				Message: fmt.Sprintf("Sub Event %d is missing required fields!", n),
			}
		}
		if blank(d.From) || blank(d.To) {
			return &domain.ValidationError{
				Message: fmt.Sprintf("Sub Event %d must have valid dates!", n),
			}
		}
		subFrom, err := ParseLocalDateTime(d.From, loc)
		if err != nil {
			return &domain.ValidationError{
				Message: fmt.Sprintf("Sub Event %d must have valid dates!", n),
			}
		}
		subTo, err := ParseLocalDateTime(d.To, loc)
		if err != nil {
			return &domain.ValidationError{
				Message: fmt.Sprintf("Sub Event %d must have valid dates!", n),
			}
		}
		if subFrom.After(subTo) {
			return &domain.ValidationError{
				Message: fmt.Sprintf("Sub Event %d start date cannot be later than its end date!", n),
			}
		}
		if subFrom.Before(from) || subTo.After(to) {
			return &domain.ValidationError{
				Message: fmt.Sprintf("Sub Event %d's dates must be within the range of the main event dates!", n),
			}
		}
	}

	if f.IsPaidEvent {
		if f.Price <= 0 || math.IsNaN(f.Price) {
			return &domain.ValidationError{Message: msgPaidPrice}
		}
		if blank(f.Website) {
			return &domain.ValidationError{Message: msgPaidWebsite}
		}
		if blank(f.RegistrationURL) {
			return &domain.ValidationError{Message: msgPaidRegistration}
		}
	}

	return nil
}
