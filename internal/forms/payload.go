package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/thoas/go-funk"

	"nexturdayadmin/internal/domain"
)

// Multipart field names. These are the backend's contract, including the
// historical "guidlines" misspelling, which must be preserved bit-exact.
const (
	fieldName            = "name"
	fieldAbout           = "about"
	fieldWebsiteURL      = "websiteUrl"
	fieldRegistrationURL = "registrationUrl"
	fieldPrice           = "price"
	fieldFrom            = "from"
	fieldTo              = "to"
	fieldPaid            = "paid"
	fieldDeadline        = "deadline"
	fieldEmails          = "emails"
	fieldGuidelines      = "guidlines" // sic
	fieldPhoneNumbers    = "phoneNumbers"
	fieldDetails         = "details"
	fieldImages          = "images"
)

// wireInstant is the absolute instant format the backend receives:
// UTC, millisecond precision, Z suffix.
const wireInstant = "2006-01-02T15:04:05.000Z07:00"

// subEventPayload is one sub-event inside the JSON-encoded details field,
// with from/to rewritten to absolute instants.
type subEventPayload struct {
	Name  string           `json:"name"`
	About string           `json:"about"`
	From  string           `json:"from"`
	To    string           `json:"to"`
	Type  domain.EventType `json:"type"`
	Venue domain.Venue     `json:"venue"`
}

func toInstant(value string, loc *time.Location) (string, error) {
	t, err := ParseLocalDateTime(value, loc)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(wireInstant), nil
}

// BuildPayload serializes a validated form into the multipart body the
// backend expects. It must only be called after Validate has passed; it
// still fails cleanly instead of panicking when handed a bad form.
func BuildPayload(f *domain.EventForm, loc *time.Location) (*domain.Payload, error) {
	if f.SelectedFile == nil {
		return nil, fmt.Errorf("build payload: no file selected")
	}

	from, err := toInstant(f.FromDate, loc)
	if err != nil {
		return nil, fmt.Errorf("build payload: from date: %w", err)
	}
	to, err := toInstant(f.ToDate, loc)
	if err != nil {
		return nil, fmt.Errorf("build payload: to date: %w", err)
	}
	deadline, err := toInstant(f.Deadline, loc)
	if err != nil {
		return nil, fmt.Errorf("build payload: deadline: %w", err)
	}

	price := "0"
	if f.IsPaidEvent {
		price = strconv.FormatFloat(f.Price, 'f', -1, 64)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	scalars := []struct{ key, value string }{
		{fieldName, f.EventName},
		{fieldAbout, f.About},
		{fieldWebsiteURL, f.Website},
		{fieldRegistrationURL, f.RegistrationURL},
		{fieldPrice, price},
		{fieldFrom, from},
		{fieldTo, to},
		{fieldPaid, strconv.FormatBool(f.IsPaidEvent)},
		{fieldDeadline, deadline},
	}
	for _, s := range scalars {
		if err := w.WriteField(s.key, s.value); err != nil {
			return nil, fmt.Errorf("build payload: write %s: %w", s.key, err)
		}
	}

	// Empty-after-trim elements are dropped and the survivors re-indexed
	// contiguously from 0.
	notBlank := func(s string) bool { return strings.TrimSpace(s) != "" }
	if err := writeIndexed(w, fieldEmails, funk.FilterString(f.Emails, notBlank)); err != nil {
		return nil, err
	}
	if err := writeIndexed(w, fieldGuidelines, funk.FilterString(f.Guidelines, notBlank)); err != nil {
		return nil, err
	}
	if err := writeIndexed(w, fieldPhoneNumbers, funk.FilterString(f.ContactNumbers, notBlank)); err != nil {
		return nil, err
	}

	details := make([]subEventPayload, 0, len(f.Details))
	for i, d := range f.Details {
		subFrom, err := toInstant(d.From, loc)
		if err != nil {
			return nil, fmt.Errorf("build payload: sub event %d from: %w", i+1, err)
		}
		subTo, err := toInstant(d.To, loc)
		if err != nil {
			return nil, fmt.Errorf("build payload: sub event %d to: %w", i+1, err)
		}
		details = append(details, subEventPayload{
			Name:  d.Name,
			About: d.About,
			From:  subFrom,
			To:    subTo,
			Type:  d.Type,
			Venue: d.Venue,
		})
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("build payload: encode details: %w", err)
	}
	if err := w.WriteField(fieldDetails, string(detailsJSON)); err != nil {
		return nil, fmt.Errorf("build payload: write details: %w", err)
	}

	part, err := w.CreatePart(filePartHeader(fieldImages, f.SelectedFile))
	if err != nil {
		return nil, fmt.Errorf("build payload: create file part: %w", err)
	}
	if _, err := part.Write(f.SelectedFile.Data); err != nil {
		return nil, fmt.Errorf("build payload: write file: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build payload: close writer: %w", err)
	}

	return &domain.Payload{
		Body:        buf.Bytes(),
		ContentType: w.FormDataContentType(),
	}, nil
}

func writeIndexed(w *multipart.Writer, key string, values []string) error {
	for i, v := range values {
		if err := w.WriteField(fmt.Sprintf("%s[%d]", key, i), v); err != nil {
			return fmt.Errorf("build payload: write %s[%d]: %w", key, i, err)
		}
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func filePartHeader(field string, file *domain.FileAttachment) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(file.Name)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return h
}
