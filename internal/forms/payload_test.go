package forms

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexturdayadmin/internal/domain"
)

// parsedPayload is a decoded multipart body: plain fields plus the file part.
type parsedPayload struct {
	fields   map[string][]string
	fileName string
	fileType string
	fileData []byte
}

func parsePayload(t *testing.T, p *domain.Payload) parsedPayload {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(p.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	out := parsedPayload{fields: map[string][]string{}}
	r := multipart.NewReader(bytes.NewReader(p.Body), params["boundary"])
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			out.fileName = part.FileName()
			out.fileType = part.Header.Get("Content-Type")
			out.fileData = data
			continue
		}
		out.fields[part.FormName()] = append(out.fields[part.FormName()], string(data))
	}
	return out
}

func (p parsedPayload) field(t *testing.T, key string) string {
	t.Helper()
	values, ok := p.fields[key]
	require.True(t, ok, "missing field %q", key)
	require.Len(t, values, 1)
	return values[0]
}

func TestBuildPayloadHackDay(t *testing.T) {
	payload, err := BuildPayload(validEventForm(), time.UTC)
	require.NoError(t, err)

	got := parsePayload(t, payload)
	assert.Equal(t, "Hack Day", got.field(t, "name"))
	assert.Equal(t, "A one-day hackathon", got.field(t, "about"))
	assert.Equal(t, "2025-01-10T09:00:00.000Z", got.field(t, "from"))
	assert.Equal(t, "2025-01-10T18:00:00.000Z", got.field(t, "to"))
	assert.Equal(t, "2025-01-09T23:59:00.000Z", got.field(t, "deadline"))
	assert.Equal(t, "false", got.field(t, "paid"))
	assert.Equal(t, "0", got.field(t, "price"))
	assert.Equal(t, "", got.field(t, "websiteUrl"))
	assert.Equal(t, "", got.field(t, "registrationUrl"))
	assert.Equal(t, "a@x.com", got.field(t, "emails[0]"))
	assert.Equal(t, "Bring your college ID", got.field(t, "guidlines[0]"))
	assert.Equal(t, "9876543210", got.field(t, "phoneNumbers[0]"))

	assert.Equal(t, "poster.png", got.fileName)
	assert.Equal(t, "image/png", got.fileType)
	assert.Equal(t, []byte("fake image bytes"), got.fileData)

	var details []subEventPayload
	require.NoError(t, json.Unmarshal([]byte(got.field(t, "details")), &details))
	require.Len(t, details, 1)
	assert.Equal(t, "Coding Round", details[0].Name)
	assert.Equal(t, "2025-01-10T10:00:00.000Z", details[0].From)
	assert.Equal(t, "2025-01-10T16:00:00.000Z", details[0].To)
	assert.Equal(t, domain.EventOnline, details[0].Type)
}

func TestBuildPayloadDropsBlankListEntriesAndReindexes(t *testing.T) {
	f := validEventForm()
	f.Emails = []string{"a@x.com", "", "b@x.com"}
	f.Guidelines = []string{" ", "first rule", "second rule"}
	f.ContactNumbers = []string{"111", "   ", "222"}

	payload, err := BuildPayload(f, time.UTC)
	require.NoError(t, err)
	got := parsePayload(t, payload)

	assert.Equal(t, "a@x.com", got.field(t, "emails[0]"))
	assert.Equal(t, "b@x.com", got.field(t, "emails[1]"))
	_, present := got.fields["emails[2]"]
	assert.False(t, present)

	assert.Equal(t, "first rule", got.field(t, "guidlines[0]"))
	assert.Equal(t, "second rule", got.field(t, "guidlines[1]"))

	assert.Equal(t, "111", got.field(t, "phoneNumbers[0]"))
	assert.Equal(t, "222", got.field(t, "phoneNumbers[1]"))
}

func TestBuildPayloadPaidEvent(t *testing.T) {
	f := validEventForm()
	f.IsPaidEvent = true
	f.Price = 249.5
	f.Website = "https://hack.example.com"
	f.RegistrationURL = "https://hack.example.com/register"

	payload, err := BuildPayload(f, time.UTC)
	require.NoError(t, err)
	got := parsePayload(t, payload)

	assert.Equal(t, "true", got.field(t, "paid"))
	assert.Equal(t, "249.5", got.field(t, "price"))
	assert.Equal(t, "https://hack.example.com", got.field(t, "websiteUrl"))
	assert.Equal(t, "https://hack.example.com/register", got.field(t, "registrationUrl"))
}

func TestBuildPayloadConvertsLocalInputsToInstants(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	payload, err := BuildPayload(validEventForm(), ist)
	require.NoError(t, err)
	got := parsePayload(t, payload)

	// 09:00 IST is 03:30 UTC
	assert.Equal(t, "2025-01-10T03:30:00.000Z", got.field(t, "from"))
	assert.Equal(t, "2025-01-10T12:30:00.000Z", got.field(t, "to"))
}

func TestBuildPayloadPassesVenueThrough(t *testing.T) {
	f := validEventForm()
	f.Details[0].Type = domain.EventOffline
	f.Details[0].Venue = domain.Venue{Name: "Main Hall", MapURL: "https://maps.example.com/hall"}

	payload, err := BuildPayload(f, time.UTC)
	require.NoError(t, err)
	got := parsePayload(t, payload)

	var details []subEventPayload
	require.NoError(t, json.Unmarshal([]byte(got.field(t, "details")), &details))
	require.Len(t, details, 1)
	assert.Equal(t, domain.EventOffline, details[0].Type)
	assert.Equal(t, "Main Hall", details[0].Venue.Name)
	assert.Equal(t, "https://maps.example.com/hall", details[0].Venue.MapURL)
}

func TestBuildPayloadRequiresFile(t *testing.T) {
	f := validEventForm()
	f.SelectedFile = nil
	_, err := BuildPayload(f, time.UTC)
	assert.Error(t, err)
}

func TestBuildPayloadRejectsUnparsableDates(t *testing.T) {
	f := validEventForm()
	f.Details[0].From = "nope"
	_, err := BuildPayload(f, time.UTC)
	assert.Error(t, err)
}
