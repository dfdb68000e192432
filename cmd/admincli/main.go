// admincli submits an event to the platform from a JSON description, the
// same way the web dashboard does: the input is replayed through the form
// session, validated, serialized to multipart, and sent to the backend.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"nexturdayadmin/config"
	"nexturdayadmin/internal/adapters/api"
	"nexturdayadmin/internal/adapters/auth"
	"nexturdayadmin/internal/domain"
	"nexturdayadmin/internal/forms"
	"nexturdayadmin/internal/services"
)

// eventFile is the on-disk JSON description of one event.
type eventFile struct {
	EventName       string   `json:"eventName"`
	About           string   `json:"about"`
	Guidelines      []string `json:"guidelines"`
	EventType       string   `json:"eventType"`
	FromDate        string   `json:"fromDate"`
	ToDate          string   `json:"toDate"`
	Deadline        string   `json:"deadline"`
	Website         string   `json:"website"`
	Emails          []string `json:"emails"`
	ContactNumbers  []string `json:"contactNumbers"`
	RegistrationURL string   `json:"registrationUrl"`
	IsPaidEvent     bool     `json:"isPaidEvent"`
	Price           float64  `json:"price"`
	Image           string   `json:"image"`
	Details         []struct {
		Name  string `json:"name"`
		About string `json:"about"`
		From  string `json:"from"`
		To    string `json:"to"`
		Type  string `json:"type"`
		Venue struct {
			Name   string `json:"name"`
			MapURL string `json:"mapUrl"`
		} `json:"venue"`
	} `json:"details"`
}

// logNotifier surfaces progress messages as log lines; the dashboard shows
// them as toasts instead.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Info(message string)    { n.logger.Info(message) }
func (n *logNotifier) Success(message string) { n.logger.Info(message) }
func (n *logNotifier) Error(message string)   { n.logger.Error(message) }

func main() {
	formPath := flag.String("form", "", "path to the event JSON file")
	email := flag.String("email", os.Getenv("NEXTURDAY_EMAIL"), "society login email")
	password := flag.String("password", os.Getenv("NEXTURDAY_PASSWORD"), "society login password")
	zone := flag.String("tz", "", "IANA zone for the form's local date-times (default: system local)")
	flag.Parse()

	logger := config.NewLogger()
	if *formPath == "" || *email == "" || *password == "" {
		logger.Error("usage: admincli -form event.json -email ... -password ...")
		os.Exit(2)
	}

	if err := run(logger, *formPath, *email, *password, *zone); err != nil {
		logger.Error("admincli failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, formPath, email, password, zone string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	loc := time.Local
	if zone != "" {
		loc, err = time.LoadLocation(zone)
		if err != nil {
			return fmt.Errorf("load zone %q: %w", zone, err)
		}
	}

	session, err := loadSession(formPath)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := api.NewClient(cfg.APIBaseURL, httpClient)
	notifier := &logNotifier{logger: logger}

	loginService := services.NewLoginService(client, auth.NewClaimsDecoder(), logger, cfg.HTTPTimeout)
	submitService := services.NewSubmitService(client, notifier, logger, loc, cfg.HTTPTimeout)

	ctx := context.Background()
	result, err := loginService.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	logger.Info("logged in", "route", result.Route)

	return submitService.Submit(ctx, result.Token, session)
}

// loadSession reads the event file and replays it through the form session,
// mutation by mutation, exactly as the dashboard's editors would.
func loadSession(path string) (*forms.Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	var ev eventFile
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("parse form file: %w", err)
	}

	session := forms.NewSession()
	for field, value := range map[forms.ScalarField]string{
		forms.FieldEventName:       ev.EventName,
		forms.FieldAbout:           ev.About,
		forms.FieldFromDate:        ev.FromDate,
		forms.FieldToDate:          ev.ToDate,
		forms.FieldDeadline:        ev.Deadline,
		forms.FieldWebsite:         ev.Website,
		forms.FieldRegistrationURL: ev.RegistrationURL,
	} {
		session.Apply(forms.SetField{Field: field, Value: value})
	}
	if ev.EventType != "" {
		session.Apply(forms.SetField{Field: forms.FieldEventType, Value: ev.EventType})
	}
	session.Apply(forms.SetPaid{Paid: ev.IsPaidEvent})
	session.Apply(forms.SetPrice{Price: ev.Price})

	for i, g := range ev.Guidelines {
		if i > 0 {
			session.Apply(forms.AddGuideline{})
		}
		session.Apply(forms.UpdateGuideline{Index: i, Value: g})
	}
	for i, e := range ev.Emails {
		if i > 0 {
			session.Apply(forms.AddEmail{})
		}
		session.Apply(forms.UpdateEmail{Index: i, Value: e})
	}
	for i, n := range ev.ContactNumbers {
		if i > 0 {
			session.Apply(forms.AddContactNumber{})
		}
		session.Apply(forms.UpdateContactNumber{Index: i, Value: n})
	}
	for i, d := range ev.Details {
		if i > 0 {
			session.Apply(forms.AddSubEvent{})
		}
		for field, value := range map[forms.SubEventField]string{
			forms.SubEventName:        d.Name,
			forms.SubEventAbout:       d.About,
			forms.SubEventFrom:        d.From,
			forms.SubEventTo:          d.To,
			forms.SubEventVenueName:   d.Venue.Name,
			forms.SubEventVenueMapURL: d.Venue.MapURL,
		} {
			session.Apply(forms.UpdateSubEvent{Index: i, Field: field, Value: value})
		}
		if d.Type != "" {
			session.Apply(forms.UpdateSubEvent{Index: i, Field: forms.SubEventType, Value: d.Type})
		}
	}

	if ev.Image != "" {
		data, err := os.ReadFile(ev.Image)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(ev.Image))
		session.Apply(forms.SelectFile{File: &domain.FileAttachment{
			Name:        filepath.Base(ev.Image),
			ContentType: contentType,
			Data:        data,
		}})
	}

	return session, nil
}
