package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// It marshals to and from "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DateOf truncates a time.Time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// AddYears advances the date by whole calendar years.
// Feb 29 sources normalize per standard calendar arithmetic (Mar 1).
func (d Date) AddYears(years int) Date {
	return Date{d.Time.AddDate(years, 0, 0)}
}

// String returns the "YYYY-MM-DD" form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null when zero.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Archive represents one archival document record ("arsip").
type Archive struct {
	ID                 string    `json:"id"`
	DocumentNumber     string    `json:"documentNumber,omitempty"`
	DocumentDate       Date      `json:"documentDate"`
	Sender             string    `json:"sender,omitempty"`
	Recipient          string    `json:"recipient,omitempty"`
	Subject            string    `json:"subject"`
	ClassificationCode string    `json:"classificationCode,omitempty"`
	RetentionDate      Date      `json:"retentionDate"`
	Notes              string    `json:"notes,omitempty"` // markdown
	FilePath           string    `json:"filePath,omitempty"`
	FileName           string    `json:"fileName,omitempty"`
	CloudFileID        string    `json:"cloudFileId,omitempty"`
	CloudViewLink      string    `json:"cloudViewLink,omitempty"`
	CloudDownloadLink  string    `json:"cloudDownloadLink,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	// Optimistic is client-side state: true while the record awaits
	// server confirmation. Never serialized or stored.
	Optimistic bool `json:"-"`
}

// Classification represents one classification code ("klasifikasi")
// with its attached retention policy.
type Classification struct {
	ID                     string    `json:"id"`
	Code                   string    `json:"code"`
	Description            string    `json:"description"`
	ActiveRetentionYears   int       `json:"activeRetentionYears"`
	InactiveRetentionYears int       `json:"inactiveRetentionYears"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`

	// Optimistic is client-side state, as on Archive.
	Optimistic bool `json:"-"`
}

// Table names used by the gateway contract and the change feed.
const (
	TableArchives        = "arsip"
	TableClassifications = "klasifikasi"
)

// EventType is the kind of a change-feed event.
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is one change-feed entry. New carries the record after an
// insert or update; Old carries the record before an update or delete.
// Payloads stay raw so one feed can serve both tables.
type Event struct {
	Type  EventType       `json:"type"`
	Table string          `json:"table"`
	New   json.RawMessage `json:"new,omitempty"`
	Old   json.RawMessage `json:"old,omitempty"`
}

// NewEvent builds an Event, marshaling the given records.
// A nil record leaves the corresponding payload empty.
func NewEvent(typ EventType, table string, newRec, oldRec any) (Event, error) {
	ev := Event{Type: typ, Table: table}
	if newRec != nil {
		data, err := json.Marshal(newRec)
		if err != nil {
			return Event{}, fmt.Errorf("marshal event payload: %w", err)
		}
		ev.New = data
	}
	if oldRec != nil {
		data, err := json.Marshal(oldRec)
		if err != nil {
			return Event{}, fmt.Errorf("marshal event payload: %w", err)
		}
		ev.Old = data
	}
	return ev, nil
}
