package classification

import (
	"time"

	"arsipku/internal/model"
)

// DefaultRetentionYears applies when a record's classification code
// matches no known classification.
const DefaultRetentionYears = 5

// Status is the derived retention status of an archive record.
// It is computed from the retention date, never stored.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// RetentionYears returns the active-retention period in years for the
// given code. The second result reports whether a classification
// matched; when false the default of 5 years is returned.
func RetentionYears(code string, items []model.Classification) (int, bool) {
	if c, ok := FindByCode(items, code); ok {
		return c.ActiveRetentionYears, true
	}
	return DefaultRetentionYears, false
}

// RetentionDate advances the document date by whole calendar years.
func RetentionDate(documentDate model.Date, years int) model.Date {
	return documentDate.AddYears(years)
}

// StatusAt derives the retention status relative to now: active while
// now is on or before the retention date, inactive after. Both sides
// compare as calendar dates.
func StatusAt(retentionDate model.Date, now time.Time) Status {
	if model.DateOf(now).After(retentionDate.Time) {
		return StatusInactive
	}
	return StatusActive
}
