// Package query implements the client-side search/filter/sort engine
// over in-memory archive lists: text search, date-range and status
// filters, classification-prefix filtering, stable sorting and
// fixed-size pagination, plus the topbar free-text query parser.
package query

import (
	"sort"
	"strings"
	"time"

	"arsipku/internal/classification"
	"arsipku/internal/model"
)

// PageSize is the fixed page size of archive listings.
const PageSize = 15

// StatusFilter selects records by derived retention status.
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// SortKey names a sortable archive field.
type SortKey string

const (
	SortBySubject        SortKey = "subject"
	SortByDocumentNumber SortKey = "documentNumber"
	SortByDocumentDate   SortKey = "documentDate"
	SortByRetentionDate  SortKey = "retentionDate"
	SortByStatus         SortKey = "status"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Filter holds every knob of the search/filter/sort engine. Zero
// values mean "not applied": empty search, zero dates, empty or "all"
// status and classification.
type Filter struct {
	Search         string
	StartDate      model.Date
	EndDate        model.Date
	Status         StatusFilter
	Classification string
	SortKey        SortKey
	SortOrder      SortOrder
}

// Apply filters and sorts archives. It is a pure function: the input
// slice is never mutated and applying the same filter twice yields the
// same result. classifications are consulted for description search
// and may be nil. now anchors the derived status.
func Apply(archives []model.Archive, classifications []model.Classification, f Filter, now time.Time) []model.Archive {
	descByCode := make(map[string]string, len(classifications))
	for _, c := range classifications {
		descByCode[c.Code] = c.Description
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Archive, 0, len(archives))
	for _, a := range archives {
		if !matchesSearch(a, search, descByCode) {
			continue
		}
		if !f.StartDate.IsZero() && a.DocumentDate.Before(f.StartDate.Time) {
			continue
		}
		if !f.EndDate.IsZero() && a.DocumentDate.After(f.EndDate.Time) {
			continue
		}
		if !matchesStatus(a, f.Status, now) {
			continue
		}
		if !matchesClassification(a, f.Classification) {
			continue
		}
		out = append(out, a)
	}

	sortArchives(out, f.SortKey, f.SortOrder, now)
	return out
}

func matchesSearch(a model.Archive, search string, descByCode map[string]string) bool {
	if search == "" {
		return true
	}
	fields := []string{
		a.Subject,
		a.DocumentNumber,
		a.Recipient,
		a.Sender,
		descByCode[a.ClassificationCode],
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func matchesStatus(a model.Archive, status StatusFilter, now time.Time) bool {
	switch status {
	case "", StatusAll:
		return true
	case StatusActive:
		return classification.StatusAt(a.RetentionDate, now) == classification.StatusActive
	case StatusInactive:
		return classification.StatusAt(a.RetentionDate, now) == classification.StatusInactive
	}
	return true
}

func matchesClassification(a model.Archive, filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	// Prefix match so a main category includes all descendants.
	return strings.HasPrefix(a.ClassificationCode, filter)
}

// sortArchives sorts in place, stably, so equal keys keep input order.
func sortArchives(items []model.Archive, key SortKey, order SortOrder, now time.Time) {
	if key == "" {
		return
	}
	desc := order == Descending
	sort.SliceStable(items, func(i, j int) bool {
		c := compareByKey(items[i], items[j], key, now)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareByKey(a, b model.Archive, key SortKey, now time.Time) int {
	switch key {
	case SortBySubject:
		return strings.Compare(strings.ToLower(a.Subject), strings.ToLower(b.Subject))
	case SortByDocumentNumber:
		return strings.Compare(strings.ToLower(a.DocumentNumber), strings.ToLower(b.DocumentNumber))
	case SortByDocumentDate:
		return a.DocumentDate.Compare(b.DocumentDate.Time)
	case SortByRetentionDate:
		return a.RetentionDate.Compare(b.RetentionDate.Time)
	case SortByStatus:
		sa := string(classification.StatusAt(a.RetentionDate, now))
		sb := string(classification.StatusAt(b.RetentionDate, now))
		return strings.Compare(sa, sb)
	}
	return 0
}

// Paginate slices items into the given 1-based page. Total pages is
// at least 1 even for an empty result.
func Paginate(items []model.Archive, page, pageSize int) (pageItems []model.Archive, totalPages int) {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	totalPages = (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		return nil, totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
