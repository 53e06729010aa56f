package query

import (
	"regexp"
	"strings"

	"arsipku/internal/model"
)

// ViewMode is the listing presentation selected by a view: token.
type ViewMode string

const (
	ViewGrid  ViewMode = "grid"
	ViewTable ViewMode = "table"
)

// TopbarQuery is the structured form of a free-text topbar query.
type TopbarQuery struct {
	Search         string
	Classification string
	Status         StatusFilter
	View           ViewMode
	StartDate      model.Date
	EndDate        model.Date
}

// Token patterns scanned independently. Only the first occurrence of
// each kind is honored; klas: and kode: are the same kind.
var (
	klasToken   = regexp.MustCompile(`(?i)\b(?:klas|kode):(\S+)`)
	statusToken = regexp.MustCompile(`(?i)\bstatus:(aktif|inaktif)\b`)
	viewToken   = regexp.MustCompile(`(?i)\bview:(grid|table)\b`)
	dateToken   = regexp.MustCompile(`(?i)\bdate:(\d{4}-\d{2}-\d{2})(?:\.\.(\d{4}-\d{2}-\d{2}))?`)
)

// ParseTopbar extracts recognized tokens from a topbar query string.
// Each matched token is removed; the whitespace-collapsed remainder
// becomes the free-text search term. Unrecognized tokens stay in the
// search term. Token order does not matter.
func ParseTopbar(q string) TopbarQuery {
	var out TopbarQuery
	rest := q

	if m := klasToken.FindStringSubmatchIndex(rest); m != nil {
		out.Classification = rest[m[2]:m[3]]
		rest = rest[:m[0]] + rest[m[1]:]
	}
	if m := statusToken.FindStringSubmatchIndex(rest); m != nil {
		switch strings.ToLower(rest[m[2]:m[3]]) {
		case "aktif":
			out.Status = StatusActive
		case "inaktif":
			out.Status = StatusInactive
		}
		rest = rest[:m[0]] + rest[m[1]:]
	}
	if m := viewToken.FindStringSubmatchIndex(rest); m != nil {
		out.View = ViewMode(strings.ToLower(rest[m[2]:m[3]]))
		rest = rest[:m[0]] + rest[m[1]:]
	}
	if m := dateToken.FindStringSubmatchIndex(rest); m != nil {
		if d, err := model.ParseDate(rest[m[2]:m[3]]); err == nil {
			out.StartDate = d
		}
		if m[4] >= 0 {
			if d, err := model.ParseDate(rest[m[4]:m[5]]); err == nil {
				out.EndDate = d
			}
		}
		rest = rest[:m[0]] + rest[m[1]:]
	}

	out.Search = strings.Join(strings.Fields(rest), " ")
	return out
}

// Filter converts the parsed query into an engine Filter. The view
// mode is presentation state and does not participate.
func (q TopbarQuery) Filter() Filter {
	status := q.Status
	if status == "" {
		status = StatusAll
	}
	return Filter{
		Search:         q.Search,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
		Status:         status,
		Classification: q.Classification,
	}
}
