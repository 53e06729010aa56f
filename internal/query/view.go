package query

import (
	"time"

	"arsipku/internal/model"
)

// View tracks the current filter and page of an archive listing.
// Changing any filter, sort key or sort order resets the page to 1.
type View struct {
	filter   Filter
	page     int
	pageSize int
}

// NewView returns a View on page 1 with the default page size.
func NewView() *View {
	return &View{page: 1, pageSize: PageSize}
}

// Filter returns the current filter.
func (v *View) Filter() Filter { return v.filter }

// Page returns the current 1-based page.
func (v *View) Page() int { return v.page }

// SetFilter replaces the filter. Any change resets the page to 1.
func (v *View) SetFilter(f Filter) {
	if f != v.filter {
		v.page = 1
	}
	v.filter = f
}

// SetPage moves to the given page. Values below 1 clamp to 1.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Apply runs the filter over archives and returns the current page.
func (v *View) Apply(archives []model.Archive, classifications []model.Classification, now time.Time) (pageItems []model.Archive, totalPages int) {
	filtered := Apply(archives, classifications, v.filter, now)
	return Paginate(filtered, v.page, v.pageSize)
}
