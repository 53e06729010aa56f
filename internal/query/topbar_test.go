package query

import (
	"testing"
	"time"

	"arsipku/internal/model"
)

func TestParseTopbar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TopbarQuery
	}{
		{
			name: "plain search term",
			in:   "surat undangan",
			want: TopbarQuery{Search: "surat undangan"},
		},
		{
			name: "klas token",
			in:   "klas:001.1 rapat",
			want: TopbarQuery{Search: "rapat", Classification: "001.1"},
		},
		{
			name: "kode is same kind as klas",
			in:   "kode:002 laporan",
			want: TopbarQuery{Search: "laporan", Classification: "002"},
		},
		{
			name: "first occurrence wins",
			in:   "klas:001 kode:002",
			want: TopbarQuery{Search: "kode:002", Classification: "001"},
		},
		{
			name: "status aktif",
			in:   "status:aktif",
			want: TopbarQuery{Status: StatusActive},
		},
		{
			name: "status inaktif",
			in:   "status:inaktif surat",
			want: TopbarQuery{Search: "surat", Status: StatusInactive},
		},
		{
			name: "view token",
			in:   "view:table",
			want: TopbarQuery{View: ViewTable},
		},
		{
			name: "single date",
			in:   "date:2024-01-10",
			want: TopbarQuery{StartDate: model.NewDate(2024, time.January, 10)},
		},
		{
			name: "date range",
			in:   "date:2024-01-01..2024-12-31 surat",
			want: TopbarQuery{
				Search:    "surat",
				StartDate: model.NewDate(2024, time.January, 1),
				EndDate:   model.NewDate(2024, time.December, 31),
			},
		},
		{
			name: "token order does not matter",
			in:   "rapat status:aktif klas:001 dinas",
			want: TopbarQuery{Search: "rapat dinas", Status: StatusActive, Classification: "001"},
		},
		{
			name: "unrecognized token stays in search",
			in:   "foo:bar surat",
			want: TopbarQuery{Search: "foo:bar surat"},
		},
		{
			name: "invalid status value stays in search",
			in:   "status:semua surat",
			want: TopbarQuery{Search: "status:semua surat"},
		},
		{
			name: "everything at once",
			in:   "view:grid klas:001.1 date:2024-01-01..2024-06-30 status:inaktif undangan",
			want: TopbarQuery{
				Search:         "undangan",
				Classification: "001.1",
				Status:         StatusInactive,
				View:           ViewGrid,
				StartDate:      model.NewDate(2024, time.January, 1),
				EndDate:        model.NewDate(2024, time.June, 30),
			},
		},
		{
			name: "empty input",
			in:   "",
			want: TopbarQuery{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTopbar(tt.in)
			if got != tt.want {
				t.Errorf("ParseTopbar(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTopbarQuery_Filter(t *testing.T) {
	q := ParseTopbar("klas:001 surat")
	f := q.Filter()

	if f.Search != "surat" || f.Classification != "001" {
		t.Errorf("Filter() = %+v", f)
	}
	if f.Status != StatusAll {
		t.Errorf("Filter() status = %q, want %q when unset", f.Status, StatusAll)
	}
}
