package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"arsipku/internal/model"
)

func newTestDB(t *testing.T) *ArchiveRepo {
	t.Helper()
	db, err := New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewArchiveRepo(db)
}

func testRecord(id, docNumber, subject string) model.Archive {
	return model.Archive{
		ID:             id,
		DocumentNumber: docNumber,
		DocumentDate:   model.NewDate(2024, time.January, 10),
		Subject:        subject,
		RetentionDate:  model.NewDate(2029, time.January, 10),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func TestArchiveRepo_InsertAndGet(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	rec := testRecord("a1", "001.1/23/2024", "Surat Undangan")
	rec.Sender = "Dinas"
	rec.ClassificationCode = "001.1"
	rec.Notes = "## Catatan\nRapat tahunan."

	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Subject != rec.Subject || got.DocumentNumber != rec.DocumentNumber {
		t.Errorf("GetByID() = %+v", got)
	}
	if got.DocumentDate.String() != "2024-01-10" || got.RetentionDate.String() != "2029-01-10" {
		t.Errorf("dates round-trip failed: %s / %s", got.DocumentDate, got.RetentionDate)
	}
	if got.Notes != rec.Notes || got.ClassificationCode != "001.1" {
		t.Errorf("fields round-trip failed: %+v", got)
	}
}

func TestArchiveRepo_GetByID_NotFound(t *testing.T) {
	repo := newTestDB(t)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestArchiveRepo_Insert_DuplicateDocumentNumber(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, testRecord("a1", "001/23/2024", "first")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := repo.Insert(ctx, testRecord("a2", "001/23/2024", "second"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Insert() error = %v, want ErrDuplicate", err)
	}

	// Empty document numbers never collide.
	if err := repo.Insert(ctx, testRecord("a3", "", "third")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := repo.Insert(ctx, testRecord("a4", "", "fourth")); err != nil {
		t.Errorf("Insert() two empty document numbers error = %v", err)
	}
}

func TestArchiveRepo_FindDuplicate(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	withNumber := testRecord("a1", "005/01/2024", "Laporan")
	noNumber := testRecord("a2", "", "Nota Dinas")
	if err := repo.Insert(ctx, withNumber); err != nil {
		t.Fatal(err)
	}
	if err := repo.Insert(ctx, noNumber); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		docNumber string
		subject   string
		date      model.Date
		wantFound bool
		wantID    string
	}{
		{"by document number", "005/01/2024", "anything", model.NewDate(2020, 1, 1), true, "a1"},
		{"no number, subject+date match", "", "Nota Dinas", model.NewDate(2024, time.January, 10), true, "a2"},
		{"no number, subject differs", "", "Nota Lain", model.NewDate(2024, time.January, 10), false, ""},
		{"no number, date differs", "", "Nota Dinas", model.NewDate(2024, time.February, 10), false, ""},
		{"unknown number", "999/99/9999", "x", model.Date{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := repo.FindDuplicate(ctx, tt.docNumber, tt.subject, tt.date)
			if err != nil {
				t.Fatalf("FindDuplicate() error = %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("FindDuplicate() found = %v, want %v", found, tt.wantFound)
			}
			if found && got.ID != tt.wantID {
				t.Errorf("FindDuplicate() id = %s, want %s", got.ID, tt.wantID)
			}
		})
	}
}

func TestArchiveRepo_Update(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	rec := testRecord("a1", "001/23", "before")
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatal(err)
	}

	rec.Subject = "after"
	rec.RetentionDate = model.NewDate(2031, time.January, 10)
	rec.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Subject != "after" || got.RetentionDate.String() != "2031-01-10" {
		t.Errorf("Update() result = %+v", got)
	}

	missing := testRecord("ghost", "", "x")
	if err := repo.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() missing error = %v, want ErrNotFound", err)
	}
}

func TestArchiveRepo_Delete(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, testRecord("a1", "", "x")); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, "a1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, "a1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("record still present after delete")
	}
	if err := repo.Delete(ctx, "a1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() missing error = %v, want ErrNotFound", err)
	}
}

func TestArchiveRepo_List_OrderedByDocumentDateDesc(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	old := testRecord("a-old", "", "old")
	old.DocumentDate = model.NewDate(2020, time.May, 1)
	mid := testRecord("a-mid", "", "mid")
	mid.DocumentDate = model.NewDate(2022, time.May, 1)
	newest := testRecord("a-new", "", "new")
	newest.DocumentDate = model.NewDate(2024, time.May, 1)

	for _, rec := range []model.Archive{mid, newest, old} {
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"a-new", "a-mid", "a-old"}
	if len(got) != len(want) {
		t.Fatalf("List() = %d records, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("List() order[%d] = %s, want %s", i, got[i].ID, w)
		}
	}
}
