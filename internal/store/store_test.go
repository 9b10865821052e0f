package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/umaima-fareed13/libman/internal/catalog"
	"github.com/umaima-fareed13/libman/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func fields(title string) catalog.Fields {
	return catalog.Fields{
		Title:  title,
		Author: "Author",
		Year:   "2000",
		Genre:  "Fiction",
	}
}

func TestCreate_AssignsIncreasingIDs(t *testing.T) {
	s := openTestStore(t)

	a, err := s.Create("u1", fields("A"))
	if err != nil {
		t.Fatalf("Create A: %v", err)
	}
	b, err := s.Create("u1", fields("B"))
	if err != nil {
		t.Fatalf("Create B: %v", err)
	}
	if a.ID <= 0 {
		t.Errorf("first ID = %d, want > 0", a.ID)
	}
	if b.ID <= a.ID {
		t.Errorf("IDs not increasing: %d then %d", a.ID, b.ID)
	}
	if a.OwnerID != "u1" {
		t.Errorf("OwnerID = %q, want %q", a.OwnerID, "u1")
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := catalog.Fields{
		Title:  "1984",
		Author: "Orwell",
		Year:   "1949",
		Genre:  "Dystopian",
		Read:   true,
	}
	created, err := s.Create("u1", want)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	books, err := s.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	got := books[0]
	if got.ID != created.ID {
		t.Errorf("ID = %d, want %d", got.ID, created.ID)
	}
	if got.Title != "1984" || got.Author != "Orwell" || got.Year != "1949" || got.Genre != "Dystopian" {
		t.Errorf("fields mismatch: %+v", got)
	}
	if !got.Read {
		t.Error("Read = false, want true")
	}
	if got.Image != "" {
		t.Errorf("Image = %q, want empty", got.Image)
	}
}

func TestCreate_RequiredFieldMissing(t *testing.T) {
	s := openTestStore(t)

	f := fields("X")
	f.Genre = ""
	_, err := s.Create("u1", f)
	var verr *catalog.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "genre" {
		t.Errorf("Field = %q, want %q", verr.Field, "genre")
	}

	// Nothing must have been written.
	books, err := s.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected 0 books after failed create, got %d", len(books))
	}
}

func TestListByOwner_Isolation(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Create("u1", fields("Mine")); err != nil {
		t.Fatalf("Create u1: %v", err)
	}
	if _, err := s.Create("u2", fields("Theirs")); err != nil {
		t.Fatalf("Create u2: %v", err)
	}

	books, err := s.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book for u1, got %d", len(books))
	}
	if books[0].Title != "Mine" {
		t.Errorf("u1 sees %q, want %q", books[0].Title, "Mine")
	}
}

func TestListByOwner_EmptyOwner(t *testing.T) {
	s := openTestStore(t)

	books, err := s.ListByOwner("nobody")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected empty slice, got %d books", len(books))
	}
}

func TestListByOwner_InsertionOrder(t *testing.T) {
	s := openTestStore(t)

	titles := []string{"C", "A", "B"}
	for _, title := range titles {
		if _, err := s.Create("u1", fields(title)); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}

	books, err := s.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	for i, title := range titles {
		if books[i].Title != title {
			t.Errorf("books[%d].Title = %q, want %q", i, books[i].Title, title)
		}
	}
}

// Delete by title removes every same-titled record for an owner. That matches
// the delete flow, which addresses records by title alone; the test pins the
// behavior so it is not "fixed" by accident.
func TestDelete_MultiMatch(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Create("u1", fields("Dune")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create("u1", fields("Dune")); err != nil {
		t.Fatalf("Create duplicate: %v", err)
	}
	if _, err := s.Create("u1", fields("Other")); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	n, err := s.DeleteByOwnerAndTitle("u1", "Dune")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted count = %d, want 2", n)
	}

	books, err := s.ListByOwner("u1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Other" {
		t.Errorf("remaining books = %+v, want only Other", books)
	}
}

func TestDelete_NoMatchIsNotAnError(t *testing.T) {
	s := openTestStore(t)

	n, err := s.DeleteByOwnerAndTitle("u1", "Missing")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted count = %d, want 0", n)
	}
}

func TestDelete_DoesNotCrossOwners(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Create("u1", fields("Shared Title")); err != nil {
		t.Fatalf("Create u1: %v", err)
	}
	if _, err := s.Create("u2", fields("Shared Title")); err != nil {
		t.Fatalf("Create u2: %v", err)
	}

	n, err := s.DeleteByOwnerAndTitle("u1", "Shared Title")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count = %d, want 1", n)
	}

	books, err := s.ListByOwner("u2")
	if err != nil {
		t.Fatalf("ListByOwner u2: %v", err)
	}
	if len(books) != 1 {
		t.Errorf("u2's record was deleted across owners")
	}
}

func TestInit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.db")

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if _, err := s.Create("u1", fields("Persisted")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen and re-init several times: existing rows must survive.
	for i := 0; i < 3; i++ {
		s, err = store.Open(path)
		if err != nil {
			t.Fatalf("reopen %d: %v", i, err)
		}
		if err := s.Init(); err != nil {
			t.Fatalf("re-Init %d: %v", i, err)
		}
		books, err := s.ListByOwner("u1")
		if err != nil {
			t.Fatalf("ListByOwner: %v", err)
		}
		if len(books) != 1 || books[0].Title != "Persisted" {
			t.Fatalf("rows lost after re-Init %d: %+v", i, books)
		}
		_ = s.Close()
	}
}
