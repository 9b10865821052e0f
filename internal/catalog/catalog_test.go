package catalog_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

var sampleBooks = []catalog.Book{
	{ID: 1, Title: "1984", Author: "George Orwell", Year: "1949", Genre: "Dystopian", Read: true},
	{ID: 2, Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Sci-Fi"},
	{ID: 3, Title: "Dune Messiah", Author: "Frank Herbert", Year: "1969", Genre: "Sci-Fi", Image: "images/messiah.jpg"},
}

// --- Validate ---

func TestValidate_AllFieldsPresent(t *testing.T) {
	f := catalog.Fields{Title: "1984", Author: "Orwell", Year: "1949", Genre: "Dystopian"}
	if err := f.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*catalog.Fields)
	}{
		{"title", func(f *catalog.Fields) { f.Title = "" }},
		{"author", func(f *catalog.Fields) { f.Author = "" }},
		{"year", func(f *catalog.Fields) { f.Year = "" }},
		{"genre", func(f *catalog.Fields) { f.Genre = "" }},
	}
	for _, c := range cases {
		f := catalog.Fields{Title: "T", Author: "A", Year: "Y", Genre: "G"}
		c.mutate(&f)
		err := f.Validate()
		var verr *catalog.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", c.name, err)
			continue
		}
		if verr.Field != c.name {
			t.Errorf("Field = %q, want %q", verr.Field, c.name)
		}
	}
}

func TestValidate_ReadAndImageOptional(t *testing.T) {
	f := catalog.Fields{Title: "T", Author: "A", Year: "Y", Genre: "G", Read: false, Image: ""}
	if err := f.Validate(); err != nil {
		t.Errorf("optional fields caused failure: %v", err)
	}
}

// --- Filter ---

func TestFilter_ByTitle(t *testing.T) {
	result := catalog.Filter{Query: "dune"}.Apply(sampleBooks)
	if len(result) != 2 {
		t.Errorf("title search: expected 2, got %d", len(result))
	}
}

func TestFilter_ByAuthor(t *testing.T) {
	result := catalog.Filter{Query: "orwell"}.Apply(sampleBooks)
	if len(result) != 1 || result[0].Title != "1984" {
		t.Errorf("author search: got %v", titles(result))
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	result := catalog.Filter{Query: "HERBERT"}.Apply(sampleBooks)
	if len(result) != 2 {
		t.Errorf("case-insensitive search: expected 2, got %d", len(result))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	result := catalog.Filter{Query: "zzznomatch"}.Apply(sampleBooks)
	if len(result) != 0 {
		t.Errorf("expected 0 results, got %d", len(result))
	}
}

func TestFilter_Empty(t *testing.T) {
	result := catalog.Filter{}.Apply(sampleBooks)
	if len(result) != len(sampleBooks) {
		t.Errorf("empty filter should return all books, got %d", len(result))
	}
}

// --- ByTitle ---

func TestByTitle_MatchesAllDuplicates(t *testing.T) {
	books := append([]catalog.Book{}, sampleBooks...)
	books = append(books, catalog.Book{ID: 4, Title: "Dune", Author: "Someone Else", Year: "2000", Genre: "Sci-Fi"})

	result := catalog.ByTitle(books, "Dune")
	if len(result) != 2 {
		t.Errorf("expected 2 records titled Dune, got %d", len(result))
	}
}

func TestByTitle_ExactOnly(t *testing.T) {
	result := catalog.ByTitle(sampleBooks, "Dune")
	if len(result) != 1 || result[0].ID != 2 {
		t.Errorf("expected only the exact title, got %v", titles(result))
	}
}

// --- Stats ---

func TestStats(t *testing.T) {
	s := catalog.Stats(sampleBooks)
	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.Read != 1 {
		t.Errorf("Read = %d, want 1", s.Read)
	}
	if s.ReadPercentage < 33.3 || s.ReadPercentage > 33.4 {
		t.Errorf("ReadPercentage = %f, want ≈33.33", s.ReadPercentage)
	}
}

func TestStats_EmptyIsZeroNotDivisionError(t *testing.T) {
	s := catalog.Stats(nil)
	if s.Total != 0 || s.Read != 0 || s.ReadPercentage != 0 {
		t.Errorf("empty stats = %+v, want all zero", s)
	}
}

func TestStats_AllRead(t *testing.T) {
	books := []catalog.Book{
		{Title: "A", Read: true},
		{Title: "B", Read: true},
	}
	s := catalog.Stats(books)
	if s.ReadPercentage != 100 {
		t.Errorf("ReadPercentage = %f, want 100", s.ReadPercentage)
	}
}

// --- Marshal / Parse round-trip ---

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := catalog.Marshal(sampleBooks)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	books, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(books) != len(sampleBooks) {
		t.Fatalf("round-trip length: got %d, want %d", len(books), len(sampleBooks))
	}
	for i := range books {
		if books[i].Title != sampleBooks[i].Title {
			t.Errorf("[%d] Title = %q, want %q", i, books[i].Title, sampleBooks[i].Title)
		}
		if books[i].Read != sampleBooks[i].Read {
			t.Errorf("[%d] Read mismatch", i)
		}
		if books[i].Image != sampleBooks[i].Image {
			t.Errorf("[%d] Image mismatch", i)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	books, err := catalog.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected 0 books, got %d", len(books))
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := catalog.Parse([]byte(":: bad yaml ["))
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	books, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected 0 books, got %d", len(books))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yml")
	if err := catalog.Save(path, sampleBooks); err != nil {
		t.Fatalf("Save: %v", err)
	}
	books, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(books) != len(sampleBooks) {
		t.Errorf("round-trip length: got %d, want %d", len(books), len(sampleBooks))
	}
}

func titles(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}
