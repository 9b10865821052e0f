package catalog

import "fmt"

// ValidationError reports a required field that was left empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

// Validate checks that every required field is non-empty. It is the single
// authoritative presence check; callers that collect input do not re-implement
// it. Read and Image are optional.
func (f Fields) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", f.Title},
		{"author", f.Author},
		{"year", f.Year},
		{"genre", f.Genre},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.name}
		}
	}
	return nil
}
