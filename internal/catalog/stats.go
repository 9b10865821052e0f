package catalog

// Summary holds aggregate reading statistics for a set of books.
type Summary struct {
	Total          int
	Read           int
	ReadPercentage float64
}

// Stats computes totals over books. An empty set yields all zeroes rather
// than a division error.
func Stats(books []Book) Summary {
	s := Summary{Total: len(books)}
	for _, b := range books {
		if b.Read {
			s.Read++
		}
	}
	if s.Total > 0 {
		s.ReadPercentage = float64(s.Read) / float64(s.Total) * 100
	}
	return s
}
