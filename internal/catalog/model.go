package catalog

// Book is one record in the library. ID and OwnerID are assigned by the
// record store; everything else comes from user input.
type Book struct {
	ID      int64  `yaml:"-"`
	OwnerID string `yaml:"-"`
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Year    string `yaml:"year"`
	Genre   string `yaml:"genre"`
	Read    bool   `yaml:"read"`
	Image   string `yaml:"image,omitempty"`
}

// Fields is the payload for creating a record. Title, Author, Year and Genre
// are required; Read defaults to false; Image is an optional relative path to
// a sideloaded cover.
type Fields struct {
	Title  string
	Author string
	Year   string
	Genre  string
	Read   bool
	Image  string
}

// Book converts fields into a record without an assigned ID.
func (f Fields) Book() Book {
	return Book{
		Title:  f.Title,
		Author: f.Author,
		Year:   f.Year,
		Genre:  f.Genre,
		Read:   f.Read,
		Image:  f.Image,
	}
}
