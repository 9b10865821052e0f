package app

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

func newAddCmd() *cobra.Command {
	var (
		title     string
		author    string
		year      string
		genre     string
		read      bool
		coverPath string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to your catalog",
		Long: `Add a book record. Title, author, year and genre are required; missing
flags are prompted for on a terminal. A cover image file is copied into the
covers folder and referenced by the record.

Examples:
  libman add --title "1984" --author "Orwell" --year 1949 --genre Dystopian --read
  libman add --title "Dune" --author "Herbert" --year 1965 --genre "Sci-Fi" --cover ~/dune.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				title = prompt("Title")
			}
			if author == "" {
				author = prompt("Author")
			}
			if year == "" {
				year = prompt("Year")
			}
			if genre == "" {
				genre = prompt("Genre")
			}

			image := ""
			if coverPath != "" {
				rel, err := coversMgr.StoreFile(coverPath)
				if err != nil {
					return fmt.Errorf("sideloading cover: %w", err)
				}
				image = rel
			}

			book, err := addBook(catalog.Fields{
				Title:  title,
				Author: author,
				Year:   year,
				Genre:  genre,
				Read:   read,
				Image:  image,
			})
			if err != nil {
				var verr *catalog.ValidationError
				if errors.As(err, &verr) {
					return fmt.Errorf("please fill in all fields: %w", err)
				}
				return err
			}

			ok("%s added to the library", book.Title)
			printField("id", fmt.Sprintf("%d", book.ID))
			printField("owner", book.OwnerID)
			if book.Image != "" {
				printField("cover", book.Image)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&year, "year", "", "Publication year")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().BoolVar(&read, "read", false, "Mark the book as read")
	cmd.Flags().StringVar(&coverPath, "cover", "", "Path to a cover image to sideload")

	return cmd
}

// addBook writes the record through the store and, only on success, patches
// the working set to match. A failed write leaves the cache untouched.
func addBook(fields catalog.Fields) (catalog.Book, error) {
	book, err := st.Create(sess.Identity(), fields)
	if err != nil {
		return catalog.Book{}, err
	}
	sess.Add(book)
	return book, nil
}

// removeBooks deletes every record with the given title, then mirrors the
// multi-match delete into the working set.
func removeBooks(title string) (int64, error) {
	n, err := st.DeleteByOwnerAndTitle(sess.Identity(), title)
	if err != nil {
		return 0, err
	}
	sess.Remove(title)
	return n, nil
}

// prompt reads a line from stdin.
func prompt(label string) string {
	fmt.Printf("%s: ", label)
	sc := bufio.NewScanner(os.Stdin)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text())
	}
	return ""
}
