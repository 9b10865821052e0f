package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/catalog"
	"github.com/umaima-fareed13/libman/internal/tui"
)

func newListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the books in your catalog (interactive TUI or text output)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := catalog.Filter{Query: query}.Apply(sess.Books())

			if len(books) == 0 {
				warn("No books found. Add books to your collection!")
				return nil
			}

			if tui.ShouldUseTUI(cmd) {
				items := bookItems(books)
				_, err := tui.RunBookPicker(items, "Library Collection")
				if err != nil && err.Error() == "canceled by user" {
					return nil
				}
				return err
			}

			printBooks(books)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Only show books matching title or author")
	return cmd
}

// printBooks renders books as plain text, one block per record.
func printBooks(books []catalog.Book) {
	for _, b := range books {
		header("%s", b.Title)
		printField("author", b.Author)
		printField("year", b.Year)
		printField("genre", b.Genre)
		printField("read", readMark(b.Read))
		if _, found := coversMgr.Resolve(b.Image); found {
			printField("cover", b.Image)
		}
		fmt.Println()
	}
}

func readMark(read bool) string {
	if read {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// bookItems converts the working set into TUI list items, marking records
// whose cover file is still resolvable.
func bookItems(books []catalog.Book) []tui.BookItem {
	items := make([]tui.BookItem, len(books))
	for i, b := range books {
		_, hasCover := coversMgr.Resolve(b.Image)
		items[i] = tui.BookItem{Book: b, HasCover: hasCover}
	}
	return items
}
