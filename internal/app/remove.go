package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/tui"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [title]",
		Aliases: []string{"rm"},
		Short:   "Remove a book by title",
		Long: `Remove every record whose title matches exactly. Titles are not unique,
so removing "Dune" removes all records titled "Dune" owned by this session.

With no argument on a terminal, an interactive picker is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			if len(args) == 1 {
				title = args[0]
			} else {
				if !tui.ShouldUseTUI(cmd) {
					return fmt.Errorf("a title is required in non-interactive mode")
				}
				books := sess.Books()
				if len(books) == 0 {
					warn("No books to remove.")
					return nil
				}
				item, err := tui.RunBookPicker(bookItems(books), "Select a book to remove")
				if err != nil {
					if err.Error() == "canceled by user" {
						return nil
					}
					return err
				}
				title = item.Book.Title
			}

			n, err := removeBooks(title)
			if err != nil {
				return err
			}
			if n == 0 {
				warn("No books titled %q found.", title)
				return nil
			}
			ok("%s removed from the library (%d record(s))", title, n)
			return nil
		},
	}
	return cmd
}
