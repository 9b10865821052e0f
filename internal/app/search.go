package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search books by title or author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := catalog.Filter{Query: args[0]}.Apply(sess.Books())
			if len(results) == 0 {
				warn("No matching books found.")
				return nil
			}
			for _, b := range results {
				fmt.Printf("%s by %s (%s) - %s [%s]\n",
					b.Title, b.Author, b.Year, b.Genre, readMark(b.Read))
			}
			return nil
		},
	}
}
