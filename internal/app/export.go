package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session's books to a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := sess.Books()
			if err := catalog.Save(out, books); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			ok("Exported %d book(s) to %s", len(books), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "library.yml", "Output file")
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import books from a YAML export into this session",
		Long: `Import book records from a file written by 'libman export'. Each entry is
validated and written through the record store under this session's identity.
No duplicate check is performed; importing the same file twice creates the
records twice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			if len(books) == 0 {
				warn("Nothing to import.")
				return nil
			}

			imported := 0
			for _, b := range books {
				_, err := addBook(catalog.Fields{
					Title:  b.Title,
					Author: b.Author,
					Year:   b.Year,
					Genre:  b.Genre,
					Read:   b.Read,
					Image:  b.Image,
				})
				if err != nil {
					var verr *catalog.ValidationError
					if errors.As(err, &verr) {
						warn("Skipping %q: %v", b.Title, err)
						continue
					}
					return err
				}
				imported++
			}
			ok("Imported %d of %d book(s)", imported, len(books))
			return nil
		},
	}
	return cmd
}
