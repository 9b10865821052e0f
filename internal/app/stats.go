package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/catalog"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := catalog.Stats(sess.Books())
			header("Library Statistics")
			printField("total", fmt.Sprintf("%d", s.Total))
			printField("read", fmt.Sprintf("%d", s.Read))
			printField("percent", fmt.Sprintf("%.2f%%", s.ReadPercentage))
			return nil
		},
	}
}
