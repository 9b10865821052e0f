package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/umaima-fareed13/libman/internal/config"
	"github.com/umaima-fareed13/libman/internal/covers"
	"github.com/umaima-fareed13/libman/internal/session"
	"github.com/umaima-fareed13/libman/internal/store"
	"github.com/umaima-fareed13/libman/internal/tui"
	"github.com/umaima-fareed13/libman/internal/util"
)

var (
	cfg       *config.Config
	st        *store.Store
	coversMgr *covers.Manager
	sess      *session.Context

	flagNoColor       bool
	flagNoInteractive bool
	flagOwner         string
	flagLogLevel      string
)

var appVersion = "dev"

// SetVersion records the build version shown by the version command.
func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "libman",
	Short: "Manage a personal book catalog backed by a local SQLite database",
	Long: `libman keeps a personal catalog of books (title, author, year, genre,
read status and an optional cover image) in a local SQLite database.

Records are partitioned by an anonymous session identity: each run mints a
fresh identity unless one is pinned with --owner, LIBMAN_SESSION_OWNER, or
the config file.

Run 'libman' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		if st != nil {
			_ = st.Close()
		}
		os.Exit(1)
	}
	if st != nil {
		_ = st.Close()
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "", "Pin the session identity (default: mint a fresh one)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)
		initLogging(flagLogLevel)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		st, err = store.Open(cfg.Database.Path)
		if err != nil {
			return err
		}
		if err := st.Init(); err != nil {
			return err
		}

		coversMgr = covers.New(cfg.Covers.Dir)

		owner := flagOwner
		if owner == "" {
			owner = cfg.Session.Owner
		}
		sess = session.NewContext(owner)
		return sess.Load(st)
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newRemoveCmd(),
		newSearchCmd(),
		newStatsCmd(),
		newExportCmd(),
		newImportCmd(),
		newVersionCmd(),
	)
}

// initLogging installs a tint slog handler on stderr at the requested level.
func initLogging(level string) {
	ll := slog.LevelWarn
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "error":
		ll = slog.LevelError
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   ll,
		NoColor: flagNoColor || !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// printField prints an aligned key: value line.
func printField(name, value string) {
	fmt.Printf("  %-8s %s\n", name+":", value)
}
