package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bcmister/mondpi/internal/config"
	"github.com/bcmister/mondpi/internal/ui"
	"github.com/bcmister/mondpi/internal/window"
)

const Version = "v0.1.0"

var (
	opts = config.Default()

	// runWindow is swapped out by tests.
	runWindow = window.Run
)

var rootCmd = &cobra.Command{
	Use:              "mondpi",
	Short:            "Show monitor geometry, work area and DPI scaling in a window",
	Args:             cobra.ArbitraryArgs,
	SilenceUsage:     true,
	PersistentPreRun: setupLogging,
	RunE:             runRoot,
}

// ExitCode maps the result of Execute to the process exit status. Failed
// initialization still exits 0 once its dialog is shown, unless the window
// itself could not be created.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, window.ErrCreate):
		return 1
	case errors.Is(err, window.ErrInit):
		return 0
	}
	return 1
}

// Execute runs the command line in os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	opts = config.Default()

	// Windows-style "-flag value" arguments are normalized before cobra sees
	// them; anything left over is reported once in a warning dialog.
	if !isCommandInvocation(args) {
		canonical, unrecognized := config.NormalizeArgs(args)
		opts.Unrecognized = unrecognized
		args = canonical
	}

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	opts.BindFlags(rootCmd.Flags())
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(versionCmd)
}

func isCommandInvocation(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help", "completion", "-h", "--help":
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == args[0] || c.HasAlias(args[0]) {
			return true
		}
	}
	return false
}

func runRoot(cmd *cobra.Command, args []string) error {
	slog.Info("starting",
		"awareness", opts.Awareness,
		"process", opts.ProcessName,
		"unrecognized", len(opts.Unrecognized))
	return runWindow(opts)
}

func setupLogging(cmd *cobra.Command, args []string) {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "\n %s%s%s %s%s%s %s%s monitor DPI diagnostics%s\n\n",
			ui.BrCyan+ui.Bold, rootCmd.Name(), ui.Reset,
			ui.BrWhite, Version, ui.Reset,
			ui.DkGray, ui.Dot, ui.Reset)
	},
}
