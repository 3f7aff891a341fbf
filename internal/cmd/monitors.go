package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bcmister/mondpi/internal/dpi"
	"github.com/bcmister/mondpi/internal/logview"
	"github.com/bcmister/mondpi/internal/monitor"
	"github.com/bcmister/mondpi/internal/ui"
)

var (
	monitorsYAML bool
	monitorsLog  bool

	// monitorPlatform is swapped out by tests.
	monitorPlatform = monitor.System
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List detected monitors with their DPI on the console",
	Args:  cobra.NoArgs,
	RunE:  runMonitors,
}

func init() {
	monitorsCmd.Flags().BoolVar(&monitorsYAML, "yaml", false, "print the monitors as YAML")
	monitorsCmd.Flags().BoolVar(&monitorsLog, "log", false, "print the monitor blocks exactly as the window log shows them")
}

func runMonitors(cmd *cobra.Command, args []string) error {
	// Without per-monitor awareness every monitor reports the system DPI.
	if err := dpi.SetProcessAwareness(dpi.DefaultProcessAwareness); err != nil {
		slog.Debug("could not set process DPI awareness", "err", err)
	}

	p := monitorPlatform()
	out := cmd.OutOrStdout()
	if monitorsLog {
		return writeLog(out, p)
	}

	monitors, err := monitor.Detect(p)
	if err != nil {
		return fmt.Errorf("failed to detect monitors: %w", err)
	}
	if monitorsYAML {
		return monitor.WriteYAML(out, monitors)
	}

	primary, err := monitor.Primary(monitors)
	if err != nil {
		return err
	}

	con := ui.New(out)
	con.Head(fmt.Sprintf("Detected %d monitors", len(monitors)))
	fmt.Fprintln(out)

	for _, m := range monitors {
		badge := ""
		if m.Index == primary.Index {
			badge = "Primary"
		}
		con.Panel(fmt.Sprintf("Monitor %d", m.Index), badge,
			ui.Field("Device", m.Device),
			ui.Field("Bounds", m.Bounds.String()),
			ui.Field("Size", fmt.Sprintf("%d × %d", m.Bounds.Width(), m.Bounds.Height())),
			ui.Field("Work", m.Work.String()),
			ui.Field("DPI", fmt.Sprintf("%d,%d", m.DPIX, m.DPIY)),
			ui.Field("Scaling", fmt.Sprintf("%d%%", m.Scale())),
		)
		if m.DPIX == 0 {
			con.Warn("DPI query failed for this monitor")
		}
	}

	fmt.Fprintln(out)
	return nil
}

// writeLog renders the report through the same Log the window writes to.
func writeLog(w io.Writer, p monitor.Platform) error {
	buf := &logview.Buffer{}
	log := logview.New(buf)
	log.Printf("Number of monitors = %d\n\n", p.Count())
	if err := monitor.Report(p, log); err != nil {
		return fmt.Errorf("failed to detect monitors: %w", err)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
