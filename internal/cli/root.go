// Package cli implements the 3bt CLI commands.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/models"
)

// timerFlags holds the root command's flags. Each one overrides the stored
// setting only when given on the command line.
type timerFlags struct {
	displays        string
	position        string
	pixelHeight     int
	promptTimes     bool
	generateDesktop bool
	tray            bool
	style           string
	indicator       string
	tick            time.Duration
	logLevel        string
}

var rootFlags timerFlags

var rootCmd = &cobra.Command{
	Use:   "3bt [times...]",
	Short: "A lightweight timer bar for presentations",
	Long: `3bt draws a thin progress bar at the edge of the terminal that fills
through three phases: until the hint bell, until the end of the talk, and
until the end of the discussion.

Times are given in minutes. One value sets all three bells, two values set
the hint bell and the last two, three values set each bell.`,
	Example: `  3bt             # 10/15/20 minute bells
  3bt 12 15       # hint at 12, talk and discussion end at 15
  3bt 8 10 15 -p bottom`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runTimer,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addTimerFlags(rootCmd, &rootFlags)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func addTimerFlags(cmd *cobra.Command, f *timerFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.displays, "display", "d", "all", `displays to show the bar on ("all" or e.g. "0,1")`)
	flags.StringVarP(&f.position, "pos", "p", models.PositionTop, "bar position (top or bottom)")
	flags.IntVarP(&f.pixelHeight, "pixel-height", "s", models.DefaultPixelHeight, "running bar height in pixels")
	flags.BoolVar(&f.promptTimes, "prompt-times", false, "ask for the bell times at startup")
	flags.BoolVar(&f.generateDesktop, "generate-desktop", false, "write 3bt.desktop to the current directory and exit")
	flags.BoolVar(&f.tray, "tray", false, "show a system tray icon")
	flags.StringVar(&f.style, "style", "threebell", fmt.Sprintf("bar style %v", bar.StyleNames()))
	flags.StringVar(&f.indicator, "indicator", "", "progress indicator (dots or blink)")
	flags.DurationVar(&f.tick, "tick", models.DefaultTickInterval, "redraw interval")
	flags.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// applyTimerFlags overlays positional bell times and explicitly set flags
// onto the loaded settings.
func applyTimerFlags(cmd *cobra.Command, args []string, f *timerFlags, s *models.Settings) error {
	if len(args) > 0 {
		values, err := parseTimes(args)
		if err != nil {
			return err
		}
		bells := models.ParseBellTimes(values).Normalize()
		if err := bells.Validate(); err != nil {
			return err
		}
		s.Bells = bells
	}

	flags := cmd.Flags()
	if flags.Changed("display") {
		s.Window.Displays = f.displays
	}
	if flags.Changed("pos") {
		if f.position != models.PositionTop && f.position != models.PositionBottom {
			return fmt.Errorf("invalid position %q (expected top or bottom)", f.position)
		}
		s.Window.Position = f.position
	}
	if flags.Changed("pixel-height") {
		if f.pixelHeight <= 0 {
			return fmt.Errorf("pixel height must be positive, got %d", f.pixelHeight)
		}
		s.Window.PixelHeight = f.pixelHeight
	}
	if flags.Changed("tray") {
		s.Tray = f.tray
	}
	if flags.Changed("style") {
		s.Appearance.Style = f.style
	}
	if flags.Changed("indicator") {
		s.Appearance.Indicator = f.indicator
	}
	if flags.Changed("tick") {
		s.TickInterval = f.tick
	}
	if flags.Changed("log-level") {
		s.LogLevel = f.logLevel
	}

	s.Normalize()
	return s.Bells.Validate()
}

func parseTimes(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: expected whole minutes", arg)
		}
		values = append(values, n)
	}
	return values, nil
}
