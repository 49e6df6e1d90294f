package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threebell/threebell/internal/app"
	"github.com/threebell/threebell/internal/config"
	"github.com/threebell/threebell/internal/models"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List recorded talks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := config.ListSessions()
		if err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), sessions, historyLimit)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of sessions to show (0 for all)")
}

// printHistory writes sessions newest first. A limit of zero shows all.
func printHistory(w io.Writer, sessions []*models.SessionRecord, limit int) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, styleHint.Render("No sessions recorded yet."))
		return
	}
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	fmt.Fprintf(w, "  %s\n", styleHeader.Render(fmt.Sprintf("%-16s  %-10s  %8s  %6s  %s",
		"Started", "Bells", "Elapsed", "Pauses", "Result")))
	for _, s := range sessions {
		fmt.Fprintf(w, "  %s  %s  %s  %s  %s\n",
			styleValue.Render(fmt.Sprintf("%-16s", s.StartedAt.Local().Format("2006-01-02 15:04"))),
			styleValue.Render(fmt.Sprintf("%-10s", s.Bells.String())),
			styleValue.Render(fmt.Sprintf("%8s", app.FormatElapsed(s.Elapsed()))),
			styleLabel.Render(fmt.Sprintf("%6d", s.Pauses)),
			formatResult(s),
		)
	}
}

func formatResult(s *models.SessionRecord) string {
	parts := []string{}
	switch s.Reason {
	case models.EndReasonReset:
		parts = append(parts, badgeReset.Render(s.Reason))
	default:
		parts = append(parts, badgeExit.Render(s.Reason))
	}
	if s.Overtime() {
		parts = append(parts, badgeOvertime.Render("overtime"))
	}
	return strings.Join(parts, " ")
}
