package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/threebell/threebell/internal/config"
	"github.com/threebell/threebell/internal/models"
)

var settingsForce bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		return printSettings(cmd.OutOrStdout(), path, config.FileExists(path), settings)
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default settings to ~/.threebell/settings.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		if config.FileExists(path) && !settingsForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.SaveSettings(models.NewSettings()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", styleSuccess.Render("✓"), path)
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	settingsInitCmd.Flags().BoolVarP(&settingsForce, "force", "f", false, "overwrite existing settings")
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}

func printSettings(w io.Writer, path string, exists bool, s *models.Settings) error {
	source := styleValue.Render(path)
	if !exists {
		source += " " + styleHint.Render("(not found, using defaults)")
	}
	fmt.Fprintf(w, "%s %s\n\n", styleLabel.Render("Settings:"), source)

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	_, err = w.Write(data)
	return err
}
