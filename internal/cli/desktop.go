package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/config"
	"github.com/threebell/threebell/internal/tray"
)

const iconFileName = "3bt.png"

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Write a 3bt.desktop launcher to the current directory",
	Long: `Write a freedesktop.org launcher for 3bt to the current directory.
An icon is generated into ~/.threebell. Linux only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateDesktop(cmd.ErrOrStderr())
	},
}

// generateDesktop writes 3bt.desktop to the current directory and prints
// install hints to w.
func generateDesktop(w io.Writer) error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("desktop files are only supported on Linux")
	}

	icon, err := writeIcon()
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", styleWarning.Render("Icon not written:"), err)
	}

	if err := os.WriteFile(config.DesktopFileName, []byte(desktopEntry(executablePath(), icon)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.DesktopFileName, err)
	}

	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render("✓"), "Wrote "+config.DesktopFileName)
	fmt.Fprintln(w, styleHint.Render("copy this file to ~/.local/share/applications/"))
	fmt.Fprintf(w, "  %s\n", styleCommand.Render("cp "+config.DesktopFileName+" ~/.local/share/applications/"))
	return nil
}

// desktopEntry renders the launcher file.
func desktopEntry(execPath, iconPath string) string {
	return fmt.Sprintf(`[Desktop Entry]
Name=Three-bell timer
Comment=A lightweight timer designed for presentations.
Exec=%s
Icon=%s
Terminal=true
Type=Application
Categories=Utility;
`, execPath, iconPath)
}

// executablePath prefers 3bt on PATH, then the running binary.
func executablePath() string {
	if p, err := exec.LookPath("3bt"); err == nil {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	if p, err := os.Executable(); err == nil {
		return p
	}
	abs, _ := filepath.Abs(os.Args[0])
	return abs
}

// writeIcon renders the tray icon into the global dir and returns its path.
func writeIcon() (string, error) {
	if err := config.EnsureGlobalDir(); err != nil {
		return "", err
	}
	dir, err := config.GlobalDir()
	if err != nil {
		return "", err
	}
	data, err := tray.IconPNG(bar.ThreeBellStyle().Palette)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, iconFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
