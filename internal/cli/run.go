package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/threebell/threebell/internal/app"
	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/config"
	"github.com/threebell/threebell/internal/display"
	"github.com/threebell/threebell/internal/models"
	"github.com/threebell/threebell/internal/tray"
	"github.com/threebell/threebell/internal/tui"
	"github.com/threebell/threebell/internal/watcher"
)

func runTimer(cmd *cobra.Command, args []string) error {
	if rootFlags.generateDesktop {
		return generateDesktop(cmd.ErrOrStderr())
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	fileBells := settings.Bells
	if err := applyTimerFlags(cmd, args, &rootFlags, settings); err != nil {
		return err
	}

	style, backdrop, err := app.ResolveStyle(settings.Appearance)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if logFile, err := config.OpenLogFile(); err == nil {
		defer logFile.Close()
		logOut = logFile
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", styleWarning.Render("Logging disabled:"), err)
	}
	logger := config.NewLogger(logOut, settings.LogLevel)

	screens := display.DetectTerminalScreens()
	indices, err := display.ParseDisplays(settings.Window.Displays, screens.Count())
	if err != nil {
		return err
	}
	manager := display.NewManager(screens, indices, settings.Window.Position, settings.Window.PixelHeight)

	ctl, err := app.New(app.Options{
		Bells:    settings.Bells,
		Style:    style,
		Displays: manager,
		Logger:   logger,
		Record:   config.WriteSession,
	})
	if err != nil {
		return err
	}

	ui := tui.New(ctl, tui.Options{
		Screens:      screens,
		Backdrop:     backdrop,
		TickInterval: settings.TickInterval,
		PromptTimes:  rootFlags.promptTimes,
		Logger:       logger,
	})

	stopWatcher := watchSettings(ctl, ui, fileBells, logger)
	defer stopWatcher()

	logger.Info("Timer started", "bells", settings.Bells.String(), "position", settings.Window.Position, "tray", settings.Tray)

	if settings.Tray {
		return runWithTray(ctl, ui, style.Palette, logger)
	}
	err = ui.Run()
	ctl.Quit()
	return err
}

// runWithTray runs the tray on the calling goroutine and the terminal UI
// alongside it. The tray exits when the terminal UI does.
func runWithTray(ctl *app.Controller, ui *tui.UI, palette bar.Palette, logger *log.Logger) error {
	errCh := make(chan error, 1)

	hooks := tray.Hooks{
		ChangeBells: func() { ui.Send(tui.OpenBellFormMsg{}) },
		Exit:        func() { ui.Send(tui.QuitMsg{}) },
	}

	onStart := func() {
		go func() {
			err := ui.Run()
			ctl.Quit()
			errCh <- err
			tray.Quit()
		}()
	}
	onExit := func() {
		logger.Debug("Tray exited")
	}

	tray.Run(ctl, hooks, palette, logger, onStart, onExit)
	return <-errCh
}

// watchSettings reloads bell times when settings.yaml changes on disk.
// It returns a function that stops watching.
func watchSettings(ctl *app.Controller, ui *tui.UI, initial models.BellTimes, logger *log.Logger) func() {
	dir, err := config.GlobalDir()
	if err != nil {
		logger.Warn("Settings watcher disabled", "error", err)
		return func() {}
	}
	w, err := watcher.New(dir, watcher.DefaultDebounce, logger)
	if err != nil {
		logger.Warn("Settings watcher disabled", "error", err)
		return func() {}
	}
	if err := w.Start(); err != nil {
		logger.Warn("Settings watcher disabled", "error", err)
		w.Stop()
		return func() {}
	}

	reloader := watcher.NewReloader(initial, ctl.Reconfigure)
	go func() {
		for {
			select {
			case <-ctl.Done():
				return
			case ev := <-w.Events():
				applied, err := reloader.Handle(ev)
				if err != nil {
					logger.Warn("Settings reload failed", "path", ev.Path, "error", err)
					ui.Send(tui.ErrorMsg{Err: fmt.Errorf("settings reload: %w", err)})
					continue
				}
				if applied {
					ui.Send(tui.NoticeMsg{Text: "bells " + ctl.Bells().String()})
				}
			}
		}
	}()
	return w.Stop
}
