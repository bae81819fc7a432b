package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/widget"
)

// RunOptions configures the TUI.
type RunOptions[T widget.Value[T]] struct {
	App       *widget.App[T]
	Loader    *theme.Loader
	HotReload bool
	Logger    *slog.Logger
}

// Run starts the BubbleTea program around the widget App and blocks until
// the user quits. Theme hot reload, when enabled and the active theme is
// a user file, sends each rebuilt theme into the program loop, where the
// model installs it and the next frame repaints with it.
func Run[T widget.Value[T]](opts RunOptions[T]) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts.App.Start()
	m := NewModel(opts.App).WithLoader(opts.Loader)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	var watcher *theme.Watcher
	if opts.HotReload && opts.Loader != nil {
		var err error
		watcher, err = theme.NewWatcher(opts.Loader, logger)
		if err != nil {
			logger.Warn("failed to create theme watcher", "error", err)
		} else {
			watcher.SetChangeCallback(func(t theme.Theme) {
				p.Send(ThemeReloadedMsg{Theme: t})
			})
			if err := watcher.Start(); err != nil {
				logger.Warn("failed to start theme watcher", "error", err)
			}
		}
	}

	_, err := p.Run()

	if watcher != nil {
		if stopErr := watcher.Stop(); stopErr != nil {
			logger.Warn("failed to stop theme watcher", "error", stopErr)
		}
	}

	return err
}
