package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/subwin/internal/config"
	"github.com/jmylchreest/subwin/internal/swm"
	"github.com/jmylchreest/subwin/internal/theme"
	"github.com/jmylchreest/subwin/internal/tui"
	"github.com/jmylchreest/subwin/internal/widget"
)

// AppState is the demo's shared data. Every open window holds its own
// copy; mutating a copy anywhere converges all of them on the new value.
type AppState struct {
	Text      string
	Clicks    int
	StartedAt time.Time
}

// Same reports value equality.
func (s AppState) Same(other AppState) bool {
	return s == other
}

// Clone returns a deep copy. AppState has no reference fields, so the
// value copy is already deep.
func (s AppState) Clone() AppState {
	return s
}

func runDemo(cmd *cobra.Command, args []string) error {
	th := themeLoader.Theme()
	data := AppState{Text: "hello", StartedAt: time.Now()}

	manager := swm.NewManager[AppState](th, data, func(mid swm.ManagerID) widget.Widget[AppState] {
		return buildRoot(mid, th, cfg.Demo)
	})
	app := widget.NewApp[AppState](manager, data, logger)

	return tui.Run(tui.RunOptions[AppState]{
		App:       app,
		Loader:    themeLoader,
		HotReload: cfg.Theme.HotReload,
		Logger:    logger,
	})
}

// buildRoot assembles the main view: shared-state readout, the toolbar
// proxy that opens windows, and a welcome dialog that opens itself.
func buildRoot(mid swm.ManagerID, th *theme.Theme, demo config.DemoConfig) widget.Widget[AppState] {
	toolbar := swm.NewProxy[AppState](mid, th, func(l swm.Launcher[AppState]) widget.Widget[AppState] {
		return buildToolbar(l, th, demo)
	})

	welcome := swm.NewDialog[AppState](mid, th, swm.NewConfig().WithTitle("Welcome"), func() widget.Widget[AppState] {
		return buildWelcome(th)
	})

	body := widget.NewColumn[AppState]().
		WithChild(widget.NewLabel[AppState]("subwin demo").WithStyle(th.TitlebarText)).
		WithSpacer(1).
		WithChild(widget.NewDynamicLabel(func(s AppState) string {
			return fmt.Sprintf("text: %s", s.Text)
		})).
		WithChild(widget.NewDynamicLabel(func(s AppState) string {
			return fmt.Sprintf("clicks: %d", s.Clicks)
		})).
		WithChild(widget.NewDynamicLabel(func(s AppState) string {
			return "session started " + humanize.Time(s.StartedAt)
		})).
		WithSpacer(1).
		WithChild(toolbar).
		WithChild(welcome)

	return widget.NewPadding(widget.UniformInsets(1), body)
}

func buildToolbar(l swm.Launcher[AppState], th *theme.Theme, demo config.DemoConfig) widget.Widget[AppState] {
	// Numbered titles; the counter lives with the toolbar, nowhere else.
	counter := 0

	addBtn := widget.NewButton("Add Window", func(ctx *widget.EventCtx, data *AppState) {
		counter++
		l.AddWindow(ctx, buildWindowContent(th), data.Clone(), swm.NewConfig().
			WithTitle(fmt.Sprintf("Window %d", counter)).
			WithPosition(swm.At(demo.WindowLeft+counter*2, demo.WindowTop+counter)))
	}).WithStyles(th.Button, th.ButtonActive)

	alertBtn := widget.NewButton("Alert", func(ctx *widget.EventCtx, data *AppState) {
		l.AddWindow(ctx, buildAlert(th), data.Clone(), swm.NewConfig().
			WithTitle("Alert").
			WithModal(true))
	}).WithStyles(th.Button, th.ButtonActive)

	navBtn := widget.NewButton("Navigator", func(ctx *widget.EventCtx, data *AppState) {
		l.AddWindow(ctx, buildNavPage(l, th, 1), data.Clone(), swm.NewConfig().
			WithPosition(swm.Fitted()))
	}).WithStyles(th.Button, th.ButtonActive)

	return widget.NewRow[AppState]().
		WithChild(addBtn).
		WithSpacer(1).
		WithChild(alertBtn).
		WithSpacer(1).
		WithChild(navBtn)
}

// buildWindowContent is the body of a plain draggable window: it reads
// the shared state and mutates it, proving the round trip.
func buildWindowContent(th *theme.Theme) widget.Widget[AppState] {
	body := widget.NewColumn[AppState]().
		WithChild(widget.NewDynamicLabel(func(s AppState) string {
			return fmt.Sprintf("text: %s", s.Text)
		})).
		WithChild(widget.NewDynamicLabel(func(s AppState) string {
			return fmt.Sprintf("clicks: %d", s.Clicks)
		})).
		WithSpacer(1).
		WithChild(widget.NewRow[AppState]().
			WithChild(widget.NewButton("Click me", func(_ *widget.EventCtx, data *AppState) {
				data.Clicks++
				data.Text = fmt.Sprintf("clicked %d times", data.Clicks)
			}).WithStyles(th.Button, th.ButtonActive)).
			WithSpacer(1).
			WithChild(widget.NewButton("Close", func(ctx *widget.EventCtx, _ *AppState) {
				swm.CloseEnclosingWindow(ctx)
			}).WithStyles(th.Button, th.ButtonActive)))

	return widget.NewPadding(widget.UniformInsets(1), body)
}

func buildAlert(th *theme.Theme) widget.Widget[AppState] {
	body := widget.NewColumn[AppState]().
		WithChild(widget.NewLabel[AppState]("Everything else is blocked until you answer.")).
		WithSpacer(1).
		WithChild(widget.NewButton("OK", func(ctx *widget.EventCtx, _ *AppState) {
			swm.CloseEnclosingWindow(ctx)
		}).WithStyles(th.Button, th.ButtonActive))

	return widget.NewPadding(widget.UniformInsets(1), body)
}

// buildWelcome is the content of the auto-opened dialog window.
func buildWelcome(th *theme.Theme) widget.Widget[AppState] {
	body := widget.NewColumn[AppState]().
		WithChild(widget.NewLabel[AppState]("Drag windows by their titlebar.")).
		WithChild(widget.NewLabel[AppState]("The x button closes a window.")).
		WithSpacer(1).
		WithChild(widget.NewButton("OK", func(ctx *widget.EventCtx, _ *AppState) {
			swm.CloseEnclosingWindow(ctx)
		}).WithStyles(th.Button, th.ButtonActive))

	return widget.NewPadding(widget.UniformInsets(1), body)
}

// buildNavPage is one page of the fit-positioned navigator. Deeper pages
// stack as further windows; Back closes the page it sits on.
func buildNavPage(l swm.Launcher[AppState], th *theme.Theme, depth int) widget.Widget[AppState] {
	body := widget.NewColumn[AppState]().
		WithChild(widget.NewLabel[AppState](fmt.Sprintf("Navigator page %d", depth)).WithStyle(th.TitlebarText)).
		WithSpacer(1).
		WithChild(widget.NewRow[AppState]().
			WithChild(widget.NewButton("Deeper", func(ctx *widget.EventCtx, data *AppState) {
				l.AddWindow(ctx, buildNavPage(l, th, depth+1), data.Clone(), swm.NewConfig().
					WithPosition(swm.Fitted()))
			}).WithStyles(th.Button, th.ButtonActive)).
			WithSpacer(1).
			WithChild(widget.NewButton("Info", func(ctx *widget.EventCtx, data *AppState) {
				l.AddWindow(ctx, buildAlert(th), data.Clone(), swm.NewConfig().
					WithTitle("Info").
					WithModal(true))
			}).WithStyles(th.Button, th.ButtonActive)).
			WithSpacer(1).
			WithChild(widget.NewButton("Back", func(ctx *widget.EventCtx, _ *AppState) {
				l.CloseWindow(ctx)
			}).WithStyles(th.Button, th.ButtonActive)))

	return widget.NewPadding(widget.UniformInsets(1), body)
}
