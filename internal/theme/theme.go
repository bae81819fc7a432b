// Package theme provides TOML-based color theming for the compositor.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Palette is the on-disk theme schema. Every color is a lipgloss color
// string: named ANSI, "240"-style indexed, or "#rrggbb" hex.
type Palette struct {
	Name   string `toml:"name"`
	Colors struct {
		Background   string `toml:"background"`
		Text         string `toml:"text"`
		Window       string `toml:"window"`
		WindowText   string `toml:"window_text"`
		Border       string `toml:"border"`
		Titlebar     string `toml:"titlebar"`
		TitlebarText string `toml:"titlebar_text"`
		Button       string `toml:"button"`
		ButtonText   string `toml:"button_text"`
		Accent       string `toml:"accent"`
	} `toml:"colors"`
}

// Theme is the compiled style set every drawing component reads from.
// Components hold a pointer to one shared Theme; hot reload rewrites the
// pointed-to value in place so the next paint picks up the change.
type Theme struct {
	Name string

	Root         lipgloss.Style
	Window       lipgloss.Style
	Border       lipgloss.Style
	Titlebar     lipgloss.Style
	TitlebarText lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// DecodePalette parses a TOML theme file.
func DecodePalette(data []byte) (*Palette, error) {
	var p Palette
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return &p, nil
}

// Build compiles a palette into the style set. Empty color fields fall
// back to the terminal defaults.
func Build(p *Palette) Theme {
	t := Theme{Name: p.Name}
	c := p.Colors

	t.Root = styleFor(c.Text, c.Background)
	t.Window = styleFor(c.WindowText, c.Window)
	t.Border = styleFor(c.Border, c.Window)
	t.Titlebar = styleFor(c.TitlebarText, c.Titlebar)
	t.TitlebarText = t.Titlebar.Bold(true)
	t.Button = styleFor(c.ButtonText, c.Button)
	t.ButtonActive = styleFor(c.ButtonText, c.Accent)
	return t
}

func styleFor(fg, bg string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	return s
}
