package theme

import (
	"embed"
	"io/fs"
	"strings"
)

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.toml
var EmbeddedThemes embed.FS

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// GetEmbeddedTheme retrieves a bundled theme by name.
// Returns the TOML content and whether it was found.
func GetEmbeddedTheme(name string) ([]byte, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedThemes returns names of all bundled themes.
func ListEmbeddedThemes() []string {
	var themes []string
	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return themes
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".toml") {
			themes = append(themes, strings.TrimSuffix(name, ".toml"))
		}
	}
	return themes
}
