package theme

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Loader resolves themes by name and owns the one Theme value the rest of
// the program points at. Loading or reloading rewrites that value in
// place, so holders of the pointer never need re-wiring.
type Loader struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	themesDir   string
	currentName string
	currentPath string
	currentData []byte
	theme       *Theme
}

// NewLoader creates a theme loader starting on the default theme.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	themesDir, err := ThemesDir()
	if err != nil {
		logger.Warn("failed to get themes directory", "error", err)
		themesDir = ""
	}

	l := &Loader{
		logger:    logger,
		themesDir: themesDir,
		theme:     &Theme{},
	}
	if err := l.LoadTheme(DefaultThemeName); err != nil {
		logger.Warn("failed to load default theme", "error", err)
	}
	return l
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "subwin", "themes"), nil
}

// Theme returns the loader's stable Theme pointer.
func (l *Loader) Theme() *Theme {
	return l.theme
}

// CurrentTheme returns the name of the currently loaded theme.
func (l *Loader) CurrentTheme() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentName
}

// ThemePath returns the file path of the current theme, empty for bundled
// themes.
func (l *Loader) ThemePath() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentPath
}

// LoadTheme loads a theme by name.
// Theme resolution order:
//  1. User themes directory (~/.config/subwin/themes/)
//  2. Embedded/bundled themes
//
// This allows users to override bundled themes by placing a file with the
// same name in their themes directory.
func (l *Loader) LoadTheme(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		name = DefaultThemeName
	}

	if l.themesDir != "" {
		themePath := filepath.Join(l.themesDir, name+".toml")
		if data, err := os.ReadFile(themePath); err == nil {
			p, err := DecodePalette(data)
			if err != nil {
				l.logger.Warn("failed to parse user theme, trying bundled", "theme", name, "error", err)
			} else {
				l.install(name, themePath, data, p)
				l.logger.Info("loaded user theme", "name", name, "path", themePath)
				return nil
			}
		}
	}

	if data, found := GetEmbeddedTheme(name); found {
		p, err := DecodePalette(data)
		if err == nil {
			l.install(name, "", data, p)
			l.logger.Info("loaded bundled theme", "name", name)
			return nil
		}
		l.logger.Warn("bundled theme is invalid", "theme", name, "error", err)
	}

	l.logger.Warn("theme not found, using default", "theme", name)
	data, _ := GetEmbeddedTheme(DefaultThemeName)
	p, err := DecodePalette(data)
	if err != nil {
		return err
	}
	l.install(DefaultThemeName, "", data, p)
	return nil
}

// Rebuild re-reads the current theme file and compiles it, leaving the
// shared Theme value untouched. Returns the compiled theme and whether
// the file content changed since the last read. Bundled themes never
// change. Safe to call from any goroutine; publishing the result is the
// caller's job, via Install on the painting goroutine.
func (l *Loader) Rebuild() (Theme, bool, error) {
	l.mu.Lock()
	path := l.currentPath
	l.mu.Unlock()

	if path == "" {
		return Theme{}, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, false, err
	}
	p, err := DecodePalette(data)
	if err != nil {
		return Theme{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	changed := !bytes.Equal(data, l.currentData)
	l.currentData = data
	return Build(p), changed, nil
}

// Install publishes a rebuilt theme by rewriting the shared Theme value
// in place. The next paint picks it up. Must run on the goroutine that
// paints; concurrent painters would race on the struct contents.
func (l *Loader) Install(t Theme) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.theme = t
}

// Reload rebuilds the current theme from disk and installs it. Returns
// true when the file content changed. Only for single-goroutine use; a
// running TUI routes Rebuild results through its own loop instead.
func (l *Loader) Reload() (bool, error) {
	t, changed, err := l.Rebuild()
	if err != nil {
		return false, err
	}
	if changed {
		l.Install(t)
	}
	return changed, nil
}

// ListThemes returns bundled and user theme names, duplicates removed.
func (l *Loader) ListThemes() []string {
	seen := make(map[string]bool)
	var themes []string

	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, name)
		}
	}

	if l.themesDir != "" {
		entries, err := os.ReadDir(l.themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				if filepath.Ext(name) == ".toml" {
					themeName := name[:len(name)-5]
					if !seen[themeName] {
						seen[themeName] = true
						themes = append(themes, themeName)
					}
				}
			}
		} else {
			l.logger.Debug("failed to read themes directory", "error", err)
		}
	}

	return themes
}

// install must be called with the lock held.
func (l *Loader) install(name, path string, data []byte, p *Palette) {
	*l.theme = Build(p)
	l.currentName = name
	l.currentPath = path
	l.currentData = data
}
