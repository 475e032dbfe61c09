package models

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Theme is the UI display mode
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is used when no preference was stored
	DefaultTheme = ThemeLight
)

// Themes lists every supported display mode
var Themes = []Theme{ThemeLight, ThemeDark}

// ParseTheme maps s onto a supported theme, falling back to DefaultTheme.
func ParseTheme(s string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Themes, t) {
		return DefaultTheme
	}
	return t
}

// Next returns the theme a toggle switches to.
func (t Theme) Next() Theme {
	return lo.Ternary(t == ThemeDark, ThemeLight, ThemeDark)
}

func (t Theme) String() string {
	return string(t)
}

// ThemeChangedMessage builds the confirmation sent back by POST /theme.
// The submitted value is not validated; it is only title-cased for display.
func ThemeChangedMessage(theme string) string {
	name := strings.TrimSpace(theme)
	if name == "" {
		return "Theme changed"
	}
	// a Caser keeps state, so each call gets its own
	return "Theme changed to " + cases.Title(language.English).String(name)
}
