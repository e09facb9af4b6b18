package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Mauve:  lipgloss.Color("#cba6f7"),
	Red:    lipgloss.Color("#f38ba8"),
	Peach:  lipgloss.Color("#fab387"),
	Yellow: lipgloss.Color("#f9e2af"),
	Green:  lipgloss.Color("#a6e3a1"),
	Blue:   lipgloss.Color("#89b4fa"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
}

// CatppuccinLatte is the light counterpart.
var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#bcc0cc"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#5c5f77"),
	Muted:   lipgloss.Color("#9ca0b0"),

	Mauve:  lipgloss.Color("#8839ef"),
	Red:    lipgloss.Color("#d20f39"),
	Peach:  lipgloss.Color("#fe640b"),
	Yellow: lipgloss.Color("#df8e1d"),
	Green:  lipgloss.Color("#40a02b"),
	Blue:   lipgloss.Color("#1e66f5"),

	BorderFocused:   lipgloss.Color("#8839ef"),
	BorderUnfocused: lipgloss.Color("#9ca0b0"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// ByName resolves a configured theme name. Unknown names fall back to
// the default.
func ByName(name string) Theme {
	switch name {
	case "catppuccin-latte":
		return CatppuccinLatte
	case "catppuccin-mocha":
		return CatppuccinMocha
	}
	return Default()
}
