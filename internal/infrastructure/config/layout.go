package config

// Shared layout constants used across scenes and components.
const (
	// MobileBreakpoint is the viewport width below which portrait layouts apply.
	MobileBreakpoint = 525

	TitleYOffset = 120

	// Task scene title font sizes
	TitleFontSizeDesktop = 32
	TitleFontSizeMobile  = 24

	// Menu scene title font sizes
	MenuTitleFontSizeDesktop = 48
	MenuTitleFontSizeMobile  = 32
)

// IsMobile reports whether width falls below the breakpoint.
func IsMobile(width float64) bool {
	return width < MobileBreakpoint
}
