package stipple

// Color represents an RGBA color with float components (0.0 to 1.0).
// The zero value means "unset": operations substitute their default for
// it, usually opaque white. After that substitution, an alpha of zero or
// below suppresses the draw entirely rather than raising an error, so
// callers can hide geometry by zeroing the alpha they already pass.
type Color struct {
	R, G, B, A float32
}

// Predefined colors for debug overlays.
var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorRed     = Color{1, 0, 0, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorBlue    = Color{0, 0, 1, 1}
	ColorYellow  = Color{1, 1, 0, 1}
	ColorCyan    = Color{0, 1, 1, 1}
	ColorMagenta = Color{1, 0, 1, 1}
	ColorOrange  = Color{1, 0.5, 0, 1}
	ColorGray    = Color{0.5, 0.5, 0.5, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// resolve substitutes fallback for the zero "unset" value. The second
// return is false when the resolved color is fully transparent and the
// caller should draw nothing.
func (c Color) resolve(fallback Color) (Color, bool) {
	if c == (Color{}) {
		c = fallback
	}
	return c, c.A > 0
}
