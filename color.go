package graphics

// Color is an RGB triple, one byte per channel.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color pointer for the optional color fields of the shape
// types. A nil color means the corresponding fill or stroke is skipped.
func RGB(r, g, b uint8) *Color {
	return &Color{R: r, G: g, B: b}
}

// Commonly used colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)
