package core

// HUDRows is the number of terminal rows reserved above the playfield.
const HUDRows = 1

// FooterRows is the number of terminal rows reserved below the playfield.
const FooterRows = 1

// Viewport is the playfield size in pixels. Spawn and clamp bounds are read
// from it at the moment of each operation.
type Viewport struct {
	W float64
	H float64
}

// Bounds returns the viewport as a rectangle anchored at the origin.
func (v Viewport) Bounds() Rect {
	return NewRect(0, 0, v.W, v.H)
}

// RuntimeConfig contains configuration handed to the simulation at start.
// The platform derives it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW int     // Screen width in characters
	ScreenH int     // Screen height in characters
	CellW   float64 // Pixels per character column
	CellH   float64 // Pixels per character row
	Seed    int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		CellW:   10,
		CellH:   20,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// PlayfieldRows returns the rows available to the playfield.
func (c RuntimeConfig) PlayfieldRows() int {
	return Max(c.ScreenH-HUDRows-FooterRows, 0)
}

// Viewport converts the terminal playfield into pixel dimensions.
func (c RuntimeConfig) Viewport() Viewport {
	return Viewport{
		W: float64(Max(c.ScreenW, 0)) * c.CellW,
		H: float64(c.PlayfieldRows()) * c.CellH,
	}
}
