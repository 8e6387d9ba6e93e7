package domain

// PaletteColors is one decoded Palette Color LUT: a lookup table per color
// channel plus the palette UID when the instance declares one. A palette
// without a UID cannot be cached and is fetched fresh every time.
type PaletteColors struct {
	UID   string
	Red   []int
	Green []int
	Blue  []int
}
