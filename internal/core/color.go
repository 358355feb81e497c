package core

// Color is a palette slot for a screen cell. The game only says what a
// cell shows; each frontend decides how the slot looks.
type Color uint8

// Palette slots of the station display.
const (
	ColorDefault Color = iota
	ColorGlow          // lit display segments: saucers, score, the loaded pad
	ColorUnlit         // dark segments such as idle lane pads
	ColorLabel         // altitude band numbers
	ColorTitle
	ColorSubtitle
	ColorHint
	ColorWarhead
	ColorBlast
	ColorWin
	ColorLose
	ColorBadge
	ColorPrompt
	colorEnd
)

// ColorCount is the number of palette slots.
const ColorCount = int(colorEnd)

// Valid reports whether c is a known palette slot.
func (c Color) Valid() bool {
	return c < colorEnd
}
