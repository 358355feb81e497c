package core

import "math"

// Lane and band counts of the fixed playfield.
const (
	LaneCount = 3
	BandCount = 7
)

// bandFractions are the vertical positions of altitude bands 0 (base) to 6 (top)
// as a fraction of the playfield height, measured from the top edge.
var bandFractions = [BandCount]float64{0.85, 0.73, 0.61, 0.49, 0.37, 0.25, 0.15}

// Playfield maps abstract lane indices and altitude bands to screen cells.
// The simulation only deals in indices; the renderer owns this mapping.
type Playfield struct {
	Bounds Rect
}

// NewPlayfield creates a playfield occupying the given rectangle.
func NewPlayfield(bounds Rect) Playfield {
	return Playfield{Bounds: bounds}
}

// LaneX returns the column of the given lane's center line.
// Lanes sit at 25%, 50% and 75% of the width.
func (p Playfield) LaneX(lane int) int {
	lane = Clamp(lane, 0, LaneCount-1)
	return p.Bounds.X + p.Bounds.W*(lane+1)/(LaneCount+1)
}

// BandY returns the row of the given altitude band.
func (p Playfield) BandY(band int) int {
	band = Clamp(band, 0, BandCount-1)
	return p.Bounds.Y + int(math.Round(float64(p.Bounds.H)*bandFractions[band]))
}

// Band converts a continuous altitude into the display band it falls in.
func (p Playfield) Band(altitude float64) int {
	if math.IsNaN(altitude) {
		return 0
	}
	return int(math.Floor(ClampF(altitude, 0, BandCount-1)))
}

// AltitudeY is shorthand for BandY(Band(altitude)).
func (p Playfield) AltitudeY(altitude float64) int {
	return p.BandY(p.Band(altitude))
}

// LauncherY returns the row where an unfired missile waits.
func (p Playfield) LauncherY() int {
	return p.Bounds.Bottom() - 2
}

// BaseY returns the row of the lane pads at the bottom of the field.
func (p Playfield) BaseY() int {
	return p.Bounds.Bottom() - 1
}
