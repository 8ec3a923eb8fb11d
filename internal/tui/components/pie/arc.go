package pie

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// screen coords: 0°=right(3 o'clock), 90°=down(6 o'clock), 180°=left(9 o'clock), 270°=up(12 o'clock)

const outlineThickness = 2

// fillSector sets every dot within radius whose angle from the center falls
// inside the sector starting at startAngle and sweeping clockwise through span.
func fillSector(canvas *drawille.Canvas, centerX, centerY, radius float64, startAngle, span float64) {
	if span <= 0 {
		return
	}

	var (
		cx = int(math.Round(centerX))
		cy = int(math.Round(centerY))
		r  = int(radius)
	)

	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if isInSector(cx, cy, x, y, startAngle, span) {
				canvas.Set(x, y)
			}
		}
	}
}

// isInSector checks if a point's angle from center falls within the sector.
// startAngle may be any value; it is normalized into [0, 360).
func isInSector(cx, cy, px, py int, startAngle, span float64) bool {
	if span >= 360 {
		return true
	}
	if px == cx && py == cy {
		return span > 0
	}

	// in screen coords, Y increases downward, so we use (py-cy) directly
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi

	offset := math.Mod(angle-startAngle, 360)
	if offset < 0 {
		offset += 360
	}
	return offset <= span
}

// drawOutline draws a thin full circle using the midpoint circle algorithm.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func drawOutline(canvas *drawille.Canvas, centerX, centerY, radius float64) {
	for t := range outlineThickness {
		r := int(radius) - t
		if r <= 0 {
			continue
		}
		midpointCircle(canvas, int(centerX), int(centerY), r)
	}
}

func midpointCircle(canvas *drawille.Canvas, cx, cy, radius int) {
	x := radius
	y := 0
	d := 1 - radius // decision parameter

	for x >= y {
		for _, p := range [][2]int{
			{cx + x, cy - y}, {cx + y, cy - x}, {cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x}, {cx + y, cy + x}, {cx + x, cy + y},
		} {
			canvas.Set(p[0], p[1])
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}
