// Package aggregate derives the presentation of a board from its snapshots:
// counters ordered for the list, causes projected onto pie slices.
package aggregate

import (
	"cmp"
	"math"
	"slices"

	"github.com/garrettladley/tally/internal/client/tally"
)

const (
	// DefaultStartAngle is 12 o'clock in screen degrees (0° at 3 o'clock, clockwise).
	DefaultStartAngle = 270.0

	// LabelRadiusRatio places value labels 60% of the way from the inner to the outer radius.
	LabelRadiusRatio = 0.6
)

// OrderCounters returns a copy of counters sorted ascending by Value.
// Counters with equal values keep their relative order.
func OrderCounters(counters []tally.Counter) []tally.Counter {
	ordered := append(make([]tally.Counter, 0, len(counters)), counters...)
	slices.SortStableFunc(ordered, func(a, b tally.Counter) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return ordered
}

// Geometry describes where a pie is drawn. A zero InnerRadius is a full pie.
type Geometry struct {
	CenterX     float64
	CenterY     float64
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
}

// DefaultGeometry is a full pie of the given radius around the origin.
func DefaultGeometry(radius float64) Geometry {
	return Geometry{OuterRadius: radius, StartAngle: DefaultStartAngle}
}

type Slice struct {
	Cause tally.Cause

	// StartAngle and EndAngle are unnormalized screen degrees: EndAngle may exceed 360.
	StartAngle float64
	EndAngle   float64

	// Share is the clamped value divided by the total, in [0, 1].
	Share float64

	LabelX float64
	LabelY float64
}

func (s Slice) Span() float64 { return s.EndAngle - s.StartAngle }

func (s Slice) Mid() float64 { return s.StartAngle + s.Span()/2 }

// Percent is Share rounded to the nearest whole percent.
func (s Slice) Percent() int { return int(math.Round(s.Share * 100)) }

// Empty reports whether the slice has no area.
func (s Slice) Empty() bool { return s.Span() <= 0 }

// Total sums the cause values, counting negative values as zero.
func Total(causes []tally.Cause) int64 {
	var total int64
	for _, c := range causes {
		total += max(c.Value, 0)
	}
	return total
}

// Project lays causes out as consecutive slices in collection order. When
// the total is zero every slice is empty and anchored at the start angle.
func Project(causes []tally.Cause, g Geometry) []Slice {
	out := make([]Slice, 0, len(causes))
	total := Total(causes)
	labelRadius := g.InnerRadius + (g.OuterRadius-g.InnerRadius)*LabelRadiusRatio

	angle := g.StartAngle
	for _, c := range causes {
		s := Slice{Cause: c, StartAngle: angle, EndAngle: angle}
		if total > 0 {
			s.Share = float64(max(c.Value, 0)) / float64(total)
			s.EndAngle = angle + s.Share*360
		}
		s.LabelX, s.LabelY = Point(g, labelRadius, s.Mid())
		out = append(out, s)
		angle = s.EndAngle
	}

	return out
}

// Point returns the screen position at radius r and angle degrees around the
// geometry's center. Screen y grows downward, so angles run clockwise.
func Point(g Geometry, r float64, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return g.CenterX + r*math.Cos(rad), g.CenterY + r*math.Sin(rad)
}
