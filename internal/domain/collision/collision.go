// Package collision resolves overlaps between axis-aligned boxes.
//
// Boxes are described by a center and a half-extent size. The resolver is a
// pure function: it reports which single side of box B box A should be pushed
// out along, or None when the boxes do not overlap.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Side names the side of box B that box A collided with
type Side int

const (
	None Side = iota
	Top
	Bottom
	Left
	Right
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case None:
		return "None"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Penetration returns how far two boxes overlap on each axis.
// A value <= 0 on either axis means the boxes are separated.
func Penetration(aPos, aSize, bPos, bSize mgl64.Vec2) (px, py float64) {
	d := aPos.Sub(bPos)
	px = aSize.X() + bSize.X() - math.Abs(d.X())
	py = aSize.Y() + bSize.Y() - math.Abs(d.Y())
	return px, py
}

// Overlaps reports whether the interiors of two boxes intersect.
// Boxes that only share an edge do not overlap.
func Overlaps(aPos, aSize, bPos, bSize mgl64.Vec2) bool {
	px, py := Penetration(aPos, aSize, bPos, bSize)
	return px > 0 && py > 0
}

// Resolve determines whether box A overlaps box B and, if so, which side of
// B A should be pushed out along. The axis with the shallower penetration is
// chosen. When both depths are equal the vertical axis wins, so a box landing
// exactly on a corner is treated as landing on top of it.
//
// Vertically, A at or above B's center resolves to Top. Horizontally, A left
// of B's center resolves to Left and A at or right of it resolves to Right.
func Resolve(aPos, aSize, bPos, bSize mgl64.Vec2) Side {
	px, py := Penetration(aPos, aSize, bPos, bSize)
	if px <= 0 || py <= 0 {
		return None
	}

	d := aPos.Sub(bPos)
	if py <= px {
		if d.Y() >= 0 {
			return Top
		}
		return Bottom
	}
	if d.X() < 0 {
		return Left
	}
	return Right
}
