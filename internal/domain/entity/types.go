package entity

import "github.com/go-gl/mathgl/mgl64"

// Box is a piece of static level geometry.
// Center and HalfSize are in world units with Y pointing up.
type Box struct {
	Name     string
	Center   mgl64.Vec2
	HalfSize mgl64.Vec2
	Lethal   bool
}

// NewBox creates a solid box from a center and half-extent size
func NewBox(name string, cx, cy, hw, hh float64) Box {
	return Box{
		Name:     name,
		Center:   mgl64.Vec2{cx, cy},
		HalfSize: mgl64.Vec2{hw, hh},
	}
}

// NewDeathPlane creates a lethal box
func NewDeathPlane(name string, cx, cy, hw, hh float64) Box {
	b := NewBox(name, cx, cy, hw, hh)
	b.Lethal = true
	return b
}

// Top returns the Y coordinate of the box's upper edge
func (b Box) Top() float64 {
	return b.Center.Y() + b.HalfSize.Y()
}

// Bottom returns the Y coordinate of the box's lower edge
func (b Box) Bottom() float64 {
	return b.Center.Y() - b.HalfSize.Y()
}

// Left returns the X coordinate of the box's left edge
func (b Box) Left() float64 {
	return b.Center.X() - b.HalfSize.X()
}

// Right returns the X coordinate of the box's right edge
func (b Box) Right() float64 {
	return b.Center.X() + b.HalfSize.X()
}

// Level is the immutable geometry of a stage.
// Boxes are kept in authoring order; collision resolution visits them in
// that order.
type Level struct {
	Name  string
	Boxes []Box
	Spawn mgl64.Vec3
}

// Bounds returns the smallest rectangle containing every box.
// An empty level reports a zero rectangle at the origin.
func (l *Level) Bounds() (minX, minY, maxX, maxY float64) {
	if len(l.Boxes) == 0 {
		return 0, 0, 0, 0
	}
	first := l.Boxes[0]
	minX, minY, maxX, maxY = first.Left(), first.Bottom(), first.Right(), first.Top()
	for _, b := range l.Boxes[1:] {
		minX = min(minX, b.Left())
		minY = min(minY, b.Bottom())
		maxX = max(maxX, b.Right())
		maxY = max(maxY, b.Top())
	}
	return minX, minY, maxX, maxY
}

// LethalCount returns the number of death-plane boxes
func (l *Level) LethalCount() int {
	n := 0
	for _, b := range l.Boxes {
		if b.Lethal {
			n++
		}
	}
	return n
}
