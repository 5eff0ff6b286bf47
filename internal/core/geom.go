// Package core provides fundamental types and utilities for the racer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation and host logic pure and testable.
package core

// Vec2 is a point or offset in world space. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box described by its center and half extents.
// Hosts use it to detect overlaps between entities.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centered at c with the given full width and height.
func NewBox(c Vec2, w, h float64) Box {
	return Box{Center: c, Half: Vec2{X: w / 2, Y: h / 2}}
}

// Intersects returns true if the boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	dx := b.Center.X - o.Center.X
	dy := b.Center.Y - o.Center.Y
	if AbsF(dx) >= b.Half.X+o.Half.X {
		return false
	}
	if AbsF(dy) >= b.Half.Y+o.Half.Y {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
