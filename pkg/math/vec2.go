package math

import "math"

// Vec2 is a 2D vector, mostly used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Fract wraps both components into [0, 1).
func (v Vec2) Fract() Vec2 {
	return Vec2{Fract(v.X), Fract(v.Y)}
}

// Array returns the components in vertex attribute order.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// Fract returns the fractional part of f wrapped into [0, 1).
func Fract(f float32) float32 {
	r := f - float32(math.Floor(float64(f)))
	if r >= 1 {
		return 0
	}
	return r
}
