package game

import (
	"math"

	"github.com/Aditya232-rtx/bouncetales/internal/core"
)

// FRect is an axis-aligned rectangle in world coordinates.
// World units are screen cells, but positions are continuous.
type FRect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// ContainsPoint returns true if (x, y) lies inside the rectangle.
func (r FRect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// BallStyle holds the render-only properties copied from the player's skin.
type BallStyle struct {
	Color        core.Color
	PatternColor core.Color
	Texture      string
	Opacity      int
	Glow         bool
	GlowSize     float64
}

// BallParams is the explicit construction input for a ball.
// The skin is resolved into params once; a ball never reads shared state.
type BallParams struct {
	X, Y   float64
	Radius float64
	Bounce float64 // Rebound damping, 0.1..1.0
	Style  BallStyle
}

// Ball is the player-controlled bouncing ball.
type Ball struct {
	X, Y     float64 // Center position
	VX, VY   float64 // Velocity per tick
	Radius   float64
	Bounce   float64
	Grounded bool // Standing on a surface as of the last collision pass
	Style    BallStyle
}

// NewBall creates a ball from explicit parameters.
func NewBall(p BallParams) *Ball {
	return &Ball{
		X:      p.X,
		Y:      p.Y,
		Radius: p.Radius,
		Bounce: p.Bounce,
		Style:  p.Style,
	}
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return int(math.Floor(b.X))
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return int(math.Floor(b.Y))
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// CollisionSide indicates which face of a rectangle the ball hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// ResolveCircleRect tests the ball against a rectangle and, on contact,
// pushes the ball out of it. Returns the face that was hit.
// Zero-area rectangles never collide.
func ResolveCircleRect(b *Ball, r FRect) CollisionSide {
	if r.W <= 0 || r.H <= 0 {
		return CollisionNone
	}

	// Closest point on the rect to the ball center
	cx := core.ClampF(b.X, r.X, r.Right())
	cy := core.ClampF(b.Y, r.Y, r.Bottom())

	dx := b.X - cx
	dy := b.Y - cy
	d2 := dx*dx + dy*dy
	if d2 > b.Radius*b.Radius {
		return CollisionNone
	}

	if dx == 0 && dy == 0 {
		// Center is inside the rect. Push out through the nearest face.
		return resolveEmbedded(b, r)
	}

	// Push the ball out along the contact normal.
	dist := math.Sqrt(d2)
	push := b.Radius - dist
	b.X += dx / dist * push
	b.Y += dy / dist * push

	// The dominant axis of the normal decides the face.
	if math.Abs(dy) >= math.Abs(dx) {
		if dy < 0 {
			return CollisionTop
		}
		return CollisionBottom
	}
	if dx < 0 {
		return CollisionLeft
	}
	return CollisionRight
}

// resolveEmbedded handles a ball whose center lies inside the rectangle,
// which happens when a spawn point overlaps a platform or after a large step.
func resolveEmbedded(b *Ball, r FRect) CollisionSide {
	left := b.X - r.X
	right := r.Right() - b.X
	top := b.Y - r.Y
	bottom := r.Bottom() - b.Y

	min := left
	side := CollisionLeft
	if right < min {
		min = right
		side = CollisionRight
	}
	if top < min {
		min = top
		side = CollisionTop
	}
	if bottom < min {
		side = CollisionBottom
	}

	switch side {
	case CollisionLeft:
		b.X = r.X - b.Radius
	case CollisionRight:
		b.X = r.Right() + b.Radius
	case CollisionTop:
		b.Y = r.Y - b.Radius
	case CollisionBottom:
		b.Y = r.Bottom() + b.Radius
	}
	return side
}

// CircleOverlapsRect reports contact without moving the ball.
// Used for goal, water, and gem checks.
func CircleOverlapsRect(x, y, radius float64, r FRect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	cx := core.ClampF(x, r.X, r.Right())
	cy := core.ClampF(y, r.Y, r.Bottom())
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= radius*radius
}
