package probe

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CeilingProbe reports whether a character lacks the headroom to stand up.
type CeilingProbe interface {
	LowCeiling() bool
}

// Static is a CeilingProbe that always reports the same value.
type Static bool

// LowCeiling ...
func (s Static) LowCeiling() bool {
	return bool(s)
}

// Func adapts a plain function to a CeilingProbe.
type Func func() bool

// LowCeiling ...
func (f Func) LowCeiling() bool {
	return f()
}

// BoxSource returns the collision boxes that may intersect bb.
type BoxSource interface {
	NearbyBoxes(bb cube.BBox) []cube.BBox
}

// Positioned is anything with a feet position, usually the physics body of the character.
type Positioned interface {
	Position() mgl32.Vec3
}

// BoxProbe checks the standing box of a character against the collision boxes of a world. The ceiling is
// low when the box the character would occupy standing up intersects anything.
type BoxProbe struct {
	src  BoxSource
	body Positioned

	width, height float32
}

// NewBoxProbe returns a probe for a character with the given standing width and height.
func NewBoxProbe(src BoxSource, body Positioned, width, height float32) *BoxProbe {
	return &BoxProbe{src: src, body: body, width: width, height: height}
}

// StandingBox returns the box the character would occupy if it stood up at its current position. It is
// shrunk slightly so that touching a surface does not count.
func (p *BoxProbe) StandingBox() cube.BBox {
	pos, h := p.body.Position(), p.width/2
	return cube.Box(
		pos.X()-h, pos.Y(), pos.Z()-h,
		pos.X()+h, pos.Y()+p.height, pos.Z()+h,
	).GrowVec3(mgl32.Vec3{-0.001, -0.001, -0.001})
}

// LowCeiling ...
func (p *BoxProbe) LowCeiling() bool {
	bb := p.StandingBox()
	return cube.AnyIntersections(p.src.NearbyBoxes(bb), bb)
}
