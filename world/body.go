package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player/probe"
)

const (
	// groundProbeDepth is how far below the feet a box may be while still supporting the body.
	groundProbeDepth = 0.01
	// clipEpsilon is the overlap below which two boxes are considered to only touch.
	clipEpsilon = 1e-5
	// eyeDepth is how far below the top of the body its eyes sit.
	eyeDepth = 0.1
)

// Body is a box shaped character body in a World. Its position is the centre of the bottom face.
type Body struct {
	w *World

	pos           mgl32.Vec3
	width, height float32
	grounded      bool
}

// NewBody places a body of the given size in w. Ground contact is sampled straight away.
func NewBody(w *World, pos mgl32.Vec3, width, height float32) *Body {
	b := &Body{w: w, pos: pos, width: width, height: height}
	b.grounded = b.supported()
	return b
}

// Position returns the feet position of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// Grounded returns true if the body rests on a box.
func (b *Body) Grounded() bool {
	return b.grounded
}

// Height returns the current height of the body.
func (b *Body) Height() float32 {
	return b.height
}

// SetHeight changes the height of the body, for example when it crouches. The feet stay in place.
func (b *Body) SetHeight(height float32) {
	b.height = height
}

// Eye returns the eye position of the body.
func (b *Body) Eye() mgl32.Vec3 {
	return b.pos.Add(mgl32.Vec3{0, b.height - eyeDepth, 0})
}

// Look casts a view ray from the eyes of the body.
func (b *Body) Look(dir mgl32.Vec3, length float32) (probe.Sighting, bool) {
	eye := b.Eye()
	return b.w.Raycast(eye, eye.Add(dir.Mul(length)))
}

// BBox returns the collision box of the body.
func (b *Body) BBox() cube.BBox {
	return b.boxAt(b.pos)
}

func (b *Body) boxAt(pos mgl32.Vec3) cube.BBox {
	h := b.width / 2
	return cube.Box(
		pos.X()-h, pos.Y(), pos.Z()-h,
		pos.X()+h, pos.Y()+b.height, pos.Z()+h,
	)
}

// MoveAndSlide moves the body by vel * dt, clipping the motion against the world one axis at a time in
// Y, X, Z order. Velocity components on blocked axes are zeroed in the returned velocity. Ground contact
// is updated afterwards.
func (b *Body) MoveAndSlide(vel mgl32.Vec3, dt float32) mgl32.Vec3 {
	delta := vel.Mul(dt)
	bb := b.BBox()
	boxes := b.w.NearbyBoxes(sweep(bb, delta))

	for _, axis := range [3]int{1, 0, 2} {
		d := delta[axis]
		if d == 0 {
			continue
		}
		for _, box := range boxes {
			d = clipAxis(box, bb, axis, d)
		}
		if d != delta[axis] {
			vel[axis] = 0
		}
		var move mgl32.Vec3
		move[axis] = d
		bb = bb.Translate(move)
	}

	b.pos = mgl32.Vec3{
		(bb.Min().X() + bb.Max().X()) * 0.5,
		bb.Min().Y(),
		(bb.Min().Z() + bb.Max().Z()) * 0.5,
	}
	b.grounded = vel.Y() <= 0 && b.supported()
	return vel
}

// supported returns true if a box sits directly below the feet of the body.
func (b *Body) supported() bool {
	h := b.width / 2
	feet := cube.Box(
		b.pos.X()-h, b.pos.Y()-groundProbeDepth, b.pos.Z()-h,
		b.pos.X()+h, b.pos.Y(), b.pos.Z()+h,
	)
	return cube.AnyIntersections(b.w.NearbyBoxes(feet), feet)
}

// sweep returns the box covering bb over the whole motion delta.
func sweep(bb cube.BBox, delta mgl32.Vec3) cube.BBox {
	lo, hi := bb.Min(), bb.Max()
	for i := range 3 {
		if delta[i] < 0 {
			lo[i] += delta[i]
		} else {
			hi[i] += delta[i]
		}
	}
	return cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

// clipAxis limits the motion d of moving along axis so that it does not enter stationary. Boxes that do
// not overlap on the other two axes never limit the motion.
func clipAxis(stationary, moving cube.BBox, axis int, d float32) float32 {
	for i := range 3 {
		if i == axis {
			continue
		}
		if moving.Max()[i]-stationary.Min()[i] <= clipEpsilon || stationary.Max()[i]-moving.Min()[i] <= clipEpsilon {
			return d
		}
	}
	if d > 0 && moving.Max()[axis] <= stationary.Min()[axis]+clipEpsilon {
		return math32.Min(d, math32.Max(0, stationary.Min()[axis]-moving.Max()[axis]))
	}
	if d < 0 && moving.Min()[axis] >= stationary.Max()[axis]-clipEpsilon {
		return math32.Max(d, math32.Min(0, stationary.Max()[axis]-moving.Min()[axis]))
	}
	return d
}
