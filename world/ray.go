package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/player/probe"
)

// Raycast traces the segment from start to end and returns the nearest box or item it hits. Solid boxes
// win ties against items.
func (w *World) Raycast(start, end mgl32.Vec3) (probe.Sighting, bool) {
	w.RLock()
	defer w.RUnlock()

	var (
		hit   probe.Sighting
		found bool
		dist  = float32(math32.MaxFloat32)
	)
	check := func(bb cube.BBox, name string, item bool) {
		result, ok := trace.BBoxIntercept(bb, start, end)
		if !ok {
			return
		}
		if d := start.Sub(result.Position()).LenSqr(); d < dist {
			dist, found = d, true
			hit = probe.Sighting{Name: name, Item: item, Pos: result.Position()}
		}
	}
	for _, bb := range w.boxes {
		check(bb, "", false)
	}
	for _, it := range w.items {
		check(it.BBox, it.Name, true)
	}
	return hit, found
}
