package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/sasha-s/go-deadlock"
)

// World is a static collision world made of axis-aligned boxes. It is the physics collaborator used by
// the simulator and the tests; a host engine would answer the same queries from its own scene.
type World struct {
	boxes []cube.BBox
	items []Item

	deadlock.RWMutex
}

// New returns a world holding the boxes passed.
func New(boxes ...cube.BBox) *World {
	return &World{boxes: append([]cube.BBox(nil), boxes...)}
}

// Add adds collision boxes to the world.
func (w *World) Add(boxes ...cube.BBox) {
	w.Lock()
	defer w.Unlock()

	w.boxes = append(w.boxes, boxes...)
}

// Item is a named box that view rays detect. Items do not collide.
type Item struct {
	Name string
	BBox cube.BBox
}

// AddItem adds an item to the world.
func (w *World) AddItem(name string, bb cube.BBox) {
	w.Lock()
	defer w.Unlock()

	w.items = append(w.items, Item{Name: name, BBox: bb})
}

// Len returns the number of boxes in the world.
func (w *World) Len() int {
	w.RLock()
	defer w.RUnlock()

	return len(w.boxes)
}

// NearbyBoxes returns every box that intersects bb, or touches it.
func (w *World) NearbyBoxes(bb cube.BBox) []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	search := bb.Grow(0.01)
	var list []cube.BBox
	for _, box := range w.boxes {
		if box.IntersectsWith(search) {
			list = append(list, box)
		}
	}
	return list
}
