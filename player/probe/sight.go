package probe

import "github.com/go-gl/mathgl/mgl32"

// Sighting is the first thing a view ray hit.
type Sighting struct {
	// Name is the name of the item hit. It is empty for solid geometry.
	Name string
	// Item is true if the ray hit an item rather than solid geometry.
	Item bool
	// Pos is the point the ray hit.
	Pos mgl32.Vec3
}

// Sight casts view rays from the eyes of a character, for item detection.
type Sight interface {
	// Look casts a ray of the given length along dir. It returns false if the ray hit nothing.
	Look(dir mgl32.Vec3, length float32) (Sighting, bool)
}
