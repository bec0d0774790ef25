package player

import (
	"fmt"

	"github.com/oomph-ac/locomotion/game"
)

// ItemEvent is the kind of an item detection event.
type ItemEvent uint8

const (
	// ItemDetected is emitted every tick the view ray rests on an item.
	ItemDetected ItemEvent = iota
	// ItemShown is emitted when the character interacts while an item is detected.
	ItemShown
	// ItemHidden is emitted when the view ray hits solid geometry, or when the character interacts with
	// no item detected.
	ItemHidden
)

// String ...
func (ev ItemEvent) String() string {
	switch ev {
	case ItemDetected:
		return "detected"
	case ItemShown:
		return "shown"
	case ItemHidden:
		return "hidden"
	}
	return fmt.Sprintf("ItemEvent(%d)", uint8(ev))
}

type itemState struct {
	name            string
	detected, shown bool
}

// detectItems casts the view ray along the current facing. A ray that hits nothing leaves the detected
// item as it is.
func (p *Player) detectItems() {
	if p.sight == nil {
		return
	}
	hit, ok := p.sight.Look(game.DirectionVector(p.frame.Yaw, p.frame.Pitch), game.ItemRayLength)
	if !ok {
		return
	}
	if hit.Item {
		p.item.name, p.item.detected = hit.Name, true
		p.Dbg.Notify(DebugModeItem, true, "item %q detected at %v", hit.Name, hit.Pos)
		p.handler.HandleItem(ItemDetected, hit.Name)
		return
	}
	p.item = itemState{}
	p.handler.HandleItem(ItemHidden, "")
}

func (p *Player) interact() {
	if p.item.detected {
		p.item.shown = true
		p.handler.HandleItem(ItemShown, p.item.name)
		return
	}
	p.item = itemState{}
	p.handler.HandleItem(ItemHidden, "")
}

// DetectedItem returns the name of the item the view ray last rested on, if any.
func (p *Player) DetectedItem() (string, bool) {
	return p.item.name, p.item.detected
}

// ItemShown returns true if the detected item was shown by an interaction and not hidden since.
func (p *Player) ItemShown() bool {
	return p.item.shown
}
