package handle

import "github.com/vkngwrapper/mork/node"

// AssignWeak replaces the handle held weakly in slot with next. Either may be nil.
func AssignWeak(slot **Handle, next *Handle) error {
	return node.SlotWeak(slot, next)
}

// AssignStrong replaces the handle held strongly in slot with next. next is retained before
// the old occupant is released, so assigning a slot its own occupant is safe.
func AssignStrong(slot **Handle, next *Handle) error {
	return node.SlotStrong(slot, next)
}
