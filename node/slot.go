package node

// Referent is any comparable reference to a structure embedding a Node, usually a pointer.
// The zero value of the reference is treated as an empty slot.
type Referent interface {
	comparable
	AsNode() *Node
}

// SlotStrong replaces the occupant of a strongly-held slot. The new occupant is retained before
// the old one is released, so reassigning a slot to its own contents never lets the occupant's
// strong count touch zero.
func SlotStrong[T Referent](slot *T, next T) error {
	var empty T

	if next != empty {
		_, err := next.AsNode().AddStrongRef()
		if err != nil {
			return err
		}
	}

	old := *slot
	*slot = next

	if old != empty {
		_, err := old.AsNode().CutStrongRef()
		if err != nil {
			return err
		}
	}

	return nil
}

// SlotWeak replaces the occupant of a weakly-held slot, retaining the new occupant before the
// old one is released
func SlotWeak[T Referent](slot *T, next T) error {
	var empty T

	if next != empty {
		_, err := next.AsNode().AddWeakRef()
		if err != nil {
			return err
		}
	}

	old := *slot
	*slot = next

	if old != empty {
		_, err := old.AsNode().CutWeakRef()
		if err != nil {
			return err
		}
	}

	return nil
}
