package handle

import "github.com/vkngwrapper/mork/node"

// Object is an internal object that a handle can wrap. Handles only ever reach an object's
// behavior through GetGoodHandleObject.
type Object interface {
	AsNode() *node.Node
}

// handleSlotter is implemented by objects that keep a weak reference to the handle currently
// issued for them
type handleSlotter interface {
	HandleSlot() **Handle
}

// ObjectBase is embedded by internal objects that handles wrap. It keeps a weak reference to
// the object's current handle, which the handle clears when it closes.
type ObjectBase struct {
	node.Node

	handle *Handle
}

// InitObject prepares the object's node. owner is the embedding object's close hook and may be nil.
func (o *ObjectBase) InitObject(usage node.Usage, owner node.Closer) {
	o.Node.Init(node.DerivedObject, usage, owner)
	o.handle = nil
}

func (o *ObjectBase) HandleSlot() **Handle { return &o.handle }

// Handle returns the handle currently issued for this object, if any
func (o *ObjectBase) Handle() *Handle { return o.handle }
