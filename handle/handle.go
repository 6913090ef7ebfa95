// Package handle provides the indirection layer between the public object API and the internal
// objects behind it. A Handle wraps an internal object and validates itself, its environment,
// and its wrapped object before any operation is delegated to the object.
package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/env"
	"github.com/vkngwrapper/mork/mdb"
	"github.com/vkngwrapper/mork/node"
	"github.com/vkngwrapper/mork/pool"
	"golang.org/x/exp/slog"
)

// Tag is the sentinel carried by every live handle. Memory without it is rejected before any
// other field is trusted.
const Tag uint32 = 0x68416E44 // ascii 'hAnD'

type Frame = pool.Frame[Handle]
type Face = pool.Face[Handle]
type Pool = pool.Pool[Handle]
type Zone = pool.Zone[Handle]

// Handle is the public face of an internal object. Handles are only ever constructed inside a
// frame, through NewPooledHandle, NewHandleInZone, or PlaceHandle.
type Handle struct {
	node.Node

	tag    uint32
	env    *env.Env
	face   Face
	object Object
	magic  Magic
}

var _ mdb.Object = &Handle{}

// checkConstruction panics unless a handle could be constructed over object. The allocation
// entry points run it before taking a frame, so a rejected construction leaves nothing behind.
func checkConstruction(ev *env.Env, object Object, magic Magic) {
	if ev == nil {
		panic(errors.AssertionFailedf("attempted to init a handle with a nil environment"))
	}
	if object == nil {
		panic(errors.AssertionFailedf("attempted to init a handle with a nil object"))
	}
	if !magic.Valid() {
		panic(errors.AssertionFailedf("attempted to init a handle with invalid magic %#08x", uint32(magic)))
	}

	objNode := object.AsNode()
	if objNode == nil || !objNode.IsNode() {
		panic(errors.WithAssertionFailure(ErrNonNodeObject))
	}
}

// Init constructs the handle in place. The handle takes a strong reference on object, and
// slots itself weakly into object when object keeps a handle slot. Init panics on a nil
// environment, face, or object, on a non-node object, on an invalid magic, and when called on
// a live handle. A panic after the object was retained gives the reference back first.
func (h *Handle) Init(ev *env.Env, face Face, object Object, magic Magic) {
	checkConstruction(ev, object, magic)
	if face.IsNil() {
		panic(errors.AssertionFailedf("attempted to init a handle with a nil face"))
	}
	if h.tag == Tag && !h.Node.IsDead() {
		panic(errors.AssertionFailedf("attempted to init a %s handle that is still live", h.magic))
	}

	objNode := object.AsNode()

	h.Node.Init(node.DerivedHandle, node.UsagePool, h)
	h.tag = Tag
	h.env = ev
	h.face = face
	h.magic = magic

	_, err := objNode.AddStrongRef()
	if err != nil {
		h.tag = 0
		panic(errors.WithAssertionFailure(errors.Wrap(err, "could not retain wrapped object")))
	}
	h.object = object

	if slotter, ok := object.(handleSlotter); ok {
		slot := slotter.HandleSlot()

		err = AssignWeak(slot, h)
		if err != nil {
			if *slot == h {
				*slot = nil
			}
			_, _ = objNode.CutStrongRef()
			h.object = nil
			h.tag = 0

			panic(errors.WithAssertionFailure(errors.Wrap(err, "could not slot handle into wrapped object")))
		}
	}
}

func (h *Handle) Magic() Magic  { return h.magic }
func (h *Handle) Env() *env.Env { return h.env }
func (h *Handle) Face() Face    { return h.face }

// IsLive returns true if the memory behind h still carries the handle tag
func (h *Handle) IsLive() bool { return h != nil && h.tag == Tag }

// CloseHandle releases the handle's strong reference to its wrapped object and shuts the
// handle. Closing a handle that is not open does nothing. Failures cutting references are
// reported to ev, or to the handle's own environment when ev is nil.
func (h *Handle) CloseHandle(ev *env.Env) {
	if h == nil || h.tag != Tag || !h.Node.IsOpen() {
		return
	}
	if ev == nil {
		ev = h.env
	}

	ev.Logger().Debug("Handle::CloseHandle", slog.String("magic", h.magic.String()))
	h.Node.MarkClosing()

	slotted := false
	if slotter, ok := h.object.(handleSlotter); ok {
		slot := slotter.HandleSlot()
		if *slot == h {
			*slot = nil
			slotted = true
		}
	}

	if h.object != nil {
		_, err := h.object.AsNode().CutStrongRef()
		if err != nil {
			ev.Report(err)
		}
	}

	h.Node.MarkShut()

	// cutting the object's weak reference to us may release this handle, so it goes last
	if slotted {
		_, err := h.Node.CutWeakRef()
		if err != nil {
			ev.Report(err)
		}
	}
}

// CloseNode is the handle's generic close hook
func (h *Handle) CloseNode() {
	h.CloseHandle(h.env)
}

// ReleaseNode returns the handle's frame once the last reference to the handle is gone
func (h *Handle) ReleaseNode() {
	ev := h.env

	err := h.Free()
	if err != nil && ev != nil {
		ev.Report(err)
	}
}

// Destroy is the final teardown of a handle that has already been closed. Destroying a handle
// that is still open is a fatal programming error. Destroying memory that is not a live
// handle does nothing.
func (h *Handle) Destroy() {
	if h == nil || h.tag != Tag {
		return
	}

	if h.Node.IsOpen() {
		panic(errors.WithAssertionFailure(errors.Wrapf(ErrUseAfterClose, "%s handle with %d uses", h.magic, h.Node.Uses())))
	}

	h.Node.MarkDead()
	h.tag = 0
	h.env = nil
	h.object = nil
}
