package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/env"
	"github.com/vkngwrapper/mork/mdb"
)

// GetGoodHandleObject is the single gate through which a handle's wrapped object is reached.
// Checks run in a fixed order and the first failure wins: the handle tag, the handle's own
// access state, the magic (skipped for MagicAny), the wrapped object's presence, its node
// identity, and finally its access state. Failures are reported to ev when ev is not nil.
//
// With closedOkay, a handle that is closing or shut still passes, as does an object that is
// no longer open. wantMutable additionally requires the object to be open and mutable.
func (h *Handle) GetGoodHandleObject(ev *env.Env, wantMutable bool, expected Magic, closedOkay bool) (Object, error) {
	object, err := h.goodHandleObject(wantMutable, expected, closedOkay)
	if err != nil && ev != nil {
		ev.Report(err)
	}

	return object, err
}

func (h *Handle) goodHandleObject(wantMutable bool, expected Magic, closedOkay bool) (Object, error) {
	if h == nil || h.tag != Tag {
		return nil, ErrBadTag
	}

	if !h.Node.IsOpen() && !(closedOkay && h.Node.IsShutting()) {
		return nil, errors.Wrapf(ErrHandleDown, "%s handle is %s", h.magic, h.Node.Access())
	}

	if expected != MagicAny && h.magic != expected {
		return nil, errors.Wrapf(ErrBadMagic, "expected %s handle but found %s (%#08x)", expected, h.magic, uint32(h.magic))
	}

	if h.object == nil {
		return nil, ErrNilHandleObject
	}

	objNode := h.object.AsNode()
	if objNode == nil || !objNode.IsNode() {
		return nil, ErrNonNodeObject
	}

	if wantMutable {
		if !objNode.IsOpen() || !objNode.IsMutable() {
			return nil, errors.Wrapf(ErrNonOpenObject, "object is %s and mutable=%t", objNode.Access(), objNode.IsMutable())
		}
	} else if !closedOkay && !objNode.IsOpen() {
		return nil, errors.Wrapf(ErrNonOpenObject, "object is %s", objNode.Access())
	}

	return h.object, nil
}

// CanUseHandle validates an externally-typed environment and then the handle itself, accepting
// a handle of any kind. It returns the internal environment on success.
func (h *Handle) CanUseHandle(mev mdb.Env, wantMutable bool, closedOkay bool) (*env.Env, error) {
	ev, err := env.FromMdbEnv(mev)
	if err != nil {
		return nil, err
	}

	_, err = h.GetGoodHandleObject(ev, wantMutable, MagicAny, closedOkay)
	if err != nil {
		return nil, err
	}

	return ev, nil
}
