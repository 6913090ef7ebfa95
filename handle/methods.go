package handle

import (
	"github.com/vkngwrapper/mork/env"
	"github.com/vkngwrapper/mork/mdb"
)

func fail(ev *env.Env, err error) (mdb.Result, error) {
	if ev != nil {
		ev.Report(err)
	}

	return mdb.ResultFromError(err), err
}

// IsFrozen reports whether the wrapped object refuses mutation. The handle and the object must
// both be open.
func (h *Handle) IsFrozen(mev mdb.Env) (bool, mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, false)
	if err != nil {
		return false, mdb.ResultFromError(err), err
	}

	ev.Logger().Debug("Handle::IsFrozen")
	return h.object.AsNode().IsFrozen(), mdb.ResultSuccess, nil
}

// GetFactory returns the environment's factory with a new strong reference that the caller
// must cut
func (h *Handle) GetFactory(mev mdb.Env) (mdb.Factory, mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return nil, mdb.ResultFromError(err), err
	}

	ev.Logger().Debug("Handle::GetFactory")

	factory := ev.Factory()
	if factory == nil {
		res, err := fail(ev, ErrNilFactory)
		return nil, res, err
	}

	res, err := factory.AddStrongRef(mev)
	if err != nil {
		ev.Report(err)
		return nil, res, err
	}

	return factory, mdb.ResultSuccess, nil
}

// GetWeakRefCount returns the number of weak-only references to the handle
func (h *Handle) GetWeakRefCount(mev mdb.Env) (int, mdb.Result, error) {
	_, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return 0, mdb.ResultFromError(err), err
	}

	return h.Node.WeakRefsOnly(), mdb.ResultSuccess, nil
}

// GetStrongRefCount returns the number of strong references to the handle
func (h *Handle) GetStrongRefCount(mev mdb.Env) (int, mdb.Result, error) {
	_, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return 0, mdb.ResultFromError(err), err
	}

	return h.Node.Uses(), mdb.ResultSuccess, nil
}

func (h *Handle) AddWeakRef(mev mdb.Env) (mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return mdb.ResultFromError(err), err
	}

	_, err = h.Node.AddWeakRef()
	if err != nil {
		return fail(ev, err)
	}

	return mdb.ResultSuccess, nil
}

// AddStrongRef requires an open handle, since a closed handle cannot be revived
func (h *Handle) AddStrongRef(mev mdb.Env) (mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, false)
	if err != nil {
		return mdb.ResultFromError(err), err
	}

	_, err = h.Node.AddStrongRef()
	if err != nil {
		return fail(ev, err)
	}

	return mdb.ResultSuccess, nil
}

// CutWeakRef cuts a weak reference. Cutting the last reference returns the handle's frame, and
// h must not be used afterward.
func (h *Handle) CutWeakRef(mev mdb.Env) (mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return mdb.ResultFromError(err), err
	}

	_, err = h.Node.CutWeakRef()
	if err != nil {
		return fail(ev, err)
	}

	return mdb.ResultSuccess, nil
}

// CutStrongRef cuts a strong reference. Cutting the last strong reference closes the handle,
// and cutting the last reference of any kind returns the handle's frame.
func (h *Handle) CutStrongRef(mev mdb.Env) (mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return mdb.ResultFromError(err), err
	}

	_, err = h.Node.CutStrongRef()
	if err != nil {
		return fail(ev, err)
	}

	return mdb.ResultSuccess, nil
}

// CloseObject closes the wrapped object and then the handle. Closing an already closed handle
// succeeds without doing anything.
func (h *Handle) CloseObject(mev mdb.Env) (mdb.Result, error) {
	ev, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return mdb.ResultFromError(err), err
	}

	if !h.Node.IsOpen() {
		return mdb.ResultSuccess, nil
	}

	ev.Logger().Debug("Handle::CloseObject")

	objNode := h.object.AsNode()
	if objNode.IsOpen() {
		objNode.CloseNode()
	}
	h.CloseHandle(ev)

	return mdb.ResultSuccess, nil
}

// IsOpen reports whether the handle is open. Closed handles answer false rather than failing.
func (h *Handle) IsOpen(mev mdb.Env) (bool, mdb.Result, error) {
	_, err := h.CanUseHandle(mev, false, true)
	if err != nil {
		return false, mdb.ResultFromError(err), err
	}

	return h.Node.IsOpen(), mdb.ResultSuccess, nil
}
