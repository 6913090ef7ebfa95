package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/mork/env"
	"github.com/vkngwrapper/mork/pool"
)

// NewPooledHandle constructs a handle in a fresh frame from p. The handle is returned to p
// when its last reference is cut.
func NewPooledHandle(ev *env.Env, p *Pool, object Object, magic Magic) (*Handle, error) {
	return newHandle(ev, p, nil, object, magic)
}

// NewHandleInZone constructs a handle in a fresh frame from p that belongs to zone, so it can
// be reclaimed en masse with DestroyZone
func NewHandleInZone(ev *env.Env, p *Pool, zone *Zone, object Object, magic Magic) (*Handle, error) {
	if zone == nil {
		return nil, errors.New("attempted to allocate a handle into a nil zone")
	}

	return newHandle(ev, p, zone, object, magic)
}

func newHandle(ev *env.Env, p *Pool, zone *Zone, object Object, magic Magic) (*Handle, error) {
	if p == nil {
		return nil, errors.New("attempted to allocate a handle from a nil pool")
	}
	checkConstruction(ev, object, magic)

	frame, err := p.NewFrame(zone)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = p.FreeFrame(frame)
			panic(r)
		}
	}()

	h := frame.Payload()
	h.Init(ev, frame.Face(), object, magic)

	return h, nil
}

// PlaceHandle constructs a handle in caller-owned storage. The storage must outlive the handle.
func PlaceHandle(ev *env.Env, storage *Frame, object Object, magic Magic) (*Handle, error) {
	checkConstruction(ev, object, magic)

	frame, err := pool.Place(storage)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = pool.Unplace(frame)
			panic(r)
		}
	}()

	h := frame.Payload()
	h.Init(ev, frame.Face(), object, magic)

	return h, nil
}

// FrameOf recovers the frame a live handle was constructed in
func FrameOf(h *Handle) (*Frame, error) {
	if !h.IsLive() {
		return nil, ErrBadTag
	}

	frame, err := h.face.Frame()
	if err != nil {
		return nil, err
	}

	if frame.Payload() != h {
		return nil, errors.Wrapf(pool.ErrStaleFrame, "frame %s does not hold this handle", frame.ID())
	}

	return frame, nil
}

// Padding returns the scratch words of the frame h lives in
func (h *Handle) Padding() (*[pool.PadSlotCount]uint64, error) {
	frame, err := FrameOf(h)
	if err != nil {
		return nil, err
	}

	return &frame.Padding, nil
}

// Free destroys a closed handle and returns its frame to wherever it came from. Like Destroy,
// it panics if the handle is still open. A closed handle that still has references is refused
// with ErrHandleInUse, and its frame is returned once the last reference is cut.
func (h *Handle) Free() error {
	frame, err := FrameOf(h)
	if err != nil {
		return err
	}

	if !h.Node.IsOpen() && h.Node.Refs() > 0 {
		return errors.Wrapf(ErrHandleInUse, "%s handle with %d uses and %d refs", h.magic, h.Node.Uses(), h.Node.Refs())
	}

	h.Destroy()

	if frame.IsPlaced() {
		return pool.Unplace(frame)
	}

	return frame.Pool().FreeFrame(frame)
}

// DestroyZone closes every handle still live in zone and then releases the zone. A live handle
// always has holders, so its frame is detached from the zone and returned to the pool only when
// the last reference to the handle is cut.
func DestroyZone(ev *env.Env, zone *Zone) error {
	if zone == nil {
		return errors.New("attempted to destroy a nil zone")
	}

	p := zone.Pool()
	return p.ReleaseZone(zone, func(frame *Frame) {
		h := frame.Payload()
		if !h.IsLive() {
			return
		}

		reporter := ev
		if reporter == nil {
			reporter = h.env
		}

		h.CloseHandle(reporter)

		err := p.Detach(frame)
		if err != nil {
			reporter.Report(err)
		}
	})
}
