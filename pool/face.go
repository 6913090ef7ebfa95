package pool

import "github.com/cockroachdb/errors"

// Face is the cookie through which a frame's payload is referenced from outside. Pooled faces
// carry a FrameID and resolve through their pool's slot table, while faces of placed frames
// refer to the caller-owned storage directly.
type Face[T any] struct {
	id    FrameID
	owner *Pool[T]
	frame *Frame[T]
}

// IsNil returns true for the zero Face, which identifies no frame
func (f Face[T]) IsNil() bool {
	return f.owner == nil && f.frame == nil
}

func (f Face[T]) ID() FrameID { return f.id }

// Frame recovers the frame this face was issued for
func (f Face[T]) Frame() (*Frame[T], error) {
	if f.owner != nil {
		return f.owner.Resolve(f.id)
	}

	if f.frame == nil {
		return nil, ErrNilFace
	}
	if f.frame.state != frameStatePlaced {
		return nil, errors.Wrapf(ErrStaleFrame, "placed frame is in state %s", f.frame.state)
	}

	return f.frame, nil
}
