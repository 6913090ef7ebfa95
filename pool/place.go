package pool

import "github.com/cockroachdb/errors"

// Place prepares caller-owned storage as a frame, with no pool bookkeeping. The caller owns the
// storage's lifetime and must call Unplace before reusing it.
func Place[T any](storage *Frame[T]) (*Frame[T], error) {
	if storage == nil {
		return nil, errors.New("attempted to place a frame into nil storage")
	}
	if storage.owner != nil {
		return nil, errors.Wrapf(ErrForeignFrame, "storage is frame %s of pool %s", storage.id, storage.owner.name)
	}
	if storage.state == frameStatePlaced {
		return nil, errors.New("attempted to place a frame into storage that is already in use")
	}

	storage.reset()
	storage.id = NoFrame
	storage.state = frameStatePlaced

	return storage, nil
}

// Unplace retires a frame created by Place, zeroing its payload
func Unplace[T any](frame *Frame[T]) error {
	if frame == nil {
		return errors.New("attempted to unplace a nil frame")
	}
	if frame.state != frameStatePlaced {
		return errors.Wrapf(ErrFrameNotLive, "frame is in state %s", frame.state)
	}

	frame.reset()
	frame.state = frameStateNone

	return nil
}
