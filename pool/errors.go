package pool

import "github.com/cockroachdb/errors"

var (
	ErrNilFace       = errors.New("face does not identify a frame")
	ErrUnknownFrame  = errors.New("frame id was not issued by this pool")
	ErrStaleFrame    = errors.New("frame id refers to a frame that has since been freed")
	ErrForeignFrame  = errors.New("frame does not belong to this pool")
	ErrForeignZone   = errors.New("zone does not belong to this pool")
	ErrFrameNotLive  = errors.New("frame is not live")
	ErrZoneReleased  = errors.New("zone has already been released")
	ErrPoolDestroyed = errors.New("pool has been destroyed")
)
