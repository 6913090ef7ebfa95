package pool

import (
	"fmt"
)

// PadSlotCount is the number of scratch words reserved at the end of every frame. It is sized
// for the largest handle kind, so kinds needing a little extra state keep it in the frame
// instead of growing the payload type.
const PadSlotCount = 4

// FrameID is the generation-checked identity of a pooled frame. It packs the frame's slot
// index with the generation the slot was on when the frame was handed out, so an identity
// issued before a frame was freed will never resolve to the frame's next occupant.
type FrameID uint64

// NoFrame is the FrameID of frames that are not tracked by any pool
const NoFrame FrameID = 0

func newFrameID(index int, generation uint32) FrameID {
	return FrameID(uint64(index+1)<<32 | uint64(generation))
}

func (id FrameID) index() int         { return int(id>>32) - 1 }
func (id FrameID) generation() uint32 { return uint32(id) }

func (id FrameID) String() string {
	if id == NoFrame {
		return "NoFrame"
	}

	return fmt.Sprintf("%d@%d", id.index(), id.generation())
}

type frameState byte

const (
	frameStateNone frameState = iota
	frameStateLive
	frameStateFree
	frameStatePlaced
)

var frameStateMapping = map[frameState]string{
	frameStateNone:   "frameStateNone",
	frameStateLive:   "frameStateLive",
	frameStateFree:   "frameStateFree",
	frameStatePlaced: "frameStatePlaced",
}

func (s frameState) String() string {
	return frameStateMapping[s]
}

type frameLink[T any] struct {
	prev *Frame[T]
	next *Frame[T]
}

// Frame is the storage unit handed out by a Pool. The list link used for pool bookkeeping
// comes first, then the payload, then the scratch padding, and a frame never moves once it
// has been allocated. Frames are only ever obtained from Pool.NewFrame or Place.
type Frame[T any] struct {
	link    frameLink[T]
	payload T
	// Padding is scratch space for the payload's kind-specific state
	Padding [PadSlotCount]uint64

	id    FrameID
	owner *Pool[T]
	zone  *Zone[T]
	state frameState

	// serial orders frames by the time they were handed out
	serial uint64
}

// Payload returns the payload stored in this frame. The pointer is stable for the lifetime
// of the frame.
func (f *Frame[T]) Payload() *T { return &f.payload }

func (f *Frame[T]) ID() FrameID    { return f.id }
func (f *Frame[T]) Pool() *Pool[T] { return f.owner }
func (f *Frame[T]) Zone() *Zone[T] { return f.zone }
func (f *Frame[T]) IsLive() bool   { return f.state == frameStateLive || f.state == frameStatePlaced }
func (f *Frame[T]) IsPlaced() bool { return f.state == frameStatePlaced }

// Face returns the externally-issued identity for this frame
func (f *Frame[T]) Face() Face[T] {
	if f.state == frameStatePlaced {
		return Face[T]{frame: f}
	}

	return Face[T]{id: f.id, owner: f.owner}
}

func (f *Frame[T]) reset() {
	var empty T
	f.payload = empty
	f.Padding = [PadSlotCount]uint64{}
	f.link.prev = nil
	f.link.next = nil
	f.zone = nil
}
