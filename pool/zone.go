package pool

import (
	"sort"

	"github.com/dolthub/swiss"
)

// Zone groups frames from a single pool so that they can be released together. Frames
// allocated into a zone are tracked by the zone rather than the pool's own live list.
type Zone[T any] struct {
	name     string
	owner    *Pool[T]
	frames   *swiss.Map[FrameID, *Frame[T]]
	released bool

	prev *Zone[T]
	next *Zone[T]
}

func (z *Zone[T]) Name() string     { return z.name }
func (z *Zone[T]) Pool() *Pool[T]   { return z.owner }
func (z *Zone[T]) IsReleased() bool { return z.released }

// Count returns the number of live frames in this zone
func (z *Zone[T]) Count() int {
	z.owner.mutex.RLock()
	defer z.owner.mutex.RUnlock()

	return z.frames.Count()
}

// Frames returns the live frames in this zone, in allocation order
func (z *Zone[T]) Frames() []*Frame[T] {
	z.owner.mutex.RLock()
	defer z.owner.mutex.RUnlock()

	return z.framesAfterLock()
}

func (z *Zone[T]) framesAfterLock() []*Frame[T] {
	frames := make([]*Frame[T], 0, z.frames.Count())
	z.frames.Iter(func(id FrameID, frame *Frame[T]) bool {
		frames = append(frames, frame)
		return false
	})

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].serial < frames[j].serial
	})

	return frames
}

func newFrameMap[T any]() *swiss.Map[FrameID, *Frame[T]] {
	return swiss.NewMap[FrameID, *Frame[T]](8)
}
