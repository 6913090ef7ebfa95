package pool

import (
	"github.com/cockroachdb/errors"
)

// frameList is an intrusive doubly-linked list threaded through the link at the front of
// each frame. A frame is on at most one list at a time.
type frameList[T any] struct {
	count int
	head  *Frame[T]
	tail  *Frame[T]
}

func (l *frameList[T]) Validate() error {
	declaredCount := l.count
	actualCount := 0

	var prev *Frame[T]
	for frame := l.head; frame != nil; frame = frame.link.next {
		if frame.link.prev != prev {
			return errors.Newf("frame %s has a broken back link", frame.id)
		}
		prev = frame
		actualCount++
	}

	if prev != l.tail {
		return errors.New("the list tail does not match the last frame in the list")
	}

	if declaredCount != actualCount {
		return errors.Errorf("the listed number of frames in the list (%d) does not match the actual number of frames (%d)", declaredCount, actualCount)
	}

	return nil
}

func (l *frameList[T]) push(frame *Frame[T]) {
	if l.count == 0 {
		l.head = frame
		l.tail = frame
		l.count = 1
	} else {
		frame.link.prev = l.tail
		l.tail.link.next = frame

		l.tail = frame
		l.count++
	}
}

func (l *frameList[T]) remove(frame *Frame[T]) {
	prev := frame.link.prev
	next := frame.link.next

	if prev != nil {
		prev.link.next = next
	} else {
		l.head = next
	}

	if next != nil {
		next.link.prev = prev
	} else {
		l.tail = prev
	}

	frame.link.prev = nil
	frame.link.next = nil

	l.count--
}

func (l *frameList[T]) popFront() *Frame[T] {
	frame := l.head
	if frame != nil {
		l.remove(frame)
	}

	return frame
}
