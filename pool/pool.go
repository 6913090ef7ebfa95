// Package pool hands out fixed-layout frames from a slot table. A frame is referenced from
// outside through a Face, which resolves back to the frame by a generation-checked index
// lookup, so a stale Face never reaches a frame's next occupant.
package pool

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/mork/internal/utils"
	"github.com/vkngwrapper/mork/memutils"
	"golang.org/x/exp/slog"
)

type Pool[T any] struct {
	logger *slog.Logger
	name   string
	mutex  utils.OptionalRWMutex

	slots []*Frame[T]
	live  frameList[T]
	free  frameList[T]

	zones     *Zone[T]
	zoneCount int

	liveCount  int
	peakCount  int
	reuseCount int
	nextSerial uint64
	destroyed  bool
}

func (p *Pool[T]) Name() string { return p.name }

// LiveCount returns the number of frames currently handed out, whether tracked by a zone or
// by the pool itself
func (p *Pool[T]) LiveCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.liveCount
}

// NewZone creates a zone whose frames can later be released together with ReleaseZone
func (p *Pool[T]) NewZone(name string) (*Zone[T], error) {
	p.logger.Debug("Pool::NewZone", slog.String("Zone", name))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return nil, ErrPoolDestroyed
	}

	zone := &Zone[T]{
		name:   name,
		owner:  p,
		frames: newFrameMap[T](),
	}

	zone.next = p.zones
	if p.zones != nil {
		p.zones.prev = zone
	}
	p.zones = zone
	p.zoneCount++

	return zone, nil
}

// NewFrame hands out a frame with a zeroed payload. When zone is nil the frame is tracked by
// the pool and has an independent lifetime; otherwise it is tracked by the zone and is released
// along with it.
func (p *Pool[T]) NewFrame(zone *Zone[T]) (*Frame[T], error) {
	p.logger.Debug("Pool::NewFrame")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return nil, ErrPoolDestroyed
	}
	if zone != nil {
		if zone.owner != p {
			return nil, ErrForeignZone
		}
		if zone.released {
			return nil, errors.Wrapf(ErrZoneReleased, "zone %s", zone.name)
		}
	}

	frame := p.free.popFront()
	if frame != nil {
		if memutils.GuardChecks && !memutils.ValidateMagicValue(frame.Padding[:]) {
			panic(fmt.Sprintf("free frame %s was written to after it was freed: %+v", frame.id, memutils.CorruptionError))
		}

		frame.reset()
		frame.id = newFrameID(frame.id.index(), frame.id.generation()+1)
		p.reuseCount++
	} else {
		frame = &Frame[T]{owner: p}
		frame.id = newFrameID(len(p.slots), 1)
		p.slots = append(p.slots, frame)
	}

	frame.state = frameStateLive
	frame.serial = p.nextSerial
	p.nextSerial++

	if zone != nil {
		frame.zone = zone
		zone.frames.Put(frame.id, frame)
	} else {
		p.live.push(frame)
	}

	p.liveCount++
	if p.liveCount > p.peakCount {
		p.peakCount = p.liveCount
	}

	return frame, nil
}

// Resolve looks up the live frame a FrameID was issued for
func (p *Pool[T]) Resolve(id FrameID) (*Frame[T], error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if id == NoFrame {
		return nil, ErrNilFace
	}

	index := id.index()
	if index < 0 || index >= len(p.slots) {
		return nil, errors.Wrapf(ErrUnknownFrame, "frame %s in pool %s", id, p.name)
	}

	frame := p.slots[index]
	if frame.id != id || frame.state != frameStateLive {
		return nil, errors.Wrapf(ErrStaleFrame, "frame %s in pool %s is now %s", id, p.name, frame.id)
	}

	return frame, nil
}

// FreeFrame returns a live frame to the pool. The payload is zeroed, and the frame's slot
// moves to a new generation the next time it is handed out.
func (p *Pool[T]) FreeFrame(frame *Frame[T]) error {
	p.logger.Debug("Pool::FreeFrame")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.freeAfterLock(frame)
}

func (p *Pool[T]) freeAfterLock(frame *Frame[T]) error {
	if frame == nil {
		return errors.New("attempted to free a nil frame")
	}
	if frame.owner != p {
		return ErrForeignFrame
	}
	if frame.state != frameStateLive {
		return errors.Wrapf(ErrFrameNotLive, "frame %s is in state %s", frame.id, frame.state)
	}

	if frame.zone != nil {
		frame.zone.frames.Delete(frame.id)
	} else {
		p.live.remove(frame)
	}

	frame.reset()
	memutils.WriteMagicValue(frame.Padding[:])
	frame.state = frameStateFree
	p.free.push(frame)
	p.liveCount--

	memutils.DebugValidate(&p.live)
	memutils.DebugValidate(&p.free)

	return nil
}

// ReleaseZone frees every frame in the zone and retires it. visit, when provided, is called for
// each frame before it is freed, in allocation order. The pool is not locked while visit runs,
// so visit may free the frame itself or Detach it to keep it alive past the zone.
func (p *Pool[T]) ReleaseZone(zone *Zone[T], visit func(frame *Frame[T])) error {
	if zone == nil {
		return errors.New("attempted to release a nil zone")
	}

	p.logger.Debug("Pool::ReleaseZone", slog.String("Zone", zone.name))

	p.mutex.Lock()
	if zone.owner != p {
		p.mutex.Unlock()
		return ErrForeignZone
	}
	if zone.released {
		p.mutex.Unlock()
		return errors.Wrapf(ErrZoneReleased, "zone %s", zone.name)
	}

	frames := zone.framesAfterLock()
	zone.released = true
	p.mutex.Unlock()

	for _, frame := range frames {
		id := frame.id
		if visit != nil {
			visit(frame)
		}

		err := p.freeZoneFrame(zone, frame, id)
		if err != nil {
			return err
		}
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	next := zone.next
	if zone.next != nil {
		zone.next.prev = zone.prev
	}
	if zone.prev != nil {
		zone.prev.next = next
	}
	if p.zones == zone {
		p.zones = next
	}
	zone.prev = nil
	zone.next = nil
	p.zoneCount--

	return nil
}

// Detach moves a live zone frame out of its zone and into the pool's own live list, so that
// it is no longer freed along with the zone. It is meant for ReleaseZone visitors that find a
// frame still in use.
func (p *Pool[T]) Detach(frame *Frame[T]) error {
	if frame == nil {
		return errors.New("attempted to detach a nil frame")
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if frame.owner != p {
		return ErrForeignFrame
	}
	if frame.state != frameStateLive {
		return errors.Wrapf(ErrFrameNotLive, "frame %s is in state %s", frame.id, frame.state)
	}
	if frame.zone == nil {
		return nil
	}

	p.logger.Debug("Pool::Detach", slog.String("Zone", frame.zone.name), slog.String("Frame", frame.id.String()))

	frame.zone.frames.Delete(frame.id)
	frame.zone = nil
	p.live.push(frame)

	return nil
}

func (p *Pool[T]) freeZoneFrame(zone *Zone[T], frame *Frame[T], id FrameID) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// visit may have freed the frame already, and the slot may even have been handed out again
	if frame.state != frameStateLive || frame.zone != zone || frame.id != id {
		return nil
	}

	return p.freeAfterLock(frame)
}

// Destroy retires the pool. It fails, logging every outstanding frame, if any frame is still live.
func (p *Pool[T]) Destroy() error {
	p.logger.Debug("Pool::Destroy")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return ErrPoolDestroyed
	}

	if p.liveCount > 0 {
		for frame := p.live.head; frame != nil; frame = frame.link.next {
			p.logUnreleasedFrame(frame)
		}
		for zone := p.zones; zone != nil; zone = zone.next {
			for _, frame := range zone.framesAfterLock() {
				p.logUnreleasedFrame(frame)
			}
		}

		return errors.Errorf("the pool still has %d live frames that remain unfreed", p.liveCount)
	}

	for zone := p.zones; zone != nil; zone = zone.next {
		zone.released = true
	}

	p.zones = nil
	p.zoneCount = 0
	p.slots = nil
	p.free = frameList[T]{}
	p.destroyed = true

	return nil
}

func (p *Pool[T]) logUnreleasedFrame(frame *Frame[T]) {
	zoneName := "none"
	if frame.zone != nil {
		zoneName = frame.zone.name
	}

	p.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED FRAME] unfreed frame",
		slog.String("id", frame.id.String()),
		slog.String("zone", zoneName),
	)
}

// Validate performs internal consistency checks across the pool's lists, zones, and slot table
func (p *Pool[T]) Validate() error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	err := p.live.Validate()
	if err != nil {
		return errors.Wrap(err, "live frame list")
	}
	err = p.free.Validate()
	if err != nil {
		return errors.Wrap(err, "free frame list")
	}

	zoneFrames := 0
	zoneCount := 0
	for zone := p.zones; zone != nil; zone = zone.next {
		zoneCount++
		zoneFrames += zone.frames.Count()
	}

	if zoneCount != p.zoneCount {
		return errors.Errorf("the pool lists %d zones but %d are linked", p.zoneCount, zoneCount)
	}
	if p.live.count+zoneFrames != p.liveCount {
		return errors.Errorf("the pool counts %d live frames but tracks %d", p.liveCount, p.live.count+zoneFrames)
	}
	if p.liveCount+p.free.count != len(p.slots) {
		return errors.Errorf("the pool has %d slots but %d live and %d free frames", len(p.slots), p.liveCount, p.free.count)
	}

	for index, frame := range p.slots {
		if frame.id.index() != index {
			return errors.Errorf("frame %s is stored in slot %d", frame.id, index)
		}
		if frame.owner != p {
			return errors.Errorf("frame %s does not point back to its pool", frame.id)
		}
	}

	return nil
}

// CheckCorruption verifies the guard words written over every free frame. Guard words are only
// written when memutils is built with the debug_mem_utils build tag.
func (p *Pool[T]) CheckCorruption() error {
	p.logger.Debug("Pool::CheckCorruption")

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	for frame := p.free.head; frame != nil; frame = frame.link.next {
		if !memutils.ValidateMagicValue(frame.Padding[:]) {
			return errors.Wrapf(memutils.CorruptionError, "free frame %s", frame.id)
		}
	}

	return nil
}

// CalculateStatistics overwrites stats with this pool's current statistics
func (p *Pool[T]) CalculateStatistics(stats *memutils.Statistics) {
	stats.Clear()

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	stats.ZoneCount = p.zoneCount
	stats.FrameCount = len(p.slots)
	stats.LiveFrameCount = p.liveCount
	stats.FreeFrameCount = p.free.count
	stats.ZoneFrameCount = p.liveCount - p.live.count
	stats.PeakFrameCount = p.peakCount
	stats.ReuseCount = p.reuseCount
}

// AddStatistics sums this pool's statistics into the provided memutils.Statistics object, so
// that totals can be gathered across several pools
func (p *Pool[T]) AddStatistics(stats *memutils.Statistics) {
	var own memutils.Statistics
	p.CalculateStatistics(&own)

	stats.AddStatistics(&own)
}

// BuildStatsString produces a json document describing this pool. When detailed is true, the
// identity of every live frame is included, grouped by zone.
func (p *Pool[T]) BuildStatsString(detailed bool) string {
	var stats memutils.Statistics
	p.CalculateStatistics(&stats)

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	writer := jwriter.NewWriter()
	obj := writer.Object()

	obj.Name("Name").String(p.name)

	statsObj := obj.Name("Statistics").Object()
	statsObj.Name("Zones").Int(stats.ZoneCount)
	statsObj.Name("Frames").Int(stats.FrameCount)
	statsObj.Name("LiveFrames").Int(stats.LiveFrameCount)
	statsObj.Name("FreeFrames").Int(stats.FreeFrameCount)
	statsObj.Name("ZoneFrames").Int(stats.ZoneFrameCount)
	statsObj.Name("PeakFrames").Int(stats.PeakFrameCount)
	statsObj.Name("Reuses").Int(stats.ReuseCount)
	statsObj.End()

	if detailed {
		liveArray := obj.Name("PoolFrames").Array()
		for frame := p.live.head; frame != nil; frame = frame.link.next {
			liveArray.String(frame.id.String())
		}
		liveArray.End()

		zonesObj := obj.Name("Zones").Object()
		for zone := p.zones; zone != nil; zone = zone.next {
			p.printZone(zone, &zonesObj)
		}
		zonesObj.End()
	}

	obj.End()

	return string(writer.Bytes())
}

func (p *Pool[T]) printZone(zone *Zone[T], json *jwriter.ObjectState) {
	zoneObj := json.Name(zone.name).Object()
	defer zoneObj.End()

	frames := zone.framesAfterLock()
	zoneObj.Name("Frames").Int(len(frames))

	idArray := zoneObj.Name("FrameIDs").Array()
	defer idArray.End()

	for _, frame := range frames {
		idArray.String(frame.id.String())
	}
}
