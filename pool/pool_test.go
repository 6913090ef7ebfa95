package pool_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/mork/memutils"
	"github.com/vkngwrapper/mork/pool"
	"golang.org/x/exp/slog"
)

type payload struct {
	value int
}

func newTestPool(t *testing.T) *pool.Pool[payload] {
	logger := slog.New(slog.NewJSONHandler(io.Discard))

	p, err := pool.New[payload](logger, pool.CreateOptions{Name: "test", InitialCapacity: 4})
	require.NoError(t, err)
	return p
}

func TestPoolCreateOptions(t *testing.T) {
	_, err := pool.New[payload](nil, pool.CreateOptions{})
	require.Error(t, err)

	logger := slog.New(slog.NewJSONHandler(io.Discard))
	_, err = pool.New[payload](logger, pool.CreateOptions{InitialCapacity: -1})
	require.Error(t, err)

	p, err := pool.New[payload](logger, pool.CreateOptions{UseMutex: true})
	require.NoError(t, err)
	require.Equal(t, "pool", p.Name())
}

func TestPoolFrameRoundTrip(t *testing.T) {
	p := newTestPool(t)

	frame, err := p.NewFrame(nil)
	require.NoError(t, err)
	require.True(t, frame.IsLive())
	require.False(t, frame.IsPlaced())
	require.Same(t, p, frame.Pool())
	require.Nil(t, frame.Zone())
	require.NotEqual(t, pool.NoFrame, frame.ID())

	frame.Payload().value = 7

	face := frame.Face()
	require.False(t, face.IsNil())
	require.Equal(t, frame.ID(), face.ID())

	resolved, err := face.Frame()
	require.NoError(t, err)
	require.Same(t, frame, resolved)
	require.Same(t, frame.Payload(), resolved.Payload())
	require.Equal(t, 7, resolved.Payload().value)

	require.Equal(t, 1, p.LiveCount())
	require.NoError(t, p.Validate())
}

func TestPoolFreeAndReuse(t *testing.T) {
	p := newTestPool(t)

	frame, err := p.NewFrame(nil)
	require.NoError(t, err)
	frame.Payload().value = 12
	frame.Padding[0] = 99
	face := frame.Face()

	require.NoError(t, p.FreeFrame(frame))
	require.False(t, frame.IsLive())
	require.Equal(t, 0, frame.Payload().value)
	require.Equal(t, 0, p.LiveCount())
	require.NoError(t, p.Validate())

	_, err = face.Frame()
	require.True(t, errors.Is(err, pool.ErrStaleFrame))

	err = p.FreeFrame(frame)
	require.True(t, errors.Is(err, pool.ErrFrameNotLive))

	reused, err := p.NewFrame(nil)
	require.NoError(t, err)
	require.Same(t, frame, reused)
	require.NotEqual(t, face.ID(), reused.ID())
	require.Equal(t, uint64(0), reused.Padding[0])

	// the stale face still refuses to resolve to the slot's new occupant
	_, err = face.Frame()
	require.True(t, errors.Is(err, pool.ErrStaleFrame))

	resolved, err := reused.Face().Frame()
	require.NoError(t, err)
	require.Same(t, reused, resolved)

	var stats memutils.Statistics
	p.AddStatistics(&stats)
	require.Equal(t, memutils.Statistics{
		FrameCount:     1,
		LiveFrameCount: 1,
		PeakFrameCount: 1,
		ReuseCount:     1,
	}, stats)
}

func TestPoolResolveErrors(t *testing.T) {
	p := newTestPool(t)

	_, err := p.Resolve(pool.NoFrame)
	require.True(t, errors.Is(err, pool.ErrNilFace))

	frame, err := p.NewFrame(nil)
	require.NoError(t, err)

	other := newTestPool(t)
	_, err = other.Resolve(frame.ID())
	require.True(t, errors.Is(err, pool.ErrUnknownFrame))

	err = other.FreeFrame(frame)
	require.True(t, errors.Is(err, pool.ErrForeignFrame))

	var face pool.Face[payload]
	require.True(t, face.IsNil())
	_, err = face.Frame()
	require.True(t, errors.Is(err, pool.ErrNilFace))
}

func TestPoolZones(t *testing.T) {
	p := newTestPool(t)

	zone, err := p.NewZone("rows")
	require.NoError(t, err)
	require.Equal(t, "rows", zone.Name())
	require.Same(t, p, zone.Pool())

	var zoneFrames []*pool.Frame[payload]
	for i := 0; i < 3; i++ {
		frame, err := p.NewFrame(zone)
		require.NoError(t, err)
		require.Same(t, zone, frame.Zone())
		frame.Payload().value = i
		zoneFrames = append(zoneFrames, frame)
	}

	loose, err := p.NewFrame(nil)
	require.NoError(t, err)

	require.Equal(t, 3, zone.Count())
	require.Equal(t, zoneFrames, zone.Frames())
	require.Equal(t, 4, p.LiveCount())
	require.NoError(t, p.Validate())

	// a zone frame may be freed on its own before the zone is released
	require.NoError(t, p.FreeFrame(zoneFrames[1]))
	require.Equal(t, 2, zone.Count())

	var visited []int
	err = p.ReleaseZone(zone, func(frame *pool.Frame[payload]) {
		visited = append(visited, frame.Payload().value)
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, visited)
	require.True(t, zone.IsReleased())
	require.Equal(t, 0, zone.Count())
	require.Equal(t, 1, p.LiveCount())
	require.NoError(t, p.Validate())

	for _, frame := range zoneFrames {
		require.False(t, frame.IsLive())
	}
	require.True(t, loose.IsLive())

	_, err = p.NewFrame(zone)
	require.True(t, errors.Is(err, pool.ErrZoneReleased))

	err = p.ReleaseZone(zone, nil)
	require.True(t, errors.Is(err, pool.ErrZoneReleased))
}

func TestPoolReleaseZoneVisitorMayFree(t *testing.T) {
	p := newTestPool(t)

	zone, err := p.NewZone("cells")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = p.NewFrame(zone)
		require.NoError(t, err)
	}

	err = p.ReleaseZone(zone, func(frame *pool.Frame[payload]) {
		require.NoError(t, p.FreeFrame(frame))
	})
	require.NoError(t, err)
	require.Equal(t, 0, p.LiveCount())
	require.NoError(t, p.Validate())
}

func TestPoolForeignZone(t *testing.T) {
	p := newTestPool(t)
	other := newTestPool(t)

	zone, err := other.NewZone("elsewhere")
	require.NoError(t, err)

	_, err = p.NewFrame(zone)
	require.True(t, errors.Is(err, pool.ErrForeignZone))

	err = p.ReleaseZone(zone, nil)
	require.True(t, errors.Is(err, pool.ErrForeignZone))
}

func TestPoolDestroy(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs))

	p, err := pool.New[payload](logger, pool.CreateOptions{Name: "destroy"})
	require.NoError(t, err)

	zone, err := p.NewZone("leaky")
	require.NoError(t, err)
	frame, err := p.NewFrame(zone)
	require.NoError(t, err)

	err = p.Destroy()
	require.Error(t, err)
	require.True(t, strings.Contains(logs.String(), "[UNRELEASED FRAME]"))
	require.True(t, strings.Contains(logs.String(), "leaky"))

	require.NoError(t, p.FreeFrame(frame))
	require.NoError(t, p.Destroy())

	_, err = p.NewFrame(nil)
	require.True(t, errors.Is(err, pool.ErrPoolDestroyed))
	require.True(t, errors.Is(p.Destroy(), pool.ErrPoolDestroyed))
}

func TestPlace(t *testing.T) {
	var storage pool.Frame[payload]

	frame, err := pool.Place(&storage)
	require.NoError(t, err)
	require.Same(t, &storage, frame)
	require.True(t, frame.IsPlaced())
	require.True(t, frame.IsLive())
	require.Equal(t, pool.NoFrame, frame.ID())
	require.Nil(t, frame.Pool())

	frame.Payload().value = 3
	resolved, err := frame.Face().Frame()
	require.NoError(t, err)
	require.Same(t, &storage, resolved)
	require.Equal(t, 3, resolved.Payload().value)

	_, err = pool.Place(&storage)
	require.Error(t, err)

	face := frame.Face()
	require.NoError(t, pool.Unplace(frame))
	require.Equal(t, 0, storage.Payload().value)
	_, err = face.Frame()
	require.True(t, errors.Is(err, pool.ErrStaleFrame))

	require.Error(t, pool.Unplace(frame))

	p := newTestPool(t)
	pooled, err := p.NewFrame(nil)
	require.NoError(t, err)
	_, err = pool.Place(pooled)
	require.True(t, errors.Is(err, pool.ErrForeignFrame))
}

func TestPoolCheckCorruption(t *testing.T) {
	p := newTestPool(t)

	frame, err := p.NewFrame(nil)
	require.NoError(t, err)
	require.NoError(t, p.FreeFrame(frame))
	require.NoError(t, p.CheckCorruption())

	if !memutils.GuardChecks {
		return
	}

	frame.Padding[2] = 1
	err = p.CheckCorruption()
	require.True(t, errors.Is(err, memutils.CorruptionError))
	require.Panics(t, func() {
		_, _ = p.NewFrame(nil)
	})
}

func TestPoolBuildStatsString(t *testing.T) {
	p := newTestPool(t)

	zone, err := p.NewZone("tables")
	require.NoError(t, err)
	zoned, err := p.NewFrame(zone)
	require.NoError(t, err)
	loose, err := p.NewFrame(nil)
	require.NoError(t, err)

	summary := p.BuildStatsString(false)
	require.JSONEq(t, `{
		"Name": "test",
		"Statistics": {"Zones": 1, "Frames": 2, "LiveFrames": 2, "FreeFrames": 0, "ZoneFrames": 1, "PeakFrames": 2, "Reuses": 0}
	}`, summary)

	detailed := p.BuildStatsString(true)
	require.JSONEq(t, `{
		"Name": "test",
		"Statistics": {"Zones": 1, "Frames": 2, "LiveFrames": 2, "FreeFrames": 0, "ZoneFrames": 1, "PeakFrames": 2, "Reuses": 0},
		"PoolFrames": ["`+loose.ID().String()+`"],
		"Zones": {"tables": {"Frames": 1, "FrameIDs": ["`+zoned.ID().String()+`"]}}
	}`, detailed)
}

func TestPoolDetach(t *testing.T) {
	p := newTestPool(t)

	zone, err := p.NewZone("rows")
	require.NoError(t, err)

	kept, err := p.NewFrame(zone)
	require.NoError(t, err)
	kept.Payload().value = 1
	dropped, err := p.NewFrame(zone)
	require.NoError(t, err)

	err = p.ReleaseZone(zone, func(frame *pool.Frame[payload]) {
		if frame.Payload().value == 1 {
			require.NoError(t, p.Detach(frame))
		}
	})
	require.NoError(t, err)

	require.True(t, kept.IsLive())
	require.Nil(t, kept.Zone())
	require.False(t, dropped.IsLive())
	require.Equal(t, 1, p.LiveCount())
	require.NoError(t, p.Validate())

	// detached frames are tracked by the pool itself from now on
	require.NoError(t, p.Detach(kept))
	require.Error(t, p.Destroy())
	require.NoError(t, p.FreeFrame(kept))
	require.NoError(t, p.Destroy())

	err = newTestPool(t).Detach(kept)
	require.True(t, errors.Is(err, pool.ErrForeignFrame))
	err = p.Detach(kept)
	require.True(t, errors.Is(err, pool.ErrFrameNotLive))
}

func TestPoolStatisticsTotals(t *testing.T) {
	first := newTestPool(t)
	second := newTestPool(t)

	zone, err := first.NewZone("cells")
	require.NoError(t, err)
	_, err = first.NewFrame(zone)
	require.NoError(t, err)
	freed, err := first.NewFrame(nil)
	require.NoError(t, err)
	require.NoError(t, first.FreeFrame(freed))

	for i := 0; i < 2; i++ {
		_, err = second.NewFrame(nil)
		require.NoError(t, err)
	}

	var total memutils.Statistics
	first.AddStatistics(&total)
	second.AddStatistics(&total)
	require.Equal(t, memutils.Statistics{
		ZoneCount:      1,
		FrameCount:     4,
		LiveFrameCount: 3,
		FreeFrameCount: 1,
		ZoneFrameCount: 1,
		PeakFrameCount: 4,
		ReuseCount:     0,
	}, total)

	// calculating overwrites whatever was gathered before
	stats := total
	second.CalculateStatistics(&stats)
	require.Equal(t, memutils.Statistics{
		FrameCount:     2,
		LiveFrameCount: 2,
		PeakFrameCount: 2,
	}, stats)
}
