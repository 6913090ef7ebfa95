package memutils

// Statistics summarizes the frames managed by one or more pools. FrameCount is every frame a
// pool has ever carved out, live or free.
type Statistics struct {
	ZoneCount      int
	FrameCount     int
	LiveFrameCount int
	FreeFrameCount int
	ZoneFrameCount int
	PeakFrameCount int
	ReuseCount     int
}

func (s *Statistics) Clear() {
	s.ZoneCount = 0
	s.FrameCount = 0
	s.LiveFrameCount = 0
	s.FreeFrameCount = 0
	s.ZoneFrameCount = 0
	s.PeakFrameCount = 0
	s.ReuseCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.ZoneCount += other.ZoneCount
	s.FrameCount += other.FrameCount
	s.LiveFrameCount += other.LiveFrameCount
	s.FreeFrameCount += other.FreeFrameCount
	s.ZoneFrameCount += other.ZoneFrameCount
	s.PeakFrameCount += other.PeakFrameCount
	s.ReuseCount += other.ReuseCount
}
