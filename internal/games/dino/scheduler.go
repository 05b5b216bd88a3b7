package dino

// TimerID identifies a scheduled callback.
type TimerID int

type timer struct {
	id  TimerID
	due float64
	fn  func()
}

// Scheduler runs callbacks on the frame clock. Nothing fires between frames:
// Advance is called at the top of every frame and runs the callbacks that are
// due, oldest deadline first.
type Scheduler struct {
	now     float64
	started bool
	nextID  TimerID
	timers  []timer
}

// NewScheduler creates a scheduler whose clock starts at the first Advance.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run delayMs after the current frame time.
func (s *Scheduler) After(delayMs float64, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: s.now + delayMs, fn: fn})
	return s.nextID
}

// Cancel removes a pending timer. Unknown or fired IDs are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Pending returns the number of timers that have not fired.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Now returns the frame time of the last Advance in ms.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Advance moves the clock to nowMs and fires every due timer. Timers
// scheduled before the first Advance count from that first frame. Callbacks
// may schedule or cancel timers; new timers that are already due fire in
// the same call.
func (s *Scheduler) Advance(nowMs float64) {
	if !s.started {
		s.started = true
		for i := range s.timers {
			s.timers[i].due += nowMs - s.now
		}
	}
	s.now = nowMs

	for {
		idx := -1
		for i, t := range s.timers {
			if t.due <= s.now && (idx < 0 || t.due < s.timers[idx].due) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		t.fn()
	}
}
