package battle

// frameTimer is one pending deferred call, counted in simulation frames.
type frameTimer struct {
	remaining int
	gen       int
	fn        func()
}

// timerQueue schedules deferred phase transitions inside the frame loop.
// Timers are scoped to a session generation: Invalidate bumps the
// generation, which atomically orphans every pending timer. A session that
// ends while a timer is pending can therefore never have that timer mutate
// the successor session's state.
type timerQueue struct {
	gen    int
	timers []frameTimer
}

// After schedules fn to run once, frames from now. Non-positive delays fire
// on the next Tick.
func (q *timerQueue) After(frames int, fn func()) {
	if frames < 1 {
		frames = 1
	}
	q.timers = append(q.timers, frameTimer{remaining: frames, gen: q.gen, fn: fn})
}

// Tick advances all pending timers by one frame and fires the due ones.
// A fired callback may schedule new timers or call Invalidate; timers
// orphaned mid-tick are skipped.
func (q *timerQueue) Tick() {
	// Fixed upper bound: timers appended by callbacks run on later ticks.
	n := len(q.timers)
	for i := 0; i < n; i++ {
		t := &q.timers[i]
		if t.fn == nil || t.gen != q.gen {
			continue
		}
		t.remaining--
		if t.remaining > 0 {
			continue
		}
		fn := t.fn
		t.fn = nil
		fn()
	}

	alive := q.timers[:0]
	for _, t := range q.timers {
		if t.fn != nil && t.gen == q.gen {
			alive = append(alive, t)
		}
	}
	q.timers = alive
}

// Invalidate orphans every pending timer by starting a new generation.
// Entries stay in the slice so a Tick in progress keeps stable indices;
// the next compaction sweeps them away.
func (q *timerQueue) Invalidate() {
	q.gen++
}

// Pending returns the number of live timers.
func (q *timerQueue) Pending() int {
	n := 0
	for _, t := range q.timers {
		if t.fn != nil && t.gen == q.gen {
			n++
		}
	}
	return n
}
