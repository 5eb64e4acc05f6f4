package core

import (
	"fmt"
	"sync"
)

type Phase int

const (
	PhaseWork Phase = iota
	PhaseRest
)

func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "WORK"
	case PhaseRest:
		return "REST"
	default:
		return "UNKNOWN"
	}
}

const (
	DefaultWorkTime = 1500
	DefaultRestTime = 300
)

// State is a copy of the timer fields, safe to read without locking.
type State struct {
	Phase     Phase
	TimeLeft  int
	Running   bool
	Completed int
	WorkTime  int
	RestTime  int
}

// Timer counts down work and rest intervals in whole seconds. It does not
// tick on its own; something calls Update once per second.
type Timer struct {
	mu        sync.Mutex
	workTime  int
	restTime  int
	timeLeft  int
	running   bool
	phase     Phase
	completed int
}

func NewTimer(work, rest int) *Timer {
	return &Timer{
		workTime: work,
		restTime: rest,
		timeLeft: work,
		phase:    PhaseWork,
	}
}

func DefaultTimer() *Timer {
	return NewTimer(DefaultWorkTime, DefaultRestTime)
}

// Snapshot of current state (thread-safe)
func (t *Timer) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{
		Phase:     t.phase,
		TimeLeft:  t.timeLeft,
		Running:   t.running,
		Completed: t.completed,
		WorkTime:  t.workTime,
		RestTime:  t.restTime,
	}
}

func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = true
}

func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// SetTimeLeft overrides the countdown. Negative values clamp to zero.
func (t *Timer) SetTimeLeft(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	t.timeLeft = seconds
}

// SetPhase switches the current interval without touching the countdown.
func (t *Timer) SetPhase(p Phase) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phase = p
}

// Update advances the countdown by one second and reports whether the
// current interval ended. A stopped timer is held at the start of a work
// interval.
func (t *Timer) Update() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		t.phase = PhaseWork
		t.timeLeft = t.workTime
		return false
	}
	if t.timeLeft > 0 {
		t.timeLeft--
		return false
	}

	switch t.phase {
	case PhaseWork:
		t.completed++
		t.phase = PhaseRest
		t.timeLeft = t.restTime
	default:
		t.phase = PhaseWork
		t.timeLeft = t.workTime
	}
	return true
}

// SecondsToMinutes splits a second count into whole minutes and the rest.
func SecondsToMinutes(seconds int) (int, int) {
	return seconds / 60, seconds % 60
}

func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m, s := SecondsToMinutes(seconds)
	return fmt.Sprintf("%02d:%02d", m, s)
}
