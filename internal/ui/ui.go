// Package ui turns timer state into a tray icon, a tooltip, a menu and an
// end-of-interval dialog. The toolkit sits behind the Tray and Dialog
// interfaces; fyne and a terminal frontend both implement them.
package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/ezchuang/pomodoro4linux/internal/core"
	"github.com/ezchuang/pomodoro4linux/internal/notify"
	"github.com/ezchuang/pomodoro4linux/internal/storage"
)

const AppName = "Pomodoro4linux"

// Status picks the tray icon: work while counting a work interval,
// rest while resting or paused.
type Status int

const (
	StatusWork Status = 0
	StatusRest Status = 1
)

type MenuItem struct {
	Label  string
	Action func()
}

type Tray interface {
	SetIcon(fyne.Resource)
	SetTooltip(string)
	SetMenu(title string, items []*MenuItem)
}

type Dialog interface {
	Show(title, message string)
	Visible() bool
}

// Recorder persists finished intervals.
type Recorder interface {
	Record(ctx context.Context, iv *storage.Interval) error
	Summary(ctx context.Context, since time.Time) (storage.Summary, error)
}

type Option func(*UI)

func WithNotifier(n notify.Notifier) Option { return func(u *UI) { u.notifier = n } }
func WithRecorder(r Recorder) Option        { return func(u *UI) { u.history = r } }
func WithLogger(l *zap.Logger) Option       { return func(u *UI) { u.log = l } }
func WithQuit(fn func()) Option             { return func(u *UI) { u.onQuit = fn } }

// WithDispatch routes ticker callbacks onto the toolkit's UI goroutine.
func WithDispatch(fn func(func())) Option { return func(u *UI) { u.dispatch = fn } }

type UI struct {
	mu sync.Mutex

	timer    *core.Timer
	tray     Tray
	dialog   Dialog
	notifier notify.Notifier
	history  Recorder
	log      *zap.Logger
	onQuit   func()
	dispatch func(func())
	// background runs notification and history writes off the UI thread
	background func(func())
	now        func() time.Time
	ticker     *core.Ticker

	status        Status
	icon          fyne.Resource
	tooltip       string
	menu          []*MenuItem
	quitItem      *MenuItem
	intervalStart time.Time
}

func New(timer *core.Timer, tray Tray, dialog Dialog, opts ...Option) *UI {
	u := &UI{
		timer:      timer,
		tray:       tray,
		dialog:     dialog,
		notifier:   notify.Nop(),
		log:        zap.NewNop(),
		dispatch:   func(fn func()) { fn() },
		background: func(fn func()) { go fn() },
		now:        time.Now,
		status:     StatusWork,
	}
	for _, opt := range opts {
		opt(u)
	}

	u.quitItem = &MenuItem{Label: "Quit", Action: u.Quit}
	u.menu = []*MenuItem{
		{Label: "Start", Action: u.StartTimer},
		{Label: "Pause", Action: u.PauseTimer},
		{Label: "Statistics", Action: u.ShowStatistics},
		u.quitItem,
	}
	tray.SetMenu(AppName, u.menu)

	u.mu.Lock()
	u.setIconLocked()
	u.setTooltipLocked(timer.Snapshot())
	u.mu.Unlock()
	return u
}

func (u *UI) Status() Status {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

func (u *UI) Icon() fyne.Resource {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.icon
}

func (u *UI) Tooltip() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tooltip
}

func (u *UI) Menu() []*MenuItem   { return u.menu }
func (u *UI) QuitItem() *MenuItem { return u.quitItem }
func (u *UI) Timer() *core.Timer  { return u.timer }

func (u *UI) StartTimer() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.timer.Start()
	st := u.timer.Snapshot()
	u.status = statusFor(st.Phase)
	u.intervalStart = u.now()
	u.setIconLocked()
	u.setTooltipLocked(st)
	u.log.Info("timer started", zap.Stringer("phase", st.Phase), zap.Int("time_left", st.TimeLeft))
}

func (u *UI) PauseTimer() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.timer.Pause()
	u.status = StatusRest
	u.setIconLocked()
	u.setTooltipLocked(u.timer.Snapshot())
	u.log.Info("timer paused")
}

// UpdateTimer runs one second of countdown and refreshes the tray. When the
// interval ends it swaps the icon and tells the user; the desktop
// notification and the history write happen after the lock is released.
func (u *UI) UpdateTimer() {
	u.mu.Lock()
	ended := u.timer.Update()
	st := u.timer.Snapshot()
	var report func()
	if ended {
		u.status = statusFor(st.Phase)
		u.setIconLocked()
		report = u.finishLocked(st)
	}
	u.setTooltipLocked(st)
	u.mu.Unlock()

	if report != nil {
		u.background(report)
	}
}

// ShowStatistics reports today's finished intervals in the dialog.
func (u *UI) ShowStatistics() {
	if u.history == nil {
		u.dialog.Show(AppName, "History is disabled.")
		return
	}
	s, err := u.history.Summary(context.Background(), storage.StartOfDay(u.now()))
	if err != nil {
		u.log.Error("load statistics", zap.Error(err))
		u.dialog.Show(AppName, "Could not load statistics.")
		return
	}
	focus := (time.Duration(s.FocusSeconds) * time.Second).String()
	u.dialog.Show(AppName, fmt.Sprintf("Today: %d pomodoros, %d rests, %s focused.",
		s.WorkIntervals, s.RestIntervals, focus))
}

// StartTicking drives UpdateTimer from tk until Quit.
func (u *UI) StartTicking(tk *core.Ticker) {
	u.ticker = tk
	tk.Start(func(time.Time) {
		u.dispatch(u.UpdateTimer)
	})
}

func (u *UI) Quit() {
	if u.ticker != nil {
		u.ticker.Stop()
	}
	u.log.Info("quitting", zap.Int("completed", u.timer.Snapshot().Completed))
	if u.onQuit != nil {
		u.onQuit()
	}
}

// finishLocked shows the dialog and returns the slow follow-up work.
func (u *UI) finishLocked(st core.State) func() {
	finished, title, message := core.PhaseRest, "Back to work!", "Rest is over, time to focus."
	seconds := st.RestTime
	if st.Phase == core.PhaseRest {
		finished, title, message = core.PhaseWork, "Time to rest!", "Work interval done, take a break."
		seconds = st.WorkTime
	}

	now := u.now()
	start := u.intervalStart
	if start.IsZero() {
		start = now.Add(-time.Duration(seconds) * time.Second)
	}
	u.intervalStart = now
	u.log.Info("interval ended", zap.Stringer("finished", finished), zap.Int("completed", st.Completed))

	u.dialog.Show(title, message)

	notifier, history, log := u.notifier, u.history, u.log
	iv := &storage.Interval{Phase: finished, StartedAt: start, EndedAt: now, Seconds: seconds}
	return func() {
		if err := notifier.Notify(AppName, title); err != nil {
			log.Warn("desktop notification failed", zap.Error(err))
		}
		if history == nil {
			return
		}
		if err := history.Record(context.Background(), iv); err != nil {
			log.Error("record interval", zap.Error(err))
		}
	}
}

func (u *UI) setIconLocked() {
	if u.status == StatusRest {
		u.icon = RestIcon
	} else {
		u.icon = WorkIcon
	}
	u.tray.SetIcon(u.icon)
}

func (u *UI) setTooltipLocked(st core.State) {
	u.tooltip = Tooltip(st)
	u.tray.SetTooltip(u.tooltip)
}

// Tooltip renders the tray hover text for st.
func Tooltip(st core.State) string {
	var b strings.Builder
	b.WriteString(AppName)
	b.WriteString(" - ")
	if !st.Running {
		b.WriteString("paused")
		return b.String()
	}
	b.WriteString(strings.ToLower(st.Phase.String()))
	b.WriteString(" ")
	b.WriteString(core.FormatClock(st.TimeLeft))
	return b.String()
}

func statusFor(p core.Phase) Status {
	if p == core.PhaseRest {
		return StatusRest
	}
	return StatusWork
}
