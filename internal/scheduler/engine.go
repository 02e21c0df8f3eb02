package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/clockd/internal/model"
)

const (
	DefaultTickInterval  = time.Second
	DefaultSnoozeMinutes = 10
)

type AlarmEvent struct {
	Alarm   model.Alarm
	FiredAt time.Time
}

type Option func(*Engine)

func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithClock replaces time.Now as the source of the current local time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithDefaultSnooze sets the snooze length used for alarms that carry none.
// Zero is ignored.
func WithDefaultSnooze(minutes uint) Option {
	return func(e *Engine) {
		if minutes > 0 {
			e.defaultSnooze = minutes
		}
	}
}

// Engine owns a Scheduler, ticks it on an interval and publishes fired
// alarms on C. All Scheduler access goes through the engine's mutex.
type Engine struct {
	mu            sync.Mutex
	sched         *Scheduler
	out           chan AlarmEvent
	stopCh        chan struct{}
	doneCh        chan struct{}
	interval      time.Duration
	now           func() time.Time
	log           zerolog.Logger
	defaultSnooze uint
	started       bool
	stopped       bool
	dropped       uint64
}

func NewEngine(sched *Scheduler, bufferSize int, opts ...Option) *Engine {
	if sched == nil {
		sched = New()
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	e := &Engine{
		sched:    sched,
		out:      make(chan AlarmEvent, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		interval: DefaultTickInterval,
		now:      time.Now,
		log:      zerolog.Nop(),

		defaultSnooze: DefaultSnoozeMinutes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) C() <-chan AlarmEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.stopped {
		return
	}
	e.started = true
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	started := e.started
	e.mu.Unlock()
	if started {
		<-e.doneCh
	} else {
		close(e.out)
	}
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) Now() time.Time {
	return e.now()
}

// Tick runs trigger detection for now and publishes the fired alarm.
func (e *Engine) Tick(now time.Time) (model.Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return model.Alarm{}, false
	}
	a, ok := e.sched.Tick(now)
	if !ok {
		return model.Alarm{}, false
	}

	e.log.Info().
		Uint16("alarm_id", uint16(a.ID)).
		Str("label", a.Label).
		Str("kind", string(a.Kind)).
		Str("at", a.TriggerTime.String()).
		Msg("alarm fired")

	// out is only closed after stopped is set, so sending under mu is safe
	select {
	case e.out <- AlarmEvent{Alarm: a, FiredAt: now}:
	default:
		atomic.AddUint64(&e.dropped, 1)
		e.log.Warn().Uint16("alarm_id", uint16(a.ID)).Msg("alarm event dropped, consumer too slow")
	}
	return a, true
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.Tick(e.now())
		case <-e.stopCh:
			return
		}
	}
}

func (e *Engine) AddAlarm(label string, at model.TimeOfDay, days model.DaySet, sound string, snoozeMinutes uint) (model.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.AddAlarm(label, at, days, sound, snoozeMinutes)
}

func (e *Engine) AddAlarmInfo(in model.Alarm) (model.ID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.AddAlarmInfo(in)
}

func (e *Engine) RemoveAlarm(index int) (model.Alarm, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, _ := e.sched.Alarm(index)
	if err := e.sched.RemoveAlarm(index); err != nil {
		return model.Alarm{}, err
	}
	return a, nil
}

func (e *Engine) DeleteAlarm(id model.ID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sched.DeleteAlarm(id)
}

func (e *Engine) Alarm(index int) (model.Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.Alarm(index)
}

func (e *Engine) AlarmByID(id model.ID) (model.Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.AlarmByID(id)
}

func (e *Engine) Alarms() []model.Alarm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.Alarms()
}

func (e *Engine) NextAlarm(now time.Time) (model.Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.NextAlarm(now)
}

// Snooze reschedules a ringing alarm, falling back to the engine's default
// snooze length when the alarm has none.
func (e *Engine) Snooze(original model.Alarm) (model.Alarm, error) {
	if original.SnoozeMinutes == 0 {
		original.SnoozeMinutes = e.defaultSnooze
	}
	e.mu.Lock()
	snoozed, err := e.sched.SnoozeAlarm(original)
	e.mu.Unlock()
	if err != nil {
		return model.Alarm{}, err
	}
	e.log.Info().
		Str("label", snoozed.Label).
		Str("at", snoozed.TriggerTime.String()).
		Uint("minutes", snoozed.SnoozeMinutes).
		Msg("alarm snoozed")
	return snoozed, nil
}

func (e *Engine) CancelSnooze() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sched.CancelSnooze()
}
