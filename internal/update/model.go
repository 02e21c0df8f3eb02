package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/scheduler"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette string
	Snooze  string
	Dismiss string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// AlarmStore persists registry changes made from the UI.
type AlarmStore interface {
	SaveAlarm(ctx context.Context, a model.Alarm) error
	DeleteAlarm(ctx context.Context, id model.ID) error
}

type Model struct {
	Engine         *scheduler.Engine
	Store          AlarmStore
	Clock          time.Time
	Ringing        *model.Alarm
	RingingSince   time.Time
	Palette        CommandPaletteState
	HelpVisible    bool
	Details        string
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	DesktopEnabled bool
	notifier       DesktopNotifier
	log            zerolog.Logger
	now            func() time.Time
	commandInput   textinput.Model
	helpModel      help.Model
}

type Option func(*Model)

func WithStore(store AlarmStore) Option {
	return func(m *Model) { m.Store = store }
}

func WithNotifier(n DesktopNotifier) Option {
	return func(m *Model) {
		if n != nil {
			m.notifier = n
			m.DesktopEnabled = true
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// ClockTickMsg refreshes the displayed time.
type ClockTickMsg struct {
	At time.Time
}

type AlarmFiredMsg struct {
	Event scheduler.AlarmEvent
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type engineClosedMsg struct{}

func NewModel(engine *scheduler.Engine, opts ...Option) Model {
	if engine == nil {
		engine = scheduler.NewEngine(scheduler.New(), 1)
	}
	m := Model{
		Engine: engine,
		Keys: GlobalKeyMap{
			Palette: "/",
			Snooze:  "s",
			Dismiss: "d",
			Help:    "?",
			Quit:    "q",
		},
		notifier: NoopDesktopNotifier{},
		log:      zerolog.Nop(),
		now:      engine.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.Clock = m.now()

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add 07:00 weekdays Wake up"
	m.commandInput.Prompt = "/ "
	m.commandInput.CharLimit = 200
	m.helpModel = help.New()
	return m
}
