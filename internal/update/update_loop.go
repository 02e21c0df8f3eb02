package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/scheduler"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForAlarmCmd(m.Engine.C()), clockTickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handlePaletteKey(typed), nil
		}

		switch typed.String() {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Snooze:
			if m.Ringing != nil {
				m = m.snoozeRinging()
			}
			return m, nil
		case m.Keys.Dismiss:
			if m.Ringing != nil {
				m = m.dismissRinging()
			}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
	case ClockTickMsg:
		m.Clock = typed.At
		return m, clockTickCmd()
	case AlarmFiredMsg:
		fired := typed.Event.Alarm
		m.Ringing = &fired
		m.RingingSince = typed.Event.FiredAt
		m.Status = StatusBar{Text: fmt.Sprintf("alarm ringing: %s", fired.DisplayName())}
		m.notify("Alarm", fmt.Sprintf("%s (%s)", fired.DisplayName(), fired.TriggerTime))
		if fired.Kind == model.KindOneTime {
			// the engine purges it on the next tick, so drop the row too
			if err := m.deleteStored(fired); err != nil {
				m.log.Warn().Err(err).Uint16("alarm_id", uint16(fired.ID)).Msg("one-time alarm not removed from store")
			}
		}
		return m, waitForAlarmCmd(m.Engine.C())
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case engineClosedMsg:
		return m, nil
	}
	return m, nil
}

func waitForAlarmCmd(ch <-chan scheduler.AlarmEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return engineClosedMsg{}
		}
		return AlarmFiredMsg{Event: ev}
	}
}

func clockTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg { return ClockTickMsg{At: at} })
}

func (m Model) snoozeRinging() Model {
	snoozed, err := m.Engine.Snooze(*m.Ringing)
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("snooze failed: %v", err), IsError: true}
		return m
	}
	m.Ringing = nil
	m.Status = StatusBar{Text: fmt.Sprintf("snoozed %s until %s", snoozed.DisplayName(), snoozed.TriggerTime)}
	return m
}

func (m Model) dismissRinging() Model {
	name := m.Ringing.DisplayName()
	m.Ringing = nil
	m.Status = StatusBar{Text: fmt.Sprintf("dismissed %s", name)}
	return m
}
