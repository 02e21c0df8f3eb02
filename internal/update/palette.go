package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/clockd/internal/commands"
	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/scheduler"
)

const storeTimeout = 2 * time.Second

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			// zero snooze minutes fall back to the engine default
			id, addErr := m.Engine.AddAlarm(a.Label, a.At, a.Days, a.Sound, a.SnoozeMinutes)
			if addErr != nil {
				return commands.Result{}, addErr
			}
			stored, _ := m.Engine.AlarmByID(id)
			if saveErr := m.saveAlarm(stored); saveErr != nil {
				m.Engine.DeleteAlarm(id)
				return commands.Result{}, saveErr
			}
			return commands.Result{Message: fmt.Sprintf("added #%d %s at %s (%s)", id, stored.DisplayName(), stored.TriggerTime, stored.TriggerDays)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			existing, ok := m.Engine.AlarmByID(d.ID)
			if !ok {
				return commands.Result{Message: fmt.Sprintf("no alarm #%d", d.ID)}, nil
			}
			if delErr := m.deleteStored(existing); delErr != nil {
				return commands.Result{}, delErr
			}
			m.Engine.DeleteAlarm(d.ID)
			return commands.Result{Message: fmt.Sprintf("deleted #%d %s", d.ID, existing.DisplayName())}, nil
		},
		Remove: func(r commands.RemoveArgs) (commands.Result, error) {
			target, ok := m.Engine.Alarm(r.Index)
			if !ok {
				return commands.Result{}, fmt.Errorf("%w: %d", scheduler.ErrIndexOutOfRange, r.Index)
			}
			if delErr := m.deleteStored(target); delErr != nil {
				return commands.Result{}, delErr
			}
			removed, remErr := m.Engine.RemoveAlarm(r.Index)
			if remErr != nil {
				return commands.Result{}, remErr
			}
			return commands.Result{Message: fmt.Sprintf("removed %s", removed.DisplayName())}, nil
		},
		Snooze: func() (commands.Result, error) {
			if m.Ringing == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no alarm is ringing"}
			}
			m = m.snoozeRinging()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Dismiss: func() (commands.Result, error) {
			if m.Ringing == nil {
				m.Engine.CancelSnooze()
				return commands.Result{Message: "pending snooze cancelled"}, nil
			}
			m = m.dismissRinging()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Next: func() (commands.Result, error) {
			next, ok := m.Engine.NextAlarm(m.now())
			if !ok {
				return commands.Result{Message: "no alarm scheduled"}, nil
			}
			day, _ := scheduler.NextDay(next, m.now())
			return commands.Result{Message: fmt.Sprintf("next: %s at %s on %s", next.DisplayName(), next.TriggerTime, day)}, nil
		},
		List: func() (commands.Result, error) {
			m.Details = m.renderAlarmDetails()
			return commands.Result{Message: fmt.Sprintf("%d alarm(s)", len(m.Engine.Alarms()))}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.log.Warn().Err(err).Str("command", raw).Msg("command failed")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.log.Info().Str("command", raw).Str("result", res.Message).Msg("command executed")
	}
	return m
}

func (m Model) saveAlarm(a model.Alarm) error {
	if m.Store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.Store.SaveAlarm(ctx, a); err != nil {
		return fmt.Errorf("save alarm: %w", err)
	}
	return nil
}

// deleteStored skips the snooze record, which is never persisted.
func (m Model) deleteStored(a model.Alarm) error {
	if m.Store == nil || a.ID == model.SnoozeID {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.Store.DeleteAlarm(ctx, a.ID); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}
	return nil
}
