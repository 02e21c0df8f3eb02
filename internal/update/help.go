package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/clockd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const commandHelp = `## Commands

| command | effect |
|---|---|
| ` + "`add HH:MM[:SS] <days> [snooze=N] [sound=path] <label>`" + ` | add an alarm |
| ` + "`delete <id>`" + ` | delete alarm by id |
| ` + "`remove <n>`" + ` | remove the n-th alarm in the list |
| ` + "`snooze`" + ` / ` + "`dismiss`" + ` | act on the ringing alarm |
| ` + "`next`" + ` | show the next alarm |
| ` + "`list`" + ` | show alarm details |

Days: ` + "`mon,tue,...`" + `, ` + "`weekdays`" + `, ` + "`weekends`" + `, ` + "`everyday`" + `, ` + "`once`" + `, ` + "`none`" + `.
`

func (m Model) bindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Palette, Action: "command"},
		{Key: m.Keys.Snooze, Action: "snooze"},
		{Key: m.Keys.Dismiss, Action: "dismiss"},
		{Key: m.Keys.Help, Action: "help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, 5)
	for _, kb := range m.bindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func (m Model) renderFooter() string {
	bindings := m.helpBindings()
	return m.helpModel.View(helpKeyMap{short: bindings, full: [][]key.Binding{bindings}})
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	var plain []string
	for _, kb := range m.bindings() {
		plain = append(plain, fmt.Sprintf("- `%s` %s", kb.Key, kb.Action))
	}
	return views.RenderMarkdown(commandHelp + "\n## Keys\n\n" + strings.Join(plain, "\n"))
}
