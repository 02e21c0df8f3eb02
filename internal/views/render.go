package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Clock      string
	LeftPane   string
	RightPane  string
	StatusLine string
	StatusErr  bool
	Alert      string
	Palette    string
	Help       string
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	clockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	alertStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("9")).Bold(true).Padding(0, 2)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	left := panelStyle.Width(52).Render(data.LeftPane)
	right := panelStyle.Width(40).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	top := headerStyle.Render(data.Header)
	if data.Clock != "" {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, "  ", clockStyle.Render(data.Clock))
	}

	lines := []string{top}
	if data.Alert != "" {
		lines = append(lines, alertStyle.Render(data.Alert))
	}
	lines = append(lines, row)
	if data.StatusLine != "" {
		if data.StatusErr {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Palette != "" {
		lines = append(lines, panelStyle.Render(data.Palette))
	}
	if data.Help != "" {
		lines = append(lines, data.Help)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
