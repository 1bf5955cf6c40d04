package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/StochasticCactus/CactusPlot/internal/charts"
)

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.renderTitleBar())
	s.WriteString("\n")

	s.WriteString(m.renderChartPane())
	s.WriteString("\n")

	s.WriteString(m.renderListPane())
	s.WriteString("\n")

	if m.prompt != PromptNone {
		s.WriteString(m.renderPrompt())
		s.WriteString("\n")
	}

	s.WriteString(m.renderStatusLine())
	s.WriteString("\n")
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderChartPane() string {
	content := m.chartContent
	if legend := charts.Legend(m.legendEntries); legend != "" {
		content += "\n" + legend
	}
	return paneStyle.Render(content)
}

func (m Model) renderTitleBar() string {
	visible := 0
	for _, info := range m.reg.List() {
		if info.Visible {
			visible++
		}
	}

	title := fmt.Sprintf("  cactus   %d sets (%d visible)   x [%g, %g]  y [%g, %g]",
		m.reg.Len(), visible,
		m.view.XMin, m.view.XMax, m.view.YMin, m.view.YMax)

	return statusBarStyle.Width(m.width).Render(title)
}

func (m Model) renderListPane() string {
	if m.reg.Len() == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 2)
		return paneStyle.Render(emptyStyle.Render("No data sets. Press o to load a file or g to generate a function."))
	}

	style := paneStyle
	if m.prompt == PromptNone {
		style = focusedPaneStyle
	}
	return style.Render(m.seriesTable.View())
}

func (m Model) renderPrompt() string {
	var content string
	switch m.prompt {
	case PromptLoad:
		content = promptLabelStyle.Render("Load file: ") + m.pathInput.View()
	case PromptSave:
		content = promptLabelStyle.Render("Save selected to: ") + m.pathInput.View()
	case PromptFunction:
		var b strings.Builder
		b.WriteString(promptLabelStyle.Render("f(x) = "))
		b.WriteString(m.exprInput.View())
		b.WriteString("\n")
		b.WriteString(promptLabelStyle.Render("X min: "))
		b.WriteString(m.xMinInput.View())
		b.WriteString("   ")
		b.WriteString(promptLabelStyle.Render("X max: "))
		b.WriteString(m.xMaxInput.View())
		b.WriteString("   ")
		b.WriteString(promptLabelStyle.Render("Points: "))
		b.WriteString(m.nInput.View())
		b.WriteString("\n")
		b.WriteString("Functions: sin, cos, tan, exp, log, sqrt, pi")
		content = b.String()
	case PromptAverage:
		content = promptLabelStyle.Render("Rolling average window: ") + m.windowInput.View()
	case PromptNone:
	}
	return focusedPaneStyle.Render(content)
}

func (m Model) renderStatusLine() string {
	status := m.status
	if strings.HasPrefix(status, "Error") {
		status = ErrorStyle.Render(status)
	}
	return " " + status
}

func (m Model) renderHelpBar() string {
	var helpText string
	if m.prompt != PromptNone {
		if m.prompt == PromptFunction {
			helpText = "  Tab: next field | Enter: next/generate | esc: cancel"
		} else {
			helpText = "  Enter: confirm | esc: cancel"
		}
	} else {
		helpText = "  j/k: select | t: toggle | x: delete | a: autoscale | i: highlight | o: load | s: save | g: generate | r: average | f: fit | q: quit"
	}
	return statusBarStyle.Width(m.width).Render(helpText)
}
