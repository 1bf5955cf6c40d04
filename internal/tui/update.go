package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/StochasticCactus/CactusPlot/internal/sampler"
	"github.com/StochasticCactus/CactusPlot/internal/transform"
	"github.com/StochasticCactus/CactusPlot/internal/xvg"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadResultMsg:
		return m.handleLoadResult(msg)

	case saveResultMsg:
		return m.handleSaveResult(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.prompt != PromptNone {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		return m.moveSelection(tea.KeyMsg{Type: tea.KeyDown})
	case "k", "up":
		return m.moveSelection(tea.KeyMsg{Type: tea.KeyUp})
	case "t", " ":
		return m.handleToggleKey()
	case "x", "d":
		return m.handleDeleteKey()
	case "a":
		return m.handleAutoscaleKey()
	case "i":
		m.highlight = !m.highlight
		m = m.renderChart()
		return m, nil
	case "o":
		return m.openPrompt(PromptLoad)
	case "s":
		return m.handleSaveKey()
	case "r":
		return m.handleAverageKey()
	case "f":
		return m.handleFitKey()
	case "g":
		return m.openPrompt(PromptFunction)
	}

	return m, nil
}

func (m Model) moveSelection(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.seriesTable, cmd = m.seriesTable.Update(key)
	m = m.updateSelectedFromTable()
	m = m.renderChart()
	return m, cmd
}

func (m Model) handleToggleKey() (tea.Model, tea.Cmd) {
	// A stale or empty selection is a silent no-op in the registry.
	m.reg.Toggle(m.selected)
	if s, ok := m.reg.Series(m.selected); ok {
		state := "hidden"
		if s.Visible {
			state = "visible"
		}
		m.status = fmt.Sprintf("%s is now %s", s.Label, state)
	}
	m = m.refresh()
	return m, nil
}

func (m Model) handleDeleteKey() (tea.Model, tea.Cmd) {
	if m.selected < 0 {
		return m, nil
	}
	m.reg.Remove(m.selected)
	// Ids were renumbered; the old selection may now be past the end.
	if m.selected >= m.reg.Len() {
		m.selected = m.reg.Len() - 1
	}
	m.status = "Data set deleted"
	m = m.refresh()
	return m, nil
}

func (m Model) handleAutoscaleKey() (tea.Model, tea.Cmd) {
	ext, ok := m.reg.BoundingExtent(false)
	if !ok {
		// Nothing visible: keep the last-known-good view.
		m.status = "Nothing visible to scale to"
		return m, nil
	}
	m.view = ext.Pad(AutoscaleMargin)
	m.status = fmt.Sprintf("Scaled to x [%g, %g], y [%g, %g]",
		m.view.XMin, m.view.XMax, m.view.YMin, m.view.YMax)
	m = m.renderChart()
	return m, nil
}

func (m Model) handleSaveKey() (tea.Model, tea.Cmd) {
	if _, ok := m.reg.Series(m.selected); !ok {
		m.status = "No data set selected to save"
		return m, nil
	}
	return m.openPrompt(PromptSave)
}

func (m Model) handleAverageKey() (tea.Model, tea.Cmd) {
	if _, ok := m.reg.Series(m.selected); !ok {
		m.status = "No data set selected to average"
		return m, nil
	}
	return m.openPrompt(PromptAverage)
}

// handleFitKey adds the least-squares line through the selected series as
// a new series; the source series is untouched.
func (m Model) handleFitKey() (tea.Model, tea.Cmd) {
	s, ok := m.reg.Series(m.selected)
	if !ok {
		m.status = "No data set selected to fit"
		return m, nil
	}

	fit, err := transform.LinearFit(s.X, s.Y)
	if err != nil {
		m.status = fmt.Sprintf("Error fitting line: %v", err)
		return m, nil
	}

	xs, ys := fit.Line(fitLinePoints)
	id := m.reg.Add(xs, ys, fmt.Sprintf("fit(%s): %s", s.Label, fit.Equation()))
	m.selected = id
	m.status = fmt.Sprintf("Fitted %s, R² = %.4f", fit.Equation(), fit.RSquared)
	m = m.refresh()
	return m, nil
}

func (m Model) openPrompt(p Prompt) (tea.Model, tea.Cmd) {
	m.prompt = p
	switch p {
	case PromptLoad, PromptSave:
		m.pathInput.SetValue("")
		m.pathInput.Focus()
	case PromptFunction:
		m = m.focusFunctionField(fieldExpr)
	case PromptAverage:
		m.windowInput.Focus()
	case PromptNone:
	}
	return m, textinput.Blink
}

func (m Model) closePrompt() Model {
	m.prompt = PromptNone
	m.pathInput.Blur()
	m.exprInput.Blur()
	m.xMinInput.Blur()
	m.xMaxInput.Blur()
	m.nInput.Blur()
	m.windowInput.Blur()
	return m
}

func (m Model) focusFunctionField(field int) Model {
	m.focusField = field
	inputs := []*textinput.Model{&m.exprInput, &m.xMinInput, &m.xMaxInput, &m.nInput}
	for i, input := range inputs {
		if i == field {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	return m
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Dismissing a prompt leaves the registry untouched.
		return m.closePrompt(), nil
	case "enter":
		return m.submitPrompt()
	case "tab":
		if m.prompt == PromptFunction {
			return m.focusFunctionField((m.focusField + 1) % functionFieldCount), nil
		}
	case "shift+tab":
		if m.prompt == PromptFunction {
			return m.focusFunctionField((m.focusField + functionFieldCount - 1) % functionFieldCount), nil
		}
	}

	var cmd tea.Cmd
	switch m.prompt {
	case PromptLoad, PromptSave:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case PromptFunction:
		switch m.focusField {
		case fieldExpr:
			m.exprInput, cmd = m.exprInput.Update(msg)
		case fieldXMin:
			m.xMinInput, cmd = m.xMinInput.Update(msg)
		case fieldXMax:
			m.xMaxInput, cmd = m.xMaxInput.Update(msg)
		case fieldPoints:
			m.nInput, cmd = m.nInput.Update(msg)
		}
	case PromptAverage:
		m.windowInput, cmd = m.windowInput.Update(msg)
	case PromptNone:
	}
	return m, cmd
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	switch m.prompt {
	case PromptLoad:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m.closePrompt(), nil
		}
		return m.closePrompt(), loadFileCmd(path)

	case PromptSave:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m.closePrompt(), nil
		}
		s, ok := m.reg.Series(m.selected)
		if !ok {
			m.status = "No data set selected to save"
			return m.closePrompt(), nil
		}
		return m.closePrompt(), saveFileCmd(path, s.X, s.Y)

	case PromptFunction:
		if m.focusField < fieldPoints {
			return m.focusFunctionField(m.focusField + 1), nil
		}
		return m.generateFunction()

	case PromptAverage:
		return m.computeAverage()

	case PromptNone:
	}
	return m, nil
}

func (m Model) computeAverage() (tea.Model, tea.Cmd) {
	window, err := strconv.Atoi(strings.TrimSpace(m.windowInput.Value()))
	if err != nil {
		m.status = fmt.Sprintf("Error computing rolling average: bad window size: %v", err)
		return m.closePrompt(), nil
	}

	s, ok := m.reg.Series(m.selected)
	if !ok {
		m.status = "No data set selected to average"
		return m.closePrompt(), nil
	}

	xs, ys, err := transform.RollingAverage(s.X, s.Y, window)
	if err != nil {
		// No partial series is added on failure.
		m.status = fmt.Sprintf("Error computing rolling average: %v", err)
		return m.closePrompt(), nil
	}

	id := m.reg.Add(xs, ys, fmt.Sprintf("avg%d(%s)", window, s.Label))
	m.selected = id
	m.status = fmt.Sprintf("Added %d-point rolling average of %s", window, s.Label)
	m = m.closePrompt()
	m = m.refresh()
	return m, nil
}

func (m Model) generateFunction() (tea.Model, tea.Cmd) {
	expr := strings.TrimSpace(m.exprInput.Value())

	xMin, err := strconv.ParseFloat(strings.TrimSpace(m.xMinInput.Value()), 64)
	if err != nil {
		m.status = fmt.Sprintf("Error generating function: bad x min: %v", err)
		return m.closePrompt(), nil
	}
	xMax, err := strconv.ParseFloat(strings.TrimSpace(m.xMaxInput.Value()), 64)
	if err != nil {
		m.status = fmt.Sprintf("Error generating function: bad x max: %v", err)
		return m.closePrompt(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(m.nInput.Value()))
	if err != nil {
		m.status = fmt.Sprintf("Error generating function: bad point count: %v", err)
		return m.closePrompt(), nil
	}

	xs, ys, err := sampler.Sample(expr, xMin, xMax, n)
	if err != nil {
		// No partial series is added on failure.
		m.status = fmt.Sprintf("Error generating function: %v", err)
		return m.closePrompt(), nil
	}

	id := m.reg.Add(xs, ys, "f(x) = "+expr)
	m.selected = id
	m.status = fmt.Sprintf("Generated function: %s", expr)
	m = m.closePrompt()
	m = m.refresh()
	return m, nil
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		x, y, err := xvg.ReadFile(path)
		return loadResultMsg{path: path, x: x, y: y, err: err}
	}
}

func saveFileCmd(path string, x, y []float64) tea.Cmd {
	return func() tea.Msg {
		err := xvg.WriteFile(path, x, y)
		return saveResultMsg{path: path, n: len(x), err: err}
	}
}

func (m Model) handleLoadResult(msg loadResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Registry untouched; the last-known-good view stays up.
		m.status = fmt.Sprintf("Error loading file: %v", msg.err)
		return m, nil
	}

	name := filepath.Base(msg.path)
	id := m.reg.Add(msg.x, msg.y, name)
	m.selected = id
	m.status = fmt.Sprintf("Loaded %d points from %s", len(msg.x), name)
	m = m.refresh()
	return m, nil
}

func (m Model) handleSaveResult(msg saveResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = fmt.Sprintf("Error saving file: %v", msg.err)
		return m, nil
	}
	m.status = fmt.Sprintf("Saved %d points to %s", msg.n, msg.path)
	return m, nil
}
