package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	napiruntime "github.com/wippyai/napi-runtime"
	"github.com/wippyai/napi-runtime/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C7A46")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C7A46"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectExport modelState = iota
	stateInputArgs
	stateShowResult
)

type exportInfo struct {
	name string
	kind string
}

type interactiveModel struct {
	err      error
	rt       *napiruntime.Runtime
	module   *napiruntime.Module
	filename string
	shim     string
	cfg      string
	result   string
	exports  []exportInfo
	input    textinput.Model
	selected int
	state    modelState
}

type loadedMsg struct {
	err     error
	rt      *napiruntime.Runtime
	mod     *napiruntime.Module
	exports []exportInfo
}

type callResultMsg struct {
	err    error
	result string
}

func runInteractive(filename, shim, cfg string) error {
	m := &interactiveModel{filename: filename, shim: shim, cfg: cfg, state: stateSelectExport}
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadAddon
}

func (m *interactiveModel) loadAddon() tea.Msg {
	rt, mod, err := loadModule(m.filename, m.shim, m.cfg)
	if err != nil {
		return loadedMsg{err: err}
	}

	var exports []exportInfo
	for _, name := range mod.ExportNames() {
		v, _ := mod.Export(name)
		exports = append(exports, exportInfo{name: name, kind: describeExport(v)})
	}
	return loadedMsg{rt: rt, mod: mod, exports: exports}
}

func (m *interactiveModel) callExport() tea.Msg {
	sel := m.exports[m.selected]
	args := parseArgs(m.input.Value())
	result, err := m.module.Call(sel.name, args...)
	m.rt.Poll()
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: value.ToString(result)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break // let the input take the keystroke
			}
			if m.module != nil {
				m.module.Close()
			}
			if m.rt != nil {
				m.rt.Close()
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectExport && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectExport && m.selected < len(m.exports)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectExport:
				if len(m.exports) == 0 {
					return m, nil
				}
				m.input = textinput.New()
				m.input.Placeholder = "arguments, comma separated"
				m.input.Focus()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callExport

			case stateShowResult:
				m.state = stateSelectExport
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectExport
			case stateShowResult:
				m.state = stateSelectExport
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rt = msg.rt
		m.module = msg.mod
		m.exports = msg.exports

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("napi-run "+m.filename) + "\n\n")

	if m.err != nil && m.state != stateShowResult {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
		b.WriteString(helpStyle.Render("q to quit"))
		return b.String()
	}

	switch m.state {
	case stateSelectExport:
		if m.module == nil {
			b.WriteString("Loading...\n")
			break
		}
		b.WriteString("Exports:\n")
		for i, e := range m.exports {
			line := fmt.Sprintf("  %s %s", funcStyle.Render(e.name), typeStyle.Render(e.kind))
			if i == m.selected {
				line = selectedStyle.Render("> " + e.name + " " + e.kind)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("enter call · j/k move · q quit"))

	case stateInputArgs:
		b.WriteString("Call " + funcStyle.Render(m.exports[m.selected].name) + "\n\n")
		b.WriteString(m.input.View() + "\n\n")
		b.WriteString(helpStyle.Render("enter run · esc back"))

	case stateShowResult:
		b.WriteString("Call " + funcStyle.Render(m.exports[m.selected].name) + "\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("threw: "+m.err.Error()) + "\n\n")
		} else {
			b.WriteString(resultStyle.Render(m.result) + "\n\n")
		}
		b.WriteString(helpStyle.Render("enter again · esc back · q quit"))
	}
	return b.String()
}
