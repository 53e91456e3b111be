package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xandfury/external-mesa3d/alu"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	filter   textinput.Model
	visible  []alu.Op
	inputs   []textinput.Model
	result   string
	selected int
	focusIdx int
	hasBits  bool
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "type to filter opcodes"
	filter.Prompt = "/ "
	filter.Focus()

	m := &interactiveModel{filter: filter, state: stateSelectOp}
	m.refilter()
	return m
}

func (m *interactiveModel) refilter() {
	needle := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]
	for _, op := range alu.Ops() {
		if needle == "" || strings.Contains(op.String(), needle) {
			m.visible = append(m.visible, op)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

type evalResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up", "ctrl+k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "ctrl+j":
			if m.state == stateSelectOp && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				if len(m.visible) == 0 {
					break
				}
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runEvaluation

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateSelectOp:
				return m, tea.Quit
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case evalResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	switch m.state {
	case stateSelectOp:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd

	case stateInputArgs:
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	info := m.visible[m.selected].Info()

	m.inputs = nil
	m.hasBits = info.Widths != 0
	if m.hasBits {
		ti := textinput.New()
		ti.Prompt = "bits: "
		var sizes []string
		for _, s := range info.Widths.Sizes() {
			sizes = append(sizes, fmt.Sprint(s))
		}
		ti.Placeholder = strings.Join(sizes, "/")
		ti.Width = 12
		m.inputs = append(m.inputs, ti)
	}

	for i := 0; i < info.NumSrcs; i++ {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("src%d: ", i)
		ti.Placeholder = srcPlaceholder(info, i)
		ti.Width = 40
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()
	m.focusIdx = 0
}

func srcPlaceholder(info alu.Info, i int) string {
	t := typeLabel(info.Src[i])
	if n := info.SrcLen[i]; n > 1 {
		return fmt.Sprintf("%d %s lanes, comma-separated", n, t)
	}
	return t + " lanes, comma-separated"
}

func typeLabel(t alu.Type) string {
	label := t.Class.String()
	if t.Size != 0 {
		label = fmt.Sprintf("%s%d", label, t.Size)
	}
	return label
}

func (m *interactiveModel) runEvaluation() tea.Msg {
	info := m.visible[m.selected].Info()

	bits := 0
	operands := make([]string, 0, info.NumSrcs)
	for i, input := range m.inputs {
		if i == 0 && m.hasBits {
			v, err := strconv.Atoi(strings.TrimSpace(input.Value()))
			if err != nil {
				return evalResultMsg{err: fmt.Errorf("bits: %w", err)}
			}
			bits = v
			continue
		}
		operands = append(operands, input.Value())
	}

	out, err := evaluate(info.Name, bits, 0, operands)
	return evalResultMsg{result: out, err: err}
}

const listWindow = 14

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NIR Constant Folder"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		start := 0
		if m.selected >= listWindow {
			start = m.selected - listWindow + 1
		}
		end := min(start+listWindow, len(m.visible))
		for i := start; i < end; i++ {
			line := m.formatOp(m.visible[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no opcode matches"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • esc quit"))

	case stateInputArgs:
		info := m.visible[m.selected].Info()
		b.WriteString(fmt.Sprintf("Evaluating %s\n\n", opStyle.Render(info.Name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter evaluate • esc back"))

	case stateShowResult:
		info := m.visible[m.selected].Info()
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(info.Name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatOp(op alu.Op) string {
	info := op.Info()
	var srcs []string
	for i := 0; i < info.NumSrcs; i++ {
		srcs = append(srcs, typeStyle.Render(typeLabel(info.Src[i])))
	}
	return opStyle.Render(info.Name) + "(" + strings.Join(srcs, ", ") + ") -> " +
		typeStyle.Render(typeLabel(info.Out))
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
