package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fission/gateway"
	"github.com/wippyai/fission/loader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewMode int

const (
	modeDecompile viewMode = iota
	modeDisassemble
)

func (v viewMode) String() string {
	if v == modeDisassemble {
		return "disassembly"
	}
	return "decompilation"
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateGoto
	stateShowResult
)

type interactiveModel struct {
	err      error
	env      *env
	target   *target
	handle   *gateway.Handle
	filename string
	funcs    []loader.Function
	input    textinput.Model
	view     viewport.Model
	current  loader.Function
	selected int
	width    int
	height   int
	state    modelState
	mode     viewMode
	loaded   bool
}

func newInteractiveModel(e *env, filename string) *interactiveModel {
	return &interactiveModel{
		env:      e,
		filename: filename,
		state:    stateSelectFunc,
		view:     viewport.New(80, 20),
	}
}

type loadedMsg struct {
	err    error
	target *target
	handle *gateway.Handle
	funcs  []loader.Function
}

type resultMsg struct {
	err  error
	text string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	t, err := openTarget(m.env, m.filename, addrFlag{})
	if err != nil {
		return loadedMsg{err: err}
	}
	h, err := t.handle(m.env)
	if err != nil {
		return loadedMsg{err: err}
	}

	var funcs []loader.Function
	if t.bin != nil {
		for _, f := range t.bin.SortedFunctions() {
			if !f.Import {
				funcs = append(funcs, f)
			}
		}
	}
	if len(funcs) == 0 {
		funcs = []loader.Function{{Name: "entry", Addr: t.base}}
	}
	return loadedMsg{target: t, handle: h, funcs: funcs}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-5, 1)

	case tea.KeyMsg:
		if m.state == stateGoto {
			return m.updateGoto(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.handle.Destroy()
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectFunc && m.loaded {
				m.current = m.funcs[m.selected]
				return m, m.analyze
			}

		case "tab":
			if m.loaded {
				m.mode = 1 - m.mode
				if m.state == stateShowResult {
					return m, m.analyze
				}
				return m, nil
			}

		case "g":
			if m.loaded {
				m.input = textinput.New()
				m.input.Placeholder = "0x1000"
				m.input.Prompt = "address: "
				m.input.Width = 40
				m.input.Focus()
				m.state = stateGoto
				return m, textinput.Blink
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateSelectFunc
				m.err = nil
				return m, nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.target = msg.target
		m.handle = msg.handle
		m.funcs = msg.funcs
		m.loaded = true
		return m, nil

	case resultMsg:
		m.err = msg.err
		m.view.SetContent(msg.text)
		m.view.GotoTop()
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateShowResult {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.handle.Destroy()
		return m, tea.Quit
	case "esc":
		m.state = stateSelectFunc
		return m, nil
	case "enter":
		addr, err := strconv.ParseUint(strings.TrimSpace(m.input.Value()), 0, 64)
		if err != nil {
			m.input.SetValue("")
			m.input.Placeholder = "not an address"
			return m, nil
		}
		m.current = loader.Function{Name: fmt.Sprintf("sub_%x", addr), Addr: addr}
		if m.target.bin != nil {
			if f, ok := m.target.bin.FunctionAt(addr); ok {
				m.current = f
			}
		}
		return m, m.analyze
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) request() gateway.Request {
	t := m.target
	if t.bin != nil {
		return gateway.Request{Image: t.bin.Image(), Entry: m.current.Addr}
	}
	return gateway.Request{Code: t.code, Base: t.base, Entry: m.current.Addr}
}

func (m *interactiveModel) analyze() tea.Msg {
	req := m.request()
	if m.mode == modeDisassemble {
		insts, err := m.handle.Instructions(req, m.env.cfg.MaxInstructions)
		if err != nil {
			return resultMsg{err: err}
		}
		var b strings.Builder
		for _, inst := range insts {
			fmt.Fprintf(&b, "%s  %s\n", addrStyle.Render(fmt.Sprintf("%x:", inst.Address)), inst.Text())
		}
		return resultMsg{text: b.String()}
	}

	a, err := m.handle.Analyze(req)
	if err != nil {
		return resultMsg{err: err}
	}
	text := a.C
	if !a.Complete {
		text += "\n" + helpStyle.Render("// analysis stopped early")
	}
	for _, w := range a.Warnings {
		text += "\n" + helpStyle.Render("// "+w)
	}
	return resultMsg{text: text}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if !m.loaded {
		return "Loading binary..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Fission"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" ")
	b.WriteString(helpStyle.Render("[" + m.target.lang + ", " + m.mode.String() + "]"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function:\n\n")
		lo, hi := m.window()
		for i := lo; i < hi; i++ {
			line := m.formatFunc(m.funcs[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • g goto • tab mode • q quit"))

	case stateGoto:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter open • esc back"))

	case stateShowResult:
		b.WriteString(funcStyle.Render(m.current.Name))
		b.WriteString(" ")
		b.WriteString(addrStyle.Render(fmt.Sprintf("%#x", m.current.Addr)))
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		} else {
			b.WriteString(m.view.View())
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ scroll • tab mode • g goto • esc back • q quit"))
	}

	return b.String()
}

// window returns the slice of the function list that fits the screen.
func (m *interactiveModel) window() (int, int) {
	rows := len(m.funcs)
	if m.height > 8 {
		rows = min(rows, m.height-8)
	}
	lo := max(m.selected-rows+1, 0)
	return lo, min(lo+rows, len(m.funcs))
}

func (m *interactiveModel) formatFunc(f loader.Function) string {
	s := addrStyle.Render(fmt.Sprintf("%#010x", f.Addr)) + "  " + funcStyle.Render(f.Name)
	if f.Export {
		s += helpStyle.Render(" export")
	}
	return s
}

func runInteractive(e *env, filename string) error {
	p := tea.NewProgram(newInteractiveModel(e, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
