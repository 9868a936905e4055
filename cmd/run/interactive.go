package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HomunMage/homun-std/pqueue"
	"github.com/HomunMage/homun-std/runtime"
	"github.com/HomunMage/homun-std/seq"
	"github.com/HomunMage/homun-std/text"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	argStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

type uiState int

const (
	stateSelectOp uiState = iota
	stateInputArgs
	stateShowResult
)

// op is one runtime operation the explorer can exercise.
type op struct {
	name string
	args []string
	call func(m *model, args []string) (string, error)
}

var ops = []op{
	{
		name: "slice",
		args: []string{"items (comma separated)", "start", "end", "step"},
		call: func(m *model, args []string) (string, error) {
			items := text.Split(args[0], ",")
			for i := range items {
				items[i] = text.Trim(items[i])
			}
			start := text.ParseInt(args[1])
			end := seq.Unbounded
			if text.Trim(args[2]) != "" {
				end = text.ParseInt(args[2])
			}
			step := text.ParseInt(args[3])
			return fmt.Sprintf("%v", seq.Slice(items, start, end, step)), nil
		},
	},
	{
		name: "at",
		args: []string{"items (comma separated)", "index"},
		call: func(m *model, args []string) (string, error) {
			items := text.Split(args[0], ",")
			v, err := seq.At(items, text.ParseInt(args[1]))
			if err != nil {
				return "", err
			}
			return text.Trim(v), nil
		},
	},
	{
		name: "match-at",
		args: []string{"pattern", "text", "pos"},
		call: func(m *model, args []string) (string, error) {
			res, err := m.ctx.Patterns().MatchAt(args[0], args[1], text.ParseInt(args[2]))
			if err != nil {
				return "", err
			}
			if !res.Matched {
				return "no match", nil
			}
			return fmt.Sprintf("%q (end %d)", res.Text, res.End), nil
		},
	},
	{
		name: "search",
		args: []string{"pattern", "text"},
		call: func(m *model, args []string) (string, error) {
			found, err := m.ctx.Patterns().Search(args[0], args[1])
			if err != nil {
				return "", err
			}
			if !found {
				return "no match", nil
			}
			return "match", nil
		},
	},
	{
		name: "queue-push",
		args: []string{"priority", "item"},
		call: func(m *model, args []string) (string, error) {
			if err := m.ctx.Queues().Push(m.queue, text.ParseInt(args[0]), args[1]); err != nil {
				return "", err
			}
			n, err := m.ctx.Queues().QueueLen(m.queue)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("pushed, %d queued", n), nil
		},
	},
	{
		name: "queue-pop",
		args: nil,
		call: func(m *model, args []string) (string, error) {
			e, ok, err := m.ctx.Queues().Pop(m.queue)
			if err != nil {
				return "", err
			}
			if !ok {
				return "queue is empty", nil
			}
			return fmt.Sprintf("%q (priority %d)", e.Item, e.Priority), nil
		},
	},
	{
		name: "pad-center",
		args: []string{"text", "width"},
		call: func(m *model, args []string) (string, error) {
			return "[" + text.PadCenter(args[0], text.ParseInt(args[1])) + "]", nil
		},
	},
}

type model struct {
	ctx   *runtime.Context
	queue pqueue.Handle

	state    uiState
	cursor   int
	inputs   []textinput.Model
	focused  int
	result   string
	errMsg   string
	quitting bool
}

func newModel() (*model, error) {
	ctx := runtime.New()
	queue, err := ctx.Queues().New()
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return &model{ctx: ctx, queue: queue}, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateSelectOp:
		return m.updateSelect(keyMsg)
	case stateInputArgs:
		return m.updateInput(keyMsg)
	case stateShowResult:
		return m.updateResult(keyMsg)
	}
	return m, nil
}

func (m *model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(ops)-1 {
			m.cursor++
		}
	case "enter":
		selected := ops[m.cursor]
		if len(selected.args) == 0 {
			m.invoke(nil)
			return m, nil
		}
		m.inputs = make([]textinput.Model, len(selected.args))
		for i, name := range selected.args {
			ti := textinput.New()
			ti.Placeholder = name
			ti.CharLimit = 128
			m.inputs[i] = ti
		}
		m.focused = 0
		m.inputs[0].Focus()
		m.state = stateInputArgs
	}
	return m, nil
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.state = stateSelectOp
		return m, nil
	case "tab", "shift+tab", "enter":
		if msg.String() == "enter" && m.focused == len(m.inputs)-1 {
			args := make([]string, len(m.inputs))
			for i, in := range m.inputs {
				args[i] = in.Value()
			}
			m.invoke(args)
			return m, nil
		}
		m.inputs[m.focused].Blur()
		if msg.String() == "shift+tab" {
			m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
		} else {
			m.focused = (m.focused + 1) % len(m.inputs)
		}
		m.inputs[m.focused].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	default:
		m.result = ""
		m.errMsg = ""
		m.state = stateSelectOp
	}
	return m, nil
}

func (m *model) invoke(args []string) {
	out, err := ops[m.cursor].call(m, args)
	if err != nil {
		m.errMsg = err.Error()
	} else {
		m.result = out
	}
	m.state = stateShowResult
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("homun-std explorer"))
	b.WriteString("\n")

	switch m.state {
	case stateSelectOp:
		for i, o := range ops {
			line := opStyle.Render(o.name)
			if len(o.args) > 0 {
				line += argStyle.Render(" (" + strings.Join(o.args, ", ") + ")")
			}
			if i == m.cursor {
				line = selectedStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(helpStyle.Render("up/down: move • enter: select • q: quit"))

	case stateInputArgs:
		b.WriteString(opStyle.Render(ops[m.cursor].name) + "\n\n")
		for _, in := range m.inputs {
			b.WriteString(in.View() + "\n")
		}
		b.WriteString(helpStyle.Render("tab: next field • enter: run • esc: back"))

	case stateShowResult:
		b.WriteString(opStyle.Render(ops[m.cursor].name) + "\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("error: " + m.errMsg))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n" + helpStyle.Render("any key: back • q: quit"))
	}

	return b.String()
}

func runInteractive() error {
	m, err := newModel()
	if err != nil {
		return err
	}
	defer m.ctx.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
