package form

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrei-cloud/go_casenc/pkg/casform"
)

var errPromptCancelled = errors.New("prompt cancelled")

const (
	fieldUsername = iota
	fieldPassword
	fieldLoginTicket
	fieldExecution
)

type promptField struct {
	label    string
	value    []rune
	secret   bool
	optional bool
}

type credentialsModel struct {
	fields    []promptField
	current   int
	message   string
	done      bool
	cancelled bool
}

// newCredentialsModel creates a prompt pre-filled with initial.
func newCredentialsModel(initial casform.Credentials) credentialsModel {
	return credentialsModel{
		fields: []promptField{
			fieldUsername:    {label: "Username", value: []rune(initial.Username)},
			fieldPassword:    {label: "Password", value: []rune(initial.Password), secret: true},
			fieldLoginTicket: {label: "Login ticket (lt)", value: []rune(initial.LoginTicket)},
			fieldExecution:   {label: "Execution", value: []rune(initial.Execution), optional: true},
		},
	}
}

// Init initializes the model.
func (m credentialsModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m credentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	field := &m.fields[m.current]
	m.message = ""

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true

		return m, tea.Quit
	case tea.KeyEnter:
		if len(field.value) == 0 && !field.optional {
			m.message = field.label + " is required"

			return m, nil
		}
		if m.current == len(m.fields)-1 {
			m.done = true

			return m, tea.Quit
		}
		m.current++
	case tea.KeyTab, tea.KeyDown:
		if m.current < len(m.fields)-1 {
			m.current++
		}
	case tea.KeyShiftTab, tea.KeyUp:
		if m.current > 0 {
			m.current--
		}
	case tea.KeyBackspace:
		if n := len(field.value); n > 0 {
			field.value = field.value[:n-1]
		}
	case tea.KeySpace:
		field.value = append(field.value, ' ')
	case tea.KeyRunes:
		field.value = append(field.value, key.Runes...)
	}

	return m, nil
}

// View renders the prompt.
func (m credentialsModel) View() string {
	if m.done {
		return "Credentials captured.\n"
	}
	if m.cancelled {
		return "Operation cancelled.\n"
	}

	var b strings.Builder
	b.WriteString("CAS login form\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	for i, f := range m.fields {
		marker := "  "
		if i == m.current {
			marker = "▶ "
		}
		value := string(f.value)
		if f.secret {
			value = strings.Repeat("*", len(f.value))
		}
		suffix := ""
		if f.optional {
			suffix = " (optional)"
		}
		fmt.Fprintf(&b, "%s%s%s: %s\n", marker, f.label, suffix, value)
	}

	if m.message != "" {
		fmt.Fprintf(&b, "\n! %s\n", m.message)
	}
	b.WriteString("\nenter: next/finish • tab/shift+tab: move • esc: cancel\n")

	return b.String()
}

// credentials returns the values entered so far.
func (m credentialsModel) credentials() casform.Credentials {
	return casform.Credentials{
		Username:    string(m.fields[fieldUsername].value),
		Password:    string(m.fields[fieldPassword].value),
		LoginTicket: string(m.fields[fieldLoginTicket].value),
		Execution:   string(m.fields[fieldExecution].value),
	}
}

// runPrompt asks for the credentials interactively.
func runPrompt(in io.Reader, out io.Writer, initial casform.Credentials) (casform.Credentials, error) {
	p := tea.NewProgram(newCredentialsModel(initial), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return casform.Credentials{}, fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(credentialsModel)
	if !ok || m.cancelled || !m.done {
		return casform.Credentials{}, errPromptCancelled
	}

	return m.credentials(), nil
}
