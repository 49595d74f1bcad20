package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/tui-go/internal/form"
)

// formField pairs a named form field with its text input widget. Every
// keystroke into the widget is mirrored into the form controller, so
// cross-field rules always see the in-flight value.
type formField struct {
	name  string
	label string
	input textinput.Model
}

func newField(name, label, placeholder string, secret bool) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "❯ "
	ti.PromptStyle = InputPromptStyle
	ti.CharLimit = 0
	ti.Width = 40
	if secret {
		ti.EchoMode = textinput.EchoPassword
	}
	return formField{name: name, label: label, input: ti}
}

func newLoginFields() []formField {
	return []formField{
		newField("email", "Email", "you@example.com", false),
		newField("password", "Password", "", true),
	}
}

func newRegisterFields() []formField {
	return []formField{
		newField("name", "Name", "Your name", false),
		newField("email", "Email", "you@example.com", false),
		newField("password", "Password", "", true),
		newField("confirmPassword", "Confirm password", "", true),
	}
}

func newTaskFields() []formField {
	return []formField{
		newField("title", "Title", "What needs doing?", false),
		newField("description", "Description", "Optional details", false),
	}
}

// focusField focuses the input at idx and blurs the rest
func focusField(fields []formField, idx int) tea.Cmd {
	for i := range fields {
		if i == idx {
			fields[i].input.Focus()
		} else {
			fields[i].input.Blur()
		}
	}
	return textinput.Blink
}

// updateFocusedField routes a message to the focused input and mirrors the
// resulting value into the form controller as a change event
func updateFocusedField(fields []formField, idx int, frm *form.Form, msg tea.Msg) tea.Cmd {
	if idx < 0 || idx >= len(fields) {
		return nil
	}
	var cmd tea.Cmd
	fields[idx].input, cmd = fields[idx].input.Update(msg)
	frm.SetValue(fields[idx].name, fields[idx].input.Value())
	return cmd
}

// resetFields clears every input widget and re-focuses the first
func resetFields(fields []formField) tea.Cmd {
	for i := range fields {
		fields[i].input.SetValue("")
	}
	return focusField(fields, 0)
}
