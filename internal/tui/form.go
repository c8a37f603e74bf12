package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/revenda/internal/forms"
)

// stager is the staging side of a form: the vehicle, client and login forms.
type stager interface {
	Fields() []forms.Field
	Value(key string) string
	Set(key, value string) error
}

// formScreen renders one text input per field and tracks focus.
type formScreen struct {
	title       string
	submitLabel string
	fields      []forms.Field
	inputs      []textinput.Model
	focus       int
	errKey      string
}

const formLabelWidth = 22

func newFormScreen(title, submitLabel string, s stager) formScreen {
	fields := s.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Placeholder
		in.CharLimit = 120
		in.Width = 40
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		in.SetValue(s.Value(f.Key))
		inputs[i] = in
	}
	fs := formScreen{title: title, submitLabel: submitLabel, fields: fields, inputs: inputs}
	fs.focusField(0)
	return fs
}

func (f *formScreen) focusField(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *formScreen) next() tea.Cmd { return f.focusField(f.focus + 1) }

func (f *formScreen) prev() tea.Cmd { return f.focusField(f.focus - 1) }

func (f formScreen) onLast() bool { return f.focus == len(f.inputs)-1 }

// focusKey moves focus to the field with the given key and marks it as the
// one that failed validation.
func (f *formScreen) focusKey(key string) tea.Cmd {
	for i, fd := range f.fields {
		if fd.Key == key {
			f.errKey = key
			return f.focusField(i)
		}
	}
	return nil
}

// sync copies the input values into the staging form.
func (f formScreen) sync(s stager) error {
	for i, fd := range f.fields {
		if err := s.Set(fd.Key, f.inputs[i].Value()); err != nil {
			return err
		}
	}
	return nil
}

func (f *formScreen) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.errKey == f.fields[f.focus].Key && strings.TrimSpace(f.inputs[f.focus].Value()) != "" {
		f.errKey = ""
	}
	return cmd
}

func (f formScreen) view(width int) string {
	inputWidth := width - formLabelWidth - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n")
	section := ""
	for i, fd := range f.fields {
		if fd.Section != "" && fd.Section != section {
			section = fd.Section
			b.WriteString("\n")
			b.WriteString(sectionLabelStyle.Render(section))
			b.WriteString("\n")
		}
		label := fd.Label
		if fd.Required {
			label += requiredStyle.Render(" *")
		}
		label = fitWidth(labelStyle.Render(label), formLabelWidth)
		marker := "  "
		if i == f.focus {
			marker = lipgloss.NewStyle().Foreground(colorFocus).Render("▌ ")
		}
		in := f.inputs[i]
		in.Width = inputWidth
		line := marker + label + in.View()
		if fd.Key == f.errKey {
			line += "  " + errorTextStyle.Render("obrigatório")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if f.onLast() {
		b.WriteString(buttonStyle.Render(f.submitLabel))
	} else {
		b.WriteString(buttonIdleStyle.Render(f.submitLabel))
	}
	return b.String()
}
