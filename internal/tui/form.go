package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/portfolio/internal/contact"
	"github.com/san-kum/portfolio/internal/viz"
)

var formFields = []string{contact.FieldName, contact.FieldEmail, contact.FieldMessage}

type contactForm struct {
	inputs []textinput.Model
	focus  int
	errors contact.Errors
	keys   formKeyMap
}

func newContactForm() contactForm {
	placeholders := []string{"Your name", "you@example.com", "Tell me about your project..."}
	inputs := make([]textinput.Model, len(formFields))
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Prompt = ""
		in.CharLimit = 120
		if formFields[i] == contact.FieldMessage {
			in.CharLimit = 1000
		}
		inputs[i] = in
	}
	return contactForm{inputs: inputs, keys: defaultFormKeys()}
}

func (f contactForm) form() contact.Form {
	return contact.Form{
		Name:    f.inputs[0].Value(),
		Email:   f.inputs[1].Value(),
		Message: f.inputs[2].Value(),
	}
}

func (f *contactForm) focusField(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *contactForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.errors = nil
}

// formResult is what a key press did to the form.
type formResult int

const (
	formEditing formResult = iota
	formCancelled
	formSubmitted
)

func (f *contactForm) update(msg tea.KeyMsg) (formResult, tea.Cmd) {
	switch {
	case key.Matches(msg, f.keys.Cancel):
		return formCancelled, nil
	case key.Matches(msg, f.keys.Next):
		return formEditing, f.focusField(f.focus + 1)
	case key.Matches(msg, f.keys.Prev):
		return formEditing, f.focusField(f.focus - 1)
	case key.Matches(msg, f.keys.Submit):
		if msg.String() == "enter" && f.focus < len(f.inputs)-1 {
			return formEditing, f.focusField(f.focus + 1)
		}
		f.errors = f.form().Validate()
		if !f.errors.OK() {
			for i, name := range formFields {
				if _, bad := f.errors[name]; bad {
					return formEditing, f.focusField(i)
				}
			}
		}
		return formSubmitted, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formEditing, cmd
}

func (f contactForm) view(to string, width int, theme viz.Theme) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Width(10)
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(10)
	errStyle := lipgloss.NewStyle().Foreground(theme.Error).PaddingLeft(10)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	var b strings.Builder
	b.WriteString(viz.GradientText("Let's work together", theme.Primary, theme.Secondary) + "\n")
	b.WriteString(muted.Render("Opens your email client with a message to "+to) + "\n\n")

	for i, name := range formFields {
		l := label
		if i == f.focus {
			l = active
		}
		b.WriteString(l.Render(strings.ToUpper(name[:1])+name[1:]) + f.inputs[i].View() + "\n")
		if msg, bad := f.errors[name]; bad {
			b.WriteString(errStyle.Render(msg) + "\n")
		}
		b.WriteString("\n")
	}
	return viz.Panel(b.String(), width, theme)
}

// updateInput routes non-key messages such as cursor blinks to the focused
// input.
func (f *contactForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
