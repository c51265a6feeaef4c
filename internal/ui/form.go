package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tastebook/internal/upload"
)

// uploadField pairs a form value name with its on-screen label.
type uploadField struct {
	name  string
	label string
}

var uploadFields = []uploadField{
	{name: "title", label: "Title"},
	{name: "sourceUrl", label: "Source URL"},
	{name: "image", label: "Image URL"},
	{name: "publisher", label: "Publisher"},
	{name: "cookingTime", label: "Cooking time (min)"},
	{name: "servings", label: "Servings"},
	{name: "ingredient-1", label: "Ingredient 1"},
	{name: "ingredient-2", label: "Ingredient 2"},
	{name: "ingredient-3", label: "Ingredient 3"},
	{name: "ingredient-4", label: "Ingredient 4"},
	{name: "ingredient-5", label: "Ingredient 5"},
	{name: "ingredient-6", label: "Ingredient 6"},
}

// uploadForm holds the text inputs for the add-recipe view.
type uploadForm struct {
	inputs []textinput.Model
	focus  int
}

func newUploadForm() uploadForm {
	inputs := make([]textinput.Model, len(uploadFields))
	for i, f := range uploadFields {
		in := textinput.New()
		in.CharLimit = 200
		in.Width = 48
		if f.name == "ingredient-1" {
			in.Placeholder = "Format: 'Quantity,Unit,Description'"
		}
		inputs[i] = in
	}
	inputs[0].Focus()
	return uploadForm{inputs: inputs}
}

// values returns the field contents keyed by form value name.
func (f *uploadForm) values() map[string]string {
	out := make(map[string]string, len(f.inputs))
	for i, in := range f.inputs {
		out[uploadFields[i].name] = in.Value()
	}
	return out
}

func (f *uploadForm) focusNext() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *uploadForm) focusPrev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *uploadForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// update routes a message to the focused input.
func (f *uploadForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// validationHint reports why the form is not submittable yet, or an empty
// string once it is. It runs the same checks the session runs on submit so
// problems show up while typing.
func (f *uploadForm) validationHint() string {
	form := upload.FormFromValues(f.values())
	if _, err := form.Payload(); err != nil {
		return err.Error()
	}
	return ""
}
