package forms

import (
	"net/url"
	"strings"
	"time"

	"github.com/ytakahashi/todo-web/internal/models"
)

// Validation messages shown next to the offending field.
const (
	ErrRequired    = "required field"
	ErrInvalidDate = "enter a valid date in YYYY-MM-DD format"
)

// TodoForm holds raw submitted field values and, after Validate, either the
// parsed values ready for persistence or per-field error messages. The raw
// strings are kept as submitted so a failed form re-renders what the user
// typed.
type TodoForm struct {
	Title       string
	Description string
	DueDate     string
	IsResolved  bool

	Errors map[string]string

	dueDate *time.Time
}

// ParseTodo reads the todo fields from submitted form values. The create
// form has no resolved checkbox, so the create path parses with
// withResolved=false and any submitted is_resolved value is dropped.
func ParseTodo(values url.Values, withResolved bool) *TodoForm {
	f := &TodoForm{
		Title:       values.Get("title"),
		Description: values.Get("description"),
		DueDate:     values.Get("due_date"),
		Errors:      map[string]string{},
	}
	if withResolved {
		// Checkbox semantics: present means checked.
		f.IsResolved = values.Has("is_resolved")
	}
	return f
}

// FromTodo pre-populates an edit form from an existing record.
func FromTodo(todo *models.Todo) *TodoForm {
	return &TodoForm{
		Title:       todo.Title,
		Description: todo.DescriptionString(),
		DueDate:     todo.DueDateString(),
		IsResolved:  todo.IsResolved,
		Errors:      map[string]string{},
	}
}

// Validate checks the submitted values, filling Errors. It returns true
// when the form is clean.
func (f *TodoForm) Validate() bool {
	f.Errors = map[string]string{}

	if strings.TrimSpace(f.Title) == "" {
		f.Errors["title"] = ErrRequired
	}

	f.dueDate = nil
	if raw := strings.TrimSpace(f.DueDate); raw != "" {
		parsed, err := time.Parse(models.DueDateLayout, raw)
		if err != nil {
			f.Errors["due_date"] = ErrInvalidDate
		} else {
			f.dueDate = &parsed
		}
	}

	return len(f.Errors) == 0
}

// TitleValue returns the cleaned title. Valid only after Validate succeeds.
func (f *TodoForm) TitleValue() string {
	return strings.TrimSpace(f.Title)
}

// DescriptionValue returns the description, nil when the field was left
// blank so an absent description stays distinct from an empty one.
func (f *TodoForm) DescriptionValue() *string {
	if f.Description == "" {
		return nil
	}
	d := f.Description
	return &d
}

// DueDateValue returns the parsed due date, nil when absent. Valid only
// after Validate succeeds.
func (f *TodoForm) DueDateValue() *time.Time {
	return f.dueDate
}
