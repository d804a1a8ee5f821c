package models

import (
	"time"
)

// DueDateLayout is the calendar-date format used for due dates everywhere:
// form input, validation and display. No time component, no time zone.
const DueDateLayout = "2006-01-02"

// Todo represents a todo item
type Todo struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsResolved  bool       `gorm:"not null" json:"isResolved"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
}

// DueDateString renders the due date in DueDateLayout, or "" when unset.
func (t *Todo) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DueDateLayout)
}

// DescriptionString returns the description text, or "" when unset.
func (t *Todo) DescriptionString() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}
