package assignment

import (
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

type Assignment struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subject     string    `json:"subject" db:"subject"`
	ClassID     int       `json:"class_id" db:"class_id"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	Points      float64   `json:"points" db:"points"`
}

// Event snapshots the fields the notification dispatcher reads.
func (a *Assignment) Event() notification.AssignmentEvent {
	return notification.AssignmentEvent{
		ID:      a.ID,
		ClassID: a.ClassID,
		Title:   a.Title,
		Subject: a.Subject,
		DueDate: a.DueDate,
	}
}

// NewAssignment contains information needed to publish a new Assignment.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Subject     string    `json:"subject" validate:"required,notblank"`
	ClassID     int       `json:"class_id"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Points      float64   `json:"points" validate:"min=0"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	return core.Validate.Struct(na)
}

// UpdateAssignment contains information needed to update an existing Assignment.
type UpdateAssignment struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Subject     string    `json:"subject" validate:"required,notblank"`
	ClassID     int       `json:"class_id"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Points      float64   `json:"points" validate:"min=0"`
}

func (ua *UpdateAssignment) Validate() error {
	ua.Title = core.CleanString(ua.Title)
	ua.Subject = core.CleanString(ua.Subject)
	return core.Validate.Struct(ua)
}
