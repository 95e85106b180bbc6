package grade

import (
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

type Grade struct {
	ID             int       `json:"id" db:"id"`
	StudentID      int       `json:"student_id" db:"student_id"`
	Subject        string    `json:"subject" db:"subject"`
	AssignmentName string    `json:"assignment_name" db:"assignment_name"`
	Score          float64   `json:"score" db:"score"`
	MaxScore       float64   `json:"max_score" db:"max_score"`
	Weight         float64   `json:"weight" db:"weight"`
	Date           time.Time `json:"date" db:"date"`
	Type           string    `json:"type" db:"type"`
}

// Event snapshots the fields the notification dispatcher reads.
func (g *Grade) Event() notification.GradeEvent {
	return notification.GradeEvent{
		ID:             g.ID,
		StudentID:      g.StudentID,
		Subject:        g.Subject,
		AssignmentName: g.AssignmentName,
		Score:          g.Score,
		MaxScore:       g.MaxScore,
	}
}

// NewGrade contains information needed to record a new Grade.
type NewGrade struct {
	StudentID      int       `json:"student_id" validate:"required"`
	Subject        string    `json:"subject" validate:"required,notblank"`
	AssignmentName string    `json:"assignment_name" validate:"required,notblank"`
	Score          float64   `json:"score" validate:"min=0"`
	MaxScore       float64   `json:"max_score" validate:"min=0"`
	Weight         float64   `json:"weight" validate:"min=0,max=1"`
	Date           time.Time `json:"date"`
	Type           string    `json:"type"`
}

func (ng *NewGrade) Validate() error {
	ng.Subject = core.CleanString(ng.Subject)
	ng.AssignmentName = core.CleanString(ng.AssignmentName)
	return core.Validate.Struct(ng)
}

// UpdateGrade contains information needed to update an existing Grade.
type UpdateGrade struct {
	StudentID      int       `json:"student_id" validate:"required"`
	Subject        string    `json:"subject" validate:"required,notblank"`
	AssignmentName string    `json:"assignment_name" validate:"required,notblank"`
	Score          float64   `json:"score" validate:"min=0"`
	MaxScore       float64   `json:"max_score" validate:"min=0"`
	Weight         float64   `json:"weight" validate:"min=0,max=1"`
	Date           time.Time `json:"date"`
	Type           string    `json:"type"`
}

func (ug *UpdateGrade) Validate() error {
	ug.Subject = core.CleanString(ug.Subject)
	ug.AssignmentName = core.CleanString(ug.AssignmentName)
	return core.Validate.Struct(ug)
}
