package attendance

import (
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

// Attendance statuses
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

// Attendance records one student's status for one calendar day.
type Attendance struct {
	ID        int       `json:"id" db:"id"`
	StudentID int       `json:"student_id" db:"student_id"`
	Date      time.Time `json:"date" db:"date"`
	Status    string    `json:"status" db:"status"`
	Notes     string    `json:"notes" db:"notes"`
}

// Event snapshots the fields the notification dispatcher reads.
func (a *Attendance) Event() notification.AttendanceEvent {
	return notification.AttendanceEvent{
		ID:        a.ID,
		StudentID: a.StudentID,
		Date:      a.Date,
		Status:    a.Status,
	}
}

// MarkAttendance contains information needed to mark (or re-mark) a student's
// attendance for a day.
type MarkAttendance struct {
	StudentID int       `json:"student_id" validate:"required"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Notes     string    `json:"notes"`
}

func (ma *MarkAttendance) Validate() error {
	ma.Notes = core.CleanString(ma.Notes)
	return core.Validate.Struct(ma)
}
