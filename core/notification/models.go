package notification

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Email types
const (
	TypeGradeUpdate     = "grade_update"
	TypeAttendanceAlert = "attendance_alert"
	TypeAssignment      = "assignment_notification"
	TypeBulkEmail       = "bulk_email"
)

// Email statuses. A message is appended as `pending`, then committed to
// `sent` or `failed` once the transport returns.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Email frequencies
const (
	FrequencyImmediate = "immediate"
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
)

// Preference holds the notification opt-ins of a single parent email address.
// A record is lazily created with all flags enabled on first reference.
type Preference struct {
	ID                   int       `json:"id" db:"id"`
	ParentEmail          string    `json:"parent_email" db:"parent_email"`
	GradeUpdates         bool      `json:"grade_updates" db:"grade_updates"`
	AttendanceAlerts     bool      `json:"attendance_alerts" db:"attendance_alerts"`
	AssignmentDeadlines  bool      `json:"assignment_deadlines" db:"assignment_deadlines"`
	GeneralAnnouncements bool      `json:"general_announcements" db:"general_announcements"`
	EmailFrequency       string    `json:"email_frequency" db:"email_frequency"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultPreference is the record created on first reference, and the
// fallback when the preference store cannot be read: everything enabled.
func DefaultPreference(parentEmail string) Preference {
	return Preference{
		ParentEmail:          parentEmail,
		GradeUpdates:         true,
		AttendanceAlerts:     true,
		AssignmentDeadlines:  true,
		GeneralAnnouncements: true,
		EmailFrequency:       FrequencyImmediate,
	}
}

// UpdatePreference carries a partial preference edit; nil fields are left unchanged.
type UpdatePreference struct {
	GradeUpdates         *bool   `json:"grade_updates"`
	AttendanceAlerts     *bool   `json:"attendance_alerts"`
	AssignmentDeadlines  *bool   `json:"assignment_deadlines"`
	GeneralAnnouncements *bool   `json:"general_announcements"`
	EmailFrequency       *string `json:"email_frequency" validate:"omitempty,oneof=immediate daily weekly"`
}

func (up *UpdatePreference) Validate() error {
	return core.Validate.Struct(up)
}

// EmailMessage is one entry of the email log: every dispatched (or attempted)
// email, immutable once committed.
type EmailMessage struct {
	ID           int       `json:"id" db:"id"`
	To           string    `json:"to" db:"recipient"`
	Subject      string    `json:"subject" db:"subject"`
	Body         string    `json:"body" db:"body"`
	Type         string    `json:"type" db:"type"`
	Status       string    `json:"status" db:"status"`
	StudentID    int       `json:"student_id,omitempty" db:"student_id"`
	GradeID      int       `json:"grade_id,omitempty" db:"grade_id"`
	AttendanceID int       `json:"attendance_id,omitempty" db:"attendance_id"`
	AssignmentID int       `json:"assignment_id,omitempty" db:"assignment_id"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// DayStats groups the current calendar day's messages by status.
type DayStats struct {
	Sent    int `json:"sent"`
	Pending int `json:"pending"`
	Failed  int `json:"failed"`
}

// Event payloads. The dispatcher only reads the fields it needs from the
// domain records; these are read-only snapshots, owned here so the domain
// packages depend on notification one-way.

type GradeEvent struct {
	ID             int
	StudentID      int
	Subject        string
	AssignmentName string
	Score          float64
	MaxScore       float64
}

type AttendanceEvent struct {
	ID        int
	StudentID int
	Date      time.Time
	Status    string
}

type AssignmentEvent struct {
	ID      int
	ClassID int
	Title   string
	Subject string
	DueDate time.Time
}

// Recipient is one target of a manually composed bulk email.
type Recipient struct {
	ID    int    `json:"id"`
	Email string `json:"email" validate:"required,email"`
}
