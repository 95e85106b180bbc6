package notification

import (
	"errors"
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

var (
	// errors
	ErrPreferenceNotFound = errors.New("notification preference not found")
	ErrMessageNotFound    = errors.New("email message not found")
)

const dateFormat = "January 2, 2006"

type (
	PreferenceRepository interface {
		CreatePreference(pref Preference) (Preference, error)
		GetPreferenceByEmail(parentEmail string) (Preference, error)
		QueryAllPreferences() ([]Preference, error)
		UpdatePreference(pref Preference) (Preference, error)
	}

	// LogRepository is the append-only email log. SetMessageStatus exists
	// solely for the dispatcher's two-phase status commit; messages are never
	// otherwise updated and never deleted.
	LogRepository interface {
		AppendMessage(msg EmailMessage) (EmailMessage, error)
		SetMessageStatus(id int, status string) error
		QueryAllMessages() ([]EmailMessage, error)
	}

	Service struct {
		prefRepo        PreferenceRepository
		logRepo         LogRepository
		students        student.Repository
		mailSvc         core.EmailService
		logger          core.Logger
		assignmentScope string
	}
)

func NewService(
	conf *core.Config,
	prefRepo PreferenceRepository,
	logRepo LogRepository,
	students student.Repository,
	mailSvc core.EmailService,
	logger core.Logger,
) *Service {
	return &Service{
		prefRepo:        prefRepo,
		logRepo:         logRepo,
		students:        students,
		mailSvc:         mailSvc,
		logger:          logger,
		assignmentScope: conf.Notification.AssignmentScope,
	}
}

// Preferences

// ResolvePreferences returns the preference record for parentEmail, creating
// the all-enabled default on first reference. It never returns an empty
// record without an error.
func (svc *Service) ResolvePreferences(parentEmail string) (Preference, error) {
	parentEmail = core.CleanString(parentEmail, true /* lower */)
	pref, err := svc.prefRepo.GetPreferenceByEmail(parentEmail)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, ErrPreferenceNotFound) {
		return Preference{}, err
	}
	pref, err = svc.prefRepo.CreatePreference(DefaultPreference(parentEmail))
	if err != nil {
		return Preference{}, pkgerrors.Wrap(err, "creating default preferences")
	}
	return pref, nil
}

// UpdatePreferences merges the set fields of `up` into the existing record,
// creating the default record first if absent.
func (svc *Service) UpdatePreferences(parentEmail string, up UpdatePreference) (Preference, error) {
	pref, err := svc.ResolvePreferences(parentEmail)
	if err != nil {
		return Preference{}, err
	}
	if up.GradeUpdates != nil {
		pref.GradeUpdates = *up.GradeUpdates
	}
	if up.AttendanceAlerts != nil {
		pref.AttendanceAlerts = *up.AttendanceAlerts
	}
	if up.AssignmentDeadlines != nil {
		pref.AssignmentDeadlines = *up.AssignmentDeadlines
	}
	if up.GeneralAnnouncements != nil {
		pref.GeneralAnnouncements = *up.GeneralAnnouncements
	}
	if up.EmailFrequency != nil {
		pref.EmailFrequency = *up.EmailFrequency
	}
	pref.UpdatedAt = time.Now().UTC()
	return svc.prefRepo.UpdatePreference(pref)
}

func (svc *Service) QueryAllPreferences() ([]Preference, error) {
	return svc.prefRepo.QueryAllPreferences()
}

// ParentEmails lists the parent addresses known to the preference store;
// used by bulk UI views only, not in the notification hot path.
func (svc *Service) ParentEmails() ([]string, error) {
	prefs, err := svc.prefRepo.QueryAllPreferences()
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(prefs))
	for _, pref := range prefs {
		emails = append(emails, pref.ParentEmail)
	}
	return emails, nil
}

// preferencesOrDefault applies the fallback policy: when preference state is
// unknown (store unreachable), over-notify rather than silently suppress.
func (svc *Service) preferencesOrDefault(parentEmail string) Preference {
	pref, err := svc.ResolvePreferences(parentEmail)
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("resolving preferences for %s failed; using defaults", parentEmail), err)
		return DefaultPreference(parentEmail)
	}
	return pref
}

// Email log

func (svc *Service) Logs() ([]EmailMessage, error) {
	return svc.logRepo.QueryAllMessages()
}

// StatsForToday counts messages whose timestamp falls on the current UTC
// calendar day, grouped by status.
func (svc *Service) StatsForToday() (DayStats, error) {
	msgs, err := svc.logRepo.QueryAllMessages()
	if err != nil {
		return DayStats{}, err
	}
	var stats DayStats
	today := time.Now().UTC()
	ty, tm, td := today.Date()
	for _, msg := range msgs {
		y, m, d := msg.Timestamp.UTC().Date()
		if y != ty || m != tm || d != td {
			continue
		}
		switch msg.Status {
		case StatusSent:
			stats.Sent++
		case StatusPending:
			stats.Pending++
		case StatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

// send appends the message as `pending`, hands it to the mail service and
// commits the final status. The timestamp is assigned here, at send time.
func (svc *Service) send(msg EmailMessage) (EmailMessage, error) {
	msg.Status = StatusPending
	msg.Timestamp = time.Now().UTC()
	msg, err := svc.logRepo.AppendMessage(msg)
	if err != nil {
		return msg, pkgerrors.Wrap(err, "appending email message")
	}

	sendErr := svc.mailSvc.SendMessage(&core.EmailMessage{
		To:          []mail.Address{{Address: msg.To}},
		Subject:     msg.Subject,
		TextContent: msg.Body,
	})
	status := StatusSent
	if sendErr != nil {
		status = StatusFailed
	}
	if err := svc.logRepo.SetMessageStatus(msg.ID, status); err != nil {
		return msg, pkgerrors.Wrap(err, "committing email message status")
	}
	msg.Status = status
	if sendErr != nil {
		return msg, pkgerrors.Wrap(sendErr, "sending email")
	}
	return msg, nil
}

// Dispatch

// TriggerGradeNotification emails the parent of the graded student if their
// preferences allow grade updates. A missing student aborts silently.
func (svc *Service) TriggerGradeNotification(ev GradeEvent) ([]EmailMessage, error) {
	stu, err := svc.students.GetStudentByID(ev.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "resolving student")
	}

	pref := svc.preferencesOrDefault(stu.ParentEmail)
	if !pref.GradeUpdates {
		return nil, nil
	}

	if ev.MaxScore == 0 {
		svc.logger.Warn(fmt.Sprintf("grade %d has max_score 0; skipping notification", ev.ID))
		return nil, nil
	}
	percentage := int(math.Round(ev.Score / ev.MaxScore * 100))

	msg, err := svc.send(EmailMessage{
		To:      stu.ParentEmail,
		Subject: fmt.Sprintf("Grade Update for %s", stu.FullName()),
		Body: fmt.Sprintf(
			"Your child %s received a grade of %s/%s (%d%%) on %s in %s.",
			stu.FullName(), formatScore(ev.Score), formatScore(ev.MaxScore), percentage, ev.AssignmentName, ev.Subject,
		),
		Type:      TypeGradeUpdate,
		StudentID: stu.ID,
		GradeID:   ev.ID,
	})
	if err != nil {
		return nil, err
	}
	return []EmailMessage{msg}, nil
}

// TriggerAttendanceNotification emails the parent of the marked student if
// their preferences allow attendance alerts. Callers must filter for absences
// before invoking; the dispatcher does not re-check the record's status.
func (svc *Service) TriggerAttendanceNotification(ev AttendanceEvent) ([]EmailMessage, error) {
	stu, err := svc.students.GetStudentByID(ev.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "resolving student")
	}

	pref := svc.preferencesOrDefault(stu.ParentEmail)
	if !pref.AttendanceAlerts {
		return nil, nil
	}

	msg, err := svc.send(EmailMessage{
		To:      stu.ParentEmail,
		Subject: fmt.Sprintf("Attendance Alert for %s", stu.FullName()),
		Body: fmt.Sprintf(
			"Your child %s was marked %s on %s.",
			stu.FullName(), ev.Status, ev.Date.Format(dateFormat),
		),
		Type:         TypeAttendanceAlert,
		StudentID:    stu.ID,
		AttendanceID: ev.ID,
	})
	if err != nil {
		return nil, err
	}
	return []EmailMessage{msg}, nil
}

// TriggerAssignmentNotification fans out one email per qualifying student's
// parent. The candidate set is every active student (broadcast scope) or the
// active students of the assignment's class (class scope); each candidate is
// then gated on their parent's assignment_deadlines preference. Sends are
// sequential; the first transport failure aborts the remaining fan-out.
func (svc *Service) TriggerAssignmentNotification(ev AssignmentEvent) ([]EmailMessage, error) {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying students")
	}

	var msgs []EmailMessage
	for _, stu := range students {
		if !stu.IsActive() {
			continue
		}
		if svc.assignmentScope == core.AssignmentScopeClass && stu.ClassID != ev.ClassID {
			continue
		}
		pref := svc.preferencesOrDefault(stu.ParentEmail)
		if !pref.AssignmentDeadlines {
			continue
		}

		msg, err := svc.send(EmailMessage{
			To:      stu.ParentEmail,
			Subject: fmt.Sprintf("New Assignment: %s", ev.Title),
			Body: fmt.Sprintf(
				"Your child %s has a new assignment %q in %s. Due date: %s.",
				stu.FullName(), ev.Title, ev.Subject, ev.DueDate.Format(dateFormat),
			),
			Type:         TypeAssignment,
			StudentID:    stu.ID,
			AssignmentID: ev.ID,
		})
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// BulkSendEmail sends a manually composed email to every recipient. Explicit
// user-composed email is always delivered: preferences are never consulted.
func (svc *Service) BulkSendEmail(recipients []Recipient, subject, body string) ([]EmailMessage, error) {
	msgs := make([]EmailMessage, 0, len(recipients))
	for _, rcpt := range recipients {
		msg, err := svc.send(EmailMessage{
			To:        rcpt.Email,
			Subject:   subject,
			Body:      body,
			Type:      TypeBulkEmail,
			StudentID: rcpt.ID,
		})
		if err != nil {
			return msgs, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// formatScore renders a score the way it was entered: no trailing zeros.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
