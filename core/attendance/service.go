package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		CreateAttendance(att Attendance) (Attendance, error)
		QueryAllAttendance() ([]Attendance, error)
		GetAttendanceByID(id int) (Attendance, error)
		// GetAttendanceByStudentAndDate matches on the student and the calendar day.
		GetAttendanceByStudentAndDate(studentID int, date time.Time) (Attendance, error)
		QueryAttendanceByStudentID(studentID int) ([]Attendance, error)
		UpdateAttendance(att Attendance) (Attendance, error)
		DeleteAttendanceByID(ids ...int) error
	}

	Service struct {
		repo     Repository
		notifSvc *notification.Service
		logger   core.Logger
	}
)

func NewService(repo Repository, notifSvc *notification.Service, logger core.Logger) *Service {
	return &Service{repo: repo, notifSvc: notifSvc, logger: logger}
}

// Mark upserts the student's attendance for the given day: a second mark for
// the same (student, day) updates the existing record instead of duplicating
// it. When the resulting status is `absent`, the parent is notified; the
// absence filter lives here, not in the dispatcher.
func (svc *Service) Mark(ma MarkAttendance) (Attendance, error) {
	date := ma.Date
	if date.IsZero() {
		date = time.Now()
	}
	date = normalizeDate(date)

	att, err := svc.repo.GetAttendanceByStudentAndDate(ma.StudentID, date)
	switch {
	case err == nil:
		att.Status = ma.Status
		att.Notes = ma.Notes
		att, err = svc.repo.UpdateAttendance(att)
	case errors.Is(err, ErrNotFound):
		att, err = svc.repo.CreateAttendance(Attendance{
			StudentID: ma.StudentID,
			Date:      date,
			Status:    ma.Status,
			Notes:     ma.Notes,
		})
	}
	if err != nil {
		return Attendance{}, err
	}

	if att.Status == StatusAbsent {
		svc.notify(att)
	}
	return att, nil
}

func (svc *Service) QueryAll() ([]Attendance, error) {
	return svc.repo.QueryAllAttendance()
}

func (svc *Service) GetByID(id int) (Attendance, error) {
	return svc.repo.GetAttendanceByID(id)
}

func (svc *Service) QueryByStudent(studentID int) ([]Attendance, error) {
	return svc.repo.QueryAttendanceByStudentID(studentID)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteAttendanceByID(ids...)
}

// notify dispatches the absence alert best-effort: the attendance write has
// already committed, so failures are logged and never surfaced to the caller.
func (svc *Service) notify(att Attendance) {
	msgs, err := svc.notifSvc.TriggerAttendanceNotification(att.Event())
	if err != nil {
		svc.logger.Error(fmt.Sprintf("attendance %d: notification failed", att.ID), err)
		return
	}
	if len(msgs) > 0 {
		svc.logger.Info(fmt.Sprintf("attendance %d: absence alert sent to %s", att.ID, msgs[0].To))
	}
}

// normalizeDate truncates to the UTC calendar day.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
