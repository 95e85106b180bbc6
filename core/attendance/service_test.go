package attendance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/notification"
	"github.com/trezcool/darasa/core/student"
	emailsvc "github.com/trezcool/darasa/services/email"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*attendance.Service, *notification.Service, student.Repository) {
	conf := &core.Config{AppName: "Darasa", DefaultFromEmail: "noreply@localhost", TestMode: true}
	conf.Notification.AssignmentScope = core.AssignmentScopeBroadcast

	db, err := inmemdb.Open()
	require.NoError(t, err)

	studentRepo := inmemdb.NewStudentRepository(db)
	notifSvc := notification.NewService(
		conf,
		inmemdb.NewPreferenceRepository(db),
		inmemdb.NewEmailLogRepository(db),
		studentRepo,
		emailsvc.NewConsoleServiceMock(conf),
		nopLogger{},
	)
	svc := attendance.NewService(inmemdb.NewAttendanceRepository(db), notifSvc, nopLogger{})
	return svc, notifSvc, studentRepo
}

func createStudent(t *testing.T, repo student.Repository) student.Student {
	stu, err := repo.CreateStudent(student.Student{
		FirstName:      "Alice",
		LastName:       "Smith",
		ParentEmail:    "alice.parent@example.com",
		EnrollmentDate: time.Now().UTC(),
		Status:         student.StatusActive,
	})
	require.NoError(t, err)
	return stu
}

func TestService_Mark_upsert(t *testing.T) {
	svc, _, studentRepo := setup(t)
	stu := createStudent(t, studentRepo)

	date := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)
	att, err := svc.Mark(attendance.MarkAttendance{StudentID: stu.ID, Date: date, Status: attendance.StatusPresent})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, att.Status)
	// the time of day is dropped
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), att.Date)

	// a second mark for the same day updates the record in place
	again, err := svc.Mark(attendance.MarkAttendance{StudentID: stu.ID, Date: date, Status: attendance.StatusLate, Notes: "overslept"})
	require.NoError(t, err)
	assert.Equal(t, att.ID, again.ID)
	assert.Equal(t, attendance.StatusLate, again.Status)
	assert.Equal(t, "overslept", again.Notes)

	records, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestService_Mark_absentNotifiesParent(t *testing.T) {
	svc, notifSvc, studentRepo := setup(t)
	stu := createStudent(t, studentRepo)

	_, err := svc.Mark(attendance.MarkAttendance{StudentID: stu.ID, Status: attendance.StatusAbsent})
	require.NoError(t, err)

	logs, err := notifSvc.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, notification.TypeAttendanceAlert, logs[0].Type)
	assert.Equal(t, stu.ParentEmail, logs[0].To)
	assert.Equal(t, notification.StatusSent, logs[0].Status)
}

func TestService_Mark_presentDoesNotNotify(t *testing.T) {
	svc, notifSvc, studentRepo := setup(t)
	stu := createStudent(t, studentRepo)

	for _, status := range []string{attendance.StatusPresent, attendance.StatusLate, attendance.StatusExcused} {
		_, err := svc.Mark(attendance.MarkAttendance{
			StudentID: stu.ID,
			Date:      time.Now().UTC().AddDate(0, 0, 1),
			Status:    status,
		})
		require.NoError(t, err)
	}

	logs, err := notifSvc.Logs()
	require.NoError(t, err)
	assert.Empty(t, logs)
}
