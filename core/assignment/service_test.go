package assignment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
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

func setup(t *testing.T) (*assignment.Service, *notification.Service, student.Repository) {
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
	svc := assignment.NewService(inmemdb.NewAssignmentRepository(db), notifSvc, nopLogger{})
	return svc, notifSvc, studentRepo
}

func createStudent(t *testing.T, repo student.Repository, parentEmail, status string) student.Student {
	stu, err := repo.CreateStudent(student.Student{
		FirstName:      "Alice",
		LastName:       "Smith",
		ParentEmail:    parentEmail,
		EnrollmentDate: time.Now().UTC(),
		Status:         status,
	})
	require.NoError(t, err)
	return stu
}

func TestService_Create_fansOutToActiveStudents(t *testing.T) {
	svc, notifSvc, studentRepo := setup(t)
	createStudent(t, studentRepo, "alice.parent@example.com", student.StatusActive)
	createStudent(t, studentRepo, "bob.parent@example.com", student.StatusActive)
	createStudent(t, studentRepo, "dan.parent@example.com", student.StatusInactive)

	asg, err := svc.Create(assignment.NewAssignment{
		Title:   "Essay",
		Subject: "English",
		ClassID: 1,
		DueDate: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		Points:  100,
	})
	require.NoError(t, err)
	assert.NotZero(t, asg.ID)

	logs, err := notifSvc.Logs()
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, msg := range logs {
		assert.Equal(t, notification.TypeAssignment, msg.Type)
		assert.Equal(t, asg.ID, msg.AssignmentID)
		assert.Equal(t, "New Assignment: Essay", msg.Subject)
	}
}

func TestService_Update_fansOutAgain(t *testing.T) {
	svc, notifSvc, studentRepo := setup(t)
	createStudent(t, studentRepo, "alice.parent@example.com", student.StatusActive)

	asg, err := svc.Create(assignment.NewAssignment{
		Title: "Essay", Subject: "English", ClassID: 1, DueDate: time.Now().UTC(), Points: 100,
	})
	require.NoError(t, err)

	_, err = svc.Update(asg.ID, assignment.UpdateAssignment{
		Title: "Essay (revised)", Subject: "English", ClassID: 1, DueDate: time.Now().UTC(), Points: 100,
	})
	require.NoError(t, err)

	logs, err := notifSvc.Logs()
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
