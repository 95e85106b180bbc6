package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/darasa/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assignment"
	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/grade"
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

type testApp struct {
	server http.Handler

	studentRepo student.Repository
	notifSvc    *notification.Service
	mailSvc     *emailsvc.ConsoleServiceMock
}

func setup(t *testing.T) *testApp {
	conf := &core.Config{AppName: "Darasa", DefaultFromEmail: "noreply@localhost", TestMode: true}
	conf.Notification.AssignmentScope = core.AssignmentScopeBroadcast

	db, err := inmemdb.Open()
	require.NoError(t, err)

	studentRepo := inmemdb.NewStudentRepository(db)
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	notifSvc := notification.NewService(
		conf,
		inmemdb.NewPreferenceRepository(db),
		inmemdb.NewEmailLogRepository(db),
		studentRepo,
		mailSvc,
		nopLogger{},
	)

	server := echoapi.NewServer(&echoapi.Options{
		Address:        "localhost:8000",
		DisableReqLogs: true,
		Conf:           conf,
		Logger:         nopLogger{},
		StudentSvc:     student.NewService(studentRepo),
		ClassSvc:       class.NewService(inmemdb.NewClassRepository(db)),
		GradeSvc:       grade.NewService(inmemdb.NewGradeRepository(db), notifSvc, nopLogger{}),
		AttendanceSvc:  attendance.NewService(inmemdb.NewAttendanceRepository(db), notifSvc, nopLogger{}),
		AssignmentSvc:  assignment.NewService(inmemdb.NewAssignmentRepository(db), notifSvc, nopLogger{}),
		NotifSvc:       notifSvc,
		SignalShutdown: func() {},
	})

	return &testApp{
		server:      server,
		studentRepo: studentRepo,
		notifSvc:    notifSvc,
		mailSvc:     mailSvc,
	}
}

func (app *testApp) request(t *testing.T, method, path string, data interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if data != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(data))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func createStudent(t *testing.T, repo student.Repository, first, last, parentEmail string) student.Student {
	stu, err := repo.CreateStudent(student.Student{
		FirstName:      first,
		LastName:       last,
		ParentEmail:    parentEmail,
		EnrollmentDate: time.Now().UTC(),
		Status:         student.StatusActive,
	})
	require.NoError(t, err)
	return stu
}
