package notification_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core"
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

type failingEmailService struct{}

func (failingEmailService) SendMessage(*core.EmailMessage) error {
	return errors.New("transport down")
}

type failingPreferenceRepository struct{}

func (failingPreferenceRepository) CreatePreference(notification.Preference) (notification.Preference, error) {
	return notification.Preference{}, errors.New("store down")
}
func (failingPreferenceRepository) GetPreferenceByEmail(string) (notification.Preference, error) {
	return notification.Preference{}, errors.New("store down")
}
func (failingPreferenceRepository) QueryAllPreferences() ([]notification.Preference, error) {
	return nil, errors.New("store down")
}
func (failingPreferenceRepository) UpdatePreference(notification.Preference) (notification.Preference, error) {
	return notification.Preference{}, errors.New("store down")
}

func testConfig() *core.Config {
	conf := &core.Config{AppName: "Darasa", DefaultFromEmail: "noreply@localhost", TestMode: true}
	conf.Notification.AssignmentScope = core.AssignmentScopeBroadcast
	return conf
}

type testEnv struct {
	svc      *notification.Service
	prefRepo notification.PreferenceRepository
	logRepo  notification.LogRepository
	students student.Repository
	mailSvc  *emailsvc.ConsoleServiceMock
}

func setup(t *testing.T, conf *core.Config) *testEnv {
	db, err := inmemdb.Open()
	require.NoError(t, err)

	env := &testEnv{
		prefRepo: inmemdb.NewPreferenceRepository(db),
		logRepo:  inmemdb.NewEmailLogRepository(db),
		students: inmemdb.NewStudentRepository(db),
		mailSvc:  emailsvc.NewConsoleServiceMock(conf),
	}
	env.svc = notification.NewService(conf, env.prefRepo, env.logRepo, env.students, env.mailSvc, nopLogger{})
	return env
}

func createStudent(t *testing.T, repo student.Repository, first, last, parentEmail string, classID int, status string) student.Student {
	stu, err := repo.CreateStudent(student.Student{
		FirstName:      first,
		LastName:       last,
		ParentEmail:    parentEmail,
		ClassID:        classID,
		EnrollmentDate: time.Now().UTC(),
		Status:         status,
	})
	require.NoError(t, err)
	return stu
}

func disable(t *testing.T, svc *notification.Service, parentEmail string, up notification.UpdatePreference) {
	_, err := svc.UpdatePreferences(parentEmail, up)
	require.NoError(t, err)
}

func boolPtr(b bool) *bool { return &b }

func TestService_ResolvePreferences(t *testing.T) {
	env := setup(t, testConfig())

	pref, err := env.svc.ResolvePreferences("Parent@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "parent@example.com", pref.ParentEmail)
	assert.True(t, pref.GradeUpdates)
	assert.True(t, pref.AttendanceAlerts)
	assert.True(t, pref.AssignmentDeadlines)
	assert.True(t, pref.GeneralAnnouncements)
	assert.Equal(t, notification.FrequencyImmediate, pref.EmailFrequency)

	// resolving again returns the same record, not a new one
	again, err := env.svc.ResolvePreferences("parent@example.com")
	require.NoError(t, err)
	assert.Equal(t, pref.ID, again.ID)

	prefs, err := env.svc.QueryAllPreferences()
	require.NoError(t, err)
	assert.Len(t, prefs, 1)
}

func TestService_UpdatePreferences(t *testing.T) {
	env := setup(t, testConfig())

	pref, err := env.svc.UpdatePreferences("parent@example.com", notification.UpdatePreference{
		GradeUpdates: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, pref.GradeUpdates)
	// unset fields keep their defaults
	assert.True(t, pref.AttendanceAlerts)
	assert.True(t, pref.AssignmentDeadlines)
}

func TestService_TriggerGradeNotification(t *testing.T) {
	env := setup(t, testConfig())
	stu := createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)

	ev := notification.GradeEvent{
		ID:             1,
		StudentID:      stu.ID,
		Subject:        "Math",
		AssignmentName: "Midterm",
		Score:          45,
		MaxScore:       50,
	}
	msgs, err := env.svc.TriggerGradeNotification(ev)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	msg := msgs[0]
	assert.Equal(t, "alice.parent@example.com", msg.To)
	assert.Equal(t, "Grade Update for Alice Smith", msg.Subject)
	assert.Equal(t, "Your child Alice Smith received a grade of 45/50 (90%) on Midterm in Math.", msg.Body)
	assert.Equal(t, notification.TypeGradeUpdate, msg.Type)
	assert.Equal(t, notification.StatusSent, msg.Status)
	assert.Equal(t, stu.ID, msg.StudentID)
	assert.Equal(t, 1, msg.GradeID)
	assert.Len(t, env.mailSvc.SentMessages, 1)
}

func TestService_TriggerGradeNotification_gatedOff(t *testing.T) {
	env := setup(t, testConfig())
	stu := createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)
	disable(t, env.svc, stu.ParentEmail, notification.UpdatePreference{GradeUpdates: boolPtr(false)})

	msgs, err := env.svc.TriggerGradeNotification(notification.GradeEvent{
		StudentID: stu.ID, Subject: "Math", AssignmentName: "Quiz", Score: 8, MaxScore: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, msgs)

	logs, err := env.svc.Logs()
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Empty(t, env.mailSvc.SentMessages)
}

func TestService_TriggerGradeNotification_zeroMaxScore(t *testing.T) {
	env := setup(t, testConfig())
	stu := createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)

	msgs, err := env.svc.TriggerGradeNotification(notification.GradeEvent{
		StudentID: stu.ID, Subject: "Math", AssignmentName: "Quiz", Score: 8, MaxScore: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, msgs)

	logs, err := env.svc.Logs()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestService_TriggerGradeNotification_unknownStudent(t *testing.T) {
	env := setup(t, testConfig())

	msgs, err := env.svc.TriggerGradeNotification(notification.GradeEvent{
		StudentID: 404, Subject: "Math", AssignmentName: "Quiz", Score: 8, MaxScore: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestService_TriggerGradeNotification_prefStoreDown(t *testing.T) {
	conf := testConfig()
	env := setup(t, conf)
	stu := createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)

	// preference store failures fall back to defaults: over-notify, never suppress
	svc := notification.NewService(conf, failingPreferenceRepository{}, env.logRepo, env.students, env.mailSvc, nopLogger{})
	msgs, err := svc.TriggerGradeNotification(notification.GradeEvent{
		StudentID: stu.ID, Subject: "Math", AssignmentName: "Quiz", Score: 8, MaxScore: 10,
	})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.StatusSent, msgs[0].Status)
}

func TestService_TriggerGradeNotification_transportFailure(t *testing.T) {
	conf := testConfig()
	env := setup(t, conf)
	stu := createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)

	svc := notification.NewService(conf, env.prefRepo, env.logRepo, env.students, failingEmailService{}, nopLogger{})
	msgs, err := svc.TriggerGradeNotification(notification.GradeEvent{
		StudentID: stu.ID, Subject: "Math", AssignmentName: "Quiz", Score: 8, MaxScore: 10,
	})
	require.Error(t, err)
	assert.Empty(t, msgs)

	// the attempt is still logged, committed as failed
	logs, lerr := env.svc.Logs()
	require.NoError(t, lerr)
	require.Len(t, logs, 1)
	assert.Equal(t, notification.StatusFailed, logs[0].Status)
}

func TestService_TriggerAttendanceNotification(t *testing.T) {
	env := setup(t, testConfig())
	stu := createStudent(t, env.students, "Bob", "Jones", "bob.parent@example.com", 1, student.StatusActive)

	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	msgs, err := env.svc.TriggerAttendanceNotification(notification.AttendanceEvent{
		ID: 7, StudentID: stu.ID, Date: date, Status: "absent",
	})
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	msg := msgs[0]
	assert.Equal(t, "Attendance Alert for Bob Jones", msg.Subject)
	assert.Equal(t, "Your child Bob Jones was marked absent on March 9, 2026.", msg.Body)
	assert.Equal(t, notification.TypeAttendanceAlert, msg.Type)
	assert.Equal(t, 7, msg.AttendanceID)
}

func TestService_TriggerAttendanceNotification_gatedOff(t *testing.T) {
	env := setup(t, testConfig())
	stu := createStudent(t, env.students, "Bob", "Jones", "bob.parent@example.com", 1, student.StatusActive)
	disable(t, env.svc, stu.ParentEmail, notification.UpdatePreference{AttendanceAlerts: boolPtr(false)})

	msgs, err := env.svc.TriggerAttendanceNotification(notification.AttendanceEvent{
		StudentID: stu.ID, Date: time.Now().UTC(), Status: "absent",
	})
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, env.mailSvc.SentMessages)
}

func TestService_TriggerAssignmentNotification_broadcast(t *testing.T) {
	env := setup(t, testConfig())
	createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)
	createStudent(t, env.students, "Bob", "Jones", "bob.parent@example.com", 2, student.StatusActive)
	optedOut := createStudent(t, env.students, "Carol", "White", "carol.parent@example.com", 1, student.StatusActive)
	createStudent(t, env.students, "Dan", "Brown", "dan.parent@example.com", 1, student.StatusGraduated)
	disable(t, env.svc, optedOut.ParentEmail, notification.UpdatePreference{AssignmentDeadlines: boolPtr(false)})

	due := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	msgs, err := env.svc.TriggerAssignmentNotification(notification.AssignmentEvent{
		ID: 3, ClassID: 1, Title: "Essay", Subject: "English", DueDate: due,
	})
	require.NoError(t, err)
	// broadcast scope: every active student's parent, minus the opt-out
	require.Len(t, msgs, 2)

	recipients := []string{msgs[0].To, msgs[1].To}
	assert.ElementsMatch(t, []string{"alice.parent@example.com", "bob.parent@example.com"}, recipients)
	assert.Equal(t, "New Assignment: Essay", msgs[0].Subject)
	assert.Equal(t, `Your child Alice Smith has a new assignment "Essay" in English. Due date: September 1, 2026.`, msgs[0].Body)
}

func TestService_TriggerAssignmentNotification_classScope(t *testing.T) {
	conf := testConfig()
	conf.Notification.AssignmentScope = core.AssignmentScopeClass
	env := setup(t, conf)
	createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)
	createStudent(t, env.students, "Bob", "Jones", "bob.parent@example.com", 2, student.StatusActive)

	msgs, err := env.svc.TriggerAssignmentNotification(notification.AssignmentEvent{
		ID: 3, ClassID: 1, Title: "Essay", Subject: "English", DueDate: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice.parent@example.com", msgs[0].To)
}

func TestService_TriggerAssignmentNotification_noDedup(t *testing.T) {
	env := setup(t, testConfig())
	createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)

	ev := notification.AssignmentEvent{ID: 3, ClassID: 1, Title: "Essay", Subject: "English", DueDate: time.Now().UTC()}
	_, err := env.svc.TriggerAssignmentNotification(ev)
	require.NoError(t, err)
	_, err = env.svc.TriggerAssignmentNotification(ev)
	require.NoError(t, err)

	// each trigger fans out again; nothing deduplicates
	logs, err := env.svc.Logs()
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestService_BulkSendEmail(t *testing.T) {
	env := setup(t, testConfig())
	optedOut := createStudent(t, env.students, "Carol", "White", "carol.parent@example.com", 1, student.StatusActive)
	disable(t, env.svc, optedOut.ParentEmail, notification.UpdatePreference{
		GradeUpdates:         boolPtr(false),
		AttendanceAlerts:     boolPtr(false),
		AssignmentDeadlines:  boolPtr(false),
		GeneralAnnouncements: boolPtr(false),
	})

	recipients := []notification.Recipient{
		{ID: optedOut.ID, Email: "carol.parent@example.com"},
		{Email: "other.parent@example.com"},
	}
	msgs, err := env.svc.BulkSendEmail(recipients, "School Closure", "School is closed on Friday.")
	require.NoError(t, err)
	// preferences are never consulted for explicit bulk email
	require.Len(t, msgs, 2)
	for _, msg := range msgs {
		assert.Equal(t, notification.TypeBulkEmail, msg.Type)
		assert.Equal(t, notification.StatusSent, msg.Status)
		assert.Equal(t, "School Closure", msg.Subject)
	}
}

func TestService_StatsForToday(t *testing.T) {
	env := setup(t, testConfig())
	stu := createStudent(t, env.students, "Alice", "Smith", "alice.parent@example.com", 1, student.StatusActive)

	// yesterday's traffic must not count
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	for i := 0; i < 2; i++ {
		_, err := env.logRepo.AppendMessage(notification.EmailMessage{
			To:        stu.ParentEmail,
			Subject:   "old",
			Body:      "old",
			Type:      notification.TypeBulkEmail,
			Status:    notification.StatusSent,
			Timestamp: yesterday,
		})
		require.NoError(t, err)
	}

	for i := 0; i < 3; i++ {
		_, err := env.svc.BulkSendEmail([]notification.Recipient{{Email: stu.ParentEmail}}, "s", "b")
		require.NoError(t, err)
	}

	stats, err := env.svc.StatsForToday()
	require.NoError(t, err)
	assert.Equal(t, notification.DayStats{Sent: 3, Pending: 0, Failed: 0}, stats)
}
