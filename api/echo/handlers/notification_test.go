package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/notification"
)

func Test_notificationApi_preferences(t *testing.T) {
	app := setup(t)

	// first retrieval lazily creates the all-enabled default
	rec := app.request(t, http.MethodGet, "/v1/notifications/preferences/parent@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pref notification.Preference
	decode(t, rec, &pref)
	assert.Equal(t, "parent@example.com", pref.ParentEmail)
	assert.True(t, pref.GradeUpdates)
	assert.Equal(t, notification.FrequencyImmediate, pref.EmailFrequency)

	// partial update
	rec = app.request(t, http.MethodPut, "/v1/notifications/preferences/parent@example.com", map[string]interface{}{
		"grade_updates": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &pref)
	assert.False(t, pref.GradeUpdates)
	assert.True(t, pref.AttendanceAlerts)

	// invalid frequency
	rec = app.request(t, http.MethodPut, "/v1/notifications/preferences/parent@example.com", map[string]interface{}{
		"email_frequency": "hourly",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// list + parent emails
	rec = app.request(t, http.MethodGet, "/v1/notifications/preferences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var prefs []notification.Preference
	decode(t, rec, &prefs)
	assert.Len(t, prefs, 1)

	rec = app.request(t, http.MethodGet, "/v1/notifications/preferences/parent-emails", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var emails []string
	decode(t, rec, &emails)
	assert.Equal(t, []string{"parent@example.com"}, emails)
}

func Test_notificationApi_bulkEmail(t *testing.T) {
	app := setup(t)

	rec := app.request(t, http.MethodPost, "/v1/notifications/bulk-email", map[string]interface{}{
		"recipients": []map[string]interface{}{
			{"email": "alice.parent@example.com"},
			{"email": "bob.parent@example.com"},
		},
		"subject": "School Closure",
		"body":    "School is closed on Friday.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var msgs []notification.EmailMessage
	decode(t, rec, &msgs)
	require.Len(t, msgs, 2)
	for _, msg := range msgs {
		assert.Equal(t, notification.TypeBulkEmail, msg.Type)
		assert.Equal(t, notification.StatusSent, msg.Status)
	}
	assert.Len(t, app.mailSvc.SentMessages, 2)

	// missing subject
	rec = app.request(t, http.MethodPost, "/v1/notifications/bulk-email", map[string]interface{}{
		"recipients": []map[string]interface{}{{"email": "alice.parent@example.com"}},
		"body":       "no subject",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// no recipients
	rec = app.request(t, http.MethodPost, "/v1/notifications/bulk-email", map[string]interface{}{
		"subject": "s",
		"body":    "b",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_notificationApi_logsAndStats(t *testing.T) {
	app := setup(t)
	stu := createStudent(t, app.studentRepo, "Alice", "Smith", "alice.parent@example.com")

	rec := app.request(t, http.MethodPost, "/v1/grades", map[string]interface{}{
		"student_id":      stu.ID,
		"subject":         "Math",
		"assignment_name": "Midterm",
		"score":           45,
		"max_score":       50,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.request(t, http.MethodGet, "/v1/notifications/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msgs []notification.EmailMessage
	decode(t, rec, &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.TypeGradeUpdate, msgs[0].Type)
	assert.Contains(t, msgs[0].Body, "90%")

	rec = app.request(t, http.MethodGet, "/v1/notifications/logs/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats notification.DayStats
	decode(t, rec, &stats)
	assert.Equal(t, notification.DayStats{Sent: 1, Pending: 0, Failed: 0}, stats)
}
