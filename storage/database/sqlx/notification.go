package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/notification"
)

// Preference store

type preferenceRepository struct {
	db *sqlx.DB
}

var _ notification.PreferenceRepository = (*preferenceRepository)(nil) // interface compliance check

func NewPreferenceRepository(db *sqlx.DB) notification.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (repo *preferenceRepository) CreatePreference(pref notification.Preference) (notification.Preference, error) {
	// parent_email is unique; a concurrent create settles on the existing row
	query := `
		INSERT INTO notification_preference
		    (parent_email, grade_updates, attendance_alerts, assignment_deadlines, general_announcements, email_frequency, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (parent_email) DO NOTHING
		RETURNING id`
	err := repo.db.Get(
		&pref.ID, query,
		pref.ParentEmail, pref.GradeUpdates, pref.AttendanceAlerts, pref.AssignmentDeadlines,
		pref.GeneralAnnouncements, pref.EmailFrequency, pref.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return repo.GetPreferenceByEmail(pref.ParentEmail)
	}
	return pref, err
}

func (repo *preferenceRepository) GetPreferenceByEmail(parentEmail string) (notification.Preference, error) {
	var pref notification.Preference
	err := repo.db.Get(&pref, "SELECT * FROM notification_preference WHERE parent_email = $1", parentEmail)
	if err == sql.ErrNoRows {
		return notification.Preference{}, notification.ErrPreferenceNotFound
	}
	return pref, err
}

func (repo *preferenceRepository) QueryAllPreferences() ([]notification.Preference, error) {
	prefs := make([]notification.Preference, 0)
	err := repo.db.Select(&prefs, "SELECT * FROM notification_preference ORDER BY id")
	return prefs, err
}

func (repo *preferenceRepository) UpdatePreference(pref notification.Preference) (notification.Preference, error) {
	query := `
		UPDATE notification_preference
		SET grade_updates = $1, attendance_alerts = $2, assignment_deadlines = $3,
		    general_announcements = $4, email_frequency = $5, updated_at = $6
		WHERE id = $7`
	res, err := repo.db.Exec(
		query,
		pref.GradeUpdates, pref.AttendanceAlerts, pref.AssignmentDeadlines,
		pref.GeneralAnnouncements, pref.EmailFrequency, pref.UpdatedAt,
		pref.ID,
	)
	if err != nil {
		return notification.Preference{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notification.Preference{}, notification.ErrPreferenceNotFound
	}
	return pref, nil
}

// Email log

type emailLogRepository struct {
	db *sqlx.DB
}

var _ notification.LogRepository = (*emailLogRepository)(nil) // interface compliance check

func NewEmailLogRepository(db *sqlx.DB) notification.LogRepository {
	return &emailLogRepository{db: db}
}

func (repo *emailLogRepository) AppendMessage(msg notification.EmailMessage) (notification.EmailMessage, error) {
	query := `
		INSERT INTO email_log (recipient, subject, body, type, status, student_id, grade_id, attendance_id, assignment_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := repo.db.Get(
		&msg.ID, query,
		msg.To, msg.Subject, msg.Body, msg.Type, msg.Status,
		msg.StudentID, msg.GradeID, msg.AttendanceID, msg.AssignmentID, msg.Timestamp,
	)
	return msg, err
}

func (repo *emailLogRepository) SetMessageStatus(id int, status string) error {
	res, err := repo.db.Exec("UPDATE email_log SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notification.ErrMessageNotFound
	}
	return nil
}

func (repo *emailLogRepository) QueryAllMessages() ([]notification.EmailMessage, error) {
	msgs := make([]notification.EmailMessage, 0)
	err := repo.db.Select(&msgs, "SELECT * FROM email_log ORDER BY id")
	return msgs, err
}
