package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/attendance"
)

type attendanceRepository struct {
	db *sqlx.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *sqlx.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateAttendance(att attendance.Attendance) (attendance.Attendance, error) {
	query := `
		INSERT INTO attendance (student_id, date, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := repo.db.Get(&att.ID, query, att.StudentID, att.Date, att.Status, att.Notes)
	return att, err
}

func (repo *attendanceRepository) QueryAllAttendance() ([]attendance.Attendance, error) {
	atts := make([]attendance.Attendance, 0)
	err := repo.db.Select(&atts, "SELECT * FROM attendance ORDER BY id")
	return atts, err
}

func (repo *attendanceRepository) GetAttendanceByID(id int) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := repo.db.Get(&att, "SELECT * FROM attendance WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return attendance.Attendance{}, attendance.ErrNotFound
	}
	return att, err
}

func (repo *attendanceRepository) GetAttendanceByStudentAndDate(studentID int, date time.Time) (attendance.Attendance, error) {
	var att attendance.Attendance
	query := "SELECT * FROM attendance WHERE student_id = $1 AND date = $2::date"
	err := repo.db.Get(&att, query, studentID, date)
	if err == sql.ErrNoRows {
		return attendance.Attendance{}, attendance.ErrNotFound
	}
	return att, err
}

func (repo *attendanceRepository) QueryAttendanceByStudentID(studentID int) ([]attendance.Attendance, error) {
	atts := make([]attendance.Attendance, 0)
	err := repo.db.Select(&atts, "SELECT * FROM attendance WHERE student_id = $1 ORDER BY id", studentID)
	return atts, err
}

func (repo *attendanceRepository) UpdateAttendance(att attendance.Attendance) (attendance.Attendance, error) {
	query := "UPDATE attendance SET student_id = $1, date = $2, status = $3, notes = $4 WHERE id = $5"
	res, err := repo.db.Exec(query, att.StudentID, att.Date, att.Status, att.Notes, att.ID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return attendance.Attendance{}, attendance.ErrNotFound
	}
	return att, nil
}

func (repo *attendanceRepository) DeleteAttendanceByID(ids ...int) error {
	query, args, err := sqlx.In("DELETE FROM attendance WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	_, err = repo.db.Exec(repo.db.Rebind(query), args...)
	return err
}
