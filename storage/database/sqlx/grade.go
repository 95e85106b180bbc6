package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/grade"
)

type gradeRepository struct {
	db *sqlx.DB
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *sqlx.DB) grade.Repository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) CreateGrade(grd grade.Grade) (grade.Grade, error) {
	query := `
		INSERT INTO grade (student_id, subject, assignment_name, score, max_score, weight, date, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := repo.db.Get(
		&grd.ID, query,
		grd.StudentID, grd.Subject, grd.AssignmentName, grd.Score, grd.MaxScore, grd.Weight, grd.Date, grd.Type,
	)
	return grd, err
}

func (repo *gradeRepository) QueryAllGrades() ([]grade.Grade, error) {
	grades := make([]grade.Grade, 0)
	err := repo.db.Select(&grades, "SELECT * FROM grade ORDER BY id")
	return grades, err
}

func (repo *gradeRepository) GetGradeByID(id int) (grade.Grade, error) {
	var grd grade.Grade
	err := repo.db.Get(&grd, "SELECT * FROM grade WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return grade.Grade{}, grade.ErrNotFound
	}
	return grd, err
}

func (repo *gradeRepository) QueryGradesByStudentID(studentID int) ([]grade.Grade, error) {
	grades := make([]grade.Grade, 0)
	err := repo.db.Select(&grades, "SELECT * FROM grade WHERE student_id = $1 ORDER BY id", studentID)
	return grades, err
}

func (repo *gradeRepository) UpdateGrade(grd grade.Grade) (grade.Grade, error) {
	query := `
		UPDATE grade
		SET student_id = $1, subject = $2, assignment_name = $3, score = $4, max_score = $5,
		    weight = $6, date = $7, type = $8
		WHERE id = $9`
	res, err := repo.db.Exec(
		query,
		grd.StudentID, grd.Subject, grd.AssignmentName, grd.Score, grd.MaxScore, grd.Weight, grd.Date, grd.Type,
		grd.ID,
	)
	if err != nil {
		return grade.Grade{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return grade.Grade{}, grade.ErrNotFound
	}
	return grd, nil
}

func (repo *gradeRepository) DeleteGradesByID(ids ...int) error {
	query, args, err := sqlx.In("DELETE FROM grade WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	_, err = repo.db.Exec(repo.db.Rebind(query), args...)
	return err
}
