package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(stu student.Student) (student.Student, error) {
	query := `
		INSERT INTO student (first_name, last_name, email, phone, grade_level, class_id,
		                     parent_name, parent_email, parent_phone, enrollment_date, status, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := repo.db.Get(
		&stu.ID, query,
		stu.FirstName, stu.LastName, stu.Email, stu.Phone, stu.GradeLevel, stu.ClassID,
		stu.ParentName, stu.ParentEmail, stu.ParentPhone, stu.EnrollmentDate, stu.Status, stu.PhotoURL,
	)
	return stu, err
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	students := make([]student.Student, 0)
	err := repo.db.Select(&students, "SELECT * FROM student ORDER BY id")
	return students, err
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	var stu student.Student
	err := repo.db.Get(&stu, "SELECT * FROM student WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return student.Student{}, student.ErrNotFound
	}
	return stu, err
}

func (repo *studentRepository) UpdateStudent(stu student.Student) (student.Student, error) {
	query := `
		UPDATE student
		SET first_name = $1, last_name = $2, email = $3, phone = $4, grade_level = $5, class_id = $6,
		    parent_name = $7, parent_email = $8, parent_phone = $9, enrollment_date = $10, status = $11, photo_url = $12
		WHERE id = $13`
	res, err := repo.db.Exec(
		query,
		stu.FirstName, stu.LastName, stu.Email, stu.Phone, stu.GradeLevel, stu.ClassID,
		stu.ParentName, stu.ParentEmail, stu.ParentPhone, stu.EnrollmentDate, stu.Status, stu.PhotoURL,
		stu.ID,
	)
	if err != nil {
		return student.Student{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return stu, nil
}

func (repo *studentRepository) DeleteStudentsByID(ids ...int) error {
	query, args, err := sqlx.In("DELETE FROM student WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	_, err = repo.db.Exec(repo.db.Rebind(query), args...)
	return err
}
