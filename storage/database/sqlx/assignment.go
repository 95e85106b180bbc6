package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/assignment"
)

type assignmentRepository struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	query := `
		INSERT INTO assignment (title, subject, class_id, description, due_date, points)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := repo.db.Get(
		&asg.ID, query,
		asg.Title, asg.Subject, asg.ClassID, asg.Description, asg.DueDate, asg.Points,
	)
	return asg, err
}

func (repo *assignmentRepository) QueryAllAssignments() ([]assignment.Assignment, error) {
	asgs := make([]assignment.Assignment, 0)
	err := repo.db.Select(&asgs, "SELECT * FROM assignment ORDER BY id")
	return asgs, err
}

func (repo *assignmentRepository) GetAssignmentByID(id int) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.db.Get(&asg, "SELECT * FROM assignment WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return asg, err
}

func (repo *assignmentRepository) UpdateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	query := `
		UPDATE assignment
		SET title = $1, subject = $2, class_id = $3, description = $4, due_date = $5, points = $6
		WHERE id = $7`
	res, err := repo.db.Exec(
		query,
		asg.Title, asg.Subject, asg.ClassID, asg.Description, asg.DueDate, asg.Points,
		asg.ID,
	)
	if err != nil {
		return assignment.Assignment{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return asg, nil
}

func (repo *assignmentRepository) DeleteAssignmentsByID(ids ...int) error {
	query, args, err := sqlx.In("DELETE FROM assignment WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	_, err = repo.db.Exec(repo.db.Rebind(query), args...)
	return err
}
