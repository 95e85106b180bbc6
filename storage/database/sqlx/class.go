package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/class"
)

type classRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) class.Repository {
	return &classRepository{db: db}
}

func (repo *classRepository) CreateClass(cls class.Class) (class.Class, error) {
	query := `
		INSERT INTO class (name, subject, room, schedule)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := repo.db.Get(&cls.ID, query, cls.Name, cls.Subject, cls.Room, cls.Schedule)
	return cls, err
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	classes := make([]class.Class, 0)
	err := repo.db.Select(&classes, "SELECT * FROM class ORDER BY id")
	return classes, err
}

func (repo *classRepository) GetClassByID(id int) (class.Class, error) {
	var cls class.Class
	err := repo.db.Get(&cls, "SELECT * FROM class WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return class.Class{}, class.ErrNotFound
	}
	return cls, err
}

func (repo *classRepository) UpdateClass(cls class.Class) (class.Class, error) {
	query := "UPDATE class SET name = $1, subject = $2, room = $3, schedule = $4 WHERE id = $5"
	res, err := repo.db.Exec(query, cls.Name, cls.Subject, cls.Room, cls.Schedule, cls.ID)
	if err != nil {
		return class.Class{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return class.Class{}, class.ErrNotFound
	}
	return cls, nil
}

func (repo *classRepository) DeleteClassesByID(ids ...int) error {
	query, args, err := sqlx.In("DELETE FROM class WHERE id IN (?)", ids)
	if err != nil {
		return err
	}
	_, err = repo.db.Exec(repo.db.Rebind(query), args...)
	return err
}
