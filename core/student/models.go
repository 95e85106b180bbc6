package student

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Enrollment statuses
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)

type Student struct {
	ID             int       `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	GradeLevel     int       `json:"grade_level" db:"grade_level"`
	ClassID        int       `json:"class_id" db:"class_id"`
	ParentName     string    `json:"parent_name" db:"parent_name"`
	ParentEmail    string    `json:"parent_email" db:"parent_email"`
	ParentPhone    string    `json:"parent_phone" db:"parent_phone"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`
	Status         string    `json:"status" db:"status"`
	PhotoURL       string    `json:"photo_url" db:"photo_url"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	FirstName      string    `json:"first_name" validate:"required,notblank"`
	LastName       string    `json:"last_name" validate:"required,notblank"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone"`
	GradeLevel     int       `json:"grade_level" validate:"min=0"`
	ClassID        int       `json:"class_id"`
	ParentName     string    `json:"parent_name" validate:"required,notblank"`
	ParentEmail    string    `json:"parent_email" validate:"required,email"`
	ParentPhone    string    `json:"parent_phone"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         string    `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	PhotoURL       string    `json:"photo_url"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.ParentEmail = core.CleanString(ns.ParentEmail, true /* lower */)
	return core.Validate.Struct(ns)
}

// UpdateStudent contains information needed to update an existing Student.
type UpdateStudent struct {
	FirstName      string    `json:"first_name" validate:"required,notblank"`
	LastName       string    `json:"last_name" validate:"required,notblank"`
	Email          string    `json:"email" validate:"omitempty,email"`
	Phone          string    `json:"phone"`
	GradeLevel     int       `json:"grade_level" validate:"min=0"`
	ClassID        int       `json:"class_id"`
	ParentName     string    `json:"parent_name" validate:"required,notblank"`
	ParentEmail    string    `json:"parent_email" validate:"required,email"`
	ParentPhone    string    `json:"parent_phone"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         string    `json:"status" validate:"omitempty,oneof=active inactive graduated"`
	PhotoURL       string    `json:"photo_url"`
}

func (us *UpdateStudent) Validate() error {
	us.FirstName = core.CleanString(us.FirstName)
	us.LastName = core.CleanString(us.LastName)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.ParentEmail = core.CleanString(us.ParentEmail, true /* lower */)
	return core.Validate.Struct(us)
}
