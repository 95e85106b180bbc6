package student

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(stu Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		UpdateStudent(stu Student) (Student, error)
		DeleteStudentsByID(ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	status := ns.Status
	if status == "" {
		status = StatusActive
	}
	enrolled := ns.EnrollmentDate
	if enrolled.IsZero() {
		enrolled = time.Now().UTC()
	}
	stu := Student{
		FirstName:      ns.FirstName,
		LastName:       ns.LastName,
		Email:          ns.Email,
		Phone:          ns.Phone,
		GradeLevel:     ns.GradeLevel,
		ClassID:        ns.ClassID,
		ParentName:     ns.ParentName,
		ParentEmail:    ns.ParentEmail,
		ParentPhone:    ns.ParentPhone,
		EnrollmentDate: enrolled,
		Status:         status,
		PhotoURL:       ns.PhotoURL,
	}
	return svc.repo.CreateStudent(stu)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Update(id int, us UpdateStudent) (Student, error) {
	stu, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	stu.FirstName = us.FirstName
	stu.LastName = us.LastName
	stu.Email = us.Email
	stu.Phone = us.Phone
	stu.GradeLevel = us.GradeLevel
	stu.ClassID = us.ClassID
	stu.ParentName = us.ParentName
	stu.ParentEmail = us.ParentEmail
	stu.ParentPhone = us.ParentPhone
	if !us.EnrollmentDate.IsZero() {
		stu.EnrollmentDate = us.EnrollmentDate
	}
	if us.Status != "" {
		stu.Status = us.Status
	}
	stu.PhotoURL = us.PhotoURL
	return svc.repo.UpdateStudent(stu)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteStudentsByID(ids...)
}
