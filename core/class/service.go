package class

import "errors"

var ErrNotFound = errors.New("class not found")

type (
	Repository interface {
		CreateClass(cls Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id int) (Class, error)
		UpdateClass(cls Class) (Class, error)
		DeleteClassesByID(ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nc NewClass) (Class, error) {
	cls := Class{
		Name:     nc.Name,
		Subject:  nc.Subject,
		Room:     nc.Room,
		Schedule: nc.Schedule,
	}
	return svc.repo.CreateClass(cls)
}

func (svc *Service) QueryAll() ([]Class, error) {
	return svc.repo.QueryAllClasses()
}

func (svc *Service) GetByID(id int) (Class, error) {
	return svc.repo.GetClassByID(id)
}

func (svc *Service) Update(id int, uc UpdateClass) (Class, error) {
	cls, err := svc.repo.GetClassByID(id)
	if err != nil {
		return Class{}, err
	}
	cls.Name = uc.Name
	cls.Subject = uc.Subject
	cls.Room = uc.Room
	cls.Schedule = uc.Schedule
	return svc.repo.UpdateClass(cls)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteClassesByID(ids...)
}
