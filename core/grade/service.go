package grade

import (
	"errors"
	"fmt"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

var ErrNotFound = errors.New("grade not found")

type (
	Repository interface {
		CreateGrade(grd Grade) (Grade, error)
		QueryAllGrades() ([]Grade, error)
		GetGradeByID(id int) (Grade, error)
		QueryGradesByStudentID(studentID int) ([]Grade, error)
		UpdateGrade(grd Grade) (Grade, error)
		DeleteGradesByID(ids ...int) error
	}

	Service struct {
		repo     Repository
		notifSvc *notification.Service
		logger   core.Logger
	}
)

func NewService(repo Repository, notifSvc *notification.Service, logger core.Logger) *Service {
	return &Service{repo: repo, notifSvc: notifSvc, logger: logger}
}

func (svc *Service) Create(ng NewGrade) (Grade, error) {
	date := ng.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	grd := Grade{
		StudentID:      ng.StudentID,
		Subject:        ng.Subject,
		AssignmentName: ng.AssignmentName,
		Score:          ng.Score,
		MaxScore:       ng.MaxScore,
		Weight:         ng.Weight,
		Date:           date,
		Type:           ng.Type,
	}
	grd, err := svc.repo.CreateGrade(grd)
	if err != nil {
		return Grade{}, err
	}
	svc.notify(grd)
	return grd, nil
}

func (svc *Service) QueryAll() ([]Grade, error) {
	return svc.repo.QueryAllGrades()
}

func (svc *Service) GetByID(id int) (Grade, error) {
	return svc.repo.GetGradeByID(id)
}

func (svc *Service) QueryByStudent(studentID int) ([]Grade, error) {
	return svc.repo.QueryGradesByStudentID(studentID)
}

func (svc *Service) Update(id int, ug UpdateGrade) (Grade, error) {
	grd, err := svc.repo.GetGradeByID(id)
	if err != nil {
		return Grade{}, err
	}
	grd.StudentID = ug.StudentID
	grd.Subject = ug.Subject
	grd.AssignmentName = ug.AssignmentName
	grd.Score = ug.Score
	grd.MaxScore = ug.MaxScore
	grd.Weight = ug.Weight
	if !ug.Date.IsZero() {
		grd.Date = ug.Date
	}
	grd.Type = ug.Type

	grd, err = svc.repo.UpdateGrade(grd)
	if err != nil {
		return Grade{}, err
	}
	svc.notify(grd)
	return grd, nil
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteGradesByID(ids...)
}

// notify dispatches the grade notification best-effort: the grade write has
// already committed, so failures are logged and never surfaced to the caller.
func (svc *Service) notify(grd Grade) {
	msgs, err := svc.notifSvc.TriggerGradeNotification(grd.Event())
	if err != nil {
		svc.logger.Error(fmt.Sprintf("grade %d: notification failed", grd.ID), err)
		return
	}
	if len(msgs) > 0 {
		svc.logger.Info(fmt.Sprintf("grade %d: notification sent to %s", grd.ID, msgs[0].To))
	}
}
