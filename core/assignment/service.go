package assignment

import (
	"errors"
	"fmt"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/notification"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		CreateAssignment(asg Assignment) (Assignment, error)
		QueryAllAssignments() ([]Assignment, error)
		GetAssignmentByID(id int) (Assignment, error)
		UpdateAssignment(asg Assignment) (Assignment, error)
		DeleteAssignmentsByID(ids ...int) error
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

func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	asg := Assignment{
		Title:       na.Title,
		Subject:     na.Subject,
		ClassID:     na.ClassID,
		Description: na.Description,
		DueDate:     na.DueDate,
		Points:      na.Points,
	}
	asg, err := svc.repo.CreateAssignment(asg)
	if err != nil {
		return Assignment{}, err
	}
	svc.notify(asg)
	return asg, nil
}

func (svc *Service) QueryAll() ([]Assignment, error) {
	return svc.repo.QueryAllAssignments()
}

func (svc *Service) GetByID(id int) (Assignment, error) {
	return svc.repo.GetAssignmentByID(id)
}

func (svc *Service) Update(id int, ua UpdateAssignment) (Assignment, error) {
	asg, err := svc.repo.GetAssignmentByID(id)
	if err != nil {
		return Assignment{}, err
	}
	asg.Title = ua.Title
	asg.Subject = ua.Subject
	asg.ClassID = ua.ClassID
	asg.Description = ua.Description
	asg.DueDate = ua.DueDate
	asg.Points = ua.Points

	asg, err = svc.repo.UpdateAssignment(asg)
	if err != nil {
		return Assignment{}, err
	}
	svc.notify(asg)
	return asg, nil
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteAssignmentsByID(ids...)
}

// notify fans out the assignment notification best-effort: the assignment
// write has already committed, so failures are logged and never surfaced.
// Create followed by update fans out twice; there is no deduplication.
func (svc *Service) notify(asg Assignment) {
	msgs, err := svc.notifSvc.TriggerAssignmentNotification(asg.Event())
	if err != nil {
		svc.logger.Error(fmt.Sprintf("assignment %d: notification failed after %d sends", asg.ID, len(msgs)), err)
		return
	}
	if len(msgs) > 0 {
		svc.logger.Info(fmt.Sprintf("assignment %d: notification sent to %d parents", asg.ID, len(msgs)))
	}
}
