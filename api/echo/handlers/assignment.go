package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/assignment"
)

type assignmentApi struct {
	service *assignment.Service
}

func RegisterAssignmentAPI(g *echo.Group, svc *assignment.Service) {
	api := assignmentApi{service: svc}

	ag := g.Group("/assignments")
	ag.POST("", api.assignmentCreate)
	ag.GET("", api.assignmentQuery)
	ag.DELETE("", api.assignmentDestroyMultiple)

	dg := ag.Group("/:id")
	dg.GET("", api.assignmentRetrieve)
	dg.PUT("", api.assignmentUpdate)
	dg.DELETE("", api.assignmentDestroy)
}

func (api *assignmentApi) assignmentCreate(ctx echo.Context) error {
	data := new(assignment.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	asg, err := api.service.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, asg)
}

func (api *assignmentApi) assignmentQuery(ctx echo.Context) error {
	assignments, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *assignmentApi) assignmentRetrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	asg, err := api.service.GetByID(id)
	if err != nil {
		if errors.Is(err, assignment.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, asg)
}

func (api *assignmentApi) assignmentUpdate(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	data := new(assignment.UpdateAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	asg, err := api.service.Update(id, *data)
	if err != nil {
		if errors.Is(err, assignment.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, asg)
}

func (api *assignmentApi) assignmentDestroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.service.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) assignmentDestroyMultiple(ctx echo.Context) error {
	data := new(DestroyMultipleRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if len(data.IDs) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.service.Delete(data.IDs...); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
