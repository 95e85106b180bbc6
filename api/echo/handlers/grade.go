package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/grade"
)

type gradeApi struct {
	service *grade.Service
}

func RegisterGradeAPI(g *echo.Group, svc *grade.Service) {
	api := gradeApi{service: svc}

	gg := g.Group("/grades")
	gg.POST("", api.gradeCreate)
	gg.GET("", api.gradeQuery)
	gg.DELETE("", api.gradeDestroyMultiple)
	gg.GET("/student/:studentID", api.gradeQueryByStudent)

	dg := gg.Group("/:id")
	dg.GET("", api.gradeRetrieve)
	dg.PUT("", api.gradeUpdate)
	dg.DELETE("", api.gradeDestroy)
}

func (api *gradeApi) gradeCreate(ctx echo.Context) error {
	data := new(grade.NewGrade)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	grd, err := api.service.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, grd)
}

func (api *gradeApi) gradeQuery(ctx echo.Context) error {
	grades, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) gradeQueryByStudent(ctx echo.Context) error {
	studentID, err := intParam(ctx, "studentID")
	if err != nil {
		return err
	}
	grades, err := api.service.QueryByStudent(studentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) gradeRetrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	grd, err := api.service.GetByID(id)
	if err != nil {
		if errors.Is(err, grade.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *gradeApi) gradeUpdate(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	data := new(grade.UpdateGrade)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	grd, err := api.service.Update(id, *data)
	if err != nil {
		if errors.Is(err, grade.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, grd)
}

func (api *gradeApi) gradeDestroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.service.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *gradeApi) gradeDestroyMultiple(ctx echo.Context) error {
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
