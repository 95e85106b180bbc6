package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/attendance"
)

type attendanceApi struct {
	service *attendance.Service
}

func RegisterAttendanceAPI(g *echo.Group, svc *attendance.Service) {
	api := attendanceApi{service: svc}

	ag := g.Group("/attendance")
	ag.POST("", api.attendanceMark)
	ag.GET("", api.attendanceQuery)
	ag.DELETE("", api.attendanceDestroyMultiple)
	ag.GET("/student/:studentID", api.attendanceQueryByStudent)

	dg := ag.Group("/:id")
	dg.GET("", api.attendanceRetrieve)
	dg.DELETE("", api.attendanceDestroy)
}

// attendanceMark upserts the day's record; marking a student twice for the
// same day updates the first record.
func (api *attendanceApi) attendanceMark(ctx echo.Context) error {
	data := new(attendance.MarkAttendance)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	att, err := api.service.Mark(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, att)
}

func (api *attendanceApi) attendanceQuery(ctx echo.Context) error {
	records, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) attendanceQueryByStudent(ctx echo.Context) error {
	studentID, err := intParam(ctx, "studentID")
	if err != nil {
		return err
	}
	records, err := api.service.QueryByStudent(studentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) attendanceRetrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	att, err := api.service.GetByID(id)
	if err != nil {
		if errors.Is(err, attendance.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, att)
}

func (api *attendanceApi) attendanceDestroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.service.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) attendanceDestroyMultiple(ctx echo.Context) error {
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
