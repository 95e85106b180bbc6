package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core/class"
)

type classApi struct {
	service *class.Service
}

func RegisterClassAPI(g *echo.Group, svc *class.Service) {
	api := classApi{service: svc}

	cg := g.Group("/classes")
	cg.POST("", api.classCreate)
	cg.GET("", api.classQuery)
	cg.DELETE("", api.classDestroyMultiple)

	dg := cg.Group("/:id")
	dg.GET("", api.classRetrieve)
	dg.PUT("", api.classUpdate)
	dg.DELETE("", api.classDestroy)
}

func (api *classApi) classCreate(ctx echo.Context) error {
	data := new(class.NewClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cls, err := api.service.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, cls)
}

func (api *classApi) classQuery(ctx echo.Context) error {
	classes, err := api.service.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) classRetrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	cls, err := api.service.GetByID(id)
	if err != nil {
		if errors.Is(err, class.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) classUpdate(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}

	data := new(class.UpdateClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cls, err := api.service.Update(id, *data)
	if err != nil {
		if errors.Is(err, class.ErrNotFound) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) classDestroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := api.service.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classApi) classDestroyMultiple(ctx echo.Context) error {
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
