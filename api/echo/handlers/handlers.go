package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

var errHTTPNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")

// DestroyMultipleRequest carries the ids of records to delete in one call.
type DestroyMultipleRequest struct {
	IDs []int `json:"ids" query:"id"`
}

func intParam(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errHTTPNotFound
	}
	return id, nil
}
