package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simtools/pedal2go/internal/curves"
	"github.com/simtools/pedal2go/internal/pedals"
)

type saveCurveRequest struct {
	Type   string         `json:"curveType"`
	Points []curves.Point `json:"points"`
}

func (h *handlers) registerCurveEndpoints(rest *echo.Echo) {
	group := rest.Group("/curve")

	group.GET("/:"+urlParamPedal+"/", h.getCurves)
	group.GET("/:"+urlParamPedal+"/:"+urlParamId+"/", h.getCurve)
	group.POST("/:"+urlParamPedal+"/:"+urlParamId+"/", h.saveCurve)
	group.DELETE("/:"+urlParamPedal+"/:"+urlParamId+"/", h.deleteCurve)
	group.POST("/:"+urlParamPedal+"/:"+urlParamId+"/apply/", h.applyCurve)
}

// returns the names of all stored curves of a pedal
func (h *handlers) getCurves(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	names, err := h.curveStore.List(pedal)
	if err != nil {
		return returnError(c, err)
	}
	return c.JSONPretty(http.StatusOK, names, indentationChar)
}

func (h *handlers) getCurve(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	id := c.Param(urlParamId)
	curve, err := h.curveStore.Load(pedal, id)
	if err != nil {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, curve, indentationChar)
}

func (h *handlers) saveCurve(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	var request saveCurveRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}
	curveType, err := curves.ParseCurveType(request.Type)
	if err != nil {
		return returnBadRequest(c, err)
	}
	id := c.Param(urlParamId)
	if err := h.curveStore.Save(pedal, id, request.Points, curveType); err != nil {
		return returnBadRequest(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *handlers) deleteCurve(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	id := c.Param(urlParamId)
	if err := h.curveStore.Delete(pedal, id); err != nil {
		return returnNotFound(c, id)
	}
	return c.NoContent(http.StatusOK)
}

// makes a stored curve the active curve of a pedal
func (h *handlers) applyCurve(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	id := c.Param(urlParamId)
	if err := h.pipeline.ApplyCurve(pedal, id); err != nil {
		return returnNotFound(c, id)
	}
	return c.NoContent(http.StatusOK)
}
