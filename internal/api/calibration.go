package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/pedals"
)

type (
	rangeRequest struct {
		Min *int `json:"min"`
		Max *int `json:"max"`
	}

	deadzoneRequest struct {
		MinDeadzone float64 `json:"minDeadzone"`
		MaxDeadzone float64 `json:"maxDeadzone"`
	}

	mappingRequest struct {
		Axis int `json:"axis"`
	}
)

func (h *handlers) registerCalibrationEndpoints(rest *echo.Echo) {
	group := rest.Group("/calibration")

	group.GET("/", h.getCalibration)
	group.GET("/:"+urlParamPedal+"/", h.getPedalCalibration)
	group.POST("/:"+urlParamPedal+"/range/", h.setRange)
	group.POST("/:"+urlParamPedal+"/deadzone/", h.setDeadzones)
	group.POST("/:"+urlParamPedal+"/reset/", h.resetRange)
	group.POST("/:"+urlParamPedal+"/capture/min/", h.captureMin)
	group.POST("/:"+urlParamPedal+"/capture/max/", h.captureMax)

	mapping := rest.Group("/mapping")
	mapping.GET("/", h.getMapping)
	mapping.POST("/:"+urlParamPedal+"/", h.setMapping)

	rest.POST("/backup/", h.pushBackup)
	rest.POST("/restore/", h.popBackup)
}

// returns the complete calibration document
func (h *handlers) getCalibration(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, h.calibrationStore.Load(), indentationChar)
}

func (h *handlers) getPedalCalibration(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	return c.JSONPretty(http.StatusOK, h.calibrationStore.Get(pedal), indentationChar)
}

func (h *handlers) setRange(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	var request rangeRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}
	if request.Min == nil && request.Max == nil {
		return returnBadRequest(c, errors.New("min or max required"))
	}
	if request.Min != nil {
		if err := h.pipeline.SetMin(pedal, *request.Min); err != nil {
			return returnBadRequest(c, err)
		}
	}
	if request.Max != nil {
		if err := h.pipeline.SetMax(pedal, *request.Max); err != nil {
			return returnBadRequest(c, err)
		}
	}
	return c.JSONPretty(http.StatusOK, h.pipeline.Range(pedal), indentationChar)
}

func (h *handlers) setDeadzones(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	var request deadzoneRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}
	if err := h.pipeline.SetDeadzones(pedal, request.MinDeadzone, request.MaxDeadzone); err != nil {
		return returnBadRequest(c, err)
	}
	return c.JSONPretty(http.StatusOK, h.pipeline.Range(pedal), indentationChar)
}

func (h *handlers) resetRange(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	if err := h.pipeline.ResetRange(pedal); err != nil {
		return returnError(c, err)
	}
	return c.JSONPretty(http.StatusOK, h.pipeline.Range(pedal), indentationChar)
}

func (h *handlers) captureMin(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	raw, err := h.pipeline.CaptureMin(pedal)
	if err != nil {
		return returnBadRequest(c, err)
	}
	return c.JSONPretty(http.StatusOK, map[string]int{"captured": raw}, indentationChar)
}

func (h *handlers) captureMax(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	raw, err := h.pipeline.CaptureMax(pedal)
	if err != nil {
		return returnBadRequest(c, err)
	}
	return c.JSONPretty(http.StatusOK, map[string]int{"captured": raw}, indentationChar)
}

func (h *handlers) getMapping(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, h.pipeline.Mapping(), indentationChar)
}

func (h *handlers) setMapping(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	var request mappingRequest
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}
	if err := h.pipeline.SetMapping(pedal, request.Axis); err != nil {
		return returnBadRequest(c, err)
	}
	return c.JSONPretty(http.StatusOK, h.pipeline.Mapping(), indentationChar)
}

// stores the current calibration document on the backup stack
func (h *handlers) pushBackup(c echo.Context) error {
	if err := h.backups.Push(h.calibrationStore.Load()); err != nil {
		return returnError(c, err)
	}
	depth, _ := h.backups.Depth()
	return c.JSONPretty(http.StatusOK, map[string]int{"depth": depth}, indentationChar)
}

// restores the most recent calibration backup
func (h *handlers) popBackup(c echo.Context) error {
	doc, err := h.backups.Pop()
	if err != nil {
		if errors.Is(err, calibration.ErrNoBackup) {
			return returnNotFound(c, "backup")
		}
		return returnError(c, err)
	}
	if err := h.pipeline.RestoreDocument(doc); err != nil {
		return returnError(c, err)
	}
	return c.JSONPretty(http.StatusOK, doc, indentationChar)
}
