package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/pipeline"
)

const (
	urlParamId      = "id"
	urlParamPedal   = "pedal"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}

	handlers struct {
		pipeline         *pipeline.Pipeline
		curveStore       *curvestore.Store
		calibrationStore *calibration.Store
		backups          *calibration.BackupStack
	}
)

func CreateRestService(
	pipeline *pipeline.Pipeline,
	curveStore *curvestore.Store,
	calibrationStore *calibration.Store,
	backups *calibration.BackupStack,
) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())

	echoRest.Use(middleware.Logger())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddleware("pedal2go_api"))

	echoRest.GET("/alive/", isAlive)

	h := &handlers{
		pipeline:         pipeline,
		curveStore:       curveStore,
		calibrationStore: calibrationStore,
		backups:          backups,
	}
	h.registerPedalEndpoints(echoRest)
	h.registerCurveEndpoints(echoRest)
	h.registerCalibrationEndpoints(echoRest)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad request",
		Message: e.Error(),
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}
