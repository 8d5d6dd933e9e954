package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simtools/pedal2go/internal/pedals"
)

type pedalStatus struct {
	Pedal    pedals.Pedal  `json:"pedal"`
	Sample   pedals.Sample `json:"sample"`
	Curve    string        `json:"curve"`
	Axis     int           `json:"axis"`
	TestMode bool          `json:"testMode"`
}

func (h *handlers) registerPedalEndpoints(rest *echo.Echo) {
	group := rest.Group("/pedal")

	group.GET("/", h.getPedals)
	group.GET("/:"+urlParamPedal+"/", h.getPedal)
	group.GET("/:"+urlParamPedal+"/history/", h.getPedalHistory)
}

// returns the current status of all pedals
func (h *handlers) getPedals(c echo.Context) error {
	data := map[pedals.Pedal]pedalStatus{}
	for _, pedal := range pedals.All() {
		data[pedal] = h.pedalStatus(pedal)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func (h *handlers) getPedal(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	return c.JSONPretty(http.StatusOK, h.pedalStatus(pedal), indentationChar)
}

func (h *handlers) getPedalHistory(c echo.Context) error {
	pedal, err := pedals.Parse(c.Param(urlParamPedal))
	if err != nil {
		return returnNotFound(c, c.Param(urlParamPedal))
	}
	return c.JSONPretty(http.StatusOK, h.pipeline.History(pedal), indentationChar)
}

func (h *handlers) pedalStatus(pedal pedals.Pedal) pedalStatus {
	return pedalStatus{
		Pedal:    pedal,
		Sample:   h.pipeline.Snapshot(pedal),
		Curve:    h.pipeline.Curve(pedal).Name,
		Axis:     h.pipeline.Mapping()[pedal],
		TestMode: h.pipeline.TestMode(),
	}
}
