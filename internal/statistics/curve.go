package statistics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/pipeline"
)

const subsystemCurve = "curve"

type CurveCollector struct {
	pipeline *pipeline.Pipeline

	value  *prometheus.Desc
	points *prometheus.Desc
}

func NewCurveCollector(pipeline *pipeline.Pipeline) *CurveCollector {
	return &CurveCollector{
		pipeline: pipeline,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemCurve, "value"),
			"Current output value of the active curve",
			[]string{"id", "curve"}, nil,
		),
		points: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemCurve, "points"),
			"Number of points of the active curve",
			[]string{"id", "curve"}, nil,
		),
	}
}

func (collector *CurveCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
	ch <- collector.points
}

// Collect implements required collect function for all prometheus collectors
func (collector *CurveCollector) Collect(ch chan<- prometheus.Metric) {
	for _, pedal := range pedals.All() {
		id := string(pedal)
		curve := collector.pipeline.Curve(pedal)
		sample := collector.pipeline.Snapshot(pedal)
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, sample.Calibrated, id, curve.Name)
		ch <- prometheus.MustNewConstMetric(collector.points, prometheus.GaugeValue, float64(len(curve.Points)), id, curve.Name)
	}
}
