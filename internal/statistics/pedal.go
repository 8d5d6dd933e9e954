package statistics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/pipeline"
)

const pedalSubsystem = "pedal"

type PedalCollector struct {
	pipeline *pipeline.Pipeline

	raw        *prometheus.Desc
	normalized *prometheus.Desc
	calibrated *prometheus.Desc
	rawAvg     *prometheus.Desc
	outputAvg  *prometheus.Desc
}

func NewPedalCollector(pipeline *pipeline.Pipeline) *PedalCollector {
	return &PedalCollector{
		pipeline: pipeline,
		raw: prometheus.NewDesc(prometheus.BuildFQName(namespace, pedalSubsystem, "raw"),
			"Current raw axis value of the pedal",
			[]string{"id"}, nil,
		),
		normalized: prometheus.NewDesc(prometheus.BuildFQName(namespace, pedalSubsystem, "normalized"),
			"Current normalized value of the pedal",
			[]string{"id"}, nil,
		),
		calibrated: prometheus.NewDesc(prometheus.BuildFQName(namespace, pedalSubsystem, "calibrated"),
			"Current curve-shaped value of the pedal",
			[]string{"id"}, nil,
		),
		rawAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, pedalSubsystem, "raw_avg"),
			"Moving average of the raw axis value of the pedal",
			[]string{"id"}, nil,
		),
		outputAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, pedalSubsystem, "output_avg"),
			"Moving average of the curve-shaped output value of the pedal",
			[]string{"id"}, nil,
		),
	}
}

func (collector *PedalCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.raw
	ch <- collector.normalized
	ch <- collector.calibrated
	ch <- collector.rawAvg
	ch <- collector.outputAvg
}

// Collect implements required collect function for all prometheus collectors
func (collector *PedalCollector) Collect(ch chan<- prometheus.Metric) {
	for _, pedal := range pedals.All() {
		id := string(pedal)
		sample := collector.pipeline.Snapshot(pedal)
		ch <- prometheus.MustNewConstMetric(collector.raw, prometheus.GaugeValue, float64(sample.Raw), id)
		ch <- prometheus.MustNewConstMetric(collector.normalized, prometheus.GaugeValue, sample.Normalized, id)
		ch <- prometheus.MustNewConstMetric(collector.calibrated, prometheus.GaugeValue, sample.Calibrated, id)
		ch <- prometheus.MustNewConstMetric(collector.rawAvg, prometheus.GaugeValue, collector.pipeline.RawAvg(pedal), id)
		ch <- prometheus.MustNewConstMetric(collector.outputAvg, prometheus.GaugeValue, collector.pipeline.OutputAvg(pedal), id)
	}
}
