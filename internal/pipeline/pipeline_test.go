package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simtools/pedal2go/internal/axis"
	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/curves"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/output"
	"github.com/simtools/pedal2go/internal/pedals"
)

type testRig struct {
	pipeline *Pipeline
	source   *axis.SimSource
	sink     *output.SimSink

	calibrationStore *calibration.Store
	curveStore       *curvestore.Store
}

func createTestRig(t *testing.T) *testRig {
	dataPath := t.TempDir()

	curveStore := curvestore.NewStore(dataPath)
	curveStore.SeedPresets(nil)
	calibrationStore := calibration.NewStore(filepath.Join(dataPath, "calibration.json"))
	mapper := calibration.NewMapper(filepath.Join(dataPath, "axis_mappings.json"))

	source := axis.NewSimSource("sim", 3)
	sink := output.NewSimSink("sim")

	p := NewPipeline(Options{
		TickRate:          10,
		HistorySize:       16,
		RollingWindowSize: 8,
		OutputMax:         32767,
	}, calibrationStore, curveStore, mapper, source, sink)

	return &testRig{
		pipeline:         p,
		source:           source,
		sink:             sink,
		calibrationStore: calibrationStore,
		curveStore:       curveStore,
	}
}

func TestTickProcessesAllPedals(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.source.SetAxis(0, 4095))
	assert.NoError(t, rig.source.SetAxis(1, 0))
	assert.NoError(t, rig.source.SetAxis(2, 2048))

	// WHEN
	rig.pipeline.tick()

	// THEN
	throttle := rig.pipeline.Snapshot(pedals.Throttle)
	assert.Equal(t, 4095, throttle.Raw)
	assert.Equal(t, 100.0, throttle.Normalized)
	assert.Equal(t, 100.0, throttle.Calibrated)
	assert.Equal(t, 32767, rig.sink.LastValue(pedals.Throttle))

	brake := rig.pipeline.Snapshot(pedals.Brake)
	assert.Equal(t, 0.0, brake.Normalized)
	assert.Equal(t, 0, rig.sink.LastValue(pedals.Brake))
}

func TestTickAppliesCalibratedRange(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.pipeline.SetMin(pedals.Throttle, 500))
	assert.NoError(t, rig.pipeline.SetMax(pedals.Throttle, 3800))
	assert.NoError(t, rig.source.SetAxis(0, 2150))

	// WHEN
	rig.pipeline.tick()

	// THEN
	sample := rig.pipeline.Snapshot(pedals.Throttle)
	assert.InDelta(t, 50.0, sample.Normalized, 0.0001)
	assert.Equal(t, 16384, rig.sink.LastValue(pedals.Throttle))
}

func TestTickAppliesActiveCurve(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	err := rig.curveStore.Save(pedals.Brake, "Half", []curves.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 50},
	}, curves.TypeCustom)
	assert.NoError(t, err)
	assert.NoError(t, rig.pipeline.ApplyCurve(pedals.Brake, "Half"))

	assert.NoError(t, rig.source.SetAxis(1, 4095))

	// WHEN
	rig.pipeline.tick()

	// THEN
	sample := rig.pipeline.Snapshot(pedals.Brake)
	assert.Equal(t, 100.0, sample.Normalized)
	assert.Equal(t, 50.0, sample.Calibrated)
}

func TestApplyCurveKeepsPreviousOnFailure(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.pipeline.ApplyCurve(pedals.Throttle, "Racing"))

	// WHEN
	err := rig.pipeline.ApplyCurve(pedals.Throttle, "doesNotExist")

	// THEN
	assert.Error(t, err)
	assert.Equal(t, "Racing", rig.pipeline.Curve(pedals.Throttle).Name)
	assert.Equal(t, "Racing", rig.calibrationStore.Get(pedals.Throttle).Curve.Name)
}

func TestApplyCurvePersistsCurveRefType(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	err := rig.curveStore.Save(pedals.Brake, "Half", []curves.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 50},
	}, curves.TypeCustom)
	assert.NoError(t, err)

	// WHEN
	assert.NoError(t, rig.pipeline.ApplyCurve(pedals.Brake, "Half"))

	// THEN
	ref := rig.calibrationStore.Get(pedals.Brake).Curve
	assert.Equal(t, "Half", ref.Name)
	assert.Equal(t, curves.TypeCustom, ref.Type)
}

func TestApplyCurveIsolatesActiveCopy(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.pipeline.ApplyCurve(pedals.Throttle, "Racing"))

	// WHEN
	// mutating the returned copy must not affect the active curve
	copied := rig.pipeline.Curve(pedals.Throttle)
	copied.Points[0].Y = 99

	// THEN
	assert.Equal(t, 0.0, rig.pipeline.Curve(pedals.Throttle).Points[0].Y)
}

func TestSetMappingReroutesPedal(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.source.SetAxis(2, 4095))

	// WHEN
	assert.NoError(t, rig.pipeline.SetMapping(pedals.Throttle, 2))
	rig.pipeline.tick()

	// THEN
	assert.Equal(t, 4095, rig.pipeline.Snapshot(pedals.Throttle).Raw)
}

func TestSetMappingRejectsUnavailableAxis(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)

	// WHEN
	err := rig.pipeline.SetMapping(pedals.Throttle, 7)

	// THEN
	assert.ErrorIs(t, err, pedals.ErrInvalidMapping)
	assert.Equal(t, 0, rig.pipeline.Mapping()[pedals.Throttle])
}

func TestCaptureMinAndMax(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.source.SetAxis(0, 480))
	rig.pipeline.tick()

	// WHEN
	captured, err := rig.pipeline.CaptureMin(pedals.Throttle)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 480, captured)
	assert.Equal(t, 480, rig.pipeline.Range(pedals.Throttle).Min)

	assert.NoError(t, rig.source.SetAxis(0, 3900))
	rig.pipeline.tick()
	captured, err = rig.pipeline.CaptureMax(pedals.Throttle)
	assert.NoError(t, err)
	assert.Equal(t, 3900, captured)
	assert.Equal(t, 3900, rig.pipeline.Range(pedals.Throttle).Max)
}

func TestSourceFailureKeepsPreviousOutputs(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	assert.NoError(t, rig.source.SetAxis(0, 4095))
	rig.pipeline.tick()
	assert.Equal(t, 32767, rig.sink.LastValue(pedals.Throttle))

	// the device disappears
	rig.pipeline.deviceMu.Lock()
	rig.pipeline.source = &axis.FileSource{ID: "gone", Paths: []string{"/nonexistent/axis0"}}
	rig.pipeline.deviceMu.Unlock()

	// WHEN
	rig.pipeline.tick()

	// THEN
	assert.Equal(t, 4095, rig.pipeline.Snapshot(pedals.Throttle).Raw)
	assert.Equal(t, 32767, rig.sink.LastValue(pedals.Throttle))
}

func TestSinkFailureFallsBackToTestMode(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)
	rig.pipeline.deviceMu.Lock()
	rig.pipeline.sink = &output.FileSink{ID: "vjoy", Paths: map[string]string{}}
	rig.pipeline.deviceMu.Unlock()
	assert.False(t, rig.pipeline.TestMode())

	assert.NoError(t, rig.source.SetAxis(0, 4095))

	// WHEN
	rig.pipeline.tick()

	// THEN
	assert.True(t, rig.pipeline.TestMode())

	// the replacement sink keeps recording values
	rig.pipeline.tick()
	assert.Equal(t, 100.0, rig.pipeline.Snapshot(pedals.Throttle).Calibrated)
}

func TestHistoryRecordsSamples(t *testing.T) {
	// GIVEN
	rig := createTestRig(t)

	// WHEN
	for i := 0; i < 20; i++ {
		assert.NoError(t, rig.source.SetAxis(0, i*100))
		rig.pipeline.tick()
	}

	// THEN
	history := rig.pipeline.History(pedals.Throttle)
	assert.Len(t, history, 16)
	// oldest entries were dropped
	assert.Equal(t, 400, history[0].Raw)
	assert.Equal(t, 1900, history[len(history)-1].Raw)
}
