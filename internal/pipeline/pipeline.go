package pipeline

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/qdm12/reprint"

	"github.com/simtools/pedal2go/internal/axis"
	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/curves"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/output"
	"github.com/simtools/pedal2go/internal/pedals"
	"github.com/simtools/pedal2go/internal/ui"
	"github.com/simtools/pedal2go/internal/util"
)

type pedalState struct {
	axisRange  atomic.Pointer[pedals.AxisRange]
	curve      atomic.Pointer[curves.Curve]
	lastSample atomic.Pointer[pedals.Sample]

	history   *History
	rawWindow *rolling.PointPolicy
	outWindow *rolling.PointPolicy
}

// Pipeline polls the axis source on a fixed tick, shapes each pedal value
// through its calibrated range and active curve and drives the output sink.
// The tick loop never blocks on configuration changes: the active range,
// curve and axis routing are published through atomic pointers and are
// swapped whole by the command side.
type Pipeline struct {
	tickRate   time.Duration
	outputMax  int
	windowSize int

	calibrationStore *calibration.Store
	curveStore       *curvestore.Store
	mapper           *calibration.Mapper

	// deviceMu guards the source and sink handles, which only the tick
	// thread and the fallback path touch.
	deviceMu sync.Mutex
	source   axis.Source
	sink     output.Sink

	routing  atomic.Pointer[map[pedals.Pedal]int]
	states   map[pedals.Pedal]*pedalState
	testMode atomic.Bool
}

type Options struct {
	TickRate          time.Duration
	HistorySize       int
	RollingWindowSize int
	OutputMax         int
}

func NewPipeline(
	options Options,
	calibrationStore *calibration.Store,
	curveStore *curvestore.Store,
	mapper *calibration.Mapper,
	source axis.Source,
	sink output.Sink,
) *Pipeline {
	p := &Pipeline{
		tickRate:         options.TickRate,
		outputMax:        options.OutputMax,
		windowSize:       options.RollingWindowSize,
		calibrationStore: calibrationStore,
		curveStore:       curveStore,
		mapper:           mapper,
		source:           source,
		sink:             sink,
		states:           map[pedals.Pedal]*pedalState{},
	}

	for _, pedal := range pedals.All() {
		state := &pedalState{
			history:   NewHistory(options.HistorySize),
			rawWindow: util.CreateRollingWindow(options.RollingWindowSize),
			outWindow: util.CreateRollingWindow(options.RollingWindowSize),
		}
		util.FillWindow(state.rawWindow, options.RollingWindowSize, 0)
		util.FillWindow(state.outWindow, options.RollingWindowSize, 0)

		cal := calibrationStore.Get(pedal)
		axisRange := cal.Range
		state.axisRange.Store(&axisRange)
		curve := p.loadCurveOrDefault(pedal, cal.Curve)
		state.curve.Store(&curve)
		sample := pedals.Sample{Pedal: pedal, Timestamp: time.Now()}
		state.lastSample.Store(&sample)

		p.states[pedal] = state
	}

	mapper.Validate(source.AxisCount())
	routing := mapper.Mapping()
	p.routing.Store(&routing)

	return p
}

func (p *Pipeline) loadCurveOrDefault(pedal pedals.Pedal, ref calibration.CurveRef) curves.Curve {
	if ref.Name != "" {
		curve, err := p.curveStore.Load(pedal, ref.Name)
		if err == nil {
			return curve
		}
		ui.Warning("Pedal %s: cannot load curve '%s', using linear: %v", pedal, ref.Name, err)
	}
	return curves.NewLinearCurve()
}

// Run drives the tick loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.deviceMu.Lock()
	if err := p.source.Acquire(); err != nil {
		ui.Warning("Axis source '%s' unavailable, entering test mode: %v", p.source.GetId(), err)
		p.source = axis.NewSimSource(p.source.GetId(), p.source.AxisCount())
		p.testMode.Store(true)
	}
	p.deviceMu.Unlock()

	tick := time.NewTicker(p.tickRate)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			p.deviceMu.Lock()
			p.source.Release()
			p.sink.Close()
			p.deviceMu.Unlock()
			return nil
		case <-tick.C:
			p.tick()
		}
	}
}

func (p *Pipeline) tick() {
	values, err := p.poll()
	if err != nil {
		// no data this tick, previous outputs stay in effect
		return
	}

	routing := *p.routing.Load()
	for _, pedal := range pedals.All() {
		axisIdx, ok := routing[pedal]
		if !ok || axisIdx < 0 || axisIdx >= len(values) {
			continue
		}
		p.process(pedal, values[axisIdx])
	}
}

func (p *Pipeline) poll() ([]int, error) {
	p.deviceMu.Lock()
	defer p.deviceMu.Unlock()

	values, err := p.source.Poll()
	if err == nil {
		return values, nil
	}

	// one re-acquire attempt, then give up until the next tick
	p.source.Release()
	if acquireErr := p.source.Acquire(); acquireErr != nil {
		return nil, err
	}
	return p.source.Poll()
}

func (p *Pipeline) process(pedal pedals.Pedal, raw int) {
	state := p.states[pedal]

	axisRange := state.axisRange.Load()
	normalized := axisRange.Normalize(raw)
	curve := state.curve.Load()
	calibrated := curve.Apply(normalized)

	sample := pedals.Sample{
		Pedal:      pedal,
		Raw:        raw,
		Normalized: normalized,
		Calibrated: calibrated,
		Timestamp:  time.Now(),
	}
	state.lastSample.Store(&sample)
	state.history.Append(sample)
	state.rawWindow.Append(float64(raw))
	state.outWindow.Append(calibrated)

	outValue := int(math.Round(calibrated / 100.0 * float64(p.outputMax)))
	p.drive(pedal, outValue)
}

func (p *Pipeline) drive(pedal pedals.Pedal, value int) {
	p.deviceMu.Lock()
	defer p.deviceMu.Unlock()

	if err := p.sink.SetAxis(pedal, value); err != nil {
		ui.Warning("Output sink '%s' failed, entering test mode: %v", p.sink.GetId(), err)
		p.sink.Close()
		p.sink = output.NewSimSink(p.sink.GetId())
		p.testMode.Store(true)
		_ = p.sink.SetAxis(pedal, value)
	}
}

// TestMode reports whether the pipeline has fallen back to simulated
// devices because the real source or sink was unavailable.
func (p *Pipeline) TestMode() bool {
	return p.testMode.Load()
}

// Snapshot returns the most recent sample of the given pedal.
func (p *Pipeline) Snapshot(pedal pedals.Pedal) pedals.Sample {
	return *p.states[pedal].lastSample.Load()
}

// History returns the buffered samples of the given pedal, oldest first.
func (p *Pipeline) History(pedal pedals.Pedal) []pedals.Sample {
	return p.states[pedal].history.Items()
}

func (p *Pipeline) RawAvg(pedal pedals.Pedal) float64 {
	return util.GetWindowAvg(p.states[pedal].rawWindow)
}

func (p *Pipeline) OutputAvg(pedal pedals.Pedal) float64 {
	return util.GetWindowAvg(p.states[pedal].outWindow)
}

// Range returns the active axis range of the given pedal.
func (p *Pipeline) Range(pedal pedals.Pedal) pedals.AxisRange {
	return *p.states[pedal].axisRange.Load()
}

// Curve returns an isolated copy of the active curve of the given pedal.
func (p *Pipeline) Curve(pedal pedals.Pedal) curves.Curve {
	return reprint.This(*p.states[pedal].curve.Load()).(curves.Curve)
}

func (p *Pipeline) AxisCount() int {
	p.deviceMu.Lock()
	defer p.deviceMu.Unlock()
	return p.source.AxisCount()
}

// CaptureMin records the current raw value of the given pedal as its
// calibrated minimum.
func (p *Pipeline) CaptureMin(pedal pedals.Pedal) (int, error) {
	raw := p.Snapshot(pedal).Raw
	return raw, p.SetMin(pedal, raw)
}

// CaptureMax records the current raw value of the given pedal as its
// calibrated maximum.
func (p *Pipeline) CaptureMax(pedal pedals.Pedal) (int, error) {
	raw := p.Snapshot(pedal).Raw
	return raw, p.SetMax(pedal, raw)
}

func (p *Pipeline) SetMin(pedal pedals.Pedal, min int) error {
	if err := p.calibrationStore.SetMin(pedal, min); err != nil {
		return err
	}
	p.publishRange(pedal)
	return nil
}

func (p *Pipeline) SetMax(pedal pedals.Pedal, max int) error {
	if err := p.calibrationStore.SetMax(pedal, max); err != nil {
		return err
	}
	p.publishRange(pedal)
	return nil
}

func (p *Pipeline) SetDeadzones(pedal pedals.Pedal, minDeadzone float64, maxDeadzone float64) error {
	if err := p.calibrationStore.SetDeadzones(pedal, minDeadzone, maxDeadzone); err != nil {
		return err
	}
	p.publishRange(pedal)
	return nil
}

func (p *Pipeline) ResetRange(pedal pedals.Pedal) error {
	if err := p.calibrationStore.ResetRange(pedal); err != nil {
		return err
	}
	p.publishRange(pedal)
	return nil
}

func (p *Pipeline) publishRange(pedal pedals.Pedal) {
	axisRange := p.calibrationStore.Get(pedal).Range
	p.states[pedal].axisRange.Store(&axisRange)
}

// ApplyCurve loads the named curve from disk and makes it the active curve
// of the given pedal. The previous curve stays active if loading fails.
func (p *Pipeline) ApplyCurve(pedal pedals.Pedal, name string) error {
	curve, err := p.curveStore.Load(pedal, name)
	if err != nil {
		return fmt.Errorf("apply curve '%s' to %s: %w", name, pedal, err)
	}
	active := reprint.This(curve).(curves.Curve)
	p.states[pedal].curve.Store(&active)
	return p.calibrationStore.SetActiveCurve(pedal, calibration.CurveRef{
		Name: curve.Name,
		Type: curve.Type,
	})
}

// SetMapping routes the given pedal to a different source axis. The new
// routing takes effect on the next tick.
func (p *Pipeline) SetMapping(pedal pedals.Pedal, axisIdx int) error {
	if err := p.mapper.Set(pedal, axisIdx, p.AxisCount()); err != nil {
		return err
	}
	routing := p.mapper.Mapping()
	p.routing.Store(&routing)
	return nil
}

func (p *Pipeline) Mapping() map[pedals.Pedal]int {
	return p.mapper.Mapping()
}

// RestoreDocument replaces the whole calibration document, republishing all
// ranges and active curves.
func (p *Pipeline) RestoreDocument(doc calibration.Document) error {
	if err := p.calibrationStore.Replace(doc); err != nil {
		return err
	}
	for _, pedal := range pedals.All() {
		p.publishRange(pedal)
		cal := p.calibrationStore.Get(pedal)
		curve := p.loadCurveOrDefault(pedal, cal.Curve)
		p.states[pedal].curve.Store(&curve)
	}
	return nil
}
