package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simtools/pedal2go/internal/api"
	"github.com/simtools/pedal2go/internal/axis"
	"github.com/simtools/pedal2go/internal/calibration"
	"github.com/simtools/pedal2go/internal/configuration"
	"github.com/simtools/pedal2go/internal/curvestore"
	"github.com/simtools/pedal2go/internal/hidhide"
	"github.com/simtools/pedal2go/internal/output"
	"github.com/simtools/pedal2go/internal/pipeline"
	"github.com/simtools/pedal2go/internal/statistics"
	"github.com/simtools/pedal2go/internal/ui"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	curveStore := curvestore.NewStore(config.DataPath)
	curveStore.SeedPresets(config.Presets)

	calibrationStore := calibration.NewStore(filepath.Join(config.DataPath, "calibration.json"))
	mapper := calibration.NewMapper(filepath.Join(config.DataPath, "axis_mappings.json"))
	backups := calibration.NewBackupStack(config.DbPath)

	source := axis.NewSource(config.Source)
	sink := output.NewSink(config.Sink)
	hider := hidhide.NewHider(config.HidHide)

	p := pipeline.NewPipeline(pipeline.Options{
		TickRate:          config.TickRate,
		HistorySize:       config.HistorySize,
		RollingWindowSize: config.RollingWindowSize,
		OutputMax:         config.OutputMax,
	}, calibrationStore, curveStore, mapper, source, sink)

	statistics.Register(statistics.NewPedalCollector(p))
	statistics.Register(statistics.NewCurveCollector(p))

	if err := hider.Hide(); err != nil {
		ui.Warning("Couldn't hide physical device: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === processing pipeline
		g.Add(func() error {
			err := p.Run(ctx)
			ui.Info("Pipeline stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error running pipeline: %v", err)
			}
		})
	}
	{
		if config.Api.Enabled {
			// === REST api
			restService := api.CreateRestService(p, curveStore, calibrationStore, backups)
			g.Add(func() error {
				addr := fmt.Sprintf(":%d", config.Api.Port)
				if err := restService.Start(addr); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start REST api endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := restService.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				} else {
					ui.Info("REST api stopped.")
				}
			})
		}
	}
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			port := config.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9100
			}
			addr := fmt.Sprintf(":%d", port)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: addr, Handler: mux}
			g.Add(func() error {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	runErr := g.Run()

	if err := hider.Unhide(); err != nil {
		ui.Warning("Couldn't unhide physical device: %v", err)
	}

	if runErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
	ui.Info("Done.")
}
