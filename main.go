package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/bytedance/sonic"
	"github.com/google/gops/agent"

	"StripedMandelbrot/canvas"
	"StripedMandelbrot/coordinator"
	"StripedMandelbrot/misc"
	"StripedMandelbrot/worker"
)

var (
	diagnostics, isCoordinator, isWorker bool
	settingsFile                         string
)

func main() {
	parseArguments()
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	if diagnostics {
		misc.CheckError(agent.Listen(agent.Options{}), logger, misc.Warning)
		defer agent.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if isCoordinator {
		startCoordinator(ctx, logger)
	}

	if isWorker {
		startWorker(ctx, logger)
	}
}

func startCoordinator(ctx context.Context, logger bslogger.Logger) {
	settings := coordinator.NewSettings(settingsFile)

	// Create directory to store files for this run
	runPath := filepath.Join(settings.SavePath, settings.RunName)
	misc.CheckError(os.MkdirAll(runPath, os.ModePerm), logger, misc.Fatal)

	// Copy the settings to the directory so the run can be duplicated in the future
	settingsBytes, err := sonic.Marshal(settings)
	misc.CheckError(err, logger, misc.Warning)
	_, err = misc.WriteFile(filepath.Join(runPath, "settings.json"), settingsBytes)
	misc.CheckError(err, logger, misc.Warning)

	renderers, disconnects, err := settings.Renderers()
	misc.CheckError(err, logger, misc.Fatal)
	defer func() {
		for _, disconnect := range disconnects {
			misc.CheckError(disconnect(), logger, misc.Warning)
		}
	}()

	c := coordinator.NewCoordinator(renderers)
	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan error, 1)
	go func() {
		stopped <- c.Run(runCtx)
	}()

	startTime := time.Now()
	frames := settings.Frames()
	for i, viewport := range frames {
		surface := canvas.NewCanvas(settings.Width, settings.Height)
		pass, err := c.Render(ctx, settings.Request(viewport, surface))
		if err != nil {
			logger.Errorf("Unable to start frame %d: %s", i+1, err)
			break
		}
		stats, err := pass.Wait(ctx)
		if err != nil {
			logger.Errorf("Frame %d failed: %s", i+1, err)
			break
		}

		path := filepath.Join(runPath, fmt.Sprintf("%d.png", i+1))
		misc.CheckError(surface.SavePNG(path), logger, misc.Error)
		logger.Infof("Saved frame %d/%d to %s %s", i+1, len(frames), path, stats.String())
	}
	logger.Infof("Done generating %d frames in %s", len(frames), time.Since(startTime))

	cancel()
	misc.CheckError(<-stopped, logger, misc.Warning)
	logger.Info("Shutting down")
}

func startWorker(ctx context.Context, logger bslogger.Logger) {
	settings := worker.NewSettings(settingsFile)

	w := worker.NewWorker(worker.Local{}, fmt.Sprintf("Worker %s", settings.ServerAddress))
	server := settings.NewServer(w)
	misc.CheckError(server.Run(), logger, misc.Fatal)
	logger.Infof("Serving columns at %s over %s", server.Address(), settings.Transport)

	<-ctx.Done()
	logger.Infof("Rendered %d columns", w.ColumnsCompleted())
	misc.CheckError(server.Stop(), logger, misc.Warning)
	logger.Info("Shutting down")
}
