package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"StripedMandelbrot/misc"
	"StripedMandelbrot/task"
)

// Worker exposes a Renderer over net/rpc
type Worker struct {
	columnsCompleted atomic.Uint64
	logger           bslogger.Logger
	renderer         Renderer
}

func NewWorker(renderer Renderer, name string) *Worker {
	return &Worker{
		logger:   bslogger.NewLogger(name, bslogger.Normal, nil),
		renderer: renderer,
	}
}

func (w *Worker) RenderColumn(t task.Task, result *task.Result) error {
	startTime := time.Now()
	r, err := w.renderer.RenderColumn(context.Background(), t)
	if err != nil {
		w.logger.Errorf("Unable to render %s: %s", t.String(), err)
		return err
	}
	*result = r
	w.columnsCompleted.Add(1)
	w.logger.Debugf("Rendered %s in %s", t.String(), time.Since(startTime))
	return nil
}

func (w *Worker) RollCall(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}

func (w *Worker) ColumnsCompleted() uint64 {
	return w.columnsCompleted.Load()
}
