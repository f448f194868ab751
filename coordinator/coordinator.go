// Package coordinator drives a fixed pool of column workers over a canvas. Lane k of a pool of W lanes renders
// columns k, k+W, k+2W... so no column is ever claimed twice. Results are painted by the coordinator goroutine
// alone as they arrive.
package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"

	"StripedMandelbrot/task"
	"StripedMandelbrot/worker"
)

const DefaultWorkers = 6

type laneResult struct {
	lane   int
	task   task.Task
	result task.Result
	err    error
}

// lane is a worker goroutine with its own request queue. It handles one task at a time.
type lane struct {
	id       int
	renderer worker.Renderer
	requests chan task.Task
}

func (l *lane) run(ctx context.Context, results chan<- laneResult) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-l.requests:
			result, err := l.renderer.RenderColumn(ctx, t)
			select {
			case results <- laneResult{lane: l.id, task: t, result: result, err: err}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// laneState is only touched by the coordinator goroutine
type laneState struct {
	active  bool
	busy    bool
	queued  *task.Task
	retried bool
}

type Coordinator struct {
	current    *Pass
	generation uint64
	lanes      []*lane
	logger     bslogger.Logger
	mutex      sync.Mutex
	passes     chan *Pass
	results    chan laneResult
	states     []laneState
}

// NewCoordinator creates a pool with one lane per renderer
func NewCoordinator(renderers []worker.Renderer) *Coordinator {
	c := &Coordinator{
		lanes:   make([]*lane, len(renderers)),
		logger:  bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		passes:  make(chan *Pass),
		results: make(chan laneResult, len(renderers)),
		states:  make([]laneState, len(renderers)),
	}
	for i, renderer := range renderers {
		c.lanes[i] = &lane{
			id:       i,
			renderer: renderer,
			requests: make(chan task.Task, 1),
		}
	}
	return c
}

// NewLocalCoordinator creates a pool of workers lanes computing in process
func NewLocalCoordinator(workers int) *Coordinator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	renderers := make([]worker.Renderer, workers)
	for i := range renderers {
		renderers[i] = worker.Local{}
	}
	return NewCoordinator(renderers)
}

func (c *Coordinator) Workers() int {
	return len(c.lanes)
}

// Run drives the lanes until ctx is cancelled. Render only makes progress while Run is running.
func (c *Coordinator) Run(ctx context.Context) error {
	if len(c.lanes) == 0 {
		return fmt.Errorf("%w: coordinator has no workers", ErrInvalidRequest)
	}
	c.reset()

	g, ctx := errgroup.WithContext(ctx)
	for _, l := range c.lanes {
		l := l
		g.Go(func() error {
			return l.run(ctx, c.results)
		})
	}
	g.Go(func() error {
		return c.loop(ctx)
	})
	return g.Wait()
}

// reset forgets everything a previous Run left behind. Lanes stopped mid column never report back, so their
// results and pending requests are discarded and every lane starts idle.
func (c *Coordinator) reset() {
	c.current = nil
	for k := range c.states {
		c.states[k] = laneState{}
	}
	for _, l := range c.lanes {
		select {
		case <-l.requests:
		default:
		}
	}
	for {
		select {
		case <-c.results:
		default:
			return
		}
	}
}

// Render starts a new pass, superseding the current one. The returned pass reports completion through Done and Wait.
func (c *Coordinator) Render(ctx context.Context, request Request) (*Pass, error) {
	if err := request.Verify(); err != nil {
		return nil, err
	}
	table, err := request.Controls.Build(request.TableSize)
	if err != nil {
		return nil, fmt.Errorf("building gradient: %w", err)
	}

	// Generations reach the loop in the order they are handed out
	c.mutex.Lock()
	defer c.mutex.Unlock()
	p := newPass(c.generation+1, request, table)
	select {
	case c.passes <- p:
		c.generation++
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Coordinator) loop(ctx context.Context) error {
	c.logger.Infof("Running %d workers", len(c.lanes))
	for {
		select {
		case <-ctx.Done():
			if c.current != nil {
				c.current.finish(ctx.Err())
			}
			c.logger.Info("Shutting down")
			return nil
		case p := <-c.passes:
			c.start(p)
		case r := <-c.results:
			c.ingest(r)
		}
	}
}

func (c *Coordinator) start(p *Pass) {
	if c.current != nil && !c.current.finished {
		c.logger.Infof("Pass %d superseded by pass %d", c.current.Generation, p.Generation)
		c.current.finish(ErrSuperseded)
	}
	c.current = p
	p.startTime = time.Now()

	request := p.request
	c.logger.Infof("Starting pass %d: %dx%d %s %s", p.Generation, request.Width, request.Height, request.Viewport.String(), request.Options.String())

	stride := len(c.lanes)
	for k := range c.states {
		state := &c.states[k]
		state.active = false
		state.queued = nil
		state.retried = false
		if k >= request.Width {
			continue
		}
		state.active = true
		p.active++
		c.dispatch(k, task.NewTask(p.Generation, k, stride, request.Viewport, request.Width, request.Height, request.Options, p.table))
	}
}

// dispatch hands t to lane k, or queues it until the lane returns its in flight column
func (c *Coordinator) dispatch(k int, t task.Task) {
	state := &c.states[k]
	if state.busy {
		state.queued = &t
		return
	}
	state.busy = true
	c.lanes[k].requests <- t
}

func (c *Coordinator) ingest(r laneResult) {
	state := &c.states[r.lane]
	state.busy = false

	p := c.current
	if p == nil || r.task.Generation != p.Generation {
		if p != nil && !p.finished {
			p.stats.Dropped++
		}
		c.logger.Debugf("Dropping column %d of stale pass %d", r.task.Column, r.task.Generation)
		if state.queued != nil {
			t := *state.queued
			state.queued = nil
			c.dispatch(r.lane, t)
		}
		return
	}

	err := r.err
	if err == nil {
		err = checkResult(r.task, r.result)
	}
	if err != nil {
		if !state.retried {
			state.retried = true
			p.stats.Retries++
			c.logger.Warningf("Retrying column %d of pass %d on lane %d: %s", r.task.Column, p.Generation, r.lane, err)
			c.dispatch(r.lane, r.task)
			return
		}
		columnErr := &ColumnError{Generation: p.Generation, Column: r.task.Column, Lane: r.lane, Err: err}
		c.logger.Error(columnErr.Error())
		p.fail(columnErr)
		c.retire(p, r.lane)
		return
	}

	state.retried = false
	c.paint(p, r.result)
	p.stats.Columns++

	if next, ok := r.task.Next(p.request.Width); ok && p.err == nil {
		c.dispatch(r.lane, next)
		return
	}
	c.retire(p, r.lane)
}

// retire idles lane k for the rest of the pass and finishes the pass once no lane is left active
func (c *Coordinator) retire(p *Pass, k int) {
	if !c.states[k].active {
		return
	}
	c.states[k].active = false
	p.active--
	if p.active > 0 {
		return
	}
	p.finish(nil)
	if p.err != nil {
		c.logger.Errorf("Pass %d failed after %s: %s", p.Generation, p.stats.Elapsed, p.err)
		return
	}
	c.logger.Infof("Finished pass %d %s", p.Generation, p.stats.String())
}

func (c *Coordinator) paint(p *Pass, result task.Result) {
	surface := p.request.Surface
	for _, pixel := range result.Rows {
		if pixel.Interior {
			surface.PaintPixel(result.Column, pixel.Row, p.request.Interior)
			continue
		}
		surface.PaintPixel(result.Column, pixel.Row, pixel.Color)
	}
}

// checkResult rejects results that do not describe the requested column, which can only come from a remote worker
func checkResult(t task.Task, result task.Result) error {
	if result.Column != t.Column || result.Generation != t.Generation {
		return fmt.Errorf("result for column %d of pass %d does not match the task", result.Column, result.Generation)
	}
	if len(result.Rows) != t.Height {
		return fmt.Errorf("column %d has %d rows, expected %d", t.Column, len(result.Rows), t.Height)
	}
	for _, pixel := range result.Rows {
		if pixel.Row < 0 || pixel.Row >= t.Height {
			return fmt.Errorf("column %d reports row %d outside of the canvas", t.Column, pixel.Row)
		}
	}
	return nil
}
