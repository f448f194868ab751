package coordinator

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"StripedMandelbrot/mandelbrot"
	"StripedMandelbrot/palette"
)

var (
	ErrInvalidRequest = errors.New("invalid render request")
	ErrSuperseded     = errors.New("render pass superseded")
)

// ColumnError is returned by a pass when a column failed on its retry as well
type ColumnError struct {
	Generation uint64
	Column     int
	Lane       int
	Err        error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("pass %d: column %d failed on lane %d: %s", e.Generation, e.Column, e.Lane, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// Surface receives the pixels of a render pass. It is only ever called from the coordinator's own goroutine.
type Surface interface {
	PaintPixel(x int, y int, c color.RGBA)
}

// Request describes one full render
type Request struct {
	Viewport  mandelbrot.Viewport
	Width     int
	Height    int
	Options   mandelbrot.Options
	Controls  palette.ControlColors
	TableSize int
	// Interior paints points that never escape. The zero value means opaque black, so fully transparent black
	// cannot be requested.
	Interior color.RGBA
	Surface  Surface
}

func (r *Request) Verify() error {
	if r.Surface == nil {
		return fmt.Errorf("%w: no surface", ErrInvalidRequest)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidRequest, r.Width, r.Height)
	}
	if err := r.Viewport.Verify(); err != nil {
		return err
	}
	if err := r.Options.Verify(); err != nil {
		return err
	}
	if r.TableSize == 0 {
		r.TableSize = palette.DefaultTableSize
	}
	if r.Interior == (color.RGBA{}) {
		r.Interior = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	return nil
}

// Stats are filled in by the coordinator and are final once the pass is done
type Stats struct {
	Columns int
	Retries int
	Dropped int
	Elapsed time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("{Stats Columns: %d Retries: %d Dropped: %d Elapsed: %s}", s.Columns, s.Retries, s.Dropped, s.Elapsed)
}

// Pass is a render in progress. Everything but Generation and done is owned by the coordinator goroutine until
// done is closed.
type Pass struct {
	Generation uint64

	active    int
	done      chan struct{}
	err       error
	finished  bool
	request   Request
	startTime time.Time
	stats     Stats
	table     palette.Table
}

func newPass(generation uint64, request Request, table palette.Table) *Pass {
	return &Pass{
		Generation: generation,
		done:       make(chan struct{}),
		request:    request,
		table:      table,
	}
}

// Done is closed once every lane of the pass is idle
func (p *Pass) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the pass is done or ctx is cancelled
func (p *Pass) Wait(ctx context.Context) (Stats, error) {
	select {
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case <-p.done:
		return p.stats, p.err
	}
}

func (p *Pass) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Pass) finish(err error) {
	if p.finished {
		return
	}
	p.fail(err)
	p.finished = true
	p.stats.Elapsed = time.Since(p.startTime)
	close(p.done)
}
