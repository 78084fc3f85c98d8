// Package harness times benchmark cases and reports one fixed-width line per
// run.
//
// A case runs exactly once per measurement by default: no warm-up, no
// retries. The reported figure is that single wall-clock duration.
package harness

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Case is a unit of work built ahead of time so the timing boundary wraps
// only the call itself.
type Case struct {
	Name string
	Ops  uint64
	Run  func() error
}

type Harness struct {
	sink        *bufio.Writer
	log         *zap.Logger
	clock       *Clock
	repetitions int
}

type Option func(*Harness)

// WithSink sets where record lines are written. Output is buffered until
// Flush.
func WithSink(w io.Writer) Option {
	return func(h *Harness) { h.sink = bufio.NewWriter(w) }
}

func WithLogger(log *zap.Logger) Option {
	return func(h *Harness) { h.log = log }
}

func WithClock(c *Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithRepetitions runs each case r times inside one measurement. Ops and
// Elapsed are totals over all repetitions.
func WithRepetitions(r int) Option {
	return func(h *Harness) {
		if r > 0 {
			h.repetitions = r
		}
	}
}

func New(opts ...Option) *Harness {
	h := &Harness{
		sink:        bufio.NewWriter(os.Stdout),
		log:         zap.NewNop(),
		clock:       &Clock{},
		repetitions: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run measures c and reports the record. A failing case is returned as an
// error and nothing is reported for it.
func (h *Harness) Run(c Case) (Record, error) {
	start := h.clock.Time()
	for i := 0; i < h.repetitions; i++ {
		if err := c.Run(); err != nil {
			h.log.Error("benchmark failed",
				zap.String("name", c.Name),
				zap.Error(err),
			)
			return Record{}, fmt.Errorf("running %s: %w", c.Name, err)
		}
	}
	elapsed := h.clock.Time().Sub(start)

	r := Record{
		Name:    c.Name,
		Ops:     c.Ops * uint64(h.repetitions),
		Elapsed: elapsed,
	}
	h.report(r)
	return r, nil
}

// RunAll runs cases in order and stops at the first failure.
func (h *Harness) RunAll(cases []Case) ([]Record, error) {
	records := make([]Record, 0, len(cases))
	for _, c := range cases {
		r, err := h.Run(c)
		if err != nil {
			return records, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (h *Harness) report(r Record) {
	h.log.Info("benchmark",
		zap.String("name", r.Name),
		zap.Uint64("ops", r.Ops),
		zap.Duration("elapsed", r.Elapsed),
		zap.Float64("opsPerSec", r.Throughput()),
	)
	fmt.Fprintln(h.sink, r.String())
}

// Flush writes any buffered record lines to the sink.
func (h *Harness) Flush() error {
	if err := h.sink.Flush(); err != nil {
		return fmt.Errorf("flushing report: %s", err)
	}
	return nil
}
