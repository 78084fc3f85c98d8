package harness

import (
	"fmt"
	"math"
	"time"
)

// Record is the outcome of one measured run.
type Record struct {
	Name    string
	Ops     uint64
	Elapsed time.Duration
}

func (r Record) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Throughput is operations per second. A run too fast to measure reports +Inf.
func (r Record) Throughput() float64 {
	if r.Elapsed <= 0 {
		return math.Inf(1)
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

func (r Record) String() string {
	return fmt.Sprintf("%-28s %12.2f ms %16.0f ops/sec", r.Name, r.Millis(), r.Throughput())
}
