package accounts

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// DrainTracker remembers the last AddAccountAction handed out per column and
// reports it if the next frame for that column finds it unprocessed.
type DrainTracker struct {
	pending map[int]*AddAccountAction
	strict  bool
	dropped prometheus.Counter
	count   int
}

func NewDrainTracker(strict bool, dropped prometheus.Counter) *DrainTracker {
	return &DrainTracker{
		pending: make(map[int]*AddAccountAction),
		strict:  strict,
		dropped: dropped,
	}
}

func (d *DrainTracker) Track(col int, action *AddAccountAction) {
	d.check(col)
	if action != nil && action.Pending() {
		d.pending[col] = action
	}
}

// CheckAll reports every unprocessed action, used on shutdown
func (d *DrainTracker) CheckAll() {
	cols := make([]int, 0, len(d.pending))
	for col := range d.pending {
		cols = append(cols, col)
	}
	slices.Sort(cols)
	for _, col := range cols {
		d.check(col)
	}
}

func (d *DrainTracker) check(col int) {
	prev, ok := d.pending[col]
	if !ok {
		return
	}
	delete(d.pending, col)
	if !prev.Pending() {
		return
	}
	log.Error("unknown id action dropped", zap.Int("column", col), zap.Stringer("action", prev))
	d.count++
	if d.dropped != nil {
		d.dropped.Inc()
	}
	if d.strict {
		panic(fmt.Sprintf("unprocessed %s dropped in column %d", prev, col))
	}
}

// Dropped is the number of actions reported so far
func (d *DrainTracker) Dropped() int {
	return d.count
}
