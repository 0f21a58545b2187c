package obs

import "sync/atomic"

// Metrics collects lightweight process counters for the turn loop.
type Metrics struct {
	linesHandled    uint64
	candlesIngested uint64
	stackUpdates    uint64
	ordersAccepted  uint64
	ordersRejected  uint64
	unknownCommands uint64
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	LinesHandled    uint64
	CandlesIngested uint64
	StackUpdates    uint64
	OrdersAccepted  uint64
	OrdersRejected  uint64
	UnknownCommands uint64
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncLine records one handled input line.
func (m *Metrics) IncLine() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.linesHandled, 1)
}

// AddCandles records ingested candles.
func (m *Metrics) AddCandles(n int) {
	if m == nil || n <= 0 {
		return
	}
	atomic.AddUint64(&m.candlesIngested, uint64(n))
}

// IncStackUpdate records one full balance replacement.
func (m *Metrics) IncStackUpdate() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.stackUpdates, 1)
}

// IncOrderAccepted records one accepted order.
func (m *Metrics) IncOrderAccepted() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.ordersAccepted, 1)
}

// IncOrderRejected records one rejected order attempt.
func (m *Metrics) IncOrderRejected() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.ordersRejected, 1)
}

// IncUnknownCommand records one unrecognized input command.
func (m *Metrics) IncUnknownCommand() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.unknownCommands, 1)
}

// Snapshot returns a copy of the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		LinesHandled:    atomic.LoadUint64(&m.linesHandled),
		CandlesIngested: atomic.LoadUint64(&m.candlesIngested),
		StackUpdates:    atomic.LoadUint64(&m.stackUpdates),
		OrdersAccepted:  atomic.LoadUint64(&m.ordersAccepted),
		OrdersRejected:  atomic.LoadUint64(&m.ordersRejected),
		UnknownCommands: atomic.LoadUint64(&m.unknownCommands),
	}
}
