package strategy

// Noop never trades; every turn flushes as a pass. It is the starter
// strategy and a useful stand-in while testing the protocol path.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Step(Exchange, int) {}
