package notification

import "github.com/wb-go/wbf/retry"

// Test-only accessors so the external test package can reach unexported
// dispatcher state without importing the mocks package from inside the
// notification package (which would create an import cycle).

func (d *Dispatcher) SetStrategy(s retry.Strategy) { d.strategy = s }

func (d *Dispatcher) Queue() chan Message { return d.queue }
