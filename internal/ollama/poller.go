package ollama

import (
	"context"
	"time"

	"llmctl/pkg/types"
)

// DefaultPollInterval is the gap between readiness probes.
const DefaultPollInterval = 2 * time.Second

// prober is the single-call primitive the poller retries.
type prober interface {
	Models(ctx context.Context) ([]types.Model, error)
}

// Poller repeats the client's single-call probe at a fixed interval until the
// runtime answers or an overall deadline passes.
type Poller struct {
	probe    prober
	interval time.Duration
}

// NewPoller wraps a client; interval <=0 falls back to DefaultPollInterval.
func NewPoller(c *Client, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{probe: c, interval: interval}
}

// WaitUntilReady polls until the runtime lists models (an empty list counts as
// ready) or overall elapses. At least one probe is attempted, including when
// overall <= 0. Worst-case runtime is overall plus one interval. Failure is
// expressed only through the boolean; the sleep is interruptible via ctx.
func (p *Poller) WaitUntilReady(ctx context.Context, overall time.Duration) bool {
	deadline := time.Now().Add(overall)
	for {
		// Each probe is clamped to the remaining budget so an endpoint that
		// accepts connections but never answers cannot outlive the deadline.
		// The mandatory probe still gets one interval when overall <= 0.
		budget := time.Until(deadline)
		if budget < p.interval {
			budget = p.interval
		}
		pctx, cancel := context.WithTimeout(ctx, budget)
		_, err := p.probe.Models(pctx)
		cancel()
		if err == nil {
			return true
		}
		if ctx.Err() != nil || !time.Now().Before(deadline) {
			return false
		}
		select {
		case <-time.After(p.interval):
		case <-ctx.Done():
			return false
		}
	}
}
