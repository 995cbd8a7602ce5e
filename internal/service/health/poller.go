package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/autonara/smartmatch/pkg/log"
)

// Poller probes the backend /health endpoint on a fixed interval and keeps
// the last known result. It runs independently of the chat flow and never
// cancels in-flight recommend calls. Each tick is a single attempt.
type Poller struct {
	client   core.Recommender
	interval time.Duration
	healthy  atomic.Bool
	onChange func(bool)
	cancel   context.CancelFunc
}

func NewPoller(client core.Recommender, interval time.Duration, onChange func(bool)) *Poller {
	return &Poller{
		client:   client,
		interval: interval,
		onChange: onChange,
	}
}

func (p *Poller) Healthy() bool {
	return p.healthy.Load()
}

func (p *Poller) Start(ctx context.Context) error {
	ctx, p.cancel = context.WithCancel(ctx)

	// Probe once up front so the page does not start as unavailable while
	// waiting for the first tick.
	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *Poller) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	return nil
}

func (p *Poller) probe(ctx context.Context) {
	status, err := p.client.Health(ctx)
	healthy := err == nil && status.OK()

	prev := p.healthy.Swap(healthy)
	if prev == healthy {
		return
	}

	logger := log.FromCtx(ctx)
	if healthy {
		logger.Info().Str("env", status.Env).Msg("backend is healthy")
	} else {
		logger.Warn().Err(err).Msg("backend is unavailable")
	}

	if p.onChange != nil {
		p.onChange(healthy)
	}
}
