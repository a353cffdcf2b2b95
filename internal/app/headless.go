package app

import (
	"context"
	"time"

	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/logging"
	"go-lifi-sim/internal/utils"
)

// HeadlessOptions controls RunHeadless.
type HeadlessOptions struct {
	// Ticks to run; zero runs until ctx is cancelled.
	Ticks int
	// TPS paces the loop; zero runs ticks back to back.
	TPS int
	// Wander, when set, applies one random receiver move before each tick.
	Wander *utils.PRNGService
}

// RunHeadless steps sim without a window until opts.Ticks ticks have run or
// ctx is cancelled, logs a summary and returns the last snapshot.
// Cancellation is a normal way to end the run.
func RunHeadless(ctx context.Context, sim *Simulation, opts HeadlessOptions) entity.Snapshot {
	var tick <-chan time.Time
	if opts.TPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(opts.TPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	moveStep := sim.Config().MoveStep
	snap := sim.Snapshot()
loop:
	for i := 0; opts.Ticks == 0 || i < opts.Ticks; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-tick:
			}
		} else if ctx.Err() != nil {
			break
		}
		if opts.Wander != nil {
			sim.MoveReceiver(opts.Wander.Nudge(moveStep))
		}
		snap = sim.Step()
	}

	sim.logger.Info(context.WithoutCancel(ctx), "headless run finished",
		logging.Uint64("ticks", snap.Tick),
		logging.Any("emitter_relay", snap.Paths.EmitterRelay),
		logging.Any("relay_receiver", snap.Paths.RelayReceiver),
		logging.Any("direct_receiver", snap.Paths.DirectReceiver),
	)
	return snap
}
