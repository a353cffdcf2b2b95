package app

import (
	"context"

	"go-lifi-sim/internal/event"
	"go-lifi-sim/internal/logging"
)

// TransitionLogger writes one structured log line per path transition.
type TransitionLogger struct {
	logger logging.Logger
}

// OnEvent implements event.Listener.
func (l *TransitionLogger) OnEvent(e event.Event) {
	tr, ok := e.Data.(event.Transition)
	if !ok {
		return
	}
	msg := "path lost"
	if e.Type.Established() {
		msg = "path established"
	}
	l.logger.Info(context.Background(), msg,
		logging.String("event", string(e.Type)),
		logging.String("path", string(tr.Path)),
		logging.Uint64("tick", tr.Tick),
		logging.Float64("angle", tr.Angle),
		logging.Float64("x", tr.Point.X),
		logging.Float64("y", tr.Point.Y),
	)
}
