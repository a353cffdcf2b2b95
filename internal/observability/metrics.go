package observability

import (
	"fmt"
	"net/http"

	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the simulation's Prometheus metrics. It is fed from two
// sides: transition events from the dispatcher and per-tick snapshots.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks       prometheus.Counter
	Transitions *prometheus.CounterVec
	Established *prometheus.GaugeVec
	ScanAngle   *prometheus.GaugeVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lifisim_ticks_total",
		Help: "Number of simulation ticks run.",
	}), "lifisim_ticks_total")
	if err != nil {
		return nil, err
	}

	transitions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lifisim_path_transitions_total",
		Help: "Path state changes, labeled by path and direction (up or down).",
	}, []string{"path", "direction"}), "lifisim_path_transitions_total")
	if err != nil {
		return nil, err
	}

	established, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lifisim_path_established",
		Help: "1 while the path is established, 0 otherwise.",
	}, []string{"path"}), "lifisim_path_established")
	if err != nil {
		return nil, err
	}

	angle, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lifisim_scan_angle_degrees",
		Help: "Current scan angle in degrees, labeled by role (emitter or relay).",
	}, []string{"role"}), "lifisim_scan_angle_degrees")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:    gatherer,
		Ticks:       ticks,
		Transitions: transitions,
		Established: established,
		ScanAngle:   angle,
	}, nil
}

// OnEvent implements event.Listener.
func (c *Collector) OnEvent(e event.Event) {
	if c == nil {
		return
	}
	tr, ok := e.Data.(event.Transition)
	if !ok {
		return
	}
	direction := "down"
	if e.Type.Established() {
		direction = "up"
	}
	c.Transitions.WithLabelValues(string(tr.Path), direction).Inc()
}

// Observe implements app.Observer.
func (c *Collector) Observe(snap entity.Snapshot) {
	if c == nil {
		return
	}
	c.Ticks.Inc()
	c.Established.WithLabelValues(string(event.PathEmitterRelay)).Set(boolGauge(snap.Paths.EmitterRelay))
	c.Established.WithLabelValues(string(event.PathRelayReceiver)).Set(boolGauge(snap.Paths.RelayReceiver))
	c.Established.WithLabelValues(string(event.PathDirectReceiver)).Set(boolGauge(snap.Paths.DirectReceiver))
	c.ScanAngle.WithLabelValues("emitter").Set(snap.Emitter.Angle)
	c.ScanAngle.WithLabelValues("relay").Set(snap.Relay.Angle)
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
