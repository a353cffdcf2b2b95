package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"go-lifi-sim/internal/logging"
)

const shutdownTimeout = 3 * time.Second

// NewDebugMux wires pprof, /metrics, /ws and /snapshot onto one mux.
func NewDebugMux(collector *Collector, hub *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	if collector != nil {
		mux.Handle("/metrics", collector.Handler())
	}
	if hub != nil {
		mux.HandleFunc("/ws", hub.ServeWS)
		mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
			snap, ok := hub.Latest()
			if !ok {
				http.Error(w, "no tick has run yet", http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(snap)
		})
	}
	return mux
}

// DebugServer serves the debug mux in the background.
type DebugServer struct {
	srv    *http.Server
	ln     net.Listener
	logger logging.Logger
	done   chan struct{}
}

// StartDebugServer listens on addr and serves handler until Shutdown.
func StartDebugServer(addr string, handler http.Handler, logger logging.Logger) (*DebugServer, error) {
	if logger == nil {
		logger = logging.Noop()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &DebugServer{
		srv:    &http.Server{Handler: handler, ReadHeaderTimeout: 5 * time.Second},
		ln:     ln,
		logger: logger,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(context.Background(), "debug server stopped", logging.Err(err))
		}
	}()
	logger.Info(context.Background(), "debug server listening", logging.String("addr", ln.Addr().String()))
	return s, nil
}

// Addr is the address actually bound, useful with ":0".
func (s *DebugServer) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the server, waiting at most a few seconds for open
// requests before closing them.
func (s *DebugServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	err := s.srv.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		err = s.srv.Close()
	}
	<-s.done
	return err
}
