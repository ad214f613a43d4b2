package server

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink accepts outbound payloads for one session. Connections implement
// it; tests substitute recorders.
type Sink interface {
	SendJSON(v any)
}

// Registry maps session ids to outbound sinks. Apart from Connect, which
// only mints an id, it must be touched exclusively from the hub loop.
type Registry struct {
	sinks  map[string]Sink
	logger *zap.Logger
}

// NewRegistry creates an empty session registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		sinks:  make(map[string]Sink),
		logger: logger,
	}
}

// Connect allocates a process-unique session id. UUIDs rule out the
// collisions a bare random integer would allow.
func (r *Registry) Connect() string {
	return uuid.NewString()
}

// Bind associates the session with its outbound sink.
func (r *Registry) Bind(id string, sink Sink) {
	r.sinks[id] = sink
	r.logger.Info("session bound",
		zap.String("session_id", id),
		zap.Int("sessions", len(r.sinks)))
}

// Unbind drops the session's sink and reports whether it was bound.
func (r *Registry) Unbind(id string) bool {
	if _, ok := r.sinks[id]; !ok {
		return false
	}
	delete(r.sinks, id)
	r.logger.Info("session unbound",
		zap.String("session_id", id),
		zap.Int("sessions", len(r.sinks)))

	return true
}

// Send delivers best-effort: an unknown session is silently dropped, the
// client is already gone.
func (r *Registry) Send(id string, v any) {
	if sink, ok := r.sinks[id]; ok {
		sink.SendJSON(v)
	}
}
