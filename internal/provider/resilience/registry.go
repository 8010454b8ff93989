package resilience

import (
	"sync"

	"github.com/sony/gobreaker/v2"
)

// ProviderHealth is a point-in-time view of one provider's circuit breaker.
type ProviderHealth struct {
	// Name is the provider identifier.
	Name string

	// CircuitState is the current circuit breaker state.
	CircuitState gobreaker.State

	// Counts contains circuit breaker statistics.
	Counts gobreaker.Counts
}

// IsHealthy returns true if the provider's circuit is closed.
func (h *ProviderHealth) IsHealthy() bool {
	return h.CircuitState == gobreaker.StateClosed
}

// Registry tracks registered provider clients so operational endpoints can
// report their circuit state.
type Registry struct {
	mu      sync.RWMutex
	names   []string
	clients map[string]*Client
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Register adds a provider client to the registry.
func (r *Registry) Register(name string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[name]; !ok {
		r.names = append(r.names, name)
	}
	r.clients[name] = client
}

// GetHealth returns the health of a specific provider, or nil if unknown.
func (r *Registry) GetHealth(name string) *ProviderHealth {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[name]
	if !ok {
		return nil
	}

	return &ProviderHealth{
		Name:         name,
		CircuitState: c.CircuitBreakerState(),
		Counts:       c.CircuitBreakerCounts(),
	}
}

// GetAllHealth returns the health of every registered provider in
// registration order.
func (r *Registry) GetAllHealth() []*ProviderHealth {
	r.mu.RLock()
	defer r.mu.RUnlock()

	health := make([]*ProviderHealth, 0, len(r.names))
	for _, name := range r.names {
		c := r.clients[name]
		health = append(health, &ProviderHealth{
			Name:         name,
			CircuitState: c.CircuitBreakerState(),
			Counts:       c.CircuitBreakerCounts(),
		})
	}

	return health
}
