package models

// Health is the body of GET /health.
type Health struct {
	Status      string           `json:"status"`
	Timestamp   Timestamp        `json:"timestamp"`
	Database    string           `json:"database"`
	Environment string           `json:"environment"`
	Providers   []ProviderHealth `json:"providers,omitempty"`
}

// ProviderHealth reports the circuit state of one upstream provider client.
type ProviderHealth struct {
	Name         string `json:"name"`
	CircuitState string `json:"circuitState"`
	Healthy      bool   `json:"healthy"`
}

// Database status values reported by the health probe.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)
