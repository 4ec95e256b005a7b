package resilience

import "time"

// Breaker settings used when a config leaves a field unset.
const (
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 15 * time.Second
	DefaultHalfOpenMaxReq   = 2
)

// CircuitBreakerConfig tunes one breaker. Enabled only tells the caller
// whether to consult the breaker; the breaker itself ignores it.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the run of consecutive transient failures that opens the circuit.
	FailureThreshold int
	// OpenTimeout is how long the circuit stays open before trial requests are let through.
	OpenTimeout time.Duration
	// HalfOpenMaxReq caps concurrent trial requests and is also the number
	// of successes needed to close again.
	HalfOpenMaxReq int
}

// WithDefaults replaces non-positive fields with the package defaults.
func (c CircuitBreakerConfig) WithDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = DefaultFailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = DefaultOpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = DefaultHalfOpenMaxReq
	}
	return c
}

// LogFields renders the settings as key/value pairs for startup logs.
func (c CircuitBreakerConfig) LogFields() []any {
	return []any{
		"circuit_enabled", c.Enabled,
		"circuit_failure_threshold", c.FailureThreshold,
		"circuit_open_timeout", c.OpenTimeout.String(),
		"circuit_half_open_max_req", c.HalfOpenMaxReq,
	}
}
