package engine

import "fmt"

// ConfigError represents an invalid request parameter, detected before any
// builder runs. A request that fails this way never produces partial
// output.
type ConfigError struct {
	Field   string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
}
