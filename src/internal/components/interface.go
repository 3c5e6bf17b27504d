// Package components holds long-running parts of the process that are
// started and stopped together, such as the UI and backend HTTP servers.
package components

// Component represents a service component with lifecycle management
type Component interface {
	// Start starts the component without blocking.
	Start() error

	// Stop stops the component
	Stop() error

	// Name returns the component name for logging
	Name() string
}
