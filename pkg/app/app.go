// Package app defines the runtime contract cmd/* binaries start.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
