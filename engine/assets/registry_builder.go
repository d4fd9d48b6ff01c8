package assets

import (
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
)

// RegistryBuilderOption is a functional option for configuring a Registry.
type RegistryBuilderOption func(*registryImpl)

// WithWorkers sets the number of goroutines Preload fans out to.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithWorkers(n int) RegistryBuilderOption {
	return func(r *registryImpl) {
		r.workers = max(n, 1)
	}
}

// WithTemplate registers a template at construction time. Empty names and nil
// templates are skipped.
//
// Parameters:
//   - name: the template name
//   - tmpl: the template object
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithTemplate(name string, tmpl game_object.GameObject) RegistryBuilderOption {
	return func(r *registryImpl) {
		if name != "" && tmpl != nil {
			r.templates[name] = tmpl
		}
	}
}

// WithLogger sets the diagnostic logger. The logger is tagged "Assets".
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - RegistryBuilderOption: option function to apply
func WithLogger(l *logger.Logger) RegistryBuilderOption {
	return func(r *registryImpl) {
		if l != nil {
			r.log = l.Tag("Assets")
		}
	}
}
