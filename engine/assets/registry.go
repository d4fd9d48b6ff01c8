// Package assets holds the named object templates that placement instantiates.
// A Registry is an explicit value owned by whoever builds the session; there is
// no package-level cache.
package assets

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
)

var (
	// ErrTemplateNotFound is returned when no template is registered under a name.
	ErrTemplateNotFound = errors.New("assets: template not found")

	// ErrInvalidTemplate is returned when registering an empty name or a nil template.
	ErrInvalidTemplate = errors.New("assets: invalid template")
)

// Loader produces the template for a name. It may be called from several
// goroutines at once during Preload.
type Loader func(name string) (game_object.GameObject, error)

// Registry maps template names to GameObjects that are cloned on demand.
// Thread-safe for concurrent access.
type Registry interface {
	// Register stores tmpl under name, replacing any previous template.
	//
	// Parameters:
	//   - name: the template name
	//   - tmpl: the template object
	//
	// Returns:
	//   - error: ErrInvalidTemplate if name is empty or tmpl is nil
	Register(name string, tmpl game_object.GameObject) error

	// Template returns the registered template itself, not a copy.
	//
	// Parameters:
	//   - name: the template name
	//
	// Returns:
	//   - game_object.GameObject: the template
	//   - error: ErrTemplateNotFound if nothing is registered under name
	Template(name string) (game_object.GameObject, error)

	// Instantiate returns an independent clone of the named template.
	//
	// Parameters:
	//   - name: the template name
	//
	// Returns:
	//   - game_object.GameObject: the new instance, without an ID
	//   - error: ErrTemplateNotFound if nothing is registered under name
	Instantiate(name string) (game_object.GameObject, error)

	// Preload runs load for every name on the registry's worker pool and registers
	// each successful result. It returns once every load has finished.
	//
	// Parameters:
	//   - ctx: cancels loads that have not started yet
	//   - names: template names to load
	//   - load: produces one template
	//
	// Returns:
	//   - error: all load failures joined, or nil
	Preload(ctx context.Context, names []string, load Loader) error

	// Names returns the registered template names in sorted order.
	Names() []string

	// Len returns the number of registered templates.
	Len() int

	// Clear drops every template.
	Clear()
}

type registryImpl struct {
	mu        *sync.RWMutex
	templates map[string]game_object.GameObject
	workers   int
	pool      worker.DynamicWorkerPool
	log       *logger.Logger
}

var _ Registry = &registryImpl{}

// NewRegistry creates an empty template Registry.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registryImpl{
		mu:        &sync.RWMutex{},
		templates: make(map[string]game_object.GameObject),
		workers:   max(runtime.NumCPU()-1, 1),
		log:       logger.Default().Tag("Assets"),
	}
	for _, option := range options {
		option(r)
	}

	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

func (r *registryImpl) Register(name string, tmpl game_object.GameObject) error {
	if name == "" || tmpl == nil {
		return fmt.Errorf("%w: name %q", ErrInvalidTemplate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[name]; ok {
		r.log.Debugf("replacing template %q", name)
	}
	r.templates[name] = tmpl
	return nil
}

func (r *registryImpl) Template(name string) (game_object.GameObject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return tmpl, nil
}

func (r *registryImpl) Instantiate(name string) (game_object.GameObject, error) {
	tmpl, err := r.Template(name)
	if err != nil {
		return nil, err
	}
	return tmpl.Clone(), nil
}

func (r *registryImpl) Preload(ctx context.Context, names []string, load Loader) error {
	if load == nil {
		return fmt.Errorf("%w: nil loader", ErrInvalidTemplate)
	}

	results := make([]game_object.GameObject, len(names))
	errs := make([]error, len(names))

	// The pool's own Wait blocks until workers idle out, so a WaitGroup is the barrier.
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		r.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()

				if err := ctx.Err(); err != nil {
					errs[i] = fmt.Errorf("preload %q: %w", name, err)
					return nil, errs[i]
				}
				obj, err := load(name)
				if err != nil {
					errs[i] = fmt.Errorf("preload %q: %w", name, err)
					return nil, errs[i]
				}
				if obj == nil {
					errs[i] = fmt.Errorf("preload %q: %w", name, ErrInvalidTemplate)
					return nil, errs[i]
				}
				results[i] = obj
				return obj, nil
			},
		})
	}
	wg.Wait()

	loaded := 0
	for i, obj := range results {
		if obj == nil {
			continue
		}
		if err := r.Register(names[i], obj); err != nil {
			errs[i] = err
			continue
		}
		loaded++
	}

	err := errors.Join(errs...)
	if err != nil {
		r.log.Warnf("preloaded %d of %d templates: %v", loaded, len(names), err)
	} else {
		r.log.Infof("preloaded %d templates", loaded)
	}
	return err
}

func (r *registryImpl) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

func (r *registryImpl) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

func (r *registryImpl) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.templates)
}
