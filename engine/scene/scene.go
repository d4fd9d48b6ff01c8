package scene

import (
	"cmp"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
)

// Scene is the in-memory scene graph the host renderer draws from. Non-ephemeral
// GameObjects live in a registry addressable by ID; ephemeral objects (highlight
// markers, auras) are drawn alongside them but are not counted by Count.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Count returns the number of persisted GameObjects in the scene's registry. Does not include ephemeral objects.
	//
	// Returns:
	//   - int: count of non-ephemeral GameObjects in the registry
	Count() int

	// CountEphemeral returns the number of ephemeral GameObjects currently in the scene.
	//
	// Returns:
	//   - int: count of ephemeral GameObjects
	CountEphemeral() int

	// Add adds a GameObject to the scene and assigns it an ID if it has none.
	// Non-ephemeral objects are persisted in the registry; ephemeral objects are only drawn.
	// Adding an object that is already present is a no-op that returns its ID.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a non-ephemeral GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes the object with the given ID, persisted or ephemeral.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - bool: true if an object was removed
	Remove(id uint64) bool

	// Objects returns every object in the scene ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: persisted and ephemeral objects
	Objects() []game_object.GameObject

	// Visible returns the enabled objects whose bounding spheres intersect the
	// camera frustum, ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: the objects the host renderer should draw this frame
	Visible() []game_object.GameObject

	// Clear removes all objects from the scene. IDs keep increasing afterwards.
	Clear()
}

type scene struct {
	mu     *sync.RWMutex
	name   string
	active bool
	cam    camera.Camera
	log    *logger.Logger

	// registry holds non-ephemeral objects by ID
	registry map[uint64]game_object.GameObject

	// ephemeral holds objects that are drawn but not persisted
	ephemeral map[uint64]game_object.GameObject

	nextID uint64
}

var _ Scene = &scene{}

// NewScene creates a new Scene drawn through the given camera.
//
// Panics if cam is nil.
//
// Parameters:
//   - name: the scene's identifier
//   - cam: the camera used for visibility queries
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:        &sync.RWMutex{},
		name:      name,
		active:    false,
		cam:       cam,
		log:       logger.Default().Tag("Scene"),
		registry:  make(map[uint64]game_object.GameObject),
		ephemeral: make(map[uint64]game_object.GameObject),
		nextID:    1,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	if cam == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) CountEphemeral() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ephemeral)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	id := obj.ID()
	if id != 0 {
		if existing, ok := s.lookupLocked(id); ok {
			if existing != obj {
				s.log.Warnf("object id %d already taken by %q, reassigning %q", id, existing.Name(), obj.Name())
				id = 0
			} else {
				return id
			}
		}
	}
	if id == 0 {
		id = s.nextID
		s.nextID++
		obj.SetID(id)
	} else if id >= s.nextID {
		s.nextID = id + 1
	}

	if obj.Ephemeral() {
		s.ephemeral[id] = obj
	} else {
		s.registry[id] = obj
	}
	s.log.Debugf("added %q as %d (ephemeral=%v)", obj.Name(), id, obj.Ephemeral())
	return id
}

func (s *scene) lookupLocked(id uint64) (game_object.GameObject, bool) {
	if obj, ok := s.registry[id]; ok {
		return obj, true
	}
	obj, ok := s.ephemeral[id]
	return obj, ok
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.registry[id]; ok {
		delete(s.registry, id)
		return true
	}
	if _, ok := s.ephemeral[id]; ok {
		delete(s.ephemeral, id)
		return true
	}
	return false
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	out := make([]game_object.GameObject, 0, len(s.registry)+len(s.ephemeral))
	for _, obj := range s.registry {
		out = append(out, obj)
	}
	for _, obj := range s.ephemeral {
		out = append(out, obj)
	}
	s.mu.RUnlock()

	sortByID(out)
	return out
}

func (s *scene) Visible() []game_object.GameObject {
	s.mu.RLock()
	cam := s.cam
	s.mu.RUnlock()

	frustum := common.ExtractFrustumFromMatrix(cam.ViewProjectionMatrix())

	all := s.Objects()
	out := all[:0]
	for _, obj := range all {
		if !obj.Enabled() {
			continue
		}
		x, y, z := obj.Position()
		if frustum.ContainsSphere([3]float32{x, y, z}, obj.BoundingRadius()) {
			out = append(out, obj)
		}
	}
	return out
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = make(map[uint64]game_object.GameObject)
	s.ephemeral = make(map[uint64]game_object.GameObject)
}

func sortByID(objs []game_object.GameObject) {
	slices.SortFunc(objs, func(a, b game_object.GameObject) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}
