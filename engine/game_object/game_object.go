package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-placer/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu        *sync.RWMutex
	id        uint64
	name      string
	mesh      string
	enabled   atomic.Bool
	ephemeral bool

	position [3]float32
	rotation [3]float32
	scale    [3]float32
	tint     [4]float32

	// local-space bounding sphere radius before scale
	radius float32
}

// GameObject defines the interface for a scene entity: a transform, a mesh handle
// resolved by the host renderer, and a tint the renderer multiplies into the material.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID, 0 until assigned by a Scene
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the template or instance name the object was built with.
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Ephemeral returns whether this object is ephemeral.
	// Ephemeral objects are rendered by the scene but not persisted in its registry.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// Mesh returns the mesh handle the host renderer draws this object with.
	Mesh() string

	// SetMesh replaces the mesh handle.
	//
	// Parameters:
	//   - mesh: the new mesh handle
	SetMesh(mesh string)

	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// Rotation returns the Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// TransformData reads position, scale and rotation under a single lock.
	//
	// Returns:
	//   - pos: position as [3]float32 (x, y, z)
	//   - scale: scale as [3]float32 (x, y, z)
	//   - rot: rotation as [3]float32 (rx, ry, rz)
	TransformData() (pos, scale, rot [3]float32)

	// Tint returns the RGBA color multiplier.
	Tint() [4]float32

	// SetTint sets the RGBA color multiplier.
	//
	// Parameters:
	//   - rgba: the new tint
	SetTint(rgba [4]float32)

	// BoundingRadius returns the world-space bounding sphere radius, i.e. the local
	// radius multiplied by the largest absolute scale component.
	BoundingRadius() float32

	// ModelMatrix composes translation, rotation and scale into a model matrix.
	//
	// Returns:
	//   - mgl32.Mat4: T * Ry * Rx * Rz * S
	ModelMatrix() mgl32.Mat4

	// Clone returns an independent copy with the same mesh, transform, tint and flags
	// and an unassigned ID, ready to be positioned and added to a Scene.
	//
	// Returns:
	//   - GameObject: the copy
	Clone() GameObject
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled with unit scale, white tint and a unit bounding radius.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:     &sync.RWMutex{},
		scale:  [3]float32{1, 1, 1},
		tint:   [4]float32{1, 1, 1, 1},
		radius: 1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) Mesh() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mesh
}

func (g *gameObject) SetMesh(mesh string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mesh = mesh
}

func (g *gameObject) Position() (x, y, z float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) TransformData() (pos, scale, rot [3]float32) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.position, g.scale, g.rotation
}

func (g *gameObject) Tint() [4]float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tint
}

func (g *gameObject) SetTint(rgba [4]float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tint = rgba
}

func (g *gameObject) BoundingRadius() float32 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := max(abs(g.scale[0]), abs(g.scale[1]), abs(g.scale[2]))
	return g.radius * s
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	pos, scale, rot := g.TransformData()
	return common.ModelMatrix(pos, rot, scale)
}

func (g *gameObject) Clone() GameObject {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &gameObject{
		mu:        &sync.RWMutex{},
		name:      g.name,
		mesh:      g.mesh,
		ephemeral: g.ephemeral,
		position:  g.position,
		rotation:  g.rotation,
		scale:     g.scale,
		tint:      g.tint,
		radius:    g.radius,
	}
	c.enabled.Store(g.enabled.Load())
	return c
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
