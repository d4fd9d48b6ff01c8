package placement

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-placer/engine/assets"
	"github.com/Carmen-Shannon/oxy-placer/engine/camera"
	"github.com/Carmen-Shannon/oxy-placer/engine/game_object"
	"github.com/Carmen-Shannon/oxy-placer/engine/grid"
	"github.com/Carmen-Shannon/oxy-placer/engine/input"
	"github.com/Carmen-Shannon/oxy-placer/engine/logger"
	"github.com/Carmen-Shannon/oxy-placer/engine/picker"
	"github.com/Carmen-Shannon/oxy-placer/engine/scene"
)

const (
	DefaultPlaceable     = "placeable"
	DefaultAura          = "aura"
	DefaultDragThreshold = 4

	// markerThickness is the height of the default highlight tile.
	markerThickness = 0.02
)

var (
	DefaultFreeTint     = [4]float32{0.35, 0.9, 0.45, 0.6}
	DefaultOccupiedTint = [4]float32{0.95, 0.3, 0.3, 0.6}
)

type controllerImpl struct {
	mu *sync.Mutex

	scn    scene.Scene
	assets assets.Registry
	grid   grid.Grid
	picker picker.Picker
	occ    *grid.Occupancy
	marker game_object.GameObject
	log    *logger.Logger
	queue  *input.Queue

	placeable     string
	aura          string
	freeTint      [4]float32
	occupiedTint  [4]float32
	dragThreshold float32

	clientWidth  float32
	clientHeight float32

	placed  []PlacedObject
	onPlace func(PlacedObject)

	// primary press tracking for click-versus-drag
	pressed   bool
	pressID   int
	pressX    float32
	pressY    float32
	maxTravel float32

	// every pointer currently down; a second one turns the press into a gesture
	down  map[int]struct{}
	multi bool
}

var _ Controller = &controllerImpl{}

// NewController creates a placement controller that picks through cam, adds objects
// to scn and instantiates them from reg. The highlight marker is added to scn as an
// ephemeral object.
//
// Panics if cam, scn or reg is nil.
//
// Parameters:
//   - cam: the camera used to build pointer rays
//   - scn: the scene placed objects are added to
//   - reg: the registry the placeable and aura templates come from
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(cam camera.Camera, scn scene.Scene, reg assets.Registry, options ...ControllerBuilderOption) Controller {
	if cam == nil {
		panic("placement: NewController requires a non-nil Camera")
	}
	if scn == nil {
		panic("placement: NewController requires a non-nil Scene")
	}
	if reg == nil {
		panic("placement: NewController requires a non-nil Registry")
	}

	c := &controllerImpl{
		mu:            &sync.Mutex{},
		scn:           scn,
		assets:        reg,
		occ:           grid.NewOccupancy(),
		log:           logger.Default().Tag("Placement"),
		queue:         input.NewQueue(64),
		placeable:     DefaultPlaceable,
		aura:          DefaultAura,
		freeTint:      DefaultFreeTint,
		occupiedTint:  DefaultOccupiedTint,
		dragThreshold: DefaultDragThreshold,
		clientWidth:   800,
		clientHeight:  600,
		down:          make(map[int]struct{}),
	}
	for _, option := range options {
		option(c)
	}

	if c.grid == nil {
		c.grid = grid.NewGrid()
	}
	c.picker = picker.NewPicker(cam, picker.WithGroundHeight(c.grid.Height()), picker.WithLogger(c.log))

	if c.marker == nil {
		size := c.grid.CellSize()
		c.marker = game_object.NewGameObject(
			game_object.WithName("highlight"),
			game_object.WithMesh("highlight"),
			game_object.WithScale(size, markerThickness, size),
			game_object.WithEphemeral(true),
			game_object.WithEnabled(false),
			game_object.WithBoundingRadius(1),
		)
	}
	c.marker.SetTint(c.freeTint)
	scn.Add(c.marker)

	return c
}

func (c *controllerImpl) Enqueue(ev input.Event) {
	c.queue.Enqueue(ev)
}

func (c *controllerImpl) Update(dt float32) bool {
	events := c.queue.Drain()

	c.mu.Lock()
	changed := false
	var fired []PlacedObject
	for _, ev := range events {
		moved, placed, ok := c.handle(ev)
		changed = changed || moved || ok
		if ok {
			fired = append(fired, placed)
		}
	}
	onPlace := c.onPlace
	c.mu.Unlock()

	if onPlace != nil {
		for _, p := range fired {
			onPlace(p)
		}
	}
	return changed
}

func (c *controllerImpl) Hover(ndcX, ndcY float32) (grid.Cell, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hover(ndcX, ndcY)
}

func (c *controllerImpl) hover(ndcX, ndcY float32) (grid.Cell, bool) {
	hit, ok := c.picker.Pick(ndcX, ndcY)
	if !ok {
		return grid.Cell{}, false
	}

	cell := c.grid.Snap(hit)
	center := c.grid.CellCenter(cell)
	c.marker.SetPosition(center[0], center[1], center[2])
	if c.occ.Has(cell) {
		c.marker.SetTint(c.occupiedTint)
	} else {
		c.marker.SetTint(c.freeTint)
	}
	c.marker.SetEnabled(true)
	return cell, true
}

func (c *controllerImpl) Confirm(ndcX, ndcY float32) (PlacedObject, bool) {
	c.mu.Lock()
	placed, ok := c.confirm(ndcX, ndcY)
	onPlace := c.onPlace
	c.mu.Unlock()

	if ok && onPlace != nil {
		onPlace(placed)
	}
	return placed, ok
}

func (c *controllerImpl) confirm(ndcX, ndcY float32) (PlacedObject, bool) {
	hit, ok := c.picker.Pick(ndcX, ndcY)
	if !ok {
		return PlacedObject{}, false
	}
	cell := c.grid.Snap(hit)
	if c.occ.Has(cell) {
		c.log.Debugf("cell %s already occupied", cell)
		return PlacedObject{}, false
	}

	obj, err := c.assets.Instantiate(c.placeable)
	if err != nil {
		c.log.Errorf("instantiate placeable: %v", err)
		return PlacedObject{}, false
	}
	aura, err := c.assets.Instantiate(c.aura)
	if err != nil {
		c.log.Errorf("instantiate aura: %v", err)
		return PlacedObject{}, false
	}
	if obj.Ephemeral() {
		c.log.Errorf("placeable template %q is ephemeral and would not be persisted", c.placeable)
		return PlacedObject{}, false
	}
	if !aura.Ephemeral() {
		c.log.Errorf("aura template %q must be ephemeral", c.aura)
		return PlacedObject{}, false
	}

	center := c.grid.CellCenter(cell)
	obj.SetPosition(center[0], center[1], center[2])
	aura.SetPosition(center[0], center[1], center[2])
	id := c.scn.Add(obj)
	c.scn.Add(aura)
	c.occ.Mark(cell)

	placed := PlacedObject{ID: id, Object: obj, Aura: aura, Cell: cell}
	c.placed = append(c.placed, placed)

	c.hover(ndcX, ndcY)

	c.log.Infof("placed %q at cell %s (object %d)", c.placeable, cell, id)
	return placed, true
}

func (c *controllerImpl) Placed() []PlacedObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]PlacedObject, len(c.placed))
	copy(out, c.placed)
	return out
}

func (c *controllerImpl) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.placed)
}

func (c *controllerImpl) Occupancy() *grid.Occupancy {
	return c.occ
}

func (c *controllerImpl) Grid() grid.Grid {
	return c.grid
}

func (c *controllerImpl) Picker() picker.Picker {
	return c.picker
}

func (c *controllerImpl) Marker() game_object.GameObject {
	return c.marker
}

func (c *controllerImpl) SetViewport(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientWidth = width
	c.clientHeight = height
}

func (c *controllerImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.placed {
		c.scn.Remove(p.ID)
		c.scn.Remove(p.Aura.ID())
	}
	c.placed = nil
	c.occ.Reset()
	c.pressed = false
	clear(c.down)
	c.multi = false
	c.marker.SetTint(c.freeTint)
	c.log.Infof("placement session reset")
}

func (c *controllerImpl) SetPlaceCallback(fn func(PlacedObject)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPlace = fn
}
