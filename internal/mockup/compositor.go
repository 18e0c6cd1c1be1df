// Package mockup implements the interactive design-placement compositor:
// a small synchronous state machine that tracks where a customer dragged
// and scaled their design over a product photo, and emits the normalized
// position descriptor that gets persisted with the cart item.
package mockup

import "github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"

const (
	MinOffset = -50.0
	MaxOffset = 50.0
	MinScale  = 50
	MaxScale  = 150
)

// PlacementArea is the design anchor rectangle for a product type, each
// field a percentage of the product image bounding box.
type PlacementArea struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

var placementAreas = map[string]PlacementArea{
	"T-SHIRT": {Top: 20, Left: 25, Width: 50, Height: 40},
	"HOODIE":  {Top: 22, Left: 28, Width: 44, Height: 35},
	"MUG":     {Top: 25, Left: 20, Width: 60, Height: 50},
	"HAT":     {Top: 15, Left: 25, Width: 50, Height: 40},
}

// PlacementFor returns the placement area for a product type. Unknown
// types get the garment (T-SHIRT) area.
func PlacementFor(productType string) PlacementArea {
	if area, ok := placementAreas[productType]; ok {
		return area
	}
	return placementAreas["T-SHIRT"]
}

type BlendMode string

const (
	BlendMultiply BlendMode = "multiply"
	BlendScreen   BlendMode = "screen"
)

var lightColors = map[string]bool{
	"White":        true,
	"Heather Grey": true,
	"Sport Grey":   true,
	"Khaki":        true,
	"Desert Dust":  true,
}

// BlendFor picks how the design is composited onto the product photo:
// multiply at 90% opacity on light garments, screen at 85% on dark ones.
func BlendFor(color string) (BlendMode, float64) {
	if lightColors[color] {
		return BlendMultiply, 0.90
	}
	return BlendScreen, 0.85
}

// EmitFunc receives the updated descriptor after every interaction that
// changes it. Drag moves emit on every move, with no debouncing.
type EmitFunc func(model.DesignPosition)

// Compositor tracks one design placement session. It is event-driven and
// single-threaded: callers feed it pointer events and scale changes, and
// read the current descriptor back at any time.
type Compositor struct {
	area      PlacementArea
	onChange  EmitFunc
	hasDesign bool

	scale    int
	position model.DesignPosition
	dragging bool

	startX, startY     float64
	baseOffX, baseOffY float64

	containerW, containerH float64
}

// New creates a compositor for a product type. The container dimensions
// are the rendered size of the product image box, used to normalize drag
// deltas into percentage units.
func New(productType string, containerW, containerH float64, onChange EmitFunc) *Compositor {
	return &Compositor{
		area:       PlacementFor(productType),
		onChange:   onChange,
		scale:      100,
		containerW: containerW,
		containerH: containerH,
	}
}

// SetDesignLoaded marks whether a design image is present. Drags are
// ignored until one is.
func (c *Compositor) SetDesignLoaded(loaded bool) { c.hasDesign = loaded }

func (c *Compositor) Area() PlacementArea { return c.area }

func (c *Compositor) Dragging() bool { return c.dragging }

// Position returns the current descriptor.
func (c *Compositor) Position() model.DesignPosition {
	return model.DesignPosition{X: c.position.X, Y: c.position.Y, Scale: c.scale}
}

// PointerDown begins a drag at the given pointer coordinates, recording
// the current offset as the baseline. No-op when no design is loaded.
func (c *Compositor) PointerDown(x, y float64) {
	if !c.hasDesign {
		return
	}
	c.dragging = true
	c.startX, c.startY = x, y
	c.baseOffX, c.baseOffY = c.position.X, c.position.Y
}

// PointerMove updates the offset while dragging: the pointer delta is
// normalized against the container box into percentage units, added to the
// baseline, and clamped per axis to [-50, 50]. Emits on every move.
func (c *Compositor) PointerMove(x, y float64) {
	if !c.dragging || c.containerW <= 0 || c.containerH <= 0 {
		return
	}
	deltaX := (x - c.startX) / c.containerW * 100
	deltaY := (y - c.startY) / c.containerH * 100
	c.position.X = clamp(c.baseOffX+deltaX, MinOffset, MaxOffset)
	c.position.Y = clamp(c.baseOffY+deltaY, MinOffset, MaxOffset)
	c.emit()
}

// PointerUp ends the drag. Pointer-leave and touch-end map here as well.
func (c *Compositor) PointerUp() { c.dragging = false }

// SetScale sets the design scale from the bounded slider control,
// clamping to [50, 150], and emits immediately.
func (c *Compositor) SetScale(scale int) {
	if scale < MinScale {
		scale = MinScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	c.scale = scale
	c.emit()
}

// Reset restores the default placement {0, 0, 100} and emits.
func (c *Compositor) Reset() {
	c.position = model.DesignPosition{}
	c.scale = 100
	c.emit()
}

func (c *Compositor) emit() {
	if c.onChange != nil {
		c.onChange(c.Position())
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
