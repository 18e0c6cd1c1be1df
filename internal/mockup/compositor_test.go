package mockup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

func TestPlacementFor(t *testing.T) {
	area := PlacementFor("MUG")
	assert.Equal(t, PlacementArea{Top: 25, Left: 20, Width: 60, Height: 50}, area)

	// Unknown product types fall back to the garment area.
	assert.Equal(t, PlacementFor("T-SHIRT"), PlacementFor("POSTER"))
}

func TestBlendFor(t *testing.T) {
	mode, opacity := BlendFor("White")
	assert.Equal(t, BlendMultiply, mode)
	assert.Equal(t, 0.90, opacity)

	mode, opacity = BlendFor("Black")
	assert.Equal(t, BlendScreen, mode)
	assert.Equal(t, 0.85, opacity)

	// Unlisted colors are treated as dark.
	mode, _ = BlendFor("Maroon")
	assert.Equal(t, BlendScreen, mode)
}

func TestCompositor_DragMovesDesign(t *testing.T) {
	var emitted []model.DesignPosition
	c := New("T-SHIRT", 400, 400, func(p model.DesignPosition) { emitted = append(emitted, p) })
	c.SetDesignLoaded(true)

	c.PointerDown(100, 100)
	assert.True(t, c.Dragging())

	// 40px right on a 400px box is a 10% offset.
	c.PointerMove(140, 120)
	pos := c.Position()
	assert.Equal(t, 10.0, pos.X)
	assert.Equal(t, 5.0, pos.Y)

	c.PointerUp()
	assert.False(t, c.Dragging())

	require.Len(t, emitted, 1)
	assert.Equal(t, pos, emitted[0])
}

func TestCompositor_DragClampsToBounds(t *testing.T) {
	c := New("T-SHIRT", 400, 400, nil)
	c.SetDesignLoaded(true)

	c.PointerDown(0, 0)
	c.PointerMove(10000, -10000)

	pos := c.Position()
	assert.Equal(t, MaxOffset, pos.X)
	assert.Equal(t, MinOffset, pos.Y)
}

func TestCompositor_SecondDragResumesFromOffset(t *testing.T) {
	c := New("T-SHIRT", 400, 400, nil)
	c.SetDesignLoaded(true)

	c.PointerDown(0, 0)
	c.PointerMove(40, 0)
	c.PointerUp()

	// A new drag measures deltas from the offset left by the last one.
	c.PointerDown(200, 200)
	c.PointerMove(240, 200)
	assert.Equal(t, 20.0, c.Position().X)
}

func TestCompositor_NoDragWithoutDesign(t *testing.T) {
	c := New("T-SHIRT", 400, 400, nil)

	c.PointerDown(100, 100)
	assert.False(t, c.Dragging())

	c.PointerMove(200, 200)
	assert.Equal(t, model.DesignPosition{Scale: 100}, c.Position())
}

func TestCompositor_MoveWithoutDownIsIgnored(t *testing.T) {
	c := New("T-SHIRT", 400, 400, nil)
	c.SetDesignLoaded(true)

	c.PointerMove(200, 200)
	assert.Equal(t, model.DesignPosition{Scale: 100}, c.Position())
}

func TestCompositor_SetScaleClamps(t *testing.T) {
	c := New("HOODIE", 400, 400, nil)

	c.SetScale(75)
	assert.Equal(t, 75, c.Position().Scale)

	c.SetScale(10)
	assert.Equal(t, MinScale, c.Position().Scale)

	c.SetScale(500)
	assert.Equal(t, MaxScale, c.Position().Scale)
}

func TestCompositor_Reset(t *testing.T) {
	var last model.DesignPosition
	c := New("T-SHIRT", 400, 400, func(p model.DesignPosition) { last = p })
	c.SetDesignLoaded(true)

	c.PointerDown(0, 0)
	c.PointerMove(100, 100)
	c.SetScale(140)

	c.Reset()
	assert.Equal(t, model.DesignPosition{X: 0, Y: 0, Scale: 100}, c.Position())
	assert.Equal(t, c.Position(), last)
}
