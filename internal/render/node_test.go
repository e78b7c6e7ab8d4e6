package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_AddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")

	a.AddChild(child)
	require.Equal(t, a, child.Parent())

	b.AddChild(child)
	assert.Equal(t, b, child.Parent())
	assert.Equal(t, 0, a.NumChildren(), "child leaves its previous parent")
	assert.Equal(t, 1, b.NumChildren())
}

func TestNode_ChildOrder(t *testing.T) {
	root := NewContainer("root")
	first := NewContainer("first")
	second := NewContainer("second")
	root.AddChild(first)
	root.AddChild(second)

	// Re-adding moves a child to the top.
	root.AddChild(first)
	require.Len(t, root.Children(), 2)
	assert.Equal(t, second, root.Children()[0])
	assert.Equal(t, first, root.Children()[1])
}

func TestNode_RemoveChildren(t *testing.T) {
	root := NewContainer("root")
	c1, c2 := NewContainer("c1"), NewContainer("c2")
	root.AddChild(c1)
	root.AddChild(c2)

	root.RemoveChildren()
	assert.Equal(t, 0, root.NumChildren())
	assert.Nil(t, c1.Parent())
	assert.Nil(t, c2.Parent())
}

func TestNode_Dispose(t *testing.T) {
	root := NewContainer("root")
	scene := NewContainer("scene")
	leaf := NewContainer("leaf")
	root.AddChild(scene)
	scene.AddChild(leaf)

	scene.Dispose()
	assert.True(t, scene.IsDisposed())
	assert.True(t, leaf.IsDisposed())
	assert.Equal(t, 0, root.NumChildren())
	assert.NotPanics(t, scene.Dispose)

	// Disposed nodes cannot be re-attached.
	root.AddChild(leaf)
	assert.Equal(t, 0, root.NumChildren())
}

func TestNode_ToGlobalToLocal(t *testing.T) {
	root := NewContainer("root")
	root.X, root.Y = 100, 50

	child := NewContainer("child")
	child.X, child.Y = 10, 20
	child.SetScale(2)
	root.AddChild(child)

	gx, gy := child.ToGlobal(5, 5)
	assert.InDelta(t, 120, gx, 1e-9)
	assert.InDelta(t, 80, gy, 1e-9)

	lx, ly := child.ToLocal(gx, gy)
	assert.InDelta(t, 5, lx, 1e-9)
	assert.InDelta(t, 5, ly, 1e-9)
}

func TestNode_RotationAndPivot(t *testing.T) {
	n := NewContainer("n")
	n.Width, n.Height = 100, 150
	n.CenterPivot()
	n.X, n.Y = 200, 200
	n.Rotation = math.Pi / 2

	// The pivot maps onto the node position regardless of rotation.
	gx, gy := n.ToGlobal(50, 75)
	assert.InDelta(t, 200, gx, 1e-9)
	assert.InDelta(t, 200, gy, 1e-9)
}

func TestNode_ReparentPreservesScreenPosition(t *testing.T) {
	root := NewContainer("root")
	stack := NewContainer("stack")
	stack.X, stack.Y = -200, 0
	transit := NewContainer("transit")
	content := NewContainer("content")
	content.X, content.Y = 512, 384
	root.AddChild(content)
	content.AddChild(stack)
	content.AddChild(transit)

	card := NewContainer("card")
	card.X, card.Y = 3, 4
	stack.AddChild(card)

	gx, gy := stack.ToGlobal(card.X, card.Y)
	card.X, card.Y = transit.ToLocal(gx, gy)
	transit.AddChild(card)

	ax, ay := transit.ToGlobal(card.X, card.Y)
	assert.InDelta(t, gx, ax, 1e-9)
	assert.InDelta(t, gy, ay, 1e-9)
}

func TestNode_Contains(t *testing.T) {
	parent := NewContainer("parent")
	parent.X, parent.Y = 100, 100

	btn := NewContainer("btn")
	btn.Width, btn.Height = 200, 50
	btn.CenterPivot()
	parent.AddChild(btn)

	assert.True(t, btn.Contains(100, 100))
	assert.True(t, btn.Contains(1, 76))
	assert.False(t, btn.Contains(-1, 100))
	assert.False(t, btn.Contains(100, 130))

	empty := NewContainer("empty")
	assert.False(t, empty.Contains(0, 0))
}

func TestNode_WorldVisible(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)

	assert.True(t, child.WorldVisible())
	root.Visible = false
	assert.False(t, child.WorldVisible())
}
