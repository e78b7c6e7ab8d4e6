// Package render provides the retained visual tree scenes draw through.
//
// A Node carries a local transform relative to its parent, an optional
// image or text payload, and children drawn after it in insertion order,
// so later children appear on top.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Node is one element of the visual tree.
type Node struct {
	Name string

	X, Y           float64
	PivotX, PivotY float64
	Rotation       float64 // radians
	ScaleX, ScaleY float64
	Alpha          float64
	Tint           uint32 // 0xRRGGBB multiplied into the payload
	Blend          ebiten.Blend
	Visible        bool

	Image *ebiten.Image

	// Text payload. Anchor positions the text block relative to the node
	// origin: (0,0) is top-left, (0.5,0.5) centered.
	Text         string
	Face         text.Face
	TextColor    color.Color
	AnchorX      float64
	AnchorY      float64
	LineSpacing  float64
	textW, textH float64
	measuredText string
	measuredFace text.Face

	// Width and Height give a hit area to nodes without payload.
	Width, Height float64

	parent   *Node
	children []*Node
	disposed bool
}

// NewContainer creates an empty group node.
func NewContainer(name string) *Node {
	return &Node{
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Tint:    0xffffff,
		Blend:   ebiten.BlendSourceOver,
		Visible: true,
	}
}

// NewSprite creates a node drawing img.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := NewContainer(name)
	n.Image = img
	return n
}

// NewText creates a node drawing content with face.
func NewText(name, content string, face text.Face, clr color.Color) *Node {
	n := NewContainer(name)
	n.Text = content
	n.Face = face
	n.TextColor = clr
	return n
}

// SetScale sets both scale factors.
func (n *Node) SetScale(s float64) {
	n.ScaleX = s
	n.ScaleY = s
}

// CenterPivot moves the pivot to the middle of the node's bounds.
func (n *Node) CenterPivot() {
	w, h := n.Size()
	n.PivotX = w / 2
	n.PivotY = h / 2
}

// Size returns the unscaled size of the node's own payload or hit area.
func (n *Node) Size() (w, h float64) {
	switch {
	case n.Image != nil:
		b := n.Image.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	case n.Text != "" && n.Face != nil:
		n.measure()
		return n.textW, n.textH
	default:
		return n.Width, n.Height
	}
}

func (n *Node) measure() {
	if n.measuredText == n.Text && n.measuredFace == n.Face {
		return
	}
	n.textW, n.textH = text.Measure(n.Text, n.Face, n.lineSpacing())
	n.measuredText = n.Text
	n.measuredFace = n.Face
}

func (n *Node) lineSpacing() float64 {
	if n.LineSpacing > 0 {
		return n.LineSpacing
	}
	if n.Face != nil {
		m := n.Face.Metrics()
		return m.HAscent + m.HDescent + m.HLineGap
	}
	return 0
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// AddChild appends child on top of the existing children, detaching it
// from any previous parent first.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n || child.disposed {
		return
	}
	child.RemoveFromParent()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child if it belongs to n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.parent = nil
			return
		}
	}
}

// RemoveFromParent detaches n from its parent.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Dispose detaches n and marks the whole subtree disposed. Images are not
// deallocated: they may be shared through a cache. Calling Dispose twice
// is a no-op.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, c := range n.children {
		c.parent = nil
		c.dispose()
	}
	n.children = nil
	n.Image = nil
}

// IsDisposed reports whether Dispose has been called on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// localGeoM returns the transform from n's local space to its parent's.
func (n *Node) localGeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-n.PivotX, -n.PivotY)
	g.Scale(n.ScaleX, n.ScaleY)
	if n.Rotation != 0 {
		g.Rotate(n.Rotation)
	}
	g.Translate(n.X, n.Y)
	return g
}

// WorldGeoM returns the transform from n's local space to the root's.
func (n *Node) WorldGeoM() ebiten.GeoM {
	g := n.localGeoM()
	for p := n.parent; p != nil; p = p.parent {
		g.Concat(p.localGeoM())
	}
	return g
}

// ToGlobal maps a point in n's local space to root space.
func (n *Node) ToGlobal(x, y float64) (float64, float64) {
	g := n.WorldGeoM()
	return g.Apply(x, y)
}

// ToLocal maps a point in root space to n's local space.
func (n *Node) ToLocal(x, y float64) (float64, float64) {
	g := n.WorldGeoM()
	if !g.IsInvertible() {
		return 0, 0
	}
	g.Invert()
	return g.Apply(x, y)
}

// Contains reports whether the root-space point lies inside n's bounds.
func (n *Node) Contains(x, y float64) bool {
	w, h := n.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	lx, ly := n.ToLocal(x, y)
	ox, oy := n.textOffset(w, h)
	lx -= ox
	ly -= oy
	return lx >= 0 && ly >= 0 && lx < w && ly < h
}

// textOffset is where the text block starts relative to the node origin.
func (n *Node) textOffset(w, h float64) (float64, float64) {
	if n.Image != nil || n.Text == "" {
		return 0, 0
	}
	return -w * n.AnchorX, -h * n.AnchorY
}

// WorldVisible reports whether n and all its ancestors are visible.
func (n *Node) WorldVisible() bool {
	for p := n; p != nil; p = p.parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// Draw renders n and its subtree onto dst.
func (n *Node) Draw(dst *ebiten.Image) {
	var parent ebiten.GeoM
	alpha := 1.0
	if n.parent != nil {
		parent = n.parent.WorldGeoM()
		alpha = n.parent.worldAlpha()
	}
	n.draw(dst, parent, alpha)
}

func (n *Node) worldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.parent {
		a *= p.Alpha
	}
	return a
}

func (n *Node) draw(dst *ebiten.Image, parent ebiten.GeoM, parentAlpha float64) {
	if n.disposed || !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return
	}

	g := n.localGeoM()
	g.Concat(parent)

	var cs ebiten.ColorScale
	if n.Tint != 0xffffff {
		cs.Scale(channel(n.Tint, 16), channel(n.Tint, 8), channel(n.Tint, 0), 1)
	}
	cs.ScaleAlpha(float32(alpha))

	switch {
	case n.Image != nil:
		op := &ebiten.DrawImageOptions{}
		op.GeoM = g
		op.ColorScale = cs
		op.Blend = n.Blend
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(n.Image, op)
	case n.Text != "" && n.Face != nil:
		n.drawText(dst, g, cs)
	}

	for _, c := range n.children {
		c.draw(dst, g, alpha)
	}
}

func (n *Node) drawText(dst *ebiten.Image, g ebiten.GeoM, cs ebiten.ColorScale) {
	w, h := n.Size()
	ox, oy := n.textOffset(w, h)

	op := &text.DrawOptions{}
	op.GeoM.Translate(ox, oy)
	op.GeoM.Concat(g)
	if n.TextColor != nil {
		op.ColorScale.ScaleWithColor(n.TextColor)
	}
	op.ColorScale.ScaleWithColorScale(cs)
	op.LineSpacing = n.lineSpacing()
	op.Filter = ebiten.FilterLinear
	text.Draw(dst, n.Text, n.Face, op)
}

func channel(rgb uint32, shift uint) float32 {
	return float32((rgb>>shift)&0xff) / 255
}
