// Package ui holds the visual primitives scenes are composed from.
package ui

import (
	"image/color"

	"github.com/younwookim/taskshow/internal/application/system"
	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/render"
)

// ButtonStyle configures a Button.
type ButtonStyle struct {
	Width      float64
	Height     float64
	Radius     float32
	Background uint32
	Hover      uint32
	TextColor  color.Color
	FontSize   float64
}

// DefaultButtonStyle returns the menu button look.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Width:      300,
		Height:     60,
		Radius:     10,
		Background: 0x4a90e2,
		Hover:      0xaaaaaa,
		TextColor:  color.White,
		FontSize:   24,
	}
}

// Button is a clickable label. A click is a press followed by a release,
// both inside the button.
type Button struct {
	Node *render.Node

	bg      *render.Node
	label   *render.Node
	style   ButtonStyle
	enabled bool
	hovered bool
	pressed bool
}

// NewButton creates a button centered on its node origin.
func NewButton(cache *assets.Cache, label string, style ButtonStyle) *Button {
	b := &Button{
		Node:    render.NewContainer("button"),
		style:   style,
		enabled: true,
	}

	// The background image is white and colored through the tint so hover
	// does not need a second image.
	b.bg = render.NewSprite("button-bg", cache.Rect(int(style.Width), int(style.Height), style.Radius, 0xffffff))
	b.bg.X = -style.Width / 2
	b.bg.Y = -style.Height / 2
	b.bg.Tint = style.Background

	b.label = render.NewText("button-label", label, cache.Fonts().Face(style.FontSize), style.TextColor)
	b.label.AnchorX, b.label.AnchorY = 0.5, 0.5

	b.Node.AddChild(b.bg)
	b.Node.AddChild(b.label)
	return b
}

// SetPosition moves the button center.
func (b *Button) SetPosition(x, y float64) {
	b.Node.X = x
	b.Node.Y = y
}

// Text returns the label.
func (b *Button) Text() string {
	return b.label.Text
}

// SetText replaces the label.
func (b *Button) SetText(s string) {
	b.label.Text = s
}

// Enabled reports whether the button reacts to input.
func (b *Button) Enabled() bool {
	return b.enabled
}

// SetEnabled toggles input handling. Disabled buttons are drawn at half alpha.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
	if enabled {
		b.Node.Alpha = 1
	} else {
		b.Node.Alpha = 0.5
		b.hovered = false
		b.pressed = false
	}
	b.applyTint()
}

// Hovered reports whether the pointer was over the button on the last Update.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Update processes pointer input and reports whether the button was
// clicked this frame. Press and release edges landing on the button are
// consumed.
func (b *Button) Update(in *system.InputSystem) bool {
	if !b.enabled || !b.Node.WorldVisible() || b.Node.IsDisposed() {
		b.hovered = false
		b.pressed = false
		b.applyTint()
		return false
	}

	p := in.Pointer()
	inside := b.bg.Contains(p.X, p.Y)
	b.hovered = inside
	b.applyTint()

	clicked := false
	if p.JustPressed && inside {
		b.pressed = true
		in.Consume()
	}
	if p.JustReleased {
		if b.pressed && inside {
			clicked = true
			in.Consume()
		}
		b.pressed = false
	}
	return clicked
}

func (b *Button) applyTint() {
	if b.hovered {
		b.bg.Tint = b.style.Hover
	} else {
		b.bg.Tint = b.style.Background
	}
}
