// Package assets owns the generated and shared imagery used by scenes.
//
// The Cache is created once at startup and passed to scene constructors.
// Everything is created lazily on first use and reused afterwards; all
// access happens on the update goroutine.
package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Card dimensions in pixels.
const (
	CardWidth  = 100
	CardHeight = 150
	symbolSize = 60
)

// CardColors are the background colors, indexed by color class.
var CardColors = []uint32{
	0x845ec2, 0xd65db1, 0xff6f91, 0xff9671, 0xffc75f, 0xf9f871,
	0x2c73d2, 0x008f7a, 0x4b4453, 0xc34a36, 0xff8066, 0xd5cabd,
}

type rectKey struct {
	w, h   int
	radius float32
	rgb    uint32
}

// Cache holds shared images and fonts.
type Cache struct {
	fonts       *Fonts
	backgrounds map[int]*ebiten.Image
	symbols     map[int]*ebiten.Image
	rects       map[rectKey]*ebiten.Image
	placeholder *ebiten.Image
	glow        *ebiten.Image
}

// NewCache creates an empty cache around the UI fonts.
func NewCache(fonts *Fonts) *Cache {
	return &Cache{
		fonts:       fonts,
		backgrounds: make(map[int]*ebiten.Image),
		symbols:     make(map[int]*ebiten.Image),
		rects:       make(map[rectKey]*ebiten.Image),
	}
}

// Fonts returns the UI fonts.
func (c *Cache) Fonts() *Fonts {
	return c.fonts
}

// RGB converts 0xRRGGBB to an opaque color.
func RGB(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// CardBackground returns the card face for a color class.
func (c *Cache) CardBackground(colorClass int) *ebiten.Image {
	colorClass = wrap(colorClass, len(CardColors))
	if img, ok := c.backgrounds[colorClass]; ok {
		return img
	}
	img := ebiten.NewImage(CardWidth, CardHeight)
	img.Fill(RGB(CardColors[colorClass]))
	vector.StrokeRect(img, 1, 1, CardWidth-2, CardHeight-2, 2, color.RGBA{255, 255, 255, 200}, true)
	c.backgrounds[colorClass] = img
	return img
}

// CardSymbol returns the glyph drawn on cards of a symbol class.
func (c *Cache) CardSymbol(symbolClass int) *ebiten.Image {
	symbolClass = wrap(symbolClass, 12)
	if img, ok := c.symbols[symbolClass]; ok {
		return img
	}
	img := ebiten.NewImage(symbolSize, symbolSize)
	paintSymbol(img, symbolClass)
	c.symbols[symbolClass] = img
	return img
}

// paintSymbol draws one of twelve simple glyphs centered in img.
func paintSymbol(img *ebiten.Image, class int) {
	ink := color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	const s, m = float32(symbolSize), float32(symbolSize) / 2

	switch class {
	case 0:
		vector.DrawFilledCircle(img, m, m, 20, ink, true)
	case 1:
		vector.DrawFilledRect(img, 12, 12, s-24, s-24, ink, true)
	case 2:
		vector.StrokeCircle(img, m, m, 20, 5, ink, true)
	case 3:
		vector.StrokeRect(img, 12, 12, s-24, s-24, 5, ink, true)
	case 4:
		vector.StrokeLine(img, 10, m, s-10, m, 7, ink, true)
		vector.StrokeLine(img, m, 10, m, s-10, 7, ink, true)
	case 5:
		vector.StrokeLine(img, 12, 12, s-12, s-12, 7, ink, true)
		vector.StrokeLine(img, s-12, 12, 12, s-12, 7, ink, true)
	case 6:
		vector.DrawFilledCircle(img, m-12, m, 9, ink, true)
		vector.DrawFilledCircle(img, m+12, m, 9, ink, true)
	case 7:
		for i := float32(0); i < 3; i++ {
			vector.DrawFilledRect(img, 10, 12+i*14, s-20, 7, ink, true)
		}
	case 8:
		vector.StrokeCircle(img, m, m, 22, 3, ink, true)
		vector.DrawFilledCircle(img, m, m, 9, ink, true)
	case 9:
		for i := float32(0); i < 3; i++ {
			vector.DrawFilledRect(img, 12+i*14, 10, 7, s-20, ink, true)
		}
	case 10:
		vector.DrawFilledCircle(img, m, 16, 8, ink, true)
		vector.DrawFilledCircle(img, 16, s-18, 8, ink, true)
		vector.DrawFilledCircle(img, s-16, s-18, 8, ink, true)
	default:
		vector.StrokeLine(img, m, 8, s-10, s-12, 5, ink, true)
		vector.StrokeLine(img, s-10, s-12, 10, s-12, 5, ink, true)
		vector.StrokeLine(img, 10, s-12, m, 8, 5, ink, true)
	}
}

// Rect returns a solid rectangle, optionally with rounded corners.
func (c *Cache) Rect(w, h int, radius float32, rgb uint32) *ebiten.Image {
	key := rectKey{w: w, h: h, radius: radius, rgb: rgb}
	if img, ok := c.rects[key]; ok {
		return img
	}
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	fill := RGB(rgb)
	if radius <= 0 {
		img.Fill(fill)
	} else {
		fw, fh := float32(w), float32(h)
		vector.DrawFilledRect(img, radius, 0, fw-2*radius, fh, fill, true)
		vector.DrawFilledRect(img, 0, radius, fw, fh-2*radius, fill, true)
		vector.DrawFilledCircle(img, radius, radius, radius, fill, true)
		vector.DrawFilledCircle(img, fw-radius, radius, radius, fill, true)
		vector.DrawFilledCircle(img, radius, fh-radius, radius, fill, true)
		vector.DrawFilledCircle(img, fw-radius, fh-radius, radius, fill, true)
	}
	c.rects[key] = img
	return img
}

// Placeholder returns the avatar shown when a speaker image fails to load.
func (c *Cache) Placeholder() *ebiten.Image {
	if c.placeholder != nil {
		return c.placeholder
	}
	img := ebiten.NewImage(100, 100)
	img.Fill(color.RGBA{0x55, 0x55, 0x55, 0xff})
	shade := color.RGBA{0x99, 0x99, 0x99, 0xff}
	vector.DrawFilledCircle(img, 50, 38, 20, shade, true)
	vector.DrawFilledCircle(img, 50, 100, 38, shade, true)
	c.placeholder = img
	return img
}

// GlowSize is the edge length of the particle glow sprite.
const GlowSize = 64

// Glow returns a white radial falloff used for additive particles.
func (c *Cache) Glow() *ebiten.Image {
	if c.glow != nil {
		return c.glow
	}
	rgba := image.NewRGBA(image.Rect(0, 0, GlowSize, GlowSize))
	center := float64(GlowSize-1) / 2
	for y := 0; y < GlowSize; y++ {
		for x := 0; x < GlowSize; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center) / center
			a := math.Max(0, 1-d)
			a = a * a
			v := uint8(a * 255)
			// Premultiplied white.
			rgba.SetRGBA(x, y, color.RGBA{v, v, v, v})
		}
	}
	c.glow = ebiten.NewImageFromImage(rgba)
	return c.glow
}

// Dispose deallocates every cached image.
func (c *Cache) Dispose() {
	for _, m := range []map[int]*ebiten.Image{c.backgrounds, c.symbols} {
		for k, img := range m {
			img.Deallocate()
			delete(m, k)
		}
	}
	for k, img := range c.rects {
		img.Deallocate()
		delete(c.rects, k)
	}
	if c.placeholder != nil {
		c.placeholder.Deallocate()
		c.placeholder = nil
	}
	if c.glow != nil {
		c.glow.Deallocate()
		c.glow = nil
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
