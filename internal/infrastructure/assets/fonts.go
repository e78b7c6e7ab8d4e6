package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out sized faces of the UI font.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFonts parses the bundled Go Regular font.
func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse UI font: %w", err)
	}
	return &Fonts{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the face of the given pixel size, creating it on first use.
func (f *Fonts) Face(size float64) text.Face {
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}
