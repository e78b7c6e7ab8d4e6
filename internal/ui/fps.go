package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/younwookim/taskshow/internal/infrastructure/assets"
	"github.com/younwookim/taskshow/internal/render"
)

// FPSWindow is the number of samples averaged by FPSCounter.
const FPSWindow = 60

// FPSCounter shows the rolling average frame rate in the top-left corner.
type FPSCounter struct {
	Node *render.Node

	samples [FPSWindow]float64
	count   int
	next    int
	sum     float64
}

// NewFPSCounter creates the readout at (10, 10).
func NewFPSCounter(fonts *assets.Fonts) *FPSCounter {
	n := render.NewText("fps", "FPS: 60", fonts.Face(18), color.RGBA{0, 0xff, 0, 0xff})
	n.X, n.Y = 10, 10
	return &FPSCounter{Node: n}
}

// Push records one frame rate sample and refreshes the label.
func (f *FPSCounter) Push(fps float64) {
	if f.count == FPSWindow {
		f.sum -= f.samples[f.next]
	} else {
		f.count++
	}
	f.samples[f.next] = fps
	f.sum += fps
	f.next = (f.next + 1) % FPSWindow

	f.Node.Text = fmt.Sprintf("FPS: %d", int(math.Round(f.Average())))
}

// Average returns the mean of the recorded samples.
func (f *FPSCounter) Average() float64 {
	if f.count == 0 {
		return 0
	}
	return f.sum / float64(f.count)
}
