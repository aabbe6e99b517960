// Package ring provides a circular progress indicator widget.
package ring

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	thickness   = 0.12
	defaultSide = 220
	labelSize   = 42
)

var (
	transparent  = color.NRGBA{}
	defaultTrail = color.NRGBA{R: 214, G: 214, B: 214, A: 255}
)

// ProgressRing draws a percentage as a clockwise arc with a centred label.
type ProgressRing struct {
	widget.BaseWidget

	value int
	label string
	color color.Color
	trail color.Color
}

// NewProgressRing creates an empty ring.
func NewProgressRing() *ProgressRing {
	progress := &ProgressRing{
		color: color.Black,
		trail: defaultTrail,
	}
	progress.ExtendBaseWidget(progress)
	return progress
}

// SetValue updates the percentage (clamped to [0,100]), label and arc colour.
func (progress *ProgressRing) SetValue(percentage int, label string, arc color.Color) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	progress.value = percentage
	progress.label = label
	progress.color = arc
	progress.Refresh()
}

// Value returns the current percentage.
func (progress *ProgressRing) Value() int {
	return progress.value
}

// Label returns the centred text.
func (progress *ProgressRing) Label() string {
	return progress.label
}

// CreateRenderer implements fyne.Widget.
func (progress *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		return Pixel(x, y, w, h, progress.value, progress.color, progress.trail)
	})
	text := canvas.NewText(progress.label, progress.color)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = labelSize
	text.Alignment = fyne.TextAlignCenter

	return &ringRenderer{progress: progress, raster: raster, text: text}
}

// Pixel returns the colour of pixel (x, y) of a w×h ring showing value percent.
// The arc starts at twelve o'clock and runs clockwise.
func Pixel(x, y, w, h, value int, arc, trail color.Color) color.Color {
	side := w
	if h < side {
		side = h
	}
	outer := float64(side) / 2
	inner := outer * (1 - thickness)
	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	distance := math.Hypot(dx, dy)
	if distance > outer || distance < inner {
		return transparent
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if value > 0 && angle/(2*math.Pi)*100 <= float64(value) {
		return arc
	}
	return trail
}

type ringRenderer struct {
	progress *ProgressRing
	raster   *canvas.Raster
	text     *canvas.Text
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	renderer.raster.Resize(size)
	renderer.raster.Move(fyne.NewPos(0, 0))

	textSize := renderer.text.MinSize()
	renderer.text.Resize(fyne.NewSize(size.Width, textSize.Height))
	renderer.text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(defaultSide, defaultSide)
}

func (renderer *ringRenderer) Refresh() {
	renderer.text.Text = renderer.progress.label
	renderer.text.Color = renderer.progress.color
	renderer.text.Refresh()
	renderer.raster.Refresh()
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.raster, renderer.text}
}

func (renderer *ringRenderer) Destroy() {}
