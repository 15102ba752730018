// Curve rasterizer for the function preview image
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	gridColor       = color.RGBA{225, 225, 225, 255}
	axisColor       = color.RGBA{150, 150, 150, 255}
	textColor       = color.RGBA{60, 60, 60, 255}
	curveColor      = color.RGBA{31, 119, 180, 255}
)

// Plot-area margins, leaving room for tick and axis labels.
const (
	marginLeft   = 48
	marginRight  = 12
	marginTop    = 12
	marginBottom = 30
)

// Renderer rasterizes an evaluated curve into an image suitable for a
// canvas.Image preview. Every Render call produces a fresh image, so a new
// preview always replaces the previous curve entirely.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Render draws xs/ys as a connected curve over a grid with labeled axes.
// Non-finite samples break the polyline instead of being drawn.
func (r *Renderer) Render(xs, ys []float64) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	if len(xs) == 0 || len(xs) != len(ys) {
		return img
	}

	xMin, xMax := bounds(xs)
	yMin, yMax := bounds(ys)
	if math.IsNaN(xMin) || math.IsNaN(yMin) {
		return img
	}
	xMin, xMax = pad(xMin, xMax)
	yMin, yMax = pad(yMin, yMax)
	if !finite(xMax-xMin) || !finite(yMax-yMin) {
		return img
	}

	plotLeft := marginLeft
	plotTop := marginTop
	plotRight := r.Width - marginRight
	plotBottom := r.Height - marginBottom

	toPx := func(x float64) int {
		return plotLeft + int(math.Round((x-xMin)/(xMax-xMin)*float64(plotRight-plotLeft)))
	}
	toPy := func(y float64) int {
		return plotTop + int(math.Round((yMax-y)/(yMax-yMin)*float64(plotBottom-plotTop)))
	}

	// Grid with tick labels at round-number steps.
	xStep := niceStep((xMax - xMin) / 5)
	for v := math.Ceil(xMin/xStep) * xStep; v <= xMax; v += xStep {
		px := toPx(v)
		drawVLine(img, px, plotTop, plotBottom, gridColor)
		label := formatTick(v)
		drawText(img, px-textWidth(label)/2, plotBottom+14, label)
	}
	yStep := niceStep((yMax - yMin) / 5)
	for v := math.Ceil(yMin/yStep) * yStep; v <= yMax; v += yStep {
		py := toPy(v)
		drawHLine(img, plotLeft, plotRight, py, gridColor)
		label := formatTick(v)
		drawText(img, plotLeft-textWidth(label)-4, py+4, label)
	}

	// Zero axes, drawn over the grid when visible.
	if xMin < 0 && xMax > 0 {
		drawVLine(img, toPx(0), plotTop, plotBottom, axisColor)
	}
	if yMin < 0 && yMax > 0 {
		drawHLine(img, plotLeft, plotRight, toPy(0), axisColor)
	}

	// Frame and axis labels.
	drawVLine(img, plotLeft, plotTop, plotBottom, axisColor)
	drawHLine(img, plotLeft, plotRight, plotBottom, axisColor)
	drawText(img, (plotLeft+plotRight)/2, r.Height-4, "x")
	drawText(img, 4, plotTop+10, "y")

	// The curve itself, skipping non-finite samples.
	for i := 1; i < len(xs); i++ {
		if !finite(xs[i-1]) || !finite(xs[i]) || !finite(ys[i-1]) || !finite(ys[i]) {
			continue
		}
		drawLine(img, toPx(xs[i-1]), toPy(ys[i-1]), toPx(xs[i]), toPy(ys[i]), curveColor)
	}

	return img
}

// Placeholder returns the empty preview surface shown before the first
// render.
func (r *Renderer) Placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{240, 240, 240, 255}), image.Point{}, draw.Src)
	return img
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// bounds returns the min/max of the finite values, or NaNs if there are
// none.
func bounds(values []float64) (float64, float64) {
	min, max := math.NaN(), math.NaN()
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return min, max
}

// pad widens a range by 5% on each side, handling the degenerate
// constant-value case.
func pad(min, max float64) (float64, float64) {
	if min == max {
		return min - 1, max + 1
	}
	margin := (max - min) * 0.05
	return min - margin, max + margin
}

// niceStep rounds a raw step up to the nearest 1/2/5 multiple of a power of
// ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || !finite(raw) {
		return 1
	}
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / power; {
	case frac <= 1:
		return power
	case frac <= 2:
		return 2 * power
	case frac <= 5:
		return 5 * power
	default:
		return 10 * power
	}
}

func formatTick(v float64) string {
	// Snap near-zero ticks produced by repeated float addition.
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func textWidth(s string) int {
	return len(s) * basicfont.Face7x13.Advance
}

func drawText(img *image.RGBA, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawHLine(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

// drawLine draws a Bresenham line segment.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
