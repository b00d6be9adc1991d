package renderer

import (
	"strconv"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Canvas & styles
// ============================================================

const (
	canvasW   = 400.0
	canvasH   = 300.0
	drawAreaH = 230.0 // верхняя часть холста под чертёж, ниже блок характеристик
	specInset = 48.0  // отступ блока характеристик от нижнего края
	specRow   = 14.0
	specCol   = 130.0
)

var (
	bodyStyle   = canvas.Style{Fill: "#f5efe6", Stroke: "#5b4636", StrokeWidth: 2}
	faceStyle   = canvas.Style{Fill: "#e8dccb", Stroke: "#5b4636", StrokeWidth: 1}
	sideStyle   = canvas.Style{Fill: "#d8c7b0", Stroke: "#5b4636", StrokeWidth: 1}
	partStyle   = canvas.Style{Fill: "none", Stroke: "#7a624f", StrokeWidth: 1}
	shelfStyle  = canvas.Style{Fill: "#c9b59c", Stroke: "#7a624f", StrokeWidth: 1}
	handleStyle = canvas.Style{Fill: "#8a8a8a", Stroke: "#555555", StrokeWidth: 0.5}
	dimStyle    = canvas.Style{Stroke: "#1f5fa8", StrokeWidth: 0.75}
	dimText     = canvas.Style{Fill: "#1f5fa8", FontSize: 10, Anchor: "middle"}
	specText    = canvas.Style{Fill: "#333333", FontSize: 10}
	labelText   = canvas.Style{Fill: "#5b4636", FontSize: 10, Anchor: "middle"}
	dashed      = canvas.Style{Fill: "none", Stroke: "#999999", StrokeWidth: 1.5, Dash: "6,4"}
)

func flatFrame() canvas.Frame {
	return canvas.Frame{CanvasW: canvasW, CanvasH: drawAreaH, MaxW: 300, MaxH: 170}
}

func isoFrame(depthFactor float64) canvas.Frame {
	return canvas.Frame{CanvasW: canvasW, CanvasH: drawAreaH, MaxW: 290, MaxH: 180, DepthFactor: depthFactor}
}

// ============================================================
// Shared pieces
// ============================================================

// drawIsoBox рисует заднюю/верхнюю и боковую грани, затем переднюю.
func drawIsoBox(g *canvas.Group, l canvas.Layout) {
	top, side := canvas.IsoFaces(l)
	g.Add(
		canvas.Polygon{Points: top, Style: faceStyle},
		canvas.Polygon{Points: side, Style: sideStyle},
		canvas.Rect{X: l.OffsetX, Y: l.OffsetY, W: l.ScaledW, H: l.ScaledH, Style: bodyStyle},
	)
}

func frontRect(l canvas.Layout) canvas.Rect {
	return canvas.Rect{X: l.OffsetX, Y: l.OffsetY, W: l.ScaledW, H: l.ScaledH, Style: bodyStyle}
}

// addDimensions рисует размерные линии передней грани; третий размер —
// вдоль боковой грани для изометрии или подписью под шириной.
func addDimensions(d *canvas.Drawing, l canvas.Layout, width, height float64, third string) {
	g := d.NewGroup("dimensions")

	x, y := l.OffsetX, l.OffsetY
	r, b := l.Right(), l.Bottom()

	wy := b + 12
	g.Add(
		canvas.Line{X1: x, Y1: wy, X2: r, Y2: wy, Style: dimStyle},
		canvas.Line{X1: x, Y1: wy - 4, X2: x, Y2: wy + 4, Style: dimStyle},
		canvas.Line{X1: r, Y1: wy - 4, X2: r, Y2: wy + 4, Style: dimStyle},
		canvas.Text{X: (x + r) / 2, Y: wy + 12, Content: models.FormatMM(width) + "mm", Style: dimText},
	)

	hx := x - 12
	g.Add(
		canvas.Line{X1: hx, Y1: y, X2: hx, Y2: b, Style: dimStyle},
		canvas.Line{X1: hx - 4, Y1: y, X2: hx + 4, Y2: y, Style: dimStyle},
		canvas.Line{X1: hx - 4, Y1: b, X2: hx + 4, Y2: b, Style: dimStyle},
		canvas.Text{X: hx - 6, Y: (y + b) / 2, Content: models.FormatMM(height) + "mm", Rotate: -90, Style: dimText},
	)

	label := third
	if l.DepthOffset > 0 {
		o := l.DepthOffset
		g.Add(
			canvas.Line{X1: r + 6, Y1: b, X2: r + o + 6, Y2: b - o, Style: dimStyle},
			canvas.Text{X: r + o/2 + 12, Y: b - o/2 + 4, Content: label, Style: canvas.Style{Fill: dimText.Fill, FontSize: 10, Anchor: "start"}},
		)
		return
	}
	g.Add(canvas.Text{X: (x + r) / 2, Y: wy + 24, Content: label, Style: dimText})
}

func depthLabel(depth float64) string {
	return "D: " + models.FormatMM(depth) + "mm"
}

type specEntry struct {
	label string
	value string
}

// addSpecs выводит блок характеристик сеткой по три в ряд.
func addSpecs(d *canvas.Drawing, entries []specEntry) {
	g := d.NewGroup("specs")
	top := d.Height - specInset
	for i, e := range entries {
		g.Add(canvas.Text{
			X:       10 + float64(i%3)*specCol,
			Y:       top + float64(i/3)*specRow,
			Content: e.label + ": " + e.value,
			Style:   specText,
		})
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// ============================================================
// Placeholders
// ============================================================

func unsupportedPanel(typ, class string) *canvas.Drawing {
	d := canvas.New(canvasW, canvasH, class)
	d.Title = "Unsupported furniture type"

	g := d.NewGroup("unsupported")
	g.Add(
		canvas.Rect{X: 20, Y: 20, W: canvasW - 40, H: canvasH - 40, RX: 8, Style: canvas.Style{Fill: "#fafafa", Stroke: "#cccccc", StrokeWidth: 1}},
		canvas.Text{X: canvasW / 2, Y: canvasH/2 - 8, Content: "Unsupported furniture type", Style: canvas.Style{Fill: "#666666", FontSize: 14, Anchor: "middle"}},
		canvas.Text{X: canvasW / 2, Y: canvasH/2 + 14, Content: typ, Style: canvas.Style{Fill: "#999999", FontSize: 12, Anchor: "middle"}},
	)
	return d
}

func invalidPanel(spec models.FurnitureSpec, reason, class string) *canvas.Drawing {
	d := canvas.New(canvasW, canvasH, class)
	d.Title = "Invalid dimensions"

	g := d.NewGroup("invalid")
	g.Add(
		canvas.Rect{X: 20, Y: 20, W: canvasW - 40, H: canvasH - 40, RX: 8, Style: canvas.Style{Fill: "#fff5f5", Stroke: "#d62728", StrokeWidth: 1, Dash: "4,3"}},
		canvas.Text{X: canvasW / 2, Y: canvasH/2 - 8, Content: "Invalid dimensions", Style: canvas.Style{Fill: "#d62728", FontSize: 14, Anchor: "middle"}},
		canvas.Text{X: canvasW / 2, Y: canvasH/2 + 14, Content: spec.DimensionLabel(), Style: canvas.Style{Fill: "#999999", FontSize: 11, Anchor: "middle"}},
		canvas.Text{X: canvasW / 2, Y: canvasH/2 + 32, Content: reason, Style: canvas.Style{Fill: "#999999", FontSize: 10, Anchor: "middle"}},
	)
	return d
}
