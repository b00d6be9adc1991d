package renderer

import (
	"math"
	"strings"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Generic furniture (door, table, sofa, panel)
// ============================================================

const (
	genericDepthFactor = 0.5
	hatchPitchPx       = 20.0
)

// Generic рисует изометрический короб и поверх украшения по типу.
// Неизвестный тип даёт пунктирную заглушку с названием типа.
func Generic(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.Generic()

	l := canvas.ComputeScale(spec.Width, spec.Height, spec.Depth, isoFrame(genericDepthFactor))
	if !l.Valid() {
		return invalidPanel(spec, "width, height and depth must be positive", class)
	}

	d := canvas.New(canvasW, canvasH, class)
	category, _ := spec.Category()

	var entries []specEntry
	switch category {
	case models.CategoryTable:
		d.Title = "Table"
		drawTable(d, l, opts)
		entries = []specEntry{{"Legs", itoa(opts.Legs)}}
	case models.CategoryDoor:
		d.Title = "Door"
		drawBox(d, l)
		drawDoor(d, l, opts)
		entries = []specEntry{{"Panels", itoa(opts.Panels)}}
	case models.CategorySofa:
		d.Title = "Sofa"
		drawBox(d, l)
		drawSofa(d, l, opts)
		entries = []specEntry{{"Seats", itoa(opts.Seats)}}
	case models.CategoryPanel:
		d.Title = "Panel"
		drawBox(d, l)
		drawPanel(d, l)
		entries = []specEntry{{"Pattern", "Cross-hatch"}}
	default:
		d.Title = strings.ToUpper(spec.Type)
		drawPlaceholder(d, l, spec.Type)
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Height, depthLabel(spec.Depth))
	}

	addSpecs(d, append(entries,
		specEntry{"Width", models.FormatMM(spec.Width) + "mm"},
		specEntry{"Height", models.FormatMM(spec.Height) + "mm"},
		specEntry{"Depth", models.FormatMM(spec.Depth) + "mm"},
	))
	return d
}

func drawBox(d *canvas.Drawing, l canvas.Layout) {
	drawIsoBox(d.NewGroup("body"), l)
}

// drawTable: столешница на ножках вместо сплошного короба.
func drawTable(d *canvas.Drawing, l canvas.Layout, o models.GenericOptions) {
	body := d.NewGroup("body")
	top, side := canvas.IsoFaces(l)
	slab := math.Max(4, l.ScaledH*0.08)

	body.Add(
		canvas.Polygon{Points: top, Style: faceStyle},
		canvas.Polygon{Points: []canvas.Point{side[0], side[1], {X: side[1].X, Y: side[1].Y + slab}, {X: side[0].X, Y: side[0].Y + slab}}, Style: sideStyle},
		canvas.Rect{X: l.OffsetX, Y: l.OffsetY, W: l.ScaledW, H: slab, Style: bodyStyle},
	)

	if o.Legs == 0 {
		return
	}
	legs := d.NewGroup("legs")
	lw := math.Max(3, l.ScaledW*0.04)
	legTop := l.OffsetY + slab
	o2 := l.DepthOffset

	// задние ножки видны только при четырёх и более
	if o.Legs >= 4 {
		legs.Add(
			canvas.Rect{X: l.OffsetX + o2, Y: legTop - o2, W: lw, H: l.ScaledH - slab, Style: sideStyle},
			canvas.Rect{X: l.Right() + o2 - lw, Y: legTop - o2, W: lw, H: l.ScaledH - slab, Style: sideStyle},
		)
	}
	legs.Add(
		canvas.Rect{X: l.OffsetX, Y: legTop, W: lw, H: l.ScaledH - slab, Style: bodyStyle},
		canvas.Rect{X: l.Right() - lw, Y: legTop, W: lw, H: l.ScaledH - slab, Style: bodyStyle},
	)
}

func drawDoor(d *canvas.Drawing, l canvas.Layout, o models.GenericOptions) {
	g := d.NewGroup("door")
	x, w := l.OffsetX, l.ScaledW

	if o.Panels > 0 {
		inset := w * 0.15
		gap := 8.0
		ph := (l.ScaledH - 2*inset - float64(o.Panels-1)*gap) / float64(o.Panels)
		for i := 0; i < o.Panels; i++ {
			g.Add(canvas.Rect{X: x + inset, Y: l.OffsetY + inset + float64(i)*(ph+gap), W: w - 2*inset, H: math.Max(0, ph), Style: partStyle})
		}
	}
	g.Add(canvas.Circle{CX: x + w - math.Max(6, w*0.1), CY: l.OffsetY + l.ScaledH*0.5, R: 3, Style: handleStyle})
}

func drawSofa(d *canvas.Drawing, l canvas.Layout, o models.GenericOptions) {
	g := d.NewGroup("sofa")
	x, w, h := l.OffsetX, l.ScaledW, l.ScaledH

	arm := w * 0.1
	backH := h * 0.45
	seatY := l.OffsetY + backH
	cushion := canvas.Style{Fill: "#c7b299", Stroke: "#7a624f", StrokeWidth: 1}

	g.Add(
		canvas.Rect{X: x + arm, Y: l.OffsetY + 4, W: w - 2*arm, H: math.Max(0, backH-4), RX: 4, Style: cushion},
		canvas.Rect{X: x, Y: l.OffsetY + h*0.3, W: arm, H: h * 0.7, RX: 4, Style: bodyStyle},
		canvas.Rect{X: x + w - arm, Y: l.OffsetY + h*0.3, W: arm, H: h * 0.7, RX: 4, Style: bodyStyle},
	)

	seats := max(1, o.Seats)
	sw := (w - 2*arm) / float64(seats)
	for i := 0; i < seats; i++ {
		g.Add(canvas.Rect{X: x + arm + float64(i)*sw + 1, Y: seatY, W: math.Max(0, sw-2), H: h * 0.25, RX: 4, Style: cushion})
	}
}

// drawPanel штрихует переднюю грань крест-накрест под ±45°;
// hatchPitchPx: шаг вдоль горизонтали.
func drawPanel(d *canvas.Drawing, l canvas.Layout) {
	g := d.NewGroup("hatch")
	style := canvas.Style{Stroke: "#b59f86", StrokeWidth: 0.5}
	x0, y0, x1, y1 := l.OffsetX, l.OffsetY, l.Right(), l.Bottom()

	// "/": x + y = s
	for s := x0 + y0 + hatchPitchPx; s < x1+y1; s += hatchPitchPx {
		from, to := math.Max(x0, s-y1), math.Min(x1, s-y0)
		if to-from < 1e-9 {
			continue
		}
		g.Add(canvas.Line{X1: from, Y1: s - from, X2: to, Y2: s - to, Style: style})
	}
	// "\": y - x = k
	for k := y0 - x1 + hatchPitchPx; k < y1-x0; k += hatchPitchPx {
		from, to := math.Max(x0, y0-k), math.Min(x1, y1-k)
		if to-from < 1e-9 {
			continue
		}
		g.Add(canvas.Line{X1: from, Y1: from + k, X2: to, Y2: to + k, Style: style})
	}
}

func drawPlaceholder(d *canvas.Drawing, l canvas.Layout, typ string) {
	g := d.NewGroup("placeholder")
	g.Add(
		canvas.Rect{X: l.OffsetX, Y: l.OffsetY, W: l.ScaledW, H: l.ScaledH, Style: dashed},
		canvas.Text{X: l.OffsetX + l.ScaledW/2, Y: l.OffsetY + l.ScaledH/2 + 4, Content: strings.ToUpper(typ), Style: canvas.Style{Fill: "#999999", FontSize: 12, FontWeight: "bold", Anchor: "middle"}},
	)
}
