package renderer

import (
	"math"
	"strconv"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Kitchen (фасад: навесные шкафы → столешница → нижние шкафы)
// ============================================================

const (
	kitchenCanvasW = 500.0
	kitchenCanvasH = 340.0

	baseCabinetMM = 850.0
	wallCabinetMM = 720.0
	counterMM     = 40.0
)

func kitchenFrame() canvas.Frame {
	return canvas.Frame{CanvasW: kitchenCanvasW, CanvasH: 270, MaxW: 420, MaxH: 200}
}

// kitchenBands: вертикальные полосы в пикселях холста.
type kitchenBands struct {
	WallTop, WallBottom       float64
	CounterTop, CounterBottom float64
	BaseTop, BaseBottom       float64
	HasWall                   bool
}

func planKitchen(l canvas.Layout, height float64) kitchenBands {
	base := l.MM(baseCabinetMM)
	counter := l.MM(counterMM)
	if height < baseCabinetMM+counterMM {
		base = l.ScaledH * baseCabinetMM / (baseCabinetMM + counterMM)
		counter = l.ScaledH - base
	}

	b := kitchenBands{BaseBottom: l.Bottom()}
	b.BaseTop = b.BaseBottom - base
	b.CounterBottom = b.BaseTop
	b.CounterTop = b.CounterBottom - counter

	b.WallTop = l.OffsetY
	b.WallBottom = math.Min(l.OffsetY+l.MM(wallCabinetMM), b.CounterTop)
	b.HasWall = b.WallBottom-b.WallTop >= 1
	return b
}

func Kitchen(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.Kitchen()

	l := canvas.ComputeScale(spec.Width, spec.Height, 0, kitchenFrame())
	if !l.Valid() {
		return invalidPanel(spec, "width and height must be positive", class)
	}
	bands := planKitchen(l, spec.Height)

	d := canvas.New(kitchenCanvasW, kitchenCanvasH, class)
	d.Title = "Kitchen"

	x, w := l.OffsetX, l.ScaledW

	// стена
	d.NewGroup("wall").Add(canvas.Rect{X: x, Y: l.OffsetY, W: w, H: l.ScaledH, Style: canvas.Style{Fill: "#fbfaf7", Stroke: "#cccccc", StrokeWidth: 1, Dash: "3,3"}})

	if bands.HasWall && opts.WallCabinets > 0 {
		wall := d.NewGroup("wall-cabinets")
		cw := w / float64(opts.WallCabinets)
		h := bands.WallBottom - bands.WallTop
		for i := 0; i < opts.WallCabinets; i++ {
			cx := x + float64(i)*cw
			g := &canvas.Group{ID: "wall-cabinet-" + strconv.Itoa(i)}
			g.Add(
				canvas.Rect{X: cx + 1, Y: bands.WallTop, W: cw - 2, H: h, Style: bodyStyle},
				canvas.Circle{CX: cx + cw/2, CY: bands.WallBottom - math.Min(8, h/4), R: 2, Style: handleStyle},
			)
			wall.Add(g)
		}
	}

	counter := d.NewGroup("counter")
	counter.Add(canvas.Rect{
		X: x - 2, Y: bands.CounterTop, W: w + 4, H: bands.CounterBottom - bands.CounterTop,
		Style: canvas.Style{Fill: "#6e6e6e", Stroke: "#444444", StrokeWidth: 1},
	})

	if opts.BaseCabinets > 0 {
		base := d.NewGroup("base-cabinets")
		cw := w / float64(opts.BaseCabinets)
		pullouts := min(opts.PulloutShelves, opts.BaseCabinets)
		for i := 0; i < opts.BaseCabinets; i++ {
			cx := x + float64(i)*cw
			if i < pullouts {
				base.Add(drawerUnit(i, cx, bands.BaseTop, cw, bands.BaseBottom-bands.BaseTop))
				continue
			}
			base.Add(doorUnit(i, cx, bands.BaseTop, cw, bands.BaseBottom-bands.BaseTop))
		}

		sinkAt := opts.BaseCabinets / 2
		if opts.Sink {
			sx := x + float64(sinkAt)*cw + cw/2
			sink := d.NewGroup("sink")
			sw := cw * 0.6
			sink.Add(
				canvas.Rect{X: sx - sw/2, Y: bands.CounterTop, W: sw, H: (bands.CounterBottom - bands.CounterTop) / 2, Style: canvas.Style{Fill: "#b8c4cc", Stroke: "#7f8c95", StrokeWidth: 0.5}},
				canvas.Line{X1: sx, Y1: bands.CounterTop, X2: sx, Y2: bands.CounterTop - 12, Style: canvas.Style{Stroke: "#7f8c95", StrokeWidth: 2}},
				canvas.Line{X1: sx, Y1: bands.CounterTop - 12, X2: sx + 8, Y2: bands.CounterTop - 12, Style: canvas.Style{Stroke: "#7f8c95", StrokeWidth: 2}},
			)
		}

		if opts.Hob {
			hobAt := 0
			if opts.Sink && sinkAt == 0 {
				hobAt = opts.BaseCabinets - 1
			}
			hx := x + float64(hobAt)*cw + cw*0.15
			hob := d.NewGroup("hob")
			hob.Add(canvas.Rect{X: hx, Y: bands.CounterTop - 3, W: cw * 0.7, H: 3, Style: canvas.Style{Fill: "#222222"}})
		}
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Height, depthLabel(spec.Depth))
	}

	addSpecs(d, []specEntry{
		{"Base Cabinets", itoa(opts.BaseCabinets)},
		{"Wall Cabinets", itoa(opts.WallCabinets)},
		{"Pullout Shelves", itoa(min(opts.PulloutShelves, opts.BaseCabinets))},
		{"Sink", yesNo(opts.Sink)},
		{"Hob", yesNo(opts.Hob)},
	})
	return d
}

// drawerUnit рисует тумбу с тремя выдвижными ящиками.
func drawerUnit(i int, x, y, w, h float64) *canvas.Group {
	g := &canvas.Group{ID: "drawer-unit-" + strconv.Itoa(i)}
	g.Add(canvas.Rect{X: x + 1, Y: y, W: w - 2, H: h, Style: bodyStyle})

	fh := h / 3
	for j := 0; j < 3; j++ {
		fy := y + float64(j)*fh
		g.Add(
			canvas.Rect{X: x + 3, Y: fy + 2, W: math.Max(0, w-6), H: math.Max(0, fh-4), Style: partStyle},
			canvas.Line{X1: x + w/2 - 8, Y1: fy + 6, X2: x + w/2 + 8, Y2: fy + 6, Style: canvas.Style{Stroke: "#555555", StrokeWidth: 2}},
		)
	}
	return g
}

// doorUnit рисует тумбу с распашными дверцами, широкой тумбе две.
func doorUnit(i int, x, y, w, h float64) *canvas.Group {
	g := &canvas.Group{ID: "door-unit-" + strconv.Itoa(i)}
	g.Add(canvas.Rect{X: x + 1, Y: y, W: w - 2, H: h, Style: bodyStyle})

	if w > 60 {
		g.Add(
			canvas.Line{X1: x + w/2, Y1: y + 2, X2: x + w/2, Y2: y + h - 2, Style: partStyle},
			canvas.Circle{CX: x + w/2 - 6, CY: y + 10, R: 2, Style: handleStyle},
			canvas.Circle{CX: x + w/2 + 6, CY: y + 10, R: 2, Style: handleStyle},
		)
		return g
	}
	g.Add(canvas.Circle{CX: x + w - 8, CY: y + 10, R: 2, Style: handleStyle})
	return g
}
