package renderer

import (
	"math"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Wardrobe
// ============================================================

const (
	wardrobeDrawerMM     = 200.0
	wardrobeRodBandMM    = 1100.0
	wardrobeShelfPitchMM = 350.0
	wardrobeRodDropMM    = 80.0
	wardrobeDepthFactor  = 0.5
)

// wardrobePlan: разбиение высоты шкафа в миллиметрах от верхней кромки.
type wardrobePlan struct {
	LoftH     float64
	DrawerH   float64
	Available float64 // зона полок между антресолью и ящиками

	RodTop    float64
	RodBottom float64
	HasRods   bool

	ActualShelves int
	Spacing       float64
	Shelves       []float64 // отрисовываемые полки
	Suppressed    []float64 // полки внутри зоны штанги
}

func planWardrobe(height float64, o models.WardrobeOptions) wardrobePlan {
	var p wardrobePlan

	p.DrawerH = math.Min(float64(o.Drawers)*wardrobeDrawerMM, height)
	if o.Loft {
		p.LoftH = math.Min(o.LoftHeight, height-p.DrawerH)
	}
	p.Available = math.Max(0, height-p.DrawerH-p.LoftH)

	if o.HangingRods > 0 && p.Available > 0 {
		p.HasRods = true
		p.RodTop = p.LoftH
		p.RodBottom = p.LoftH + math.Min(wardrobeRodBandMM, p.Available)
	}

	if o.Shelves == 0 || p.Available == 0 {
		return p
	}

	capacity := int(math.Floor(p.Available / wardrobeShelfPitchMM))
	p.ActualShelves = max(1, min(o.Shelves, capacity))
	p.Spacing = p.Available / float64(p.ActualShelves)

	for i := 0; i < p.ActualShelves; i++ {
		y := p.LoftH + p.Spacing*float64(i+1)
		if p.HasRods && y > p.RodTop && y < p.RodBottom {
			p.Suppressed = append(p.Suppressed, y)
			continue
		}
		p.Shelves = append(p.Shelves, y)
	}
	return p
}

func Wardrobe(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.Wardrobe()

	l := canvas.ComputeScale(spec.Width, spec.Height, spec.Depth, isoFrame(wardrobeDepthFactor))
	if !l.Valid() {
		return invalidPanel(spec, "width, height and depth must be positive", class)
	}
	plan := planWardrobe(spec.Height, opts)

	d := canvas.New(canvasW, canvasH, class)
	d.Title = "Wardrobe"

	x, w := l.OffsetX, l.ScaledW
	yAt := func(mm float64) float64 { return l.OffsetY + l.MM(mm) }

	body := d.NewGroup("body")
	drawIsoBox(body, l)

	shutters := max(1, opts.Shutters)

	if plan.LoftH > 0 {
		loft := d.NewGroup("loft")
		ly := yAt(plan.LoftH)
		loft.Add(canvas.Line{X1: x, Y1: ly, X2: x + w, Y2: ly, Style: canvas.Style{Stroke: "#5b4636", StrokeWidth: 2}})
		sw := w / float64(shutters)
		for i := 1; i < shutters; i++ {
			loft.Add(canvas.Line{X1: x + float64(i)*sw, Y1: l.OffsetY, X2: x + float64(i)*sw, Y2: ly, Style: partStyle})
		}
		loft.Add(canvas.Text{X: x + w/2, Y: (l.OffsetY + ly) / 2, Content: "Loft", Style: labelText})
	}

	doorTop := yAt(plan.LoftH)
	doorBottom := yAt(spec.Height - plan.DrawerH)

	if plan.HasRods {
		rods := d.NewGroup("rods")
		ry := yAt(plan.RodTop + wardrobeRodDropMM)
		sw := w / float64(opts.HangingRods)
		for i := 0; i < opts.HangingRods; i++ {
			x1 := x + float64(i)*sw + 8
			x2 := x + float64(i+1)*sw - 8
			rods.Add(
				canvas.Line{X1: x1, Y1: ry, X2: x2, Y2: ry, Style: canvas.Style{Stroke: "#777777", StrokeWidth: 2}},
				canvas.Circle{CX: x1, CY: ry, R: 2, Style: handleStyle},
				canvas.Circle{CX: x2, CY: ry, R: 2, Style: handleStyle},
			)
		}
	}

	shelves := d.NewGroup("shelves")
	for _, mm := range plan.Shelves {
		sy := yAt(mm)
		shelves.Add(canvas.Rect{X: x + 3, Y: sy - 1, W: w - 6, H: 2, Style: shelfStyle})
	}

	doors := d.NewGroup("shutters")
	sw := w / float64(shutters)
	for i := 0; i < shutters; i++ {
		sx := x + float64(i)*sw
		doors.Add(canvas.Rect{X: sx, Y: doorTop, W: sw, H: doorBottom - doorTop, Style: partStyle})

		hx := sx + sw - 7
		if i >= shutters/2 && shutters > 1 {
			hx = sx + 4
		}
		hh := math.Min(30, (doorBottom-doorTop)*0.2)
		doors.Add(canvas.Rect{X: hx, Y: (doorTop+doorBottom)/2 - hh/2, W: 3, H: hh, Style: handleStyle})
	}

	if opts.Mirror {
		m := d.NewGroup("mirror")
		m.Add(canvas.Rect{
			X: x + 8, Y: doorTop + 10, W: math.Max(0, sw-20), H: math.Max(0, doorBottom-doorTop-20), RX: 2,
			Style: canvas.Style{Fill: "#cfe8f7", Stroke: "#8ab4d1", StrokeWidth: 1, Opacity: 0.6},
		})
	}

	if opts.Drawers > 0 && plan.DrawerH > 0 {
		drawers := d.NewGroup("drawers")
		dh := plan.DrawerH / float64(opts.Drawers)
		for i := 0; i < opts.Drawers; i++ {
			top := yAt(spec.Height - plan.DrawerH + float64(i)*dh)
			h := l.MM(dh)
			drawers.Add(
				canvas.Rect{X: x + 2, Y: top + 1, W: w - 4, H: math.Max(0, h-2), Style: partStyle},
				canvas.Line{X1: x + w/2 - 12, Y1: top + h/2, X2: x + w/2 + 12, Y2: top + h/2, Style: canvas.Style{Stroke: "#555555", StrokeWidth: 2}},
			)
		}
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Height, depthLabel(spec.Depth))
	}

	addSpecs(d, []specEntry{
		{"Shelves", itoa(plan.ActualShelves)},
		{"Shutters", itoa(shutters)},
		{"Drawers", itoa(opts.Drawers)},
		{"Loft", yesNo(opts.Loft)},
		{"Hanging Rods", itoa(opts.HangingRods)},
		{"Mirror", yesNo(opts.Mirror)},
	})
	return d
}
