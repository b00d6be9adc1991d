package renderer

import (
	"math"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Cabinet / Dresser
// ============================================================

const (
	cabinetDrawerMM     = 50.0
	cabinetDepthFactor  = 0.4
	cabinetDoorHandlePx = 24.0
)

type cabinetPlan struct {
	DrawerH    float64 // мм снизу, зарезервированные под ящики
	Shelves    []float64
	Suppressed []float64
}

func planCabinet(height float64, o models.CabinetOptions) cabinetPlan {
	p := cabinetPlan{DrawerH: math.Min(float64(o.Drawers)*cabinetDrawerMM, height)}

	spacing := height / float64(o.Shelves+1)
	limit := height - p.DrawerH
	for i := 0; i < o.Shelves; i++ {
		y := spacing * float64(i+1)
		if p.DrawerH > 0 && y >= limit {
			p.Suppressed = append(p.Suppressed, y)
			continue
		}
		p.Shelves = append(p.Shelves, y)
	}
	return p
}

// Cabinet рисует и шкаф, и комод: разница только в параметрах.
func Cabinet(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.Cabinet()

	l := canvas.ComputeScale(spec.Width, spec.Height, spec.Depth, isoFrame(cabinetDepthFactor))
	if !l.Valid() {
		return invalidPanel(spec, "width, height and depth must be positive", class)
	}
	plan := planCabinet(spec.Height, opts)

	d := canvas.New(canvasW, canvasH, class)
	d.Title = "Cabinet"

	x, w := l.OffsetX, l.ScaledW
	yAt := func(mm float64) float64 { return l.OffsetY + l.MM(mm) }

	body := d.NewGroup("body")
	drawIsoBox(body, l)

	shelfLine := shelfStyle
	if opts.Doors > 0 {
		shelfLine = canvas.Style{Stroke: "#7a624f", StrokeWidth: 1, Dash: "4,3"}
	}
	shelves := d.NewGroup("shelves")
	for _, mm := range plan.Shelves {
		y := yAt(mm)
		shelves.Add(canvas.Line{X1: x + 3, Y1: y, X2: x + w - 3, Y2: y, Style: shelfLine})
	}

	doorBottom := yAt(spec.Height - plan.DrawerH)
	if opts.Doors > 0 && doorBottom-l.OffsetY > 1 {
		doors := d.NewGroup("doors")
		dw := w / float64(opts.Doors)
		hh := math.Min(cabinetDoorHandlePx, (doorBottom-l.OffsetY)*0.3)
		for i := 0; i < opts.Doors; i++ {
			dx := x + float64(i)*dw
			doors.Add(canvas.Rect{X: dx + 1, Y: l.OffsetY + 1, W: math.Max(0, dw-2), H: math.Max(0, doorBottom-l.OffsetY-2), Style: partStyle})

			hx := dx + dw - 6
			if i%2 == 1 {
				hx = dx + 3
			}
			doors.Add(canvas.Rect{X: hx, Y: (l.OffsetY+doorBottom)/2 - hh/2, W: 3, H: hh, Style: handleStyle})
		}
	}

	if opts.Drawers > 0 && plan.DrawerH > 0 {
		drawers := d.NewGroup("drawers")
		dh := plan.DrawerH / float64(opts.Drawers)
		for i := 0; i < opts.Drawers; i++ {
			top := yAt(spec.Height - plan.DrawerH + float64(i)*dh)
			h := l.MM(dh)
			drawers.Add(
				canvas.Rect{X: x + 2, Y: top + 0.5, W: w - 4, H: math.Max(0, h-1), Style: partStyle},
				canvas.Circle{CX: x + w/2, CY: top + h/2, R: math.Min(2, h/3), Style: handleStyle},
			)
		}
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Height, depthLabel(spec.Depth))
	}

	addSpecs(d, []specEntry{
		{"Shelves", itoa(len(plan.Shelves))},
		{"Drawers", itoa(opts.Drawers)},
		{"Doors", itoa(opts.Doors)},
	})
	return d
}
