package renderer

import (
	"math"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// TV Unit
// ============================================================

const (
	tvZoneRatio     = 0.4
	glassPitchPx    = 30.0
	glassThickPx    = 3.0
	shelfPitchPx    = 25.0
	drawerReservePx = 60.0
)

// tvPlan: вертикальная раскладка в пикселях холста.
type tvPlan struct {
	ZoneBottom float64
	Glass      []float64
	Shelves    []float64
	Suppressed []float64
	DrawerTop  float64
}

func planTVUnit(l canvas.Layout, o models.TVUnitOptions) tvPlan {
	bottom := l.Bottom()
	zone := l.OffsetY + l.ScaledH*tvZoneRatio
	// нижние 60px зарезервированы под ящики, даже если их нет
	p := tvPlan{ZoneBottom: zone, DrawerTop: math.Max(zone, bottom-drawerReservePx)}

	for i := 0; i < o.GlassShelf; i++ {
		y := p.ZoneBottom + float64(i+1)*glassPitchPx
		if y >= bottom {
			break
		}
		p.Glass = append(p.Glass, y)
	}

	start := p.ZoneBottom + float64(o.GlassShelf)*glassPitchPx
	for i := 0; i < o.Shelves; i++ {
		y := start + float64(i+1)*shelfPitchPx
		if y > p.DrawerTop || y >= bottom {
			p.Suppressed = append(p.Suppressed, y)
			continue
		}
		p.Shelves = append(p.Shelves, y)
	}
	return p
}

func TVUnit(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.TVUnit()

	l := canvas.ComputeScale(spec.Width, spec.Height, 0, flatFrame())
	if !l.Valid() {
		return invalidPanel(spec, "width and height must be positive", class)
	}
	plan := planTVUnit(l, opts)

	d := canvas.New(canvasW, canvasH, class)
	d.Title = "TV Unit"

	x, w := l.OffsetX, l.ScaledW

	body := d.NewGroup("body")
	body.Add(frontRect(l))

	tv := d.NewGroup("tv")
	zoneH := plan.ZoneBottom - l.OffsetY
	tw, th := w*0.7, zoneH*0.8
	tv.Add(
		canvas.Rect{X: x + (w-tw)/2, Y: l.OffsetY + (zoneH-th)/2, W: tw, H: th, Style: canvas.Style{Fill: "#20232a", Stroke: "#999999", StrokeWidth: 1, Dash: "4,2", Opacity: 0.85}},
		canvas.Text{X: x + w/2, Y: l.OffsetY + zoneH/2 + 4, Content: opts.TVSize + " TV", Style: canvas.Style{Fill: "#ffffff", FontSize: 10, Anchor: "middle"}},
		canvas.Line{X1: x, Y1: plan.ZoneBottom, X2: x + w, Y2: plan.ZoneBottom, Style: canvas.Style{Stroke: "#5b4636", StrokeWidth: 1.5}},
	)
	if opts.WallMounted {
		tv.Add(canvas.Line{X1: x + w/2 - 15, Y1: l.OffsetY + zoneH*0.1, X2: x + w/2 + 15, Y2: l.OffsetY + zoneH*0.1, Style: canvas.Style{Stroke: "#555555", StrokeWidth: 3}})
	}
	if opts.LEDLighting {
		d.NewGroup("led").Add(canvas.Line{X1: x + 4, Y1: plan.ZoneBottom + 2, X2: x + w - 4, Y2: plan.ZoneBottom + 2, Style: canvas.Style{Stroke: "#ffd43b", StrokeWidth: 2, Opacity: 0.8}})
	}

	glass := d.NewGroup("glass-shelves")
	for _, y := range plan.Glass {
		glass.Add(canvas.Rect{X: x + 4, Y: y, W: w - 8, H: glassThickPx, Style: canvas.Style{Fill: "#a5d8ff", Stroke: "#74c0fc", StrokeWidth: 0.5, Opacity: 0.5}})
	}

	shelves := d.NewGroup("shelves")
	for _, y := range plan.Shelves {
		shelves.Add(canvas.Rect{X: x + 2, Y: y - 1, W: w - 4, H: 2, Style: shelfStyle})
	}

	if opts.Drawers > 0 {
		drawers := d.NewGroup("drawers")
		rows := (opts.Drawers + 1) / 2
		area := l.Bottom() - plan.DrawerTop
		rowH := area / float64(rows)
		colW := w / 2
		for i := 0; i < opts.Drawers; i++ {
			dx := x + float64(i%2)*colW
			dy := plan.DrawerTop + float64(i/2)*rowH
			drawers.Add(
				canvas.Rect{X: dx + 2, Y: dy + 2, W: math.Max(0, colW-4), H: math.Max(0, rowH-4), Style: partStyle},
				canvas.Line{X1: dx + colW/2 - 10, Y1: dy + rowH/2, X2: dx + colW/2 + 10, Y2: dy + rowH/2, Style: canvas.Style{Stroke: "#555555", StrokeWidth: 2}},
			)
		}
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Height, depthLabel(spec.Depth))
	}

	addSpecs(d, []specEntry{
		{"TV Size", opts.TVSize},
		{"Shelves", itoa(len(plan.Shelves))},
		{"Glass Shelves", itoa(len(plan.Glass))},
		{"Drawers", itoa(opts.Drawers)},
		{"LED", yesNo(opts.LEDLighting)},
		{"Wall Mounted", yesNo(opts.WallMounted)},
	})
	return d
}
