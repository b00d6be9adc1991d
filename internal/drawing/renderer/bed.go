package renderer

import (
	"math"
	"strings"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================
// Bed (вид сверху: ширина × длина)
// ============================================================

func Bed(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.Bed()

	l := canvas.ComputeScale(spec.Width, spec.Depth, 0, flatFrame())
	if !l.Valid() {
		return invalidPanel(spec, "width and depth must be positive", class)
	}

	d := canvas.New(canvasW, canvasH, class)
	d.Title = "Bed"

	body := d.NewGroup("body")
	body.Add(frontRect(l))

	mattressTop := l.OffsetY + 6
	if opts.Headboard {
		hb := math.Max(8, l.ScaledH*0.06)
		body.Add(canvas.Rect{X: l.OffsetX, Y: l.OffsetY, W: l.ScaledW, H: hb, Style: canvas.Style{Fill: "#8b6f56", Stroke: "#5b4636", StrokeWidth: 1}})
		mattressTop = l.OffsetY + hb + 4
	}

	mx := l.OffsetX + 6
	mw := l.ScaledW - 12
	mh := l.Bottom() - 6 - mattressTop
	body.Add(canvas.Rect{X: mx, Y: mattressTop, W: math.Max(0, mw), H: math.Max(0, mh), RX: 6, Style: canvas.Style{Fill: "#ffffff", Stroke: "#9c8a78", StrokeWidth: 1}})

	pillows := d.NewGroup("pillows")
	n := pillowCount(opts.BedType)
	pw := math.Max(0, (mw-10*float64(n+1))/float64(n))
	ph := l.ScaledH * 0.12
	for i := 0; i < n; i++ {
		pillows.Add(canvas.Rect{
			X: mx + 10 + float64(i)*(pw+10), Y: mattressTop + 8, W: pw, H: ph, RX: 4,
			Style: canvas.Style{Fill: "#f0ece6", Stroke: "#9c8a78", StrokeWidth: 1},
		})
	}

	// отворот одеяла
	fold := mattressTop + mh*0.4
	body.Add(canvas.Line{X1: mx, Y1: fold, X2: mx + mw, Y2: fold, Style: partStyle})

	if opts.Drawers > 0 {
		drawers := d.NewGroup("drawers")
		dw := l.ScaledW / float64(opts.Drawers)
		dh := l.ScaledH * 0.12
		y := l.Bottom() - dh
		for i := 0; i < opts.Drawers; i++ {
			x := l.OffsetX + float64(i)*dw
			drawers.Add(
				canvas.Rect{X: x + 2, Y: y, W: math.Max(0, dw-4), H: math.Max(0, dh-2), Style: canvas.Style{Fill: "none", Stroke: "#7a624f", StrokeWidth: 1, Dash: "4,2"}},
				canvas.Line{X1: x + dw/2 - 8, Y1: y + dh/2, X2: x + dw/2 + 8, Y2: y + dh/2, Style: canvas.Style{Stroke: "#555555", StrokeWidth: 2}},
			)
		}
	}

	if opts.Hydraulic {
		h := d.NewGroup("hydraulic")
		style := canvas.Style{Stroke: "#d62728", StrokeWidth: 1, Dash: "5,3"}
		h.Add(
			canvas.Line{X1: mx, Y1: mattressTop, X2: mx + mw, Y2: mattressTop + mh, Style: style},
			canvas.Line{X1: mx + mw, Y1: mattressTop, X2: mx, Y2: mattressTop + mh, Style: style},
			canvas.Text{X: mx + mw/2, Y: mattressTop + mh*0.7, Content: "Hydraulic lift", Style: canvas.Style{Fill: "#d62728", FontSize: 9, Anchor: "middle"}},
		)
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Depth, "H: "+models.FormatMM(spec.Height)+"mm")
	}

	addSpecs(d, []specEntry{
		{"Type", cases.Title(language.English).String(opts.BedType)},
		{"Drawers", itoa(opts.Drawers)},
		{"Hydraulic", yesNo(opts.Hydraulic)},
		{"Headboard", yesNo(opts.Headboard)},
	})
	return d
}

func pillowCount(bedType string) int {
	if strings.EqualFold(strings.TrimSpace(bedType), "single") {
		return 1
	}
	return 2
}
