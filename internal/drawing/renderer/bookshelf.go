package renderer

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Bookshelf / Shelving
// ============================================================

const (
	dividerMinWidthPx = 200.0
	maxBooksPerBay    = 48
)

func Bookshelf(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	opts := spec.Options.Bookshelf()

	l := canvas.ComputeScale(spec.Width, spec.Height, 0, flatFrame())
	if !l.Valid() {
		return invalidPanel(spec, "width and height must be positive", class)
	}

	d := canvas.New(canvasW, canvasH, class)
	d.Title = "Bookshelf"

	x, w := l.OffsetX, l.ScaledW
	bands := opts.Shelves + 1
	bandH := l.ScaledH / float64(bands)
	hasDivider := w > dividerMinWidthPx

	body := d.NewGroup("body")
	body.Add(frontRect(l))
	if opts.BackPanel {
		body.Add(canvas.Rect{X: x + 4, Y: l.OffsetY + 4, W: w - 8, H: l.ScaledH - 8, Style: canvas.Style{Fill: "#e3d5c1"}})
	}

	shelves := d.NewGroup("shelves")
	for i := 1; i <= opts.Shelves; i++ {
		y := l.OffsetY + float64(i)*bandH
		shelves.Add(canvas.Rect{X: x, Y: y - 1.5, W: w, H: 3, Style: shelfStyle})
	}

	if hasDivider {
		d.NewGroup("divider").Add(canvas.Rect{X: x + w/2 - 1.5, Y: l.OffsetY, W: 3, H: l.ScaledH, Style: shelfStyle})
	}

	if opts.Books {
		books := d.NewGroup("books")
		rng := rand.New(rand.NewPCG(specSeed(spec), 0x5eed))

		bays := []struct{ from, to float64 }{{x + 3, x + w - 3}}
		if hasDivider {
			bays = []struct{ from, to float64 }{{x + 3, x + w/2 - 3}, {x + w/2 + 3, x + w - 3}}
		}

		for b := 0; b < bands; b++ {
			floor := l.OffsetY + float64(b+1)*bandH - 1.5
			for _, bay := range bays {
				bx := bay.from
				for n := 0; n < maxBooksPerBay; n++ {
					bw := 6 + rng.Float64()*10
					if bx+bw > bay.to {
						break
					}
					bh := bandH * (0.55 + rng.Float64()*0.35)
					hue := rng.IntN(360)
					books.Add(canvas.Rect{
						X: bx, Y: floor - bh, W: bw, H: bh,
						Style: canvas.Style{Fill: fmt.Sprintf("hsl(%d, 45%%, 55%%)", hue), Stroke: "#4a3b2f", StrokeWidth: 0.5},
					})
					bx += bw + 1
				}
			}
		}
	}

	if showDimensions {
		addDimensions(d, l, spec.Width, spec.Height, depthLabel(spec.Depth))
	}

	addSpecs(d, []specEntry{
		{"Shelves", itoa(opts.Shelves)},
		{"Books", yesNo(opts.Books)},
		{"Back Panel", yesNo(opts.BackPanel)},
		{"Divider", yesNo(hasDivider)},
	})
	return d
}

// specSeed хэширует размеры и параметры, но не тип: bookshelf и shelving
// с одинаковыми параметрами получают одинаковые книги.
func specSeed(spec models.FurnitureSpec) uint64 {
	h := fnv.New64a()
	// fmt печатает map с отсортированными ключами
	fmt.Fprintf(h, "%g|%g|%g|%v", spec.Width, spec.Height, spec.Depth, map[string]any(spec.Options))
	return h.Sum64()
}
