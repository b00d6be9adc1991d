package canvas

import "math"

// ============================================================
// Scaling & centering
// ============================================================

// Frame описывает холст и область, в которую вписывается изделие.
type Frame struct {
	CanvasW float64 // ширина области центрирования
	CanvasH float64 // высота области центрирования
	MaxW    float64
	MaxH    float64
	// DepthFactor > 0 резервирует место под псевдоизометрическую глубину:
	// глубина d рисуется как сдвиг d*DepthFactor вправо-вверх.
	DepthFactor float64
}

// Layout — результат вписывания: масштаб и положение передней грани.
type Layout struct {
	Scale       float64
	ScaledW     float64
	ScaledH     float64
	DepthOffset float64
	OffsetX     float64
	OffsetY     float64
}

func (l Layout) Valid() bool {
	return l.Scale > 0
}

// Right и Bottom: координаты правого нижнего угла передней грани.
func (l Layout) Right() float64  { return l.OffsetX + l.ScaledW }
func (l Layout) Bottom() float64 { return l.OffsetY + l.ScaledH }

// MM переводит миллиметры в пиксели холста.
func (l Layout) MM(v float64) float64 { return v * l.Scale }

// ComputeScale вписывает прямоугольник w×h (мм) с глубиной d в рамку с
// сохранением пропорций и центрирует его. Непозитивные или нечисловые
// размеры дают нулевой Layout.
func ComputeScale(w, h, d float64, f Frame) Layout {
	if !positive(w) || !positive(h) || !positive(f.MaxW) || !positive(f.MaxH) {
		return Layout{}
	}

	depth := 0.0
	if f.DepthFactor > 0 {
		if !positive(d) {
			return Layout{}
		}
		depth = d * f.DepthFactor
	}

	scale := math.Min(f.MaxW/(w+depth), f.MaxH/(h+depth))
	scaledW := w * scale
	scaledH := h * scale
	depthOffset := depth * scale

	return Layout{
		Scale:       scale,
		ScaledW:     scaledW,
		ScaledH:     scaledH,
		DepthOffset: depthOffset,
		OffsetX:     (f.CanvasW - scaledW - depthOffset) / 2,
		OffsetY:     (f.CanvasH-scaledH-depthOffset)/2 + depthOffset,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// IsoFaces возвращает верхнюю и боковую грани для передней грани layout.
func IsoFaces(l Layout) (top, side []Point) {
	x, y := l.OffsetX, l.OffsetY
	r, b := l.Right(), l.Bottom()
	o := l.DepthOffset

	top = []Point{{x, y}, {x + o, y - o}, {r + o, y - o}, {r, y}}
	side = []Point{{r, y}, {r + o, y - o}, {r + o, b - o}, {r, b}}
	return top, side
}
