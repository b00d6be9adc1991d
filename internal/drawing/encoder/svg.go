package encoder

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"furniture-studio/internal/drawing/canvas"

	svg "github.com/ajstarks/svgo"
)

// ============================================================
// SVG encoder
// ============================================================

// EncodeSVG сериализует чертёж в SVG-документ. Координаты округляются
// до целых пикселей: svgo работает с int.
func EncodeSVG(w io.Writer, d *canvas.Drawing) error {
	if d == nil {
		return fmt.Errorf("drawing is nil")
	}

	ew := &errWriter{w: w}
	s := svg.New(ew)

	attrs := []string{
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(d.Width), num(d.Height)),
	}
	if d.Class != "" {
		attrs = append(attrs, attr("class", d.Class))
	}
	s.Start(px(d.Width), px(d.Height), attrs...)
	if d.Title != "" {
		s.Title(d.Title)
	}

	for _, e := range d.Root.Elements {
		writeElement(s, e)
	}
	s.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// SVGString: обёртка для обработчиков и CLI.
func SVGString(d *canvas.Drawing) (string, error) {
	var buf bytes.Buffer
	if err := EncodeSVG(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeElement(s *svg.SVG, e canvas.Element) {
	switch v := e.(type) {
	case *canvas.Group:
		if v.ID != "" {
			s.Gid(v.ID)
		} else {
			s.Group()
		}
		for _, child := range v.Elements {
			writeElement(s, child)
		}
		s.Gend()

	case canvas.Rect:
		if v.RX > 0 {
			r := px(v.RX)
			s.Roundrect(px(v.X), px(v.Y), px(v.W), px(v.H), r, r, style(v.Style, false))
			return
		}
		s.Rect(px(v.X), px(v.Y), px(v.W), px(v.H), style(v.Style, false))

	case canvas.Line:
		s.Line(px(v.X1), px(v.Y1), px(v.X2), px(v.Y2), style(v.Style, true))

	case canvas.Polygon:
		xs := make([]int, len(v.Points))
		ys := make([]int, len(v.Points))
		for i, p := range v.Points {
			xs[i], ys[i] = px(p.X), px(p.Y)
		}
		s.Polygon(xs, ys, style(v.Style, false))

	case canvas.Circle:
		s.Circle(px(v.CX), px(v.CY), px(v.R), style(v.Style, false))

	case canvas.Text:
		args := []string{style(v.Style, false)}
		if v.Rotate != 0 {
			args = append(args, fmt.Sprintf(`transform="rotate(%s %d %d)"`, num(v.Rotate), px(v.X), px(v.Y)))
		}
		s.Text(px(v.X), px(v.Y), v.Content, args...)
	}
}

// style собирает значение атрибута style; svgo сам оборачивает строку
// без "=" в style="...".
func style(st canvas.Style, line bool) string {
	var parts []string
	add := func(k, v string) { parts = append(parts, k+":"+v) }

	switch {
	case st.Fill != "":
		add("fill", st.Fill)
	case line:
		add("fill", "none")
	}
	if st.Stroke != "" {
		add("stroke", st.Stroke)
	}
	if st.StrokeWidth > 0 {
		add("stroke-width", num(st.StrokeWidth))
	}
	if st.Dash != "" {
		add("stroke-dasharray", st.Dash)
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		add("opacity", num(st.Opacity))
	}
	if st.FontSize > 0 {
		add("font-size", num(st.FontSize)+"px")
		add("font-family", "sans-serif")
	}
	if st.FontWeight != "" {
		add("font-weight", st.FontWeight)
	}
	if st.Anchor != "" {
		add("text-anchor", st.Anchor)
	}
	// строку с "=" svgo считает готовым атрибутом
	return strings.ReplaceAll(strings.Join(parts, ";"), "=", "")
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter запоминает первую ошибку записи: svgo её не возвращает.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
