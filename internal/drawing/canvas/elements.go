package canvas

// ============================================================
// Drawing primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64 // 0 = непрозрачный
	Dash        string
	FontSize    float64
	FontWeight  string
	Anchor      string // start, middle, end
}

type Kind string

const (
	KindRect    Kind = "rect"
	KindLine    Kind = "line"
	KindPolygon Kind = "polygon"
	KindCircle  Kind = "circle"
	KindText    Kind = "text"
	KindGroup   Kind = "group"
)

type Element interface {
	Kind() Kind
}

type Rect struct {
	X, Y, W, H float64
	RX         float64
	Style      Style
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Style          Style
}

type Polygon struct {
	Points []Point
	Style  Style
}

type Circle struct {
	CX, CY, R float64
	Style     Style
}

type Text struct {
	X, Y    float64
	Content string
	Rotate  float64 // градусы вокруг (X, Y)
	Style   Style
}

type Group struct {
	ID       string
	Elements []Element
}

func (Rect) Kind() Kind    { return KindRect }
func (Line) Kind() Kind    { return KindLine }
func (Polygon) Kind() Kind { return KindPolygon }
func (Circle) Kind() Kind  { return KindCircle }
func (Text) Kind() Kind    { return KindText }
func (*Group) Kind() Kind  { return KindGroup }

func (g *Group) Add(elems ...Element) {
	g.Elements = append(g.Elements, elems...)
}

// Count считает элементы данного вида, включая вложенные группы.
func (g *Group) Count(kind Kind) int {
	n := 0
	for _, e := range g.Elements {
		if e.Kind() == kind {
			n++
		}
		if sub, ok := e.(*Group); ok {
			n += sub.Count(kind)
		}
	}
	return n
}

// Groups возвращает прямые подгруппы.
func (g *Group) Groups() []*Group {
	var out []*Group
	for _, e := range g.Elements {
		if sub, ok := e.(*Group); ok {
			out = append(out, sub)
		}
	}
	return out
}

func (g *Group) find(id string) *Group {
	if g.ID == id {
		return g
	}
	for _, sub := range g.Groups() {
		if found := sub.find(id); found != nil {
			return found
		}
	}
	return nil
}

func (g *Group) texts(out []string) []string {
	for _, e := range g.Elements {
		switch v := e.(type) {
		case Text:
			out = append(out, v.Content)
		case *Group:
			out = v.texts(out)
		}
	}
	return out
}

// ============================================================
// Drawing
// ============================================================

// Drawing — дерево примитивов фиксированного размера. Создаётся заново на
// каждый вызов рендера.
type Drawing struct {
	Width  float64
	Height float64
	Class  string
	Title  string
	Root   Group
}

func New(width, height float64, class string) *Drawing {
	return &Drawing{Width: width, Height: height, Class: class}
}

func (d *Drawing) Add(elems ...Element) {
	d.Root.Add(elems...)
}

// NewGroup добавляет именованную группу и возвращает её.
func (d *Drawing) NewGroup(id string) *Group {
	g := &Group{ID: id}
	d.Root.Add(g)
	return g
}

// Group ищет группу по id в глубину; nil если нет.
func (d *Drawing) Group(id string) *Group {
	for _, sub := range d.Root.Groups() {
		if found := sub.find(id); found != nil {
			return found
		}
	}
	return nil
}

func (d *Drawing) Count(kind Kind) int {
	return d.Root.Count(kind)
}

// Texts возвращает все текстовые строки рисунка в порядке вывода.
func (d *Drawing) Texts() []string {
	return d.Root.texts(nil)
}
