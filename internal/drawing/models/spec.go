package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================
// Categories
// ============================================================

type Category string

const (
	CategoryBed       Category = "bed"
	CategoryWardrobe  Category = "wardrobe"
	CategoryKitchen   Category = "kitchen"
	CategoryTVUnit    Category = "tvunit"
	CategoryCabinet   Category = "cabinet"
	CategoryBookshelf Category = "bookshelf"
	CategoryDresser   Category = "dresser"
	CategoryDoor      Category = "door"
	CategoryShelving  Category = "shelving"
	CategoryTable     Category = "table"
	CategorySofa      Category = "sofa"
	CategoryPanel     Category = "panel"
)

// KnownCategories в порядке отображения в каталоге.
var KnownCategories = []Category{
	CategoryBed,
	CategoryWardrobe,
	CategoryKitchen,
	CategoryTVUnit,
	CategoryCabinet,
	CategoryDresser,
	CategoryBookshelf,
	CategoryShelving,
	CategoryDoor,
	CategoryTable,
	CategorySofa,
	CategoryPanel,
}

var displayNames = map[Category]string{
	CategoryTVUnit:    "TV Unit",
	CategoryBookshelf: "Bookshelf",
}

// ParseCategory нормализует строку типа. Неизвестный тип не ошибка:
// второе значение сообщает, входит ли он в закрытый набор.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range KnownCategories {
		if c == known {
			return c, true
		}
	}
	return c, false
}

// ============================================================
// Furniture Spec
// ============================================================

type FurnitureSpec struct {
	Type    string  `json:"type" yaml:"type"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Depth   float64 `json:"depth" yaml:"depth"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

func (s FurnitureSpec) Category() (Category, bool) {
	return ParseCategory(s.Type)
}

// Validate проверяет, что все размеры положительные и конечные.
func (s FurnitureSpec) Validate() error {
	dims := []struct {
		name string
		val  float64
	}{
		{"width", s.Width},
		{"height", s.Height},
		{"depth", s.Depth},
	}
	for _, d := range dims {
		if math.IsNaN(d.val) || math.IsInf(d.val, 0) {
			return fmt.Errorf("%s must be a finite number", d.name)
		}
		if d.val <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, FormatMM(d.val))
		}
	}
	return nil
}

// Check объединяет проверку размеров и счётчиков; для входа API и CLI.
func (s FurnitureSpec) Check() error {
	if err := s.Validate(); err != nil {
		return err
	}
	return s.Options.Validate()
}

// DisplayName возвращает заголовок карточки превью.
func (s FurnitureSpec) DisplayName() string {
	c, _ := s.Category()
	if name, ok := displayNames[c]; ok {
		return name
	}
	if c == "" {
		return "Furniture"
	}
	return cases.Title(language.English).String(string(c))
}

// DimensionLabel форматирует размеры как "{width}mm × {height}mm × {depth}mm".
func (s FurnitureSpec) DimensionLabel() string {
	return FormatMM(s.Width) + "mm × " + FormatMM(s.Height) + "mm × " + FormatMM(s.Depth) + "mm"
}

// FormatMM печатает миллиметры без лишних нулей.
func FormatMM(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// FileStem возвращает тип, пригодный для имени файла.
func (s FurnitureSpec) FileStem() string {
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, strings.ToLower(strings.TrimSpace(s.Type)))
	stem = strings.Trim(stem, "-")
	if stem == "" {
		return "furniture"
	}
	return stem
}
