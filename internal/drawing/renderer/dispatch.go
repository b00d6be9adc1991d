package renderer

import (
	"furniture-studio/internal/drawing/canvas"
	"furniture-studio/internal/drawing/models"
)

// ============================================================
// Dispatcher
// ============================================================

// Func: контракт всех рендереров: чистая функция spec → чертёж.
type Func func(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing

var registry = map[models.Category]Func{
	models.CategoryBed:       Bed,
	models.CategoryWardrobe:  Wardrobe,
	models.CategoryKitchen:   Kitchen,
	models.CategoryTVUnit:    TVUnit,
	models.CategoryCabinet:   Cabinet,
	models.CategoryDresser:   Cabinet,
	models.CategoryBookshelf: Bookshelf,
	models.CategoryShelving:  Bookshelf,
	models.CategoryDoor:      Generic,
	models.CategoryTable:     Generic,
	models.CategorySofa:      Generic,
	models.CategoryPanel:     Generic,
}

// Lookup возвращает рендерер категории.
func Lookup(c models.Category) (Func, bool) {
	fn, ok := registry[c]
	return fn, ok
}

// Render выбирает рендерер по spec.Type. Неизвестный тип и неверные
// размеры не ошибка: рисуется соответствующая заглушка.
func Render(spec models.FurnitureSpec, showDimensions bool, class string) *canvas.Drawing {
	category, _ := spec.Category()
	fn, ok := registry[category]
	if !ok {
		return unsupportedPanel(spec.Type, class)
	}

	if err := spec.Validate(); err != nil {
		return invalidPanel(spec, err.Error(), class)
	}
	return fn(spec, showDimensions, class)
}

// ============================================================
// Catalog
// ============================================================

type CategoryInfo struct {
	Type     models.Category `json:"type" yaml:"type"`
	Name     string          `json:"name" yaml:"name"`
	Renderer string          `json:"renderer" yaml:"renderer"`
	Defaults any             `json:"defaults" yaml:"defaults"`
}

var rendererNames = map[models.Category]string{
	models.CategoryBed:       "bed",
	models.CategoryWardrobe:  "wardrobe",
	models.CategoryKitchen:   "kitchen",
	models.CategoryTVUnit:    "tvunit",
	models.CategoryCabinet:   "cabinet",
	models.CategoryDresser:   "cabinet",
	models.CategoryBookshelf: "bookshelf",
	models.CategoryShelving:  "bookshelf",
	models.CategoryDoor:      "generic",
	models.CategoryTable:     "generic",
	models.CategorySofa:      "generic",
	models.CategoryPanel:     "generic",
}

// Categories перечисляет поддерживаемые типы с параметрами по умолчанию.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(models.KnownCategories))
	for _, c := range models.KnownCategories {
		out = append(out, CategoryInfo{
			Type:     c,
			Name:     models.FurnitureSpec{Type: string(c)}.DisplayName(),
			Renderer: rendererNames[c],
			Defaults: models.Defaults(c),
		})
	}
	return out
}
