package models

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// Options bag
// ============================================================

// Options — открытый набор параметров изделия. Каждый рендерер читает
// только свои ключи; отсутствующий ключ или значение не того типа
// заменяется значением по умолчанию.
type Options map[string]any

func (o Options) Float(key string, def float64) float64 {
	if o == nil {
		return def
	}
	raw, ok := o[key]
	if !ok || raw == nil {
		return def
	}

	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return def
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	case map[string]any:
		// {"length": 400} как в свойствах планировщика
		return Options(v).Float("length", def)
	}
	return def
}

// MaxCount ограничивает любой счётчик (полки, ящики, тумбы, дверцы):
// рендеры создают элементы на каждую единицу.
const MaxCount = 64

// countKeys: ключи, которые рендеры читают через Count.
var countKeys = map[string]bool{
	"drawers":        true,
	"shelves":        true,
	"shutters":       true,
	"hangingRods":    true,
	"baseCabinets":   true,
	"wallCabinets":   true,
	"pulloutShelves": true,
	"glassShelf":     true,
	"doors":          true,
	"seats":          true,
	"panels":         true,
	"legs":           true,
}

// Count читает неотрицательное целое не больше MaxCount.
func (o Options) Count(key string, def int) int {
	f := o.Float(key, float64(def))
	if f < 0 {
		return 0
	}
	if f > MaxCount {
		return MaxCount
	}
	return int(f)
}

// Validate отклоняет счётчики больше MaxCount. Значения не того типа
// не ошибка: читатели подставят значение по умолчанию.
func (o Options) Validate() error {
	keys := make([]string, 0, len(o))
	for key := range o {
		if countKeys[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		if f := o.Float(key, 0); f > MaxCount {
			return fmt.Errorf("options.%s must be at most %d, got %s", key, MaxCount, FormatMM(f))
		}
	}
	return nil
}

func (o Options) Bool(key string, def bool) bool {
	if o == nil {
		return def
	}
	raw, ok := o[key]
	if !ok || raw == nil {
		return def
	}

	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}

func (o Options) String(key, def string) string {
	if o == nil {
		return def
	}
	raw, ok := o[key]
	if !ok || raw == nil {
		return def
	}

	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	case float64:
		return FormatMM(v)
	case int:
		return strconv.Itoa(v)
	}
	return def
}
