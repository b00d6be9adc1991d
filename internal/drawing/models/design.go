package models

import (
	"errors"
	"strings"
)

// ============================================================
// Design (сохранённая спецификация проекта)
// ============================================================

type Design struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Project   string        `json:"project"`
	Spec      FurnitureSpec `json:"spec"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// DesignInput — тело запросов создания и обновления.
type DesignInput struct {
	Name    string        `json:"name" yaml:"name"`
	Project string        `json:"project" yaml:"project"`
	Spec    FurnitureSpec `json:"spec" yaml:"spec"`
}

// Validate проверяет имя, размеры и счётчики. Тип не проверяется: неизвестный
// тип сохраняется и рисуется заглушкой.
func (in DesignInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(in.Spec.Type) == "" {
		return errors.New("spec.type is required")
	}
	return in.Spec.Check()
}
