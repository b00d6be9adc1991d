package encoder

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"furniture-studio/internal/drawing/models"
	"furniture-studio/internal/drawing/renderer"
)

// ============================================================
// Preview card
// ============================================================

var cardTemplates = template.Must(template.New("card").Parse(`{{define "card"}}<div class="furniture-preview{{if .Class}} {{.Class}}{{end}}" style="border:1px solid #d9d4cc;border-radius:8px;padding:12px;background:#ffffff;display:inline-block;font-family:sans-serif">
  <div style="font-weight:600;font-size:15px;color:#333333">{{.Title}}</div>
  <div style="font-size:12px;color:#777777;margin-bottom:8px">{{.Dimensions}}</div>
  {{.SVG}}
</div>{{end}}
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="margin:24px;background:#f4f2ee">
{{template "card" .}}
</body>
</html>
{{end}}`))

type cardData struct {
	Title      string
	Dimensions string
	Class      string
	SVG        template.HTML
}

// PreviewCard рисует спецификацию и оборачивает SVG в карточку
// с названием и строкой размеров.
func PreviewCard(w io.Writer, spec models.FurnitureSpec, showDimensions bool, class string) error {
	return executeCard(w, "card", spec, showDimensions, class)
}

// PreviewPage делает то же, но полным HTML-документом.
func PreviewPage(w io.Writer, spec models.FurnitureSpec, showDimensions bool, class string) error {
	return executeCard(w, "page", spec, showDimensions, class)
}

func executeCard(w io.Writer, name string, spec models.FurnitureSpec, showDimensions bool, class string) error {
	body, err := SVGString(renderer.Render(spec, showDimensions, class))
	if err != nil {
		return err
	}
	// XML-пролог внутри HTML не нужен
	if i := strings.Index(body, "<svg"); i > 0 {
		body = body[i:]
	}

	data := cardData{
		Title:      spec.DisplayName(),
		Dimensions: spec.DimensionLabel(),
		Class:      class,
		// svgo экранирует текст, атрибуты собираются из своих стилей
		SVG: template.HTML(body),
	}
	if err := cardTemplates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("execute %s template: %w", name, err)
	}
	return nil
}
