package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v3"
	"gopkg.in/yaml.v3"
)

// ============================================================
// Swagger Handlers
// ============================================================

//go:embed openapi.yaml
var openAPISpec []byte

// apiDoc: то, что страница берёт из встроенного документа.
type apiDoc struct {
	Info struct {
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
	} `yaml:"info"`
	Tags []struct {
		Name string `yaml:"name"`
	} `yaml:"tags"`
}

var docInfo = mustParseDoc(openAPISpec)

func mustParseDoc(data []byte) apiDoc {
	var doc apiDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic("openapi.yaml: " + err.Error())
	}
	return doc
}

var swaggerPage = template.Must(template.New("swagger").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}} {{.Version}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    if (!window.location.hash) {
      window.location.hash = {{.DefaultHash}};
    }
    window.ui = SwaggerUIBundle({
      url: {{.SpecURL}},
      dom_id: '#swagger-ui',
      deepLinking: true,
      docExpansion: 'list',
      tryItOutEnabled: true,
      presets: [SwaggerUIBundle.presets.apis],
    });
  };
</script>
</body>
</html>`))

type swaggerView struct {
	Title       string
	Version     string
	SpecURL     string
	DefaultHash string
}

// SwaggerSpec отдаёт OpenAPI YAML.
func SwaggerSpec(c fiber.Ctx) error {
	c.Type("yaml")
	return c.Send(openAPISpec)
}

// SwaggerUI отдаёт страницу Swagger UI. Документ ищется рядом со
// страницей (<путь>/openapi.yaml), по умолчанию раскрыт первый тег.
func SwaggerUI(c fiber.Ctx) error {
	view := swaggerView{
		Title:   docInfo.Info.Title,
		Version: docInfo.Info.Version,
		SpecURL: strings.TrimRight(c.Path(), "/") + "/openapi.yaml",
	}
	if len(docInfo.Tags) > 0 {
		view.DefaultHash = "#/" + docInfo.Tags[0].Name
	}

	var buf bytes.Buffer
	if err := swaggerPage.Execute(&buf, view); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "docs unavailable")
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
