package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine builds the html/template engine with the lookup-table
// helpers the chips and timeline use.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("priority", domain.PriorityByCode)
	engine.AddFunc("status", domain.StatusByName)
	return engine
}
