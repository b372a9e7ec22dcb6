package webui

import (
	"embed"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Register serves the embedded front end at the site root. Favorites
// persistence and name-card rendering are entirely client-side; the server
// keeps no per-user state.
func Register(e *echo.Echo) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at compile time; a failure here
		// is a build defect, not a runtime condition.
		panic(err)
	}
	e.StaticFS("/", sub)
}
