package webserver

import (
	"embed"
	"errors"
	"io/fs"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/template/html/v2"
)

//go:embed embedded
var embedded embed.FS

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	viewsFS, err := fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}

	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			err = c.Status(code).Render("errors/error", fiber.Map{
				"Title":   "MassInvite",
				"Code":    code,
				"Message": utils.StatusMessage(code),
			}, "layout")

			if err != nil {
				log.Println(err)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	})

	routes(app, controllers)

	return app
}
