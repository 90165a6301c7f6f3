package webserver

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func routes(app *fiber.App, controllers Controllers) {
	cssFS, err := fs.Sub(embedded, "embedded/css")
	if err != nil {
		log.Fatal(err)
	}

	app.Use("/css", filesystem.New(filesystem.Config{
		Root: http.FS(cssFS),
	}))

	entryGroup := app.Group("/entry")

	entryGroup.Get("/invite/:code", controllers.Entry.Invite)
	entryGroup.Get("/register/:code?", controllers.Entry.RegisterForm)
	entryGroup.Post("/register/:code?", controllers.Entry.Register)

	settingsGroup := app.Group("/settings/massinvite")

	settingsGroup.Get("/", controllers.Campaigns.List)
	settingsGroup.Get("/new", controllers.Campaigns.New)
	settingsGroup.Post("/", controllers.Campaigns.Create)

	app.Get("/", controllers.Home.Index)
}
