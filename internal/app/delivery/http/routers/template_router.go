package routers

import (
	"labdash-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTemplateRoutes(router chi.Router, templateController *controllers.TemplateController) {
	router.Get("/", templateController.FindAll)
	router.Get("/{templateID}/markers", templateController.FindMarkers)
	router.Post("/", templateController.Create)
	router.Put("/{templateID}", templateController.Update)
	router.Post("/{templateID}/hydrate", templateController.Hydrate)
}
