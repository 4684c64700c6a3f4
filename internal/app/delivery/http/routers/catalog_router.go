package routers

import (
	"labdash-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.FindAllLabs)
	router.Get("/{labID}/markers", catalogController.FindMarkersByLab)
}

func attachUserRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.FindAllUsers)
}
