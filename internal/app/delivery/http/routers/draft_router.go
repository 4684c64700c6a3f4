package routers

import (
	"labdash-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDraftRoutes(router chi.Router, draftController *controllers.DraftController) {
	router.Post("/", draftController.Open)
	router.Get("/{draftID}", draftController.FindByID)
	router.Put("/{draftID}/lab", draftController.SelectLab)
	router.Put("/{draftID}/method", draftController.SelectMethod)
	router.Post("/{draftID}/markers/{markerID}/toggle", draftController.ToggleMarker)
	router.Put("/{draftID}/details", draftController.SetDetails)
	router.Put("/{draftID}/patient", draftController.SetPatient)
	router.Delete("/{draftID}", draftController.Discard)
}
