package routers

import (
	"labdash-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, orderController *controllers.OrderController) {
	router.Get("/", orderController.FindAll)
	router.Post("/", orderController.Submit)
	router.Post("/{orderID}/cancel", orderController.Cancel)
	router.Get("/{orderID}/report", orderController.FetchReport)
}
